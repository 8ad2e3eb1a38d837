package reviewControllers

import "testing"

func TestClampRating(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{6, 5},
		{100, 5},
	}
	for _, tc := range cases {
		if got := clampRating(tc.in); got != tc.want {
			t.Errorf("clampRating(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
