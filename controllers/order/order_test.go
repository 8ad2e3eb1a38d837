package orderControllers

import "testing"

func TestMapOrderStatus(t *testing.T) {
	valid := []string{"pending", "paid", "processing", "shipped", "completed", "cancelled", "PAID", "Shipped"}
	for _, s := range valid {
		if _, err := mapOrderStatus(s); err != nil {
			t.Errorf("mapOrderStatus(%q) unexpectedly failed: %v", s, err)
		}
	}

	invalid := []string{"", "refunded", "delivered", "paid "}
	for _, s := range invalid {
		if _, err := mapOrderStatus(s); err == nil {
			t.Errorf("mapOrderStatus(%q) unexpectedly succeeded", s)
		}
	}
}
