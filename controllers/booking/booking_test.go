package bookingControllers

import (
	"strings"
	"testing"
	"time"
)

func TestParseEventDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	if _, err := parseEventDate("2026-09-15", now); err != nil {
		t.Fatalf("future date rejected: %v", err)
	}
	if _, err := parseEventDate("2026-08-30", now); err != nil {
		t.Fatalf("same-day booking rejected: %v", err)
	}
	if _, err := parseEventDate("2026-08-29", now); err == nil {
		t.Fatal("past date accepted")
	}
	if _, err := parseEventDate("next friday", now); err == nil {
		t.Fatal("unparseable date accepted")
	}
}

func TestGenerateBookingReference(t *testing.T) {
	a := generateBookingReference()
	b := generateBookingReference()
	if !strings.HasPrefix(a, "bk_") || len(a) != len("bk_")+8 {
		t.Fatalf("unexpected reference format: %q", a)
	}
	if a == b {
		t.Fatalf("references collide: %q", a)
	}
}

func TestMapBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "declined", "completed", "Confirmed"} {
		if _, err := mapBookingStatus(s); err != nil {
			t.Errorf("mapBookingStatus(%q) failed: %v", s, err)
		}
	}
	for _, s := range []string{"", "cancelled", "done"} {
		if _, err := mapBookingStatus(s); err == nil {
			t.Errorf("mapBookingStatus(%q) unexpectedly succeeded", s)
		}
	}
}
