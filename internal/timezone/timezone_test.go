package timezone

import (
	"testing"
	"time"
)

func TestLocation(t *testing.T) {
	if got := Location("Europe/Lisbon").String(); got != "Europe/Lisbon" {
		t.Fatalf("expected Europe/Lisbon, got %s", got)
	}
	if got := Location("Marte/Olympus").String(); got != DefaultTimezone {
		t.Fatalf("invalid zone should fall back to %s, got %s", DefaultTimezone, got)
	}
	if IsValid("") {
		t.Fatal("empty zone is not valid")
	}
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)
	c := Fixed(start)

	if !c.Now().Equal(start) {
		t.Fatalf("unexpected %v", c.Now())
	}

	c.Advance(48 * time.Hour)
	if !c.Now().Equal(start.Add(48 * time.Hour)) {
		t.Fatalf("unexpected %v", c.Now())
	}

	c.Set(start)
	if !c.Now().Equal(start) {
		t.Fatalf("unexpected %v", c.Now())
	}
}

func TestSystemClock(t *testing.T) {
	now := System("Europe/Lisbon").Now()
	if now.Location().String() != "Europe/Lisbon" {
		t.Fatalf("unexpected location %s", now.Location())
	}
}
