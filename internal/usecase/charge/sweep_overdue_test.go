package charge

import (
	"context"
	"testing"
	"time"

	domain "github.com/depastori/clinica-psi/internal/domain/charge"
)

func TestSweepOverdue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	late := f.manualCharge(t, 100, testNow.Add(24*time.Hour))
	onTime := f.manualCharge(t, 200, testNow.Add(10*24*time.Hour))

	f.clock.Advance(48 * time.Hour)
	uc := NewSweepOverdue(f.store, f.clock)

	n, err := uc.Execute(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 swept charge, got %d (%v)", n, err)
	}

	stored, _ := f.store.Charges().Get(ctx, f.owner, late.ID)
	if domain.Status(stored.Status) != domain.StatusOverdue {
		t.Fatalf("expected overdue, got %s", stored.Status)
	}
	stored, _ = f.store.Charges().Get(ctx, f.owner, onTime.ID)
	if domain.Status(stored.Status) != domain.StatusPending {
		t.Fatalf("expected pending, got %s", stored.Status)
	}

	// idempotente
	if n, _ := uc.Execute(ctx); n != 0 {
		t.Fatalf("second sweep changed %d charges", n)
	}
}
