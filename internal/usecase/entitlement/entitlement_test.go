package entitlement

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/infra/memory"
	"github.com/depastori/clinica-psi/internal/models"
	"github.com/depastori/clinica-psi/internal/timezone"
)

var testNow = time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store   *memory.Store
	clock   *timezone.FixedClock
	owner   uuid.UUID
	patient models.Patient
}

func newFixture() *fixture {
	f := &fixture{
		store: memory.New(),
		clock: timezone.Fixed(testNow),
		owner: uuid.New(),
	}
	f.patient = models.Patient{ID: uuid.New(), PractitionerID: f.owner, FullName: "Ana Souza", Currency: "EUR"}
	f.store.AddPatient(f.patient)
	return f
}

func (f *fixture) create(t *testing.T, total int) *models.Package {
	t.Helper()
	p, err := NewCreatePackage(f.store, nil, f.clock).Execute(context.Background(), f.owner, CreatePackageInput{
		PatientID:     f.patient.ID,
		Name:          "  Pacote trimestral ",
		TotalSessions: total,
		TotalAmount:   decimal.NewFromInt(900),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return p
}

func TestCreatePackage(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, 10)

		if p.Name != "Pacote trimestral" || p.Currency != "EUR" || p.Status != string(domain.StatusActive) {
			t.Fatalf("unexpected package %+v", p)
		}
		if p.UsedSessions != 0 || !p.PurchaseDate.Equal(testNow) {
			t.Fatalf("unexpected package %+v", p)
		}
	})

	t.Run("unknown patient", func(t *testing.T) {
		f := newFixture()
		_, err := NewCreatePackage(f.store, nil, f.clock).Execute(context.Background(), f.owner, CreatePackageInput{
			PatientID:     uuid.New(),
			Name:          "Pacote",
			TotalSessions: 4,
		})
		if !httperr.IsBusiness(err, "patient_not_found") {
			t.Fatalf("expected patient_not_found, got %v", err)
		}
	})

	t.Run("invalid totals", func(t *testing.T) {
		f := newFixture()
		_, err := NewCreatePackage(f.store, nil, f.clock).Execute(context.Background(), f.owner, CreatePackageInput{
			PatientID: f.patient.ID,
			Name:      "Pacote",
		})
		if !httperr.IsBusiness(err, "invalid_total_sessions") {
			t.Fatalf("expected invalid_total_sessions, got %v", err)
		}
	})
}

func TestConsumeSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.create(t, 10)
	uc := NewConsumeSession(f.store, nil, f.clock)

	for i := 1; i <= 9; i++ {
		out, err := uc.Execute(ctx, f.owner, p.ID)
		if err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
		if out.Status != string(domain.StatusActive) || out.UsedSessions != i || out.RemainingSessions != 10-i {
			t.Fatalf("consume %d: unexpected %+v", i, out)
		}
	}

	out, err := uc.Execute(ctx, f.owner, p.ID)
	if err != nil || out.Status != string(domain.StatusCompleted) || out.RemainingSessions != 0 {
		t.Fatalf("tenth: expected completed, got %+v (%v)", out, err)
	}

	_, err = uc.Execute(ctx, f.owner, p.ID)
	if !httperr.IsKind(err, httperr.KindInvalidState) {
		t.Fatalf("eleventh: expected invalid state, got %v", err)
	}

	stored, _ := f.store.Packages().Get(ctx, f.owner, p.ID)
	if stored.UsedSessions != 10 {
		t.Fatalf("expected 10 used, got %d", stored.UsedSessions)
	}
}

func TestConsumeSessionConcurrent(t *testing.T) {
	f := newFixture()
	p := f.create(t, 5)
	uc := NewConsumeSession(f.store, nil, f.clock)

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Execute(context.Background(), f.owner, p.ID); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if ok != 5 {
		t.Fatalf("expected exactly 5 successful consumptions, got %d", ok)
	}
}

func TestConsumeExpiredPackage(t *testing.T) {
	f := newFixture()
	expiry := testNow.Add(24 * time.Hour)
	p, err := NewCreatePackage(f.store, nil, f.clock).Execute(context.Background(), f.owner, CreatePackageInput{
		PatientID:     f.patient.ID,
		Name:          "Pacote",
		TotalSessions: 2,
		ExpiryDate:    &expiry,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f.clock.Advance(72 * time.Hour)

	if _, err := NewConsumeSession(f.store, nil, f.clock).Execute(context.Background(), f.owner, p.ID); err != nil {
		t.Fatalf("expiry is informational, got %v", err)
	}
}

func TestUpdatePackage(t *testing.T) {
	ctx := context.Background()

	t.Run("rename and totals", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, 4)
		for i := 0; i < 4; i++ {
			if _, err := NewConsumeSession(f.store, nil, f.clock).Execute(ctx, f.owner, p.ID); err != nil {
				t.Fatalf("consume: %v", err)
			}
		}

		name := "Pacote estendido"
		total := 8
		brl := "brl"
		updated, err := NewUpdatePackage(f.store, nil).Execute(ctx, f.owner, p.ID, UpdatePackageInput{
			Name:          &name,
			TotalSessions: &total,
			Currency:      &brl,
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Name != name || updated.TotalSessions != 8 || updated.Currency != "BRL" {
			t.Fatalf("unexpected %+v", updated)
		}
		if updated.Status != string(domain.StatusActive) || updated.UsedSessions != 4 {
			t.Fatalf("expected active with 4 used, got %+v", updated)
		}
	})

	t.Run("total below used", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, 4)
		for i := 0; i < 3; i++ {
			_, _ = NewConsumeSession(f.store, nil, f.clock).Execute(ctx, f.owner, p.ID)
		}

		total := 2
		_, err := NewUpdatePackage(f.store, nil).Execute(ctx, f.owner, p.ID, UpdatePackageInput{TotalSessions: &total})
		if !httperr.IsBusiness(err, "total_below_used") {
			t.Fatalf("expected total_below_used, got %v", err)
		}

		stored, _ := f.store.Packages().Get(ctx, f.owner, p.ID)
		if stored.TotalSessions != 4 {
			t.Fatalf("package must be unchanged, got %d", stored.TotalSessions)
		}
	})

	t.Run("expiry set and cleared", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, 4)
		expiry := testNow.Add(30 * 24 * time.Hour)

		updated, err := NewUpdatePackage(f.store, nil).Execute(ctx, f.owner, p.ID, UpdatePackageInput{ExpiryDate: &expiry})
		if err != nil || updated.ExpiryDate == nil {
			t.Fatalf("expected expiry set, got %+v (%v)", updated, err)
		}

		updated, err = NewUpdatePackage(f.store, nil).Execute(ctx, f.owner, p.ID, UpdatePackageInput{ClearExpiry: true})
		if err != nil || updated.ExpiryDate != nil {
			t.Fatalf("expected expiry cleared, got %+v (%v)", updated, err)
		}
	})

	t.Run("cancelled package is frozen", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, 4)
		if _, err := NewCancelPackage(f.store, nil).Execute(ctx, f.owner, p.ID); err != nil {
			t.Fatalf("cancel: %v", err)
		}

		name := "x"
		_, err := NewUpdatePackage(f.store, nil).Execute(ctx, f.owner, p.ID, UpdatePackageInput{Name: &name})
		if !httperr.IsBusiness(err, "package_cancelled") {
			t.Fatalf("expected package_cancelled, got %v", err)
		}

		_, err = NewConsumeSession(f.store, nil, f.clock).Execute(ctx, f.owner, p.ID)
		if !httperr.IsBusiness(err, "package_cancelled") {
			t.Fatalf("expected package_cancelled on consume, got %v", err)
		}
	})
}

func TestListGetDeletePackages(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	active := f.create(t, 2)
	f.clock.Advance(time.Minute)
	done := f.create(t, 1)
	if _, err := NewConsumeSession(f.store, nil, f.clock).Execute(ctx, f.owner, done.ID); err != nil {
		t.Fatalf("consume: %v", err)
	}

	all, err := NewListPackages(f.store).Execute(ctx, f.owner, nil, false)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 packages, got %d (%v)", len(all), err)
	}

	onlyActive, _ := NewListPackages(f.store).Execute(ctx, f.owner, &f.patient.ID, true)
	if len(onlyActive) != 1 || onlyActive[0].ID != active.ID {
		t.Fatalf("expected only the active package, got %v", onlyActive)
	}

	if _, err := NewGetPackage(f.store).Execute(ctx, uuid.New(), active.ID); !httperr.IsBusiness(err, "package_not_found") {
		t.Fatalf("expected package_not_found for another practitioner, got %v", err)
	}

	if err := NewDeletePackage(f.store, nil).Execute(ctx, f.owner, done.ID); err != nil {
		t.Fatalf("delete completed package: %v", err)
	}
	if _, err := NewGetPackage(f.store).Execute(ctx, f.owner, done.ID); !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
