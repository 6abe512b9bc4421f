package charge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/domain/sequence"
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

func newFixture(t *testing.T, opts ...memory.Option) *fixture {
	t.Helper()

	f := &fixture{
		store: memory.New(opts...),
		clock: timezone.Fixed(testNow),
		owner: uuid.New(),
	}

	f.store.AddPractitioner(models.Practitioner{ID: f.owner, FullName: "Dra. Helena Prado", Email: "helena@clinica.test"})

	f.patient = models.Patient{ID: uuid.New(), PractitionerID: f.owner, FullName: "Ana Souza", Currency: "BRL"}
	f.store.AddPatient(f.patient)

	f.store.AddPaymentMethod(models.PaymentMethod{ID: uuid.New(), PractitionerID: f.owner, Name: "pix", IsActive: true})

	return f
}

func (f *fixture) addSession(date string, minutes int) uuid.UUID {
	id := uuid.New()
	f.store.AddAppointment(models.Appointment{
		ID:              id,
		PractitionerID:  f.owner,
		PatientID:       f.patient.ID,
		Date:            date,
		Time:            "14:00",
		DurationMinutes: &minutes,
		TreatmentType:   "psicoterapia",
		SessionType:     "online",
		Status:          "completed",
	})
	return id
}

func (f *fixture) manualCharge(t *testing.T, amount int64, due time.Time) *models.Charge {
	t.Helper()

	c, err := NewCreateManualCharge(f.store, nil, f.clock, 3).Execute(context.Background(), f.owner, CreateManualInput{
		PatientRef:  f.patient.ID.String(),
		Description: "Sessões de março",
		Amount:      decimal.NewFromInt(amount),
		DueDate:     due,
	})
	if err != nil {
		t.Fatalf("create charge: %v", err)
	}
	return c
}

// failingReceipts numera cobranças e falha ao numerar recibos.
type failingReceipts struct {
	mu sync.Mutex
	n  int64
}

func (a *failingReceipts) Next(_ context.Context, _ uuid.UUID, kind sequence.Kind) (int64, error) {
	if kind == sequence.KindReceipt {
		return 0, errors.New("receipt counter unavailable")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.n++
	return a.n, nil
}

// scriptedAllocator devolve os valores na ordem dada, depois continua do último.
type scriptedAllocator struct {
	mu     sync.Mutex
	values []int64
	last   int64
}

func (a *scriptedAllocator) Next(_ context.Context, _ uuid.UUID, _ sequence.Kind) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.values) > 0 {
		a.last = a.values[0]
		a.values = a.values[1:]
		return a.last, nil
	}
	a.last++
	return a.last, nil
}
