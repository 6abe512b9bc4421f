package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/domain/directory"
	"github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/receipt"
	"github.com/depastori/clinica-psi/internal/domain/sequence"
	"github.com/depastori/clinica-psi/internal/models"
)

type counterKey struct {
	practitionerID uuid.UUID
	kind           sequence.Kind
}

type state struct {
	practitioners map[uuid.UUID]models.Practitioner
	patients      map[uuid.UUID]models.Patient
	appointments  map[uuid.UUID]models.Appointment
	settings      map[uuid.UUID]models.PaymentSettings
	methods       []models.PaymentMethod

	charges  map[uuid.UUID]models.Charge
	receipts map[uuid.UUID]models.Receipt
	packages map[uuid.UUID]models.Package
	counters map[counterKey]int64
}

func newState() *state {
	return &state{
		practitioners: make(map[uuid.UUID]models.Practitioner),
		patients:      make(map[uuid.UUID]models.Patient),
		appointments:  make(map[uuid.UUID]models.Appointment),
		settings:      make(map[uuid.UUID]models.PaymentSettings),
		charges:       make(map[uuid.UUID]models.Charge),
		receipts:      make(map[uuid.UUID]models.Receipt),
		packages:      make(map[uuid.UUID]models.Package),
		counters:      make(map[counterKey]int64),
	}
}

// clone copia o estado para uma transação. Os cadastros são só leitura
// no financeiro e podem ser compartilhados.
func (s *state) clone() *state {
	c := &state{
		practitioners: s.practitioners,
		patients:      s.patients,
		appointments:  s.appointments,
		settings:      s.settings,
		methods:       s.methods,
		charges:       make(map[uuid.UUID]models.Charge, len(s.charges)),
		receipts:      make(map[uuid.UUID]models.Receipt, len(s.receipts)),
		packages:      make(map[uuid.UUID]models.Package, len(s.packages)),
		counters:      make(map[counterKey]int64, len(s.counters)),
	}
	for k, v := range s.charges {
		c.charges[k] = copyCharge(v)
	}
	for k, v := range s.receipts {
		c.receipts[k] = copyReceipt(v)
	}
	for k, v := range s.packages {
		c.packages[k] = v
	}
	for k, v := range s.counters {
		c.counters[k] = v
	}
	return c
}

type root struct {
	mu    sync.Mutex
	st    *state
	alloc sequence.Allocator
}

// Store guarda tudo em memória. Transações são serializadas por um mutex
// e aplicadas por troca do estado inteiro no commit.
type Store struct {
	r  *root
	tx *state
}

var _ ledger.Store = (*Store)(nil)

type Option func(*root)

// WithAllocator troca o contador interno por outro Allocator.
func WithAllocator(a sequence.Allocator) Option {
	return func(r *root) { r.alloc = a }
}

func New(opts ...Option) *Store {
	r := &root{st: newState()}
	for _, opt := range opts {
		opt(r)
	}
	return &Store{r: r}
}

func (s *Store) with(fn func(st *state) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	return fn(s.r.st)
}

func (s *Store) Transaction(ctx context.Context, fn func(tx ledger.Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	staged := s.r.st.clone()
	if err := fn(&Store{r: s.r, tx: staged}); err != nil {
		return err
	}

	s.r.st = staged
	return nil
}

func (s *Store) Charges() charge.Repository { return chargeRepo{s: s} }
func (s *Store) Receipts() receipt.Repository { return receiptRepo{s: s} }
func (s *Store) Packages() entitlement.Repository { return packageRepo{s: s} }
func (s *Store) Directory() directory.Directory { return directoryRepo{s: s} }

func (s *Store) Sequences() sequence.Allocator {
	if s.r.alloc != nil {
		return s.r.alloc
	}
	return counterAllocator{s: s}
}

// --------------------------------------------------
// Counter
// --------------------------------------------------

type counterAllocator struct {
	s *Store
}

func (a counterAllocator) Next(
	_ context.Context,
	practitionerID uuid.UUID,
	kind sequence.Kind,
) (int64, error) {

	var next int64
	err := a.s.with(func(st *state) error {
		key := counterKey{practitionerID: practitionerID, kind: kind}
		st.counters[key]++
		next = st.counters[key]
		return nil
	})
	return next, err
}

// --------------------------------------------------
// Seed (cadastros externos)
// --------------------------------------------------

func (s *Store) AddPractitioner(p models.Practitioner) {
	_ = s.with(func(st *state) error {
		st.practitioners[p.ID] = p
		return nil
	})
}

func (s *Store) AddPatient(p models.Patient) {
	_ = s.with(func(st *state) error {
		st.patients[p.ID] = p
		return nil
	})
}

func (s *Store) AddAppointment(a models.Appointment) {
	_ = s.with(func(st *state) error {
		st.appointments[a.ID] = a
		return nil
	})
}

func (s *Store) SetPaymentSettings(ps models.PaymentSettings) {
	_ = s.with(func(st *state) error {
		st.settings[ps.PractitionerID] = ps
		return nil
	})
}

func (s *Store) AddPaymentMethod(m models.PaymentMethod) {
	_ = s.with(func(st *state) error {
		st.methods = append(st.methods, m)
		return nil
	})
}

func copyCharge(c models.Charge) models.Charge {
	c.AppointmentIDs = append([]uuid.UUID(nil), c.AppointmentIDs...)
	c.PaymentOptions = append([]string(nil), c.PaymentOptions...)
	return c
}

func copyReceipt(r models.Receipt) models.Receipt {
	r.AppointmentIDs = append([]uuid.UUID(nil), r.AppointmentIDs...)
	return r
}
