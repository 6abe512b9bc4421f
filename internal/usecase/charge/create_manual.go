package charge

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/audit"
	domain "github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/pricing"
	"github.com/depastori/clinica-psi/internal/domain/sequence"
	"github.com/depastori/clinica-psi/internal/models"
	"github.com/depastori/clinica-psi/internal/timezone"
)

type CreateManualInput struct {
	// id ou nome completo
	PatientRef     string
	Description    string
	Amount         decimal.Decimal
	Currency       string
	DueDate        time.Time
	PaymentOptions []string
}

type CreateManualCharge struct {
	store   ledger.Store
	audit   *audit.Dispatcher
	clock   timezone.Clock
	retries int
}

func NewCreateManualCharge(
	store ledger.Store,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	retries int,
) *CreateManualCharge {
	return &CreateManualCharge{
		store:   store,
		audit:   audit,
		clock:   clock,
		retries: retries,
	}
}

func (uc *CreateManualCharge) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	in CreateManualInput,
) (*models.Charge, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	currency, err := pricing.NormalizeCurrency(in.Currency, pricing.CurrencyBRL)
	if err != nil {
		return nil, err
	}

	dir := uc.store.Directory()

	patient, err := resolvePatient(ctx, dir, practitionerID, in.PatientRef)
	if err != nil {
		return nil, err
	}

	options, err := paymentOptions(ctx, dir, practitionerID, in.PaymentOptions)
	if err != nil {
		return nil, err
	}

	c := &models.Charge{
		PractitionerID: practitionerID,
		PatientID:      patient.ID,
		AppointmentIDs: []uuid.UUID{},
		Description:    strings.TrimSpace(in.Description),
		Amount:         pricing.RoundMoney(in.Amount),
		Currency:       currency,
		DueDate:        in.DueDate,
		Status:         string(domain.InitialStatus()),
		IsManual:       true,
		PaymentOptions: options,
	}

	if err := domain.Validate(c); err != nil {
		return nil, err
	}

	if err := insertCharge(ctx, uc.store, uc.retries, c, uc.clock.Now()); err != nil {
		return nil, err
	}

	log.Printf("[charge][usecase] manual charge %s created for patient %s", c.Number, c.PatientID)

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionChargeCreated, audit.EntityCharge, c.ID, map[string]any{
		"number": c.Number,
		"amount": c.Amount.String(),
		"manual": true,
	}))

	return c, nil
}

// insertCharge numera e grava a cobrança numa transação, repetindo em colisão.
func insertCharge(
	ctx context.Context,
	store ledger.Store,
	retries int,
	c *models.Charge,
	now time.Time,
) error {

	return ledger.WithNumberRetry(ctx, retries, func() error {
		return store.Transaction(ctx, func(tx ledger.Store) error {
			seq, number, err := sequence.Assign(ctx, tx.Sequences(), c.PractitionerID, sequence.KindCharge)
			if err != nil {
				return err
			}

			c.ID = uuid.New()
			c.Sequence = seq
			c.Number = number
			c.CreatedAt = now

			return tx.Charges().Create(ctx, c)
		})
	})
}
