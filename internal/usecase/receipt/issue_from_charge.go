package receipt

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/pricing"
	domain "github.com/depastori/clinica-psi/internal/domain/receipt"
	"github.com/depastori/clinica-psi/internal/domain/sequence"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/models"
)

// IssueFromCharge emite o recibo de uma cobrança recém-paga.
// Deve rodar dentro da mesma transação que marcou a cobrança como paga.
func IssueFromCharge(
	ctx context.Context,
	tx ledger.Store,
	c *models.Charge,
	now time.Time,
) (*models.Receipt, error) {

	if c.PaidAt == nil || c.PaymentMethod == "" {
		return nil, httperr.ErrInvalidState("charge_not_paid", "A cobrança ainda não foi paga.")
	}

	seq, number, err := sequence.Assign(ctx, tx.Sequences(), c.PractitionerID, sequence.KindReceipt)
	if err != nil {
		return nil, err
	}

	details, err := sessionDetails(ctx, tx, c.PractitionerID, c.AppointmentIDs)
	if err != nil {
		return nil, err
	}

	chargeID := c.ID
	rc := &models.Receipt{
		ID:             uuid.New(),
		PractitionerID: c.PractitionerID,
		PatientID:      c.PatientID,
		ChargeID:       &chargeID,
		AppointmentIDs: append([]uuid.UUID(nil), c.AppointmentIDs...),
		Sequence:       seq,
		Number:         number,
		Description:    c.Description,
		Amount:         c.Amount,
		Currency:       c.Currency,
		PaymentDate:    *c.PaidAt,
		PaymentMethod:  c.PaymentMethod,
		SessionDetails: details,
		IssuedAt:       now,
	}

	if err := domain.Validate(rc); err != nil {
		return nil, err
	}
	if err := tx.Receipts().Create(ctx, rc); err != nil {
		return nil, err
	}

	return rc, nil
}

// texto das sessões concluídas, uma por linha
func sessionDetails(
	ctx context.Context,
	tx ledger.Store,
	practitionerID uuid.UUID,
	ids []uuid.UUID,
) (string, error) {

	if len(ids) == 0 {
		return "", nil
	}

	apps, err := tx.Directory().ListAppointments(ctx, practitionerID, ids)
	if err != nil {
		return "", err
	}
	return pricing.FormatSessions(pricing.CompletedSessions(apps)), nil
}
