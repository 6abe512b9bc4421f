package charge

import (
	"context"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/audit"
	domain "github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/models"
	"github.com/depastori/clinica-psi/internal/timezone"
)

type CancelCharge struct {
	store ledger.Store
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewCancelCharge(
	store ledger.Store,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CancelCharge {
	return &CancelCharge{
		store: store,
		audit: audit,
		clock: clock,
	}
}

func (uc *CancelCharge) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
	reason string,
) (*models.Charge, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	var c *models.Charge

	err := uc.store.Transaction(ctx, func(tx ledger.Store) error {
		var err error
		c, err = tx.Charges().GetForUpdate(ctx, practitionerID, chargeID)
		if err != nil {
			return ledger.NotFound(err, "charge_not_found", "Cobrança não encontrada.")
		}

		now := uc.clock.Now()
		*c = domain.Reconcile(*c, now)
		if err := domain.Cancel(c, reason, now); err != nil {
			return err
		}

		return tx.Charges().Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionChargeCancelled, audit.EntityCharge, c.ID, map[string]any{
		"number": c.Number,
		"reason": c.CancelReason,
	}))

	return c, nil
}
