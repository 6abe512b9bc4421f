package charge

import (
	"context"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/audit"
	domain "github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/timezone"
)

type DeleteCharge struct {
	store ledger.Store
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewDeleteCharge(
	store ledger.Store,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *DeleteCharge {
	return &DeleteCharge{
		store: store,
		audit: audit,
		clock: clock,
	}
}

// Execute exige confirm=true. Cobrança paga nunca é apagada.
func (uc *DeleteCharge) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
	confirm bool,
) error {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return err
	}

	if !confirm {
		return httperr.ErrValidation("confirmation_required", "Confirme a exclusão da cobrança.")
	}

	var number string

	err := uc.store.Transaction(ctx, func(tx ledger.Store) error {
		c, err := tx.Charges().GetForUpdate(ctx, practitionerID, chargeID)
		if err != nil {
			return ledger.NotFound(err, "charge_not_found", "Cobrança não encontrada.")
		}

		reconciled := domain.Reconcile(*c, uc.clock.Now())
		if err := domain.CanDelete(domain.Status(reconciled.Status)); err != nil {
			return err
		}

		number = c.Number
		return tx.Charges().Delete(ctx, practitionerID, chargeID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionChargeDeleted, audit.EntityCharge, chargeID, map[string]any{
		"number": number,
	}))

	return nil
}
