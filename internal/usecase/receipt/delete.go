package receipt

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/audit"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
)

// DeleteReceipt remove o recibo. A cobrança de origem continua paga.
type DeleteReceipt struct {
	store ledger.Store
	audit *audit.Dispatcher
}

func NewDeleteReceipt(store ledger.Store, audit *audit.Dispatcher) *DeleteReceipt {
	return &DeleteReceipt{store: store, audit: audit}
}

func (uc *DeleteReceipt) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	receiptID uuid.UUID,
) error {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return err
	}

	rc, err := uc.store.Receipts().Get(ctx, practitionerID, receiptID)
	if err != nil {
		return ledger.NotFound(err, "receipt_not_found", "Recibo não encontrado.")
	}

	if err := uc.store.Receipts().Delete(ctx, practitionerID, receiptID); err != nil {
		return ledger.NotFound(err, "receipt_not_found", "Recibo não encontrado.")
	}

	if rc.ChargeID != nil {
		log.Printf("[receipt][usecase] receipt %s deleted; charge %s stays paid", rc.Number, rc.ChargeID)
	}

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionReceiptDeleted, audit.EntityReceipt, rc.ID, map[string]any{
		"number": rc.Number,
	}))

	return nil
}
