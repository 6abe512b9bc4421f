package receipt

import (
	"context"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/models"
)

type ListReceiptsInput struct {
	PatientID *uuid.UUID
	ChargeID  *uuid.UUID
}

type ListReceipts struct {
	store ledger.Store
}

func NewListReceipts(store ledger.Store) *ListReceipts {
	return &ListReceipts{store: store}
}

// Execute lista do mais novo para o mais antigo. Sem filtros traz todos.
func (uc *ListReceipts) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	in ListReceiptsInput,
) ([]models.Receipt, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	if in.ChargeID == nil {
		return uc.store.Receipts().List(ctx, practitionerID, in.PatientID)
	}

	receipts, err := uc.store.Receipts().ListByCharge(ctx, practitionerID, *in.ChargeID)
	if err != nil {
		return nil, err
	}
	if in.PatientID == nil {
		return receipts, nil
	}

	out := make([]models.Receipt, 0, len(receipts))
	for _, rc := range receipts {
		if rc.PatientID == *in.PatientID {
			out = append(out, rc)
		}
	}
	return out, nil
}

type GetReceipt struct {
	store ledger.Store
}

func NewGetReceipt(store ledger.Store) *GetReceipt {
	return &GetReceipt{store: store}
}

func (uc *GetReceipt) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	receiptID uuid.UUID,
) (*models.Receipt, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	rc, err := uc.store.Receipts().Get(ctx, practitionerID, receiptID)
	if err != nil {
		return nil, ledger.NotFound(err, "receipt_not_found", "Recibo não encontrado.")
	}
	return rc, nil
}
