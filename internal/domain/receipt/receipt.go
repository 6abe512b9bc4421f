package receipt

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/models"
)

// Validate confere um recibo antes da emissão. Depois de gravado ele não muda.
func Validate(r *models.Receipt) error {
	if !r.Amount.GreaterThan(decimal.Zero) {
		return httperr.ErrValidation("invalid_amount", "O valor do recibo deve ser maior que zero.")
	}
	if strings.TrimSpace(r.Description) == "" {
		return httperr.ErrValidation("description_required", "Informe a descrição do recibo.")
	}
	if strings.TrimSpace(r.PaymentMethod) == "" {
		return httperr.ErrValidation("payment_method_required", "Informe a forma de pagamento.")
	}
	if r.PaymentDate.IsZero() {
		return httperr.ErrValidation("payment_date_required", "Informe a data do pagamento.")
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, r *models.Receipt) error

	Get(
		ctx context.Context,
		practitionerID uuid.UUID,
		receiptID uuid.UUID,
	) (*models.Receipt, error)

	// mais recentes primeiro; patientID nil lista todos do profissional
	List(
		ctx context.Context,
		practitionerID uuid.UUID,
		patientID *uuid.UUID,
	) ([]models.Receipt, error)

	ListByCharge(
		ctx context.Context,
		practitionerID uuid.UUID,
		chargeID uuid.UUID,
	) ([]models.Receipt, error)

	Delete(
		ctx context.Context,
		practitionerID uuid.UUID,
		receiptID uuid.UUID,
	) error
}
