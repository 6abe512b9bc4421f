package charge

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/models"
)

// Validate confere os campos obrigatórios antes de gravar.
func Validate(c *models.Charge) error {
	if !c.Amount.GreaterThan(decimal.Zero) {
		return httperr.ErrValidation("invalid_amount", "O valor da cobrança deve ser maior que zero.")
	}
	if strings.TrimSpace(c.Description) == "" {
		return httperr.ErrValidation("description_required", "Informe a descrição da cobrança.")
	}
	if c.DueDate.IsZero() {
		return httperr.ErrValidation("due_date_required", "Informe a data de vencimento.")
	}
	return nil
}

// MarkPaid aplica a transição para paid. paidAt e método são gravados juntos.
func MarkPaid(c *models.Charge, method string, paidAt time.Time) error {
	if err := CanPay(Status(c.Status)); err != nil {
		return err
	}

	method = strings.TrimSpace(method)
	if method == "" {
		return httperr.ErrValidation("payment_method_required", "Informe a forma de pagamento.")
	}

	c.Status = string(StatusPaid)
	c.PaidAt = &paidAt
	c.PaymentMethod = method
	return nil
}

func Cancel(c *models.Charge, reason string, now time.Time) error {
	if err := CanCancel(Status(c.Status)); err != nil {
		return err
	}

	c.Status = string(StatusCancelled)
	c.CancelledAt = &now
	c.CancelReason = strings.TrimSpace(reason)
	return nil
}

// IsSettled vale quando paidAt e método estão presentes.
func IsSettled(c *models.Charge) bool {
	return c.PaidAt != nil && c.PaymentMethod != ""
}
