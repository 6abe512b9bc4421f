package charge

import (
	"time"

	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/models"
)

// ===============================
// Charge Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusOverdue   Status = "overdue"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusOverdue, StatusPaid, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// ===============================
// Transitions
// ===============================

// CanPay: pending e overdue podem ser pagas.
func CanPay(current Status) error {
	switch current {
	case StatusPending, StatusOverdue:
		return nil
	case StatusPaid:
		return httperr.ErrInvalidState("charge_already_paid", "Esta cobrança já foi paga.")
	default:
		return httperr.ErrInvalidState("charge_cancelled", "Cobranças canceladas não podem ser pagas.")
	}
}

func CanCancel(current Status) error {
	switch current {
	case StatusPending, StatusOverdue:
		return nil
	case StatusPaid:
		return httperr.ErrInvalidState("charge_already_paid", "Cobranças pagas não podem ser canceladas.")
	default:
		return httperr.ErrInvalidState("charge_already_cancelled", "Esta cobrança já foi cancelada.")
	}
}

// CanDelete: cobrança paga fica retida para sempre.
func CanDelete(current Status) error {
	if current == StatusPaid {
		return httperr.ErrInvalidState(
			"charge_paid_retained",
			"Cobranças pagas são mantidas permanentemente. Apenas cobranças pendentes ou vencidas podem ser canceladas.",
		)
	}
	return nil
}

// ===============================
// Overdue (lazy)
// ===============================

// IsStale indica uma cobrança pendente com vencimento no passado.
func IsStale(c models.Charge, now time.Time) bool {
	return Status(c.Status) == StatusPending && c.DueDate.Before(now)
}

// Reconcile devolve a cobrança com o status derivado em now.
// Idempotente: aplicar duas vezes dá o mesmo resultado, e overdue nunca volta a pending.
func Reconcile(c models.Charge, now time.Time) models.Charge {
	if IsStale(c, now) {
		c.Status = string(StatusOverdue)
	}
	return c
}
