package entitlement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/models"
)

// Validate confere 0 <= used <= total e os demais campos.
func Validate(p *models.Package) error {
	if strings.TrimSpace(p.Name) == "" {
		return httperr.ErrValidation("name_required", "Informe o nome do pacote.")
	}
	if p.TotalSessions <= 0 {
		return httperr.ErrValidation("invalid_total_sessions", "O pacote deve ter ao menos uma sessão.")
	}
	if p.UsedSessions < 0 || p.UsedSessions > p.TotalSessions {
		return httperr.ErrValidation(
			"total_below_used",
			"O total de sessões não pode ser menor que as sessões já utilizadas.",
		)
	}
	if p.TotalAmount.IsNegative() {
		return httperr.ErrValidation("invalid_amount", "O valor do pacote não pode ser negativo.")
	}
	if p.ExpiryDate != nil && p.ExpiryDate.Before(p.PurchaseDate) {
		return httperr.ErrValidation("invalid_expiry_date", "A validade deve ser posterior à data de compra.")
	}
	return nil
}

func Remaining(p *models.Package) int {
	return p.TotalSessions - p.UsedSessions
}

// IsExpired é só informativo: a validade não bloqueia consumo.
func IsExpired(p *models.Package, now time.Time) bool {
	return p.ExpiryDate != nil && p.ExpiryDate.Before(now)
}

// ===============================
// Operations
// ===============================

// Consume usa uma sessão. Ao atingir o total o pacote vira completed.
func Consume(p *models.Package) error {
	if Status(p.Status) == StatusCancelled {
		return httperr.ErrInvalidState("package_cancelled", "Este pacote foi cancelado.")
	}
	if p.UsedSessions >= p.TotalSessions {
		return httperr.ErrInvalidState("package_exhausted", "Todas as sessões deste pacote já foram utilizadas.")
	}

	p.UsedSessions++
	deriveStatus(p)
	return nil
}

func Rename(p *models.Package, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return httperr.ErrValidation("name_required", "Informe o nome do pacote.")
	}
	p.Name = name
	return nil
}

// ChangeTotals altera total de sessões, valor e moeda. Campos nil ficam como estão.
func ChangeTotals(
	p *models.Package,
	totalSessions *int,
	totalAmount *decimal.Decimal,
	currency *string,
) error {
	next := *p

	if totalSessions != nil {
		next.TotalSessions = *totalSessions
	}
	if totalAmount != nil {
		next.TotalAmount = *totalAmount
	}
	if currency != nil {
		next.Currency = *currency
	}

	if err := Validate(&next); err != nil {
		return err
	}

	deriveStatus(&next)
	*p = next
	return nil
}

func SetExpiry(p *models.Package, expiry *time.Time) error {
	next := *p
	next.ExpiryDate = expiry
	if err := Validate(&next); err != nil {
		return err
	}
	p.ExpiryDate = expiry
	return nil
}

func Cancel(p *models.Package) error {
	if Status(p.Status) == StatusCancelled {
		return httperr.ErrInvalidState("package_cancelled", "Este pacote já foi cancelado.")
	}
	p.Status = string(StatusCancelled)
	return nil
}

// cancelado não é recalculado
func deriveStatus(p *models.Package) {
	if Status(p.Status) == StatusCancelled {
		return
	}
	if p.UsedSessions == p.TotalSessions {
		p.Status = string(StatusCompleted)
		return
	}
	p.Status = string(StatusActive)
}
