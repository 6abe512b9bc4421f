package entitlement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/audit"
	domain "github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/pricing"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/models"
)

// UpdatePackageInput não tem usedSessions nem status: esses só mudam por
// ConsumeSession e CancelPackage.
type UpdatePackageInput struct {
	Name          *string
	TotalSessions *int
	TotalAmount   *decimal.Decimal
	Currency      *string

	ExpiryDate  *time.Time
	ClearExpiry bool
}

type UpdatePackage struct {
	store ledger.Store
	audit *audit.Dispatcher
}

func NewUpdatePackage(store ledger.Store, audit *audit.Dispatcher) *UpdatePackage {
	return &UpdatePackage{store: store, audit: audit}
}

func (uc *UpdatePackage) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
	in UpdatePackageInput,
) (*models.Package, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	if in.Currency != nil {
		c, err := pricing.NormalizeCurrency(*in.Currency, "")
		if err != nil {
			return nil, err
		}
		in.Currency = &c
	}

	var p *models.Package

	err := uc.store.Transaction(ctx, func(tx ledger.Store) error {
		var err error
		p, err = tx.Packages().GetForUpdate(ctx, practitionerID, packageID)
		if err != nil {
			return ledger.NotFound(err, "package_not_found", "Pacote não encontrado.")
		}

		if domain.Status(p.Status) == domain.StatusCancelled {
			return httperr.ErrInvalidState("package_cancelled", "Pacotes cancelados não podem ser alterados.")
		}

		if in.Name != nil {
			if err := domain.Rename(p, *in.Name); err != nil {
				return err
			}
		}

		if in.TotalSessions != nil || in.TotalAmount != nil || in.Currency != nil {
			if err := domain.ChangeTotals(p, in.TotalSessions, in.TotalAmount, in.Currency); err != nil {
				return err
			}
		}

		if in.ClearExpiry {
			if err := domain.SetExpiry(p, nil); err != nil {
				return err
			}
		} else if in.ExpiryDate != nil {
			if err := domain.SetExpiry(p, in.ExpiryDate); err != nil {
				return err
			}
		}

		return tx.Packages().Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionPackageUpdated, audit.EntityPackage, p.ID, map[string]any{
		"total_sessions": p.TotalSessions,
		"used_sessions":  p.UsedSessions,
		"status":         p.Status,
	}))

	return p, nil
}
