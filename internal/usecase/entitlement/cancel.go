package entitlement

import (
	"context"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/audit"
	domain "github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/models"
)

type CancelPackage struct {
	store ledger.Store
	audit *audit.Dispatcher
}

func NewCancelPackage(store ledger.Store, audit *audit.Dispatcher) *CancelPackage {
	return &CancelPackage{store: store, audit: audit}
}

func (uc *CancelPackage) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
) (*models.Package, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	var p *models.Package

	err := uc.store.Transaction(ctx, func(tx ledger.Store) error {
		var err error
		p, err = tx.Packages().GetForUpdate(ctx, practitionerID, packageID)
		if err != nil {
			return ledger.NotFound(err, "package_not_found", "Pacote não encontrado.")
		}

		if err := domain.Cancel(p); err != nil {
			return err
		}
		return tx.Packages().Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionPackageCancelled, audit.EntityPackage, p.ID, nil))

	return p, nil
}
