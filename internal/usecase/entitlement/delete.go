package entitlement

import (
	"context"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/audit"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
)

// DeletePackage apaga em qualquer status.
type DeletePackage struct {
	store ledger.Store
	audit *audit.Dispatcher
}

func NewDeletePackage(store ledger.Store, audit *audit.Dispatcher) *DeletePackage {
	return &DeletePackage{store: store, audit: audit}
}

func (uc *DeletePackage) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
) error {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return err
	}

	if err := uc.store.Packages().Delete(ctx, practitionerID, packageID); err != nil {
		return ledger.NotFound(err, "package_not_found", "Pacote não encontrado.")
	}

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionPackageDeleted, audit.EntityPackage, packageID, nil))

	return nil
}
