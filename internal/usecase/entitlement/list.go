package entitlement

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/models"
)

type ListPackages struct {
	store ledger.Store
}

func NewListPackages(store ledger.Store) *ListPackages {
	return &ListPackages{store: store}
}

func (uc *ListPackages) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	patientID *uuid.UUID,
	activeOnly bool,
) ([]models.Package, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	return uc.store.Packages().List(ctx, practitionerID, domain.ListFilter{
		PatientID:  patientID,
		ActiveOnly: activeOnly,
	})
}

type GetPackage struct {
	store ledger.Store
}

func NewGetPackage(store ledger.Store) *GetPackage {
	return &GetPackage{store: store}
}

func (uc *GetPackage) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
) (*models.Package, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	p, err := uc.store.Packages().Get(ctx, practitionerID, packageID)
	if err != nil {
		return nil, ledger.NotFound(err, "package_not_found", "Pacote não encontrado.")
	}
	return p, nil
}
