package entitlement

import (
	"context"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/models"
)

type ListFilter struct {
	PatientID  *uuid.UUID
	ActiveOnly bool
}

type Repository interface {
	Create(ctx context.Context, p *models.Package) error

	Get(
		ctx context.Context,
		practitionerID uuid.UUID,
		packageID uuid.UUID,
	) (*models.Package, error)

	GetForUpdate(
		ctx context.Context,
		practitionerID uuid.UUID,
		packageID uuid.UUID,
	) (*models.Package, error)

	// mais recentes primeiro
	List(
		ctx context.Context,
		practitionerID uuid.UUID,
		filter ListFilter,
	) ([]models.Package, error)

	Update(ctx context.Context, p *models.Package) error

	Delete(
		ctx context.Context,
		practitionerID uuid.UUID,
		packageID uuid.UUID,
	) error
}
