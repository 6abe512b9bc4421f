package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/models"
)

type PackageGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*PackageGormRepository)(nil)

func NewPackageGormRepository(db *gorm.DB) *PackageGormRepository {
	return &PackageGormRepository{db: db}
}

func (r *PackageGormRepository) Create(ctx context.Context, p *models.Package) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PackageGormRepository) Get(
	ctx context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
) (*models.Package, error) {

	var p models.Package
	if err := r.db.WithContext(ctx).
		Where("id = ? AND practitioner_id = ?", packageID, practitionerID).
		First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PackageGormRepository) GetForUpdate(
	ctx context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
) (*models.Package, error) {

	var p models.Package
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND practitioner_id = ?", packageID, practitionerID).
		First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PackageGormRepository) List(
	ctx context.Context,
	practitionerID uuid.UUID,
	filter domain.ListFilter,
) ([]models.Package, error) {

	q := r.db.WithContext(ctx).
		Where("practitioner_id = ?", practitionerID)

	if filter.PatientID != nil {
		q = q.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.ActiveOnly {
		q = q.Where("status = ?", string(domain.StatusActive))
	}

	var packages []models.Package
	if err := q.
		Order("created_at DESC").
		Find(&packages).Error; err != nil {
		return nil, translate(err)
	}
	return packages, nil
}

func (r *PackageGormRepository) Update(ctx context.Context, p *models.Package) error {
	return affected(r.db.WithContext(ctx).
		Model(p).
		Where("practitioner_id = ?", p.PractitionerID).
		Select("*").
		Omit("id", "practitioner_id", "created_at").
		Updates(p))
}

func (r *PackageGormRepository) Delete(
	ctx context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND practitioner_id = ?", packageID, practitionerID).
		Delete(&models.Package{}))
}
