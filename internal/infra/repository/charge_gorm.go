package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/models"
)

type ChargeGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*ChargeGormRepository)(nil)

func NewChargeGormRepository(db *gorm.DB) *ChargeGormRepository {
	return &ChargeGormRepository{db: db}
}

func (r *ChargeGormRepository) Create(ctx context.Context, c *models.Charge) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *ChargeGormRepository) Get(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) (*models.Charge, error) {

	var c models.Charge
	if err := r.db.WithContext(ctx).
		Where("id = ? AND practitioner_id = ?", chargeID, practitionerID).
		First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *ChargeGormRepository) GetForUpdate(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) (*models.Charge, error) {

	var c models.Charge
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND practitioner_id = ?", chargeID, practitionerID).
		First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *ChargeGormRepository) List(
	ctx context.Context,
	practitionerID uuid.UUID,
	filter domain.ListFilter,
) ([]models.Charge, error) {

	q := r.db.WithContext(ctx).
		Where("practitioner_id = ?", practitionerID)

	if filter.PatientID != nil {
		q = q.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.DueFrom != nil {
		q = q.Where("due_date >= ?", *filter.DueFrom)
	}
	if filter.DueBefore != nil {
		q = q.Where("due_date < ?", *filter.DueBefore)
	}

	var charges []models.Charge
	if err := q.
		Order("created_at DESC, sequence DESC").
		Find(&charges).Error; err != nil {
		return nil, translate(err)
	}
	return charges, nil
}

func (r *ChargeGormRepository) Update(ctx context.Context, c *models.Charge) error {
	return affected(r.db.WithContext(ctx).
		Model(c).
		Where("practitioner_id = ?", c.PractitionerID).
		Select("*").
		Omit("id", "practitioner_id", "created_at").
		Updates(c))
}

// --------------------------------------------------
// Overdue (idempotente)
// --------------------------------------------------

func (r *ChargeGormRepository) MarkOverdue(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeIDs []uuid.UUID,
	now time.Time,
) (int64, error) {

	if len(chargeIDs) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Charge{}).
		Where("practitioner_id = ? AND id IN ?", practitionerID, chargeIDs).
		Where("status = ? AND due_date < ?", string(domain.StatusPending), now).
		Updates(map[string]any{
			"status":     string(domain.StatusOverdue),
			"updated_at": now,
		})

	return res.RowsAffected, translate(res.Error)
}

func (r *ChargeGormRepository) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Charge{}).
		Where("status = ? AND due_date < ?", string(domain.StatusPending), now).
		Updates(map[string]any{
			"status":     string(domain.StatusOverdue),
			"updated_at": now,
		})

	return res.RowsAffected, translate(res.Error)
}

func (r *ChargeGormRepository) Delete(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND practitioner_id = ?", chargeID, practitionerID).
		Delete(&models.Charge{}))
}
