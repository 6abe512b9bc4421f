package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/depastori/clinica-psi/internal/domain/receipt"
	"github.com/depastori/clinica-psi/internal/models"
)

type ReceiptGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*ReceiptGormRepository)(nil)

func NewReceiptGormRepository(db *gorm.DB) *ReceiptGormRepository {
	return &ReceiptGormRepository{db: db}
}

func (r *ReceiptGormRepository) Create(ctx context.Context, rc *models.Receipt) error {
	return translate(r.db.WithContext(ctx).Create(rc).Error)
}

func (r *ReceiptGormRepository) Get(
	ctx context.Context,
	practitionerID uuid.UUID,
	receiptID uuid.UUID,
) (*models.Receipt, error) {

	var rc models.Receipt
	if err := r.db.WithContext(ctx).
		Where("id = ? AND practitioner_id = ?", receiptID, practitionerID).
		First(&rc).Error; err != nil {
		return nil, translate(err)
	}
	return &rc, nil
}

func (r *ReceiptGormRepository) List(
	ctx context.Context,
	practitionerID uuid.UUID,
	patientID *uuid.UUID,
) ([]models.Receipt, error) {

	q := r.db.WithContext(ctx).
		Where("practitioner_id = ?", practitionerID)

	if patientID != nil {
		q = q.Where("patient_id = ?", *patientID)
	}

	var receipts []models.Receipt
	if err := q.
		Order("issued_at DESC, sequence DESC").
		Find(&receipts).Error; err != nil {
		return nil, translate(err)
	}
	return receipts, nil
}

func (r *ReceiptGormRepository) ListByCharge(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) ([]models.Receipt, error) {

	var receipts []models.Receipt
	if err := r.db.WithContext(ctx).
		Where("practitioner_id = ? AND charge_id = ?", practitionerID, chargeID).
		Order("issued_at DESC").
		Find(&receipts).Error; err != nil {
		return nil, translate(err)
	}
	return receipts, nil
}

func (r *ReceiptGormRepository) Delete(
	ctx context.Context,
	practitionerID uuid.UUID,
	receiptID uuid.UUID,
) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND practitioner_id = ?", receiptID, practitionerID).
		Delete(&models.Receipt{}))
}
