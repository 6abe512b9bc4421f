package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/depastori/clinica-psi/internal/domain/sequence"
	"github.com/depastori/clinica-psi/internal/models"
)

type SequenceGormAllocator struct {
	db *gorm.DB
}

var _ sequence.Allocator = (*SequenceGormAllocator)(nil)

func NewSequenceGormAllocator(db *gorm.DB) *SequenceGormAllocator {
	return &SequenceGormAllocator{db: db}
}

// Next incrementa o contador num único comando. A linha fica travada até o
// fim da transação corrente, então criações concorrentes do mesmo
// profissional são serializadas.
func (a *SequenceGormAllocator) Next(
	ctx context.Context,
	practitionerID uuid.UUID,
	kind sequence.Kind,
) (int64, error) {

	var value int64
	err := a.db.WithContext(ctx).Raw(`
		INSERT INTO ledger_sequences (practitioner_id, kind, value, updated_at)
		VALUES (?, ?, 1, NOW())
		ON CONFLICT (practitioner_id, kind)
		DO UPDATE SET value = ledger_sequences.value + 1, updated_at = NOW()
		RETURNING value
	`, practitionerID, string(kind)).Scan(&value).Error
	if err != nil {
		return 0, translate(err)
	}

	return value, nil
}

// SequenceFloor lê o maior número gravado direto das tabelas.
type SequenceFloor struct {
	db *gorm.DB
}

var _ sequence.Floor = (*SequenceFloor)(nil)

func NewSequenceFloor(db *gorm.DB) *SequenceFloor {
	return &SequenceFloor{db: db}
}

func (f *SequenceFloor) Floor(
	ctx context.Context,
	practitionerID uuid.UUID,
	kind sequence.Kind,
) (int64, error) {

	var model any
	switch kind {
	case sequence.KindCharge:
		model = &models.Charge{}
	case sequence.KindReceipt:
		model = &models.Receipt{}
	default:
		return 0, nil
	}

	var top int64
	err := f.db.WithContext(ctx).
		Model(model).
		Where("practitioner_id = ?", practitionerID).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&top).Error
	if err != nil {
		return 0, translate(err)
	}
	return top, nil
}
