package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Filter da trilha de auditoria. To é exclusivo.
type Filter struct {
	Action   string
	Entity   string
	EntityID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

// Normalize aplica os limites de paginação.
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxPageSize {
		f.Limit = DefaultPageSize
	}
	return f
}

// List devolve uma página da trilha do profissional, mais recentes primeiro.
func (l *Logger) List(
	ctx context.Context,
	practitionerID uuid.UUID,
	f Filter,
) ([]models.AuditLog, int64, error) {

	f = f.Normalize()

	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("practitioner_id = ?", practitionerID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID != nil {
		q = q.Where("entity_id = ?", *f.EntityID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]models.AuditLog, 0)
	err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error

	return logs, total, err
}
