package charge

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/models"
)

type ListFilter struct {
	PatientID *uuid.UUID
	DueFrom   *time.Time
	DueBefore *time.Time // exclusivo
}

// Repository: todo método recebe o profissional dono e filtra por ele.
// Registros de outro profissional se comportam como inexistentes.
type Repository interface {
	Create(ctx context.Context, c *models.Charge) error

	Get(
		ctx context.Context,
		practitionerID uuid.UUID,
		chargeID uuid.UUID,
	) (*models.Charge, error)

	// GetForUpdate trava a linha até o fim da transação.
	GetForUpdate(
		ctx context.Context,
		practitionerID uuid.UUID,
		chargeID uuid.UUID,
	) (*models.Charge, error)

	// mais recentes primeiro
	List(
		ctx context.Context,
		practitionerID uuid.UUID,
		filter ListFilter,
	) ([]models.Charge, error)

	Update(ctx context.Context, c *models.Charge) error

	// MarkOverdue só altera as que ainda estão pending e vencidas em now.
	MarkOverdue(
		ctx context.Context,
		practitionerID uuid.UUID,
		chargeIDs []uuid.UUID,
		now time.Time,
	) (int64, error)

	// SweepOverdue passa para overdue as pendentes vencidas de todos os
	// profissionais. Usado só pelo job agendado.
	SweepOverdue(ctx context.Context, now time.Time) (int64, error)

	Delete(
		ctx context.Context,
		practitionerID uuid.UUID,
		chargeID uuid.UUID,
	) error
}
