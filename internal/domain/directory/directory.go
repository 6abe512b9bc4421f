package directory

import (
	"context"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/models"
)

//go:generate mockgen -source=directory.go -destination=mocks/mock_directory.go -package=mocks

// Directory é a leitura dos cadastros externos ao financeiro
// (profissional, pacientes, agenda, configurações de pagamento).
// Toda busca filtra pelo profissional dono.
type Directory interface {
	GetPractitioner(
		ctx context.Context,
		practitionerID uuid.UUID,
	) (*models.Practitioner, error)

	GetPatient(
		ctx context.Context,
		practitionerID uuid.UUID,
		patientID uuid.UUID,
	) (*models.Patient, error)

	// nome exato, sem diferenciar maiúsculas
	FindPatientsByName(
		ctx context.Context,
		practitionerID uuid.UUID,
		name string,
	) ([]models.Patient, error)

	SearchPatients(
		ctx context.Context,
		practitionerID uuid.UUID,
		term string,
		limit int,
	) ([]models.Patient, error)

	// ids que não existem ou são de outro profissional são omitidos
	ListAppointments(
		ctx context.Context,
		practitionerID uuid.UUID,
		ids []uuid.UUID,
	) ([]models.Appointment, error)

	// nil, nil quando o profissional ainda não configurou
	GetPaymentSettings(
		ctx context.Context,
		practitionerID uuid.UUID,
	) (*models.PaymentSettings, error)

	ListActivePaymentMethods(
		ctx context.Context,
		practitionerID uuid.UUID,
	) ([]string, error)
}
