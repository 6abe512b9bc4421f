package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Atendimento agendado. Escrito pelo módulo de agenda; o financeiro só lê.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PractitionerID uuid.UUID `gorm:"type:uuid;not null;index" json:"practitioner_id"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`

	// YYYY-MM-DD e HH:MM, no fuso do consultório
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	DurationMinutes *int             `json:"duration_minutes"`
	Price           *decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`

	TreatmentType string `gorm:"size:50" json:"treatment_type"`
	SessionType   string `gorm:"size:50" json:"session_type"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
