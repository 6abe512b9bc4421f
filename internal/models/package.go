package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pacote pré-pago de sessões.
type Package struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PractitionerID uuid.UUID `gorm:"type:uuid;not null;index" json:"practitioner_id"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`

	Name          string          `gorm:"size:120;not null" json:"name"`
	TotalSessions int             `gorm:"not null" json:"total_sessions"`
	UsedSessions  int             `gorm:"not null;default:0" json:"used_sessions"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Currency      string          `gorm:"size:3;not null" json:"currency"`

	Status       string     `gorm:"size:20;not null;default:'active'" json:"status"`
	PurchaseDate time.Time  `gorm:"not null" json:"purchase_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
