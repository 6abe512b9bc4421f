package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recibo é imutável: não existe update, apenas delete.
type Receipt struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PractitionerID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_receipts_owner_sequence,priority:1" json:"practitioner_id"`
	PatientID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	ChargeID       *uuid.UUID `gorm:"type:uuid;index" json:"charge_id"`

	AppointmentIDs []uuid.UUID `gorm:"type:text;serializer:json" json:"appointment_ids"`

	Sequence int64  `gorm:"not null;uniqueIndex:idx_receipts_owner_sequence,priority:2" json:"sequence"`
	Number   string `gorm:"size:20;not null" json:"number"`

	Description    string          `gorm:"type:text;not null" json:"description"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency       string          `gorm:"size:3;not null" json:"currency"`
	PaymentDate    time.Time       `gorm:"not null" json:"payment_date"`
	PaymentMethod  string          `gorm:"size:30;not null" json:"payment_method"`
	SessionDetails string          `gorm:"type:text" json:"session_details,omitempty"`

	IssuedAt time.Time `gorm:"not null" json:"issued_at"`
}
