package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Charge struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PractitionerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_charges_owner_sequence,priority:1" json:"practitioner_id"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`

	AppointmentIDs []uuid.UUID `gorm:"type:text;serializer:json" json:"appointment_ids"`

	Sequence int64  `gorm:"not null;uniqueIndex:idx_charges_owner_sequence,priority:2" json:"sequence"`
	Number   string `gorm:"size:20;not null" json:"number"`

	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency    string          `gorm:"size:3;not null" json:"currency"`
	DueDate     time.Time       `gorm:"not null;index" json:"due_date"`

	Status         string   `gorm:"size:20;not null;default:'pending'" json:"status"`
	IsManual       bool     `gorm:"not null;default:false" json:"is_manual"`
	PaymentOptions []string `gorm:"type:text;serializer:json" json:"payment_options"`

	PaidAt        *time.Time `json:"paid_at"`
	PaymentMethod string     `gorm:"size:30" json:"payment_method,omitempty"`

	CancelledAt  *time.Time `json:"cancelled_at"`
	CancelReason string     `gorm:"size:255" json:"cancel_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
