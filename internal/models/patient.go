package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Patient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PractitionerID uuid.UUID `gorm:"type:uuid;not null;index" json:"practitioner_id"`

	FullName string `gorm:"size:120;not null" json:"full_name"`
	Email    string `gorm:"size:120" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`

	SessionPrice *decimal.Decimal `gorm:"type:numeric(12,2)" json:"session_price"`
	Currency     string           `gorm:"size:3" json:"currency"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
