package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentSettings struct {
	PractitionerID uuid.UUID `gorm:"type:uuid;primaryKey" json:"practitioner_id"`

	SessionPriceBRL *decimal.Decimal `gorm:"type:numeric(12,2)" json:"session_price_brl"`
	SessionPriceEUR *decimal.Decimal `gorm:"type:numeric(12,2)" json:"session_price_eur"`

	PixKey              string `gorm:"size:120" json:"pix_key"`
	PaymentInstructions string `gorm:"type:text" json:"payment_instructions"`

	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentMethod struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PractitionerID uuid.UUID `gorm:"type:uuid;not null;index" json:"practitioner_id"`

	Name     string `gorm:"size:50;not null" json:"name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}
