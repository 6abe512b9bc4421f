package models

import (
	"time"

	"github.com/google/uuid"
)

// Contador atômico por profissional e tipo de documento (charge, receipt).
type LedgerSequence struct {
	PractitionerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind           string    `gorm:"size:20;primaryKey"`
	Value          int64     `gorm:"not null"`

	UpdatedAt time.Time
}
