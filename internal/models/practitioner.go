package models

import (
	"time"

	"github.com/google/uuid"
)

// Profissional dono da conta. Todo registro financeiro pertence a um.
type Practitioner struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	FullName     string `gorm:"size:120;not null" json:"full_name"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`

	// registro profissional (CRP), aparece nos documentos
	Registration string `gorm:"size:30" json:"registration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
