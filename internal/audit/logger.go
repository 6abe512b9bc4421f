package audit

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/depastori/clinica-psi/internal/models"
)

// Logger grava os eventos na tabela audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Record(ev Event) error {
	entry := models.AuditLog{
		PractitionerID: ev.PractitionerID,
		ActorID:        ev.ActorID,
		Action:         ev.Action,
		Entity:         ev.Entity,
		EntityID:       ev.EntityID,
		Metadata:       marshalMetadata(ev.Metadata),
	}

	return l.db.Create(&entry).Error
}

// LogRecorder só escreve no log padrão; usado sem banco.
type LogRecorder struct{}

func (LogRecorder) Record(ev Event) error {
	log.Printf(
		"[audit] practitioner=%s action=%s entity=%s id=%s meta=%s",
		ev.PractitionerID, ev.Action, ev.Entity, idString(ev.EntityID), string(marshalMetadata(ev.Metadata)),
	)
	return nil
}

// marshalMetadata devolve nil (coluna NULL) quando não há o que gravar.
func marshalMetadata(metadata any) datatypes.JSON {
	if metadata == nil {
		return nil
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		log.Printf("[audit] metadata dropped: %v", err)
		return nil
	}
	return datatypes.JSON(b)
}
