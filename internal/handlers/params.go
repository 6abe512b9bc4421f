package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/validators"
)

// --------------------------------------------------
// Path / query
// --------------------------------------------------

// pathID lê :id. Escreve 400 e devolve false se não for uuid.
func pathID(c *gin.Context, code, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, code, message)
		return uuid.Nil, false
	}
	return id, true
}

func queryUUID(c *gin.Context, key string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+key, "Identificador inválido.")
		return nil, false
	}
	return &id, true
}

func queryDate(c *gin.Context, key string, loc *time.Location) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	t, err := validators.ParseDate(raw, loc)
	if err != nil {
		httperr.FromError(c, err)
		return nil, false
	}
	return &t, true
}

func queryBool(c *gin.Context, key string) bool {
	v, _ := strconv.ParseBool(c.Query(key))
	return v
}

// --------------------------------------------------
// Body
// --------------------------------------------------

// optionalDate converte um campo de data opcional do corpo.
func optionalDate(raw *string, loc *time.Location) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := validators.ParseDate(*raw, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			return nil, httperr.ErrValidation("invalid_appointment_id", "Identificador de sessão inválido.")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// mustUUID só é usado depois do binding "uuid" ter validado o campo.
func mustUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}
