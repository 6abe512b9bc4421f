package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/audit"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/httpresp"
	"github.com/depastori/clinica-psi/internal/middleware"
	"github.com/depastori/clinica-psi/internal/models"
)

// AuditLogReader é implementado por audit.Logger.
type AuditLogReader interface {
	List(ctx context.Context, practitionerID uuid.UUID, f audit.Filter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLogReader
	loc  *time.Location
}

func NewAuditLogsHandler(logs AuditLogReader, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

type AuditLogPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// List: ?action=&entity=&entity_id=&from=&to=&page=&limit=
// "to" inclui o dia inteiro.
func (h *AuditLogsHandler) List(c *gin.Context) {
	entityID, ok := queryUUID(c, "entity_id")
	if !ok {
		return
	}
	from, ok := queryDate(c, "from", h.loc)
	if !ok {
		return
	}
	to, ok := queryDate(c, "to", h.loc)
	if !ok {
		return
	}
	if to != nil {
		end := to.AddDate(0, 0, 1)
		to = &end
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultPageSize)))

	filter := audit.Filter{
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		EntityID: entityID,
		From:     from,
		To:       to,
		Page:     page,
		Limit:    limit,
	}.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), middleware.PractitionerID(c), filter)
	if err != nil {
		log.Printf("[audit][handler] list failed: %v", err)
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.OK(c, AuditLogPage{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Logs:  logs,
	})
}
