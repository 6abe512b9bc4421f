package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/depastori/clinica-psi/internal/domain/directory"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/httpresp"
	"github.com/depastori/clinica-psi/internal/middleware"
)

type MeHandler struct {
	dir directory.Directory
}

func NewMeHandler(dir directory.Directory) *MeHandler {
	return &MeHandler{dir: dir}
}

// GetMe devolve o profissional e o que ele configurou para cobrança.
func (h *MeHandler) GetMe(c *gin.Context) {
	ctx := c.Request.Context()
	practitionerID := middleware.PractitionerID(c)

	practitioner, err := h.dir.GetPractitioner(ctx, practitionerID)
	if err != nil {
		httperr.FromError(c, ledger.NotFound(err, "practitioner_not_found", "Profissional não encontrado."))
		return
	}

	settings, err := h.dir.GetPaymentSettings(ctx, practitionerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	methods, err := h.dir.ListActivePaymentMethods(ctx, practitionerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if methods == nil {
		methods = []string{}
	}

	httpresp.OK(c, gin.H{
		"practitioner":     practitioner,
		"payment_settings": settings,
		"payment_methods":  methods,
	})
}
