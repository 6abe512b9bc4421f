package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/depastori/clinica-psi/internal/domain/directory"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/httpresp"
	"github.com/depastori/clinica-psi/internal/middleware"
)

const patientSearchLimit = 10

type PatientHandler struct {
	dir directory.Directory
}

func NewPatientHandler(dir directory.Directory) *PatientHandler {
	return &PatientHandler{dir: dir}
}

// ======================================================
// SEARCH PATIENTS
// ======================================================

// Search alimenta o autocomplete das telas de cobrança.
func (h *PatientHandler) Search(c *gin.Context) {
	practitionerID := middleware.PractitionerID(c)

	query := strings.TrimSpace(c.Query("query"))

	patients, err := h.dir.SearchPatients(c.Request.Context(), practitionerID, query, patientSearchLimit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Erro ao buscar pacientes.")
		return
	}

	httpresp.List(c, patients)
}
