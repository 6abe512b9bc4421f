package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/httpresp"
	"github.com/depastori/clinica-psi/internal/middleware"
	ucEntitlement "github.com/depastori/clinica-psi/internal/usecase/entitlement"
)

// ======================================================
// HANDLER
// ======================================================

type PackageHandler struct {
	create  *ucEntitlement.CreatePackage
	consume *ucEntitlement.ConsumeSession
	update  *ucEntitlement.UpdatePackage
	cancel  *ucEntitlement.CancelPackage
	delete  *ucEntitlement.DeletePackage
	list    *ucEntitlement.ListPackages
	get     *ucEntitlement.GetPackage

	loc *time.Location
}

func NewPackageHandler(
	create *ucEntitlement.CreatePackage,
	consume *ucEntitlement.ConsumeSession,
	update *ucEntitlement.UpdatePackage,
	cancel *ucEntitlement.CancelPackage,
	delete *ucEntitlement.DeletePackage,
	list *ucEntitlement.ListPackages,
	get *ucEntitlement.GetPackage,
	loc *time.Location,
) *PackageHandler {
	return &PackageHandler{
		create:  create,
		consume: consume,
		update:  update,
		cancel:  cancel,
		delete:  delete,
		list:    list,
		get:     get,
		loc:     loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePackageRequest struct {
	PatientID     string          `json:"patient_id" binding:"required,uuid"`
	Name          string          `json:"name" binding:"required"`
	TotalSessions int             `json:"total_sessions" binding:"required,gt=0"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency"`
	PurchaseDate  *string         `json:"purchase_date"`
	ExpiryDate    *string         `json:"expiry_date"`
}

// UpdatePackageRequest: used_sessions e status não são aceitos aqui.
type UpdatePackageRequest struct {
	Name          *string          `json:"name"`
	TotalSessions *int             `json:"total_sessions"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	Currency      *string          `json:"currency"`
	ExpiryDate    *string          `json:"expiry_date"`
	ClearExpiry   bool             `json:"clear_expiry"`
}

// ======================================================
// CREATE
// ======================================================

func (h *PackageHandler) Create(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	purchase, err := optionalDate(req.PurchaseDate, h.loc)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	expiry, err := optionalDate(req.ExpiryDate, h.loc)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	p, err := h.create.Execute(c.Request.Context(), middleware.PractitionerID(c), ucEntitlement.CreatePackageInput{
		PatientID:     mustUUID(req.PatientID),
		Name:          req.Name,
		TotalSessions: req.TotalSessions,
		TotalAmount:   req.TotalAmount,
		Currency:      req.Currency,
		PurchaseDate:  purchase,
		ExpiryDate:    expiry,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, p)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *PackageHandler) List(c *gin.Context) {
	patientID, ok := queryUUID(c, "patient_id")
	if !ok {
		return
	}

	packages, err := h.list.Execute(
		c.Request.Context(),
		middleware.PractitionerID(c),
		patientID,
		queryBool(c, "active_only"),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, packages)
}

func (h *PackageHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "invalid_package_id", "Pacote inválido.")
	if !ok {
		return
	}

	p, err := h.get.Execute(c.Request.Context(), middleware.PractitionerID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// CONSUME
// ======================================================

func (h *PackageHandler) Consume(c *gin.Context) {
	id, ok := pathID(c, "invalid_package_id", "Pacote inválido.")
	if !ok {
		return
	}

	out, err := h.consume.Execute(c.Request.Context(), middleware.PractitionerID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// UPDATE / CANCEL / DELETE
// ======================================================

func (h *PackageHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "invalid_package_id", "Pacote inválido.")
	if !ok {
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	expiry, err := optionalDate(req.ExpiryDate, h.loc)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	p, err := h.update.Execute(c.Request.Context(), middleware.PractitionerID(c), id, ucEntitlement.UpdatePackageInput{
		Name:          req.Name,
		TotalSessions: req.TotalSessions,
		TotalAmount:   req.TotalAmount,
		Currency:      req.Currency,
		ExpiryDate:    expiry,
		ClearExpiry:   req.ClearExpiry,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PackageHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "invalid_package_id", "Pacote inválido.")
	if !ok {
		return
	}

	p, err := h.cancel.Execute(c.Request.Context(), middleware.PractitionerID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PackageHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "invalid_package_id", "Pacote inválido.")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.PractitionerID(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
