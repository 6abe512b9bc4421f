package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/httpresp"
	"github.com/depastori/clinica-psi/internal/middleware"
	"github.com/depastori/clinica-psi/internal/render"
	ucCharge "github.com/depastori/clinica-psi/internal/usecase/charge"
	"github.com/depastori/clinica-psi/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ChargeHandler struct {
	createManual    *ucCharge.CreateManualCharge
	createAutomatic *ucCharge.CreateAutomaticCharge
	calculate       *ucCharge.CalculateChargeAmount
	markPaid        *ucCharge.MarkChargePaid
	cancel          *ucCharge.CancelCharge
	delete          *ucCharge.DeleteCharge
	list            *ucCharge.ListCharges
	get             *ucCharge.GetCharge
	document        *ucCharge.RenderChargeDocument

	loc *time.Location
}

func NewChargeHandler(
	createManual *ucCharge.CreateManualCharge,
	createAutomatic *ucCharge.CreateAutomaticCharge,
	calculate *ucCharge.CalculateChargeAmount,
	markPaid *ucCharge.MarkChargePaid,
	cancel *ucCharge.CancelCharge,
	delete *ucCharge.DeleteCharge,
	list *ucCharge.ListCharges,
	get *ucCharge.GetCharge,
	document *ucCharge.RenderChargeDocument,
	loc *time.Location,
) *ChargeHandler {
	return &ChargeHandler{
		createManual:    createManual,
		createAutomatic: createAutomatic,
		calculate:       calculate,
		markPaid:        markPaid,
		cancel:          cancel,
		delete:          delete,
		list:            list,
		get:             get,
		document:        document,
		loc:             loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateManualChargeRequest struct {
	// id ou nome completo do paciente
	Patient        string          `json:"patient" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	DueDate        string          `json:"due_date" binding:"required"`
	PaymentOptions []string        `json:"payment_options"`
}

type CreateAutomaticChargeRequest struct {
	PatientID      string   `json:"patient_id" binding:"required,uuid"`
	AppointmentIDs []string `json:"appointment_ids" binding:"required,min=1"`
	Description    string   `json:"description"`
	DaysUntilDue   int      `json:"days_until_due" binding:"gte=0"`
	Currency       string   `json:"currency"`
}

type CalculateChargeRequest struct {
	PatientID      string   `json:"patient_id" binding:"required,uuid"`
	AppointmentIDs []string `json:"appointment_ids" binding:"required,min=1"`
	Currency       string   `json:"currency"`
}

type MarkPaidRequest struct {
	PaymentMethod string  `json:"payment_method" binding:"required"`
	PaymentDate   *string `json:"payment_date"`
}

type CancelChargeRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ChargeHandler) CreateManual(c *gin.Context) {
	var req CreateManualChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	due, err := validators.ParseDate(req.DueDate, h.loc)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	charge, err := h.createManual.Execute(c.Request.Context(), middleware.PractitionerID(c), ucCharge.CreateManualInput{
		PatientRef:     req.Patient,
		Description:    req.Description,
		Amount:         req.Amount,
		Currency:       req.Currency,
		DueDate:        due,
		PaymentOptions: req.PaymentOptions,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, charge)
}

func (h *ChargeHandler) CreateAutomatic(c *gin.Context) {
	var req CreateAutomaticChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ids, err := parseIDs(req.AppointmentIDs)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	charge, err := h.createAutomatic.Execute(c.Request.Context(), middleware.PractitionerID(c), ucCharge.CreateAutomaticInput{
		PatientID:      mustUUID(req.PatientID),
		AppointmentIDs: ids,
		Description:    req.Description,
		DaysUntilDue:   req.DaysUntilDue,
		Currency:       req.Currency,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, charge)
}

// ======================================================
// CALCULATE
// ======================================================

func (h *ChargeHandler) Calculate(c *gin.Context) {
	var req CalculateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ids, err := parseIDs(req.AppointmentIDs)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	quote, err := h.calculate.Execute(
		c.Request.Context(),
		middleware.PractitionerID(c),
		mustUUID(req.PatientID),
		ids,
		req.Currency,
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, quote)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ChargeHandler) List(c *gin.Context) {
	in, ok := h.listFilters(c)
	if !ok {
		return
	}

	items, err := h.list.Execute(c.Request.Context(), middleware.PractitionerID(c), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, items)
}

// Export devolve a mesma listagem como planilha.
func (h *ChargeHandler) Export(c *gin.Context) {
	in, ok := h.listFilters(c)
	if !ok {
		return
	}

	items, err := h.list.Execute(c.Request.Context(), middleware.PractitionerID(c), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	body, err := render.ChargesWorkbook(items, h.loc)
	if err != nil {
		httperr.Internal(c, "export_failed", "Erro ao gerar a planilha.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+render.WorkbookFilename(time.Now().In(h.loc))+`"`)
	c.Data(http.StatusOK, render.WorkbookContentType, body)
}

func (h *ChargeHandler) listFilters(c *gin.Context) (ucCharge.ListChargesInput, bool) {
	patientID, ok := queryUUID(c, "patient_id")
	if !ok {
		return ucCharge.ListChargesInput{}, false
	}
	from, ok := queryDate(c, "from", h.loc)
	if !ok {
		return ucCharge.ListChargesInput{}, false
	}
	to, ok := queryDate(c, "to", h.loc)
	if !ok {
		return ucCharge.ListChargesInput{}, false
	}
	// to inclui o dia inteiro
	if to != nil {
		end := to.AddDate(0, 0, 1)
		to = &end
	}

	return ucCharge.ListChargesInput{
		PatientID: patientID,
		Status:    c.Query("status"),
		DueFrom:   from,
		DueBefore: to,
	}, true
}

func (h *ChargeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "invalid_charge_id", "Cobrança inválida.")
	if !ok {
		return
	}

	detail, err := h.get.Execute(c.Request.Context(), middleware.PractitionerID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, detail)
}

func (h *ChargeHandler) Document(c *gin.Context) {
	id, ok := pathID(c, "invalid_charge_id", "Cobrança inválida.")
	if !ok {
		return
	}

	doc, err := h.document.Execute(c.Request.Context(), middleware.PractitionerID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if doc.ArchiveKey != "" {
		c.Header("X-Archive-Key", doc.ArchiveKey)
	}
	httpresp.HTML(c, doc.HTML)
}

// ======================================================
// PAY
// ======================================================

func (h *ChargeHandler) MarkPaid(c *gin.Context) {
	id, ok := pathID(c, "invalid_charge_id", "Cobrança inválida.")
	if !ok {
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	paidAt, err := optionalDate(req.PaymentDate, h.loc)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out, err := h.markPaid.Execute(c.Request.Context(), middleware.PractitionerID(c), id, ucCharge.MarkPaidInput{
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   paidAt,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CANCEL / DELETE
// ======================================================

func (h *ChargeHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "invalid_charge_id", "Cobrança inválida.")
	if !ok {
		return
	}

	// corpo é opcional
	var req CancelChargeRequest
	_ = c.ShouldBindJSON(&req)

	charge, err := h.cancel.Execute(c.Request.Context(), middleware.PractitionerID(c), id, req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, charge)
}

func (h *ChargeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "invalid_charge_id", "Cobrança inválida.")
	if !ok {
		return
	}

	err := h.delete.Execute(c.Request.Context(), middleware.PractitionerID(c), id, queryBool(c, "confirm"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
