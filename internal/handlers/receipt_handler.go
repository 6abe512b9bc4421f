package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/httpresp"
	"github.com/depastori/clinica-psi/internal/middleware"
	ucReceipt "github.com/depastori/clinica-psi/internal/usecase/receipt"
)

type ReceiptHandler struct {
	issue    *ucReceipt.IssueManualReceipt
	delete   *ucReceipt.DeleteReceipt
	list     *ucReceipt.ListReceipts
	get      *ucReceipt.GetReceipt
	document *ucReceipt.RenderReceiptDocument

	loc *time.Location
}

func NewReceiptHandler(
	issue *ucReceipt.IssueManualReceipt,
	delete *ucReceipt.DeleteReceipt,
	list *ucReceipt.ListReceipts,
	get *ucReceipt.GetReceipt,
	document *ucReceipt.RenderReceiptDocument,
	loc *time.Location,
) *ReceiptHandler {
	return &ReceiptHandler{
		issue:    issue,
		delete:   delete,
		list:     list,
		get:      get,
		document: document,
		loc:      loc,
	}
}

type IssueReceiptRequest struct {
	PatientID      string          `json:"patient_id" binding:"required,uuid"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Description    string          `json:"description" binding:"required"`
	PaymentMethod  string          `json:"payment_method" binding:"required"`
	AppointmentIDs []string        `json:"appointment_ids"`
	PaymentDate    *string         `json:"payment_date"`
	SessionDetails string          `json:"session_details"`
}

// ======================================================
// ISSUE
// ======================================================

func (h *ReceiptHandler) Issue(c *gin.Context) {
	var req IssueReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ids, err := parseIDs(req.AppointmentIDs)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	paidAt, err := optionalDate(req.PaymentDate, h.loc)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	receipt, err := h.issue.Execute(c.Request.Context(), middleware.PractitionerID(c), ucReceipt.IssueManualInput{
		PatientID:      mustUUID(req.PatientID),
		Amount:         req.Amount,
		Currency:       req.Currency,
		Description:    req.Description,
		PaymentMethod:  req.PaymentMethod,
		AppointmentIDs: ids,
		PaymentDate:    paidAt,
		SessionDetails: req.SessionDetails,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, receipt)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ReceiptHandler) List(c *gin.Context) {
	patientID, ok := queryUUID(c, "patient_id")
	if !ok {
		return
	}
	chargeID, ok := queryUUID(c, "charge_id")
	if !ok {
		return
	}

	receipts, err := h.list.Execute(c.Request.Context(), middleware.PractitionerID(c), ucReceipt.ListReceiptsInput{
		PatientID: patientID,
		ChargeID:  chargeID,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, receipts)
}

func (h *ReceiptHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "invalid_receipt_id", "Recibo inválido.")
	if !ok {
		return
	}

	receipt, err := h.get.Execute(c.Request.Context(), middleware.PractitionerID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, receipt)
}

func (h *ReceiptHandler) Document(c *gin.Context) {
	id, ok := pathID(c, "invalid_receipt_id", "Recibo inválido.")
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
// DELETE
// ======================================================

func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "invalid_receipt_id", "Recibo inválido.")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.PractitionerID(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
