package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/config"
	"github.com/depastori/clinica-psi/internal/handlers"
	"github.com/depastori/clinica-psi/internal/httpresp"
	"github.com/depastori/clinica-psi/internal/infra/memory"
	"github.com/depastori/clinica-psi/internal/models"
	"github.com/depastori/clinica-psi/internal/render"
	"github.com/depastori/clinica-psi/internal/timezone"
)

type apiFixture struct {
	router  *gin.Engine
	token   string
	owner   uuid.UUID
	patient models.Patient
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		Timezone:       "America/Sao_Paulo",
		NumberRetries:  3,
		DefaultDueDays: 7,
	}

	store := memory.New()
	owner := uuid.New()
	store.AddPractitioner(models.Practitioner{ID: owner, FullName: "Dra. Helena Prado", Email: "helena@clinica.test"})
	patient := models.Patient{ID: uuid.New(), PractitionerID: owner, FullName: "Ana Souza", Currency: "BRL"}
	store.AddPatient(patient)
	store.AddPaymentMethod(models.PaymentMethod{ID: uuid.New(), PractitionerID: owner, Name: "pix", IsActive: true})

	r := gin.New()
	RegisterRoutes(r, cfg, Deps{
		Store: store,
		Clock: timezone.Fixed(time.Date(2025, 3, 20, 13, 0, 0, 0, time.UTC)),
	})

	// exp é validado contra o relógio real
	token, err := handlers.GenerateToken(cfg.JWTSecret, owner, time.Now())
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	return &apiFixture{router: r, token: token, owner: owner, patient: patient}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

type errorBody struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type chargeBody struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"number"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
}

func TestChargeLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/me/charges/manual", map[string]any{
		"patient":     "ana souza",
		"description": "Sessões de março",
		"amount":      "300",
		"due_date":    "2025-03-27",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decode[chargeBody](t, w)
	if created.Number != "COB-0001" || created.Status != "pending" || !created.Amount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected charge %+v", created)
	}

	w = f.do(t, http.MethodGet, "/api/me/charges?status=pending", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if list := decode[httpresp.ListResponse[chargeBody]](t, w); list.Total != 1 || list.Data[0].ID != created.ID {
		t.Fatalf("unexpected list %+v", list)
	}

	w = f.do(t, http.MethodPatch, "/api/me/charges/"+created.ID.String()+"/pay", map[string]any{
		"payment_method": "PIX",
		"payment_date":   "2025-03-21",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("pay: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	paid := decode[struct {
		Charge  chargeBody `json:"charge"`
		Receipt struct {
			Number   string    `json:"number"`
			ChargeID uuid.UUID `json:"charge_id"`
		} `json:"receipt"`
	}](t, w)
	if paid.Charge.Status != "paid" || paid.Receipt.Number != "REC-0001" || paid.Receipt.ChargeID != created.ID {
		t.Fatalf("unexpected pay response %+v", paid)
	}

	w = f.do(t, http.MethodPatch, "/api/me/charges/"+created.ID.String()+"/pay", map[string]any{"payment_method": "pix"})
	if w.Code != http.StatusConflict {
		t.Fatalf("second pay: expected 409, got %d", w.Code)
	}
	if body := decode[errorBody](t, w); body.Code != "charge_already_paid" {
		t.Fatalf("unexpected error %+v", body)
	}

	w = f.do(t, http.MethodPatch, "/api/me/charges/"+created.ID.String()+"/cancel", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("cancel paid: expected 409, got %d", w.Code)
	}

	w = f.do(t, http.MethodDelete, "/api/me/charges/"+created.ID.String()+"?confirm=true", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("delete paid: expected 409, got %d", w.Code)
	}

	w = f.do(t, http.MethodGet, "/api/me/receipts", nil)
	if list := decode[httpresp.ListResponse[map[string]any]](t, w); list.Total != 1 {
		t.Fatalf("expected one receipt, got %d", list.Total)
	}

	w = f.do(t, http.MethodGet, "/api/me/receipts?charge_id="+created.ID.String(), nil)
	if list := decode[httpresp.ListResponse[map[string]any]](t, w); list.Total != 1 {
		t.Fatalf("expected the charge receipt, got %d", list.Total)
	}
	w = f.do(t, http.MethodGet, "/api/me/receipts?charge_id="+uuid.NewString(), nil)
	if list := decode[httpresp.ListResponse[map[string]any]](t, w); list.Total != 0 {
		t.Fatalf("expected no receipts for unknown charge, got %d", list.Total)
	}
	w = f.do(t, http.MethodGet, "/api/me/receipts?charge_id=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid charge_id: expected 400, got %d", w.Code)
	}

	w = f.do(t, http.MethodGet, "/api/me/charges/"+created.ID.String()+"/document", nil)
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("document: got %d %q", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "COB-0001") {
		t.Fatalf("document without number: %s", w.Body.String())
	}
}

func TestChargeRequestErrors(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"invalid json", http.MethodPost, "/api/me/charges/manual", "{", http.StatusBadRequest, "invalid_request"},
		{"missing description", http.MethodPost, "/api/me/charges/manual", map[string]any{"patient": "Ana Souza", "due_date": "2025-03-27"}, http.StatusBadRequest, "invalid_request"},
		{"invalid due date", http.MethodPost, "/api/me/charges/manual", map[string]any{"patient": "Ana Souza", "description": "x", "amount": "10", "due_date": "27/03/2025"}, http.StatusBadRequest, "invalid_date"},
		{"unknown patient", http.MethodPost, "/api/me/charges/manual", map[string]any{"patient": "Bruno", "description": "x", "amount": "10", "due_date": "2025-03-27"}, http.StatusBadRequest, "patient_not_found"},
		{"invalid charge id", http.MethodGet, "/api/me/charges/abc", nil, http.StatusBadRequest, "invalid_charge_id"},
		{"unknown charge", http.MethodGet, "/api/me/charges/" + uuid.NewString(), nil, http.StatusNotFound, "charge_not_found"},
		{"invalid appointment id", http.MethodPost, "/api/me/charges/calculate", map[string]any{"patient_id": f.patient.ID.String(), "appointment_ids": []string{"x"}}, http.StatusBadRequest, "invalid_appointment_id"},
		{"invalid list filter", http.MethodGet, "/api/me/charges?patient_id=x", nil, http.StatusBadRequest, "invalid_patient_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if body := decode[errorBody](t, w); body.Code != tt.code {
				t.Fatalf("expected %s, got %+v", tt.code, body)
			}
		})
	}
}

func TestDeleteChargeRequiresConfirmation(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/me/charges/manual", map[string]any{
		"patient":     f.patient.ID.String(),
		"description": "Avaliação",
		"amount":      "150.50",
		"due_date":    "2025-04-01",
	})
	created := decode[chargeBody](t, w)

	w = f.do(t, http.MethodDelete, "/api/me/charges/"+created.ID.String(), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without confirm, got %d", w.Code)
	}

	w = f.do(t, http.MethodDelete, "/api/me/charges/"+created.ID.String()+"?confirm=true", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}

	w = f.do(t, http.MethodGet, "/api/me/charges/"+created.ID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestPackageFlowOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/me/packages", map[string]any{
		"patient_id":     f.patient.ID.String(),
		"name":           "Pacote 2 sessões",
		"total_sessions": 2,
		"total_amount":   "400",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	pkg := decode[struct {
		ID uuid.UUID `json:"id"`
	}](t, w)
	base := "/api/me/packages/" + pkg.ID.String()

	for i := 1; i <= 2; i++ {
		w = f.do(t, http.MethodPost, base+"/consume", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("consume %d: expected 200, got %d", i, w.Code)
		}
	}
	if out := decode[map[string]any](t, w); out["status"] != "completed" {
		t.Fatalf("expected completed, got %v", out)
	}

	w = f.do(t, http.MethodPost, base+"/consume", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("exhausted: expected 409, got %d", w.Code)
	}

	w = f.do(t, http.MethodPatch, base, map[string]any{"total_sessions": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("below used: expected 400, got %d", w.Code)
	}
	if body := decode[errorBody](t, w); body.Code != "total_below_used" {
		t.Fatalf("unexpected error %+v", body)
	}

	w = f.do(t, http.MethodGet, "/api/me/packages?active_only=true", nil)
	if list := decode[httpresp.ListResponse[map[string]any]](t, w); list.Total != 0 || list.Data == nil {
		t.Fatalf("expected an empty list, got %+v", list)
	}
}

func TestMeAndAuth(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/me", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	me := decode[struct {
		Practitioner struct {
			ID uuid.UUID `json:"id"`
		} `json:"practitioner"`
		PaymentMethods []string `json:"payment_methods"`
	}](t, w)
	if me.Practitioner.ID != f.owner || len(me.PaymentMethods) != 1 || me.PaymentMethods[0] != "pix" {
		t.Fatalf("unexpected me %+v", me)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/me/charges", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestExportCharges(t *testing.T) {
	f := newAPIFixture(t)

	f.do(t, http.MethodPost, "/api/me/charges/manual", map[string]any{
		"patient":     "Ana Souza",
		"description": "Sessões de março",
		"amount":      "300",
		"due_date":    "2025-03-27",
	})

	w := f.do(t, http.MethodGet, "/api/me/charges/export?status=pending", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != render.WorkbookContentType {
		t.Fatalf("unexpected content type %q", got)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), ".xlsx") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
	// xlsx é um zip
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatal("body is not a workbook")
	}

	w = f.do(t, http.MethodGet, "/api/me/charges/export?status=unknown", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", w.Code)
	}
}

func TestListChargesDueRangeIncludesLastDay(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/me/charges/manual", map[string]any{
		"patient":     f.patient.ID.String(),
		"description": "Sessões de março",
		"amount":      "150",
		"due_date":    "2025-03-27T18:30:00-03:00",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	cases := []struct {
		query string
		want  int
	}{
		{"from=2025-03-27&to=2025-03-27", 1},
		{"to=2025-03-27", 1},
		{"from=2025-03-20&to=2025-03-26", 0},
		{"from=2025-03-28", 0},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			w := f.do(t, http.MethodGet, "/api/me/charges?"+tc.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if list := decode[httpresp.ListResponse[chargeBody]](t, w); list.Total != tc.want {
				t.Fatalf("expected %d charge(s), got %d", tc.want, list.Total)
			}
		})
	}
}
