package charge

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/audit"
	domain "github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/pricing"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/models"
	"github.com/depastori/clinica-psi/internal/timezone"
)

const DefaultDaysUntilDue = 7

type CreateAutomaticInput struct {
	PatientID      uuid.UUID
	AppointmentIDs []uuid.UUID
	Description    string
	DaysUntilDue   int
	Currency       string
}

// CreateAutomaticCharge cobra um conjunto de atendimentos do paciente.
type CreateAutomaticCharge struct {
	store          ledger.Store
	audit          *audit.Dispatcher
	clock          timezone.Clock
	retries        int
	defaultDueDays int
}

func NewCreateAutomaticCharge(
	store ledger.Store,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	retries int,
	defaultDueDays int,
) *CreateAutomaticCharge {
	if defaultDueDays <= 0 {
		defaultDueDays = DefaultDaysUntilDue
	}
	return &CreateAutomaticCharge{
		store:          store,
		audit:          audit,
		clock:          clock,
		retries:        retries,
		defaultDueDays: defaultDueDays,
	}
}

func (uc *CreateAutomaticCharge) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	in CreateAutomaticInput,
) (*models.Charge, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	if len(in.AppointmentIDs) == 0 {
		return nil, httperr.ErrValidation("appointments_required", "Selecione ao menos um atendimento.")
	}

	dir := uc.store.Directory()

	patient, err := dir.GetPatient(ctx, practitionerID, in.PatientID)
	if err != nil {
		return nil, ledger.NotFound(err, "patient_not_found", "Paciente não encontrado.")
	}

	currency, err := pricing.NormalizeCurrency(in.Currency, pricing.PatientCurrency(patient))
	if err != nil {
		return nil, err
	}

	apps, err := dir.ListAppointments(ctx, practitionerID, in.AppointmentIDs)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Valor: soma por atendimento do paciente
	// --------------------------------------------------

	total := decimal.Zero
	billed := make([]uuid.UUID, 0, len(apps))
	dates := make([]string, 0, len(apps))

	for _, ap := range apps {
		if ap.PatientID != patient.ID {
			continue
		}
		total = total.Add(pricing.SessionPrice(ap, patient))
		billed = append(billed, ap.ID)
		dates = append(dates, pricing.FormatDate(ap.Date))
	}

	if !total.GreaterThan(decimal.Zero) {
		return nil, httperr.ErrValidation(
			"no_billable_appointments",
			"Nenhum atendimento faturável encontrado para este paciente.",
		)
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = "Cobrança referente às sessões dos dias: " + strings.Join(dates, ", ")
	}

	days := in.DaysUntilDue
	if days <= 0 {
		days = uc.defaultDueDays
	}

	options, err := dir.ListActivePaymentMethods(ctx, practitionerID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	c := &models.Charge{
		PractitionerID: practitionerID,
		PatientID:      patient.ID,
		AppointmentIDs: billed,
		Description:    description,
		Amount:         pricing.RoundMoney(total),
		Currency:       currency,
		DueDate:        now.Add(time.Duration(days) * 24 * time.Hour),
		Status:         string(domain.InitialStatus()),
		IsManual:       false,
		PaymentOptions: options,
	}

	if err := domain.Validate(c); err != nil {
		return nil, err
	}

	if err := insertCharge(ctx, uc.store, uc.retries, c, now); err != nil {
		return nil, err
	}

	log.Printf("[charge][usecase] automatic charge %s: %d sessions, %s %s", c.Number, len(billed), c.Currency, c.Amount)

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionChargeCreated, audit.EntityCharge, c.ID, map[string]any{
		"number":       c.Number,
		"amount":       c.Amount.String(),
		"appointments": len(billed),
	}))

	return c, nil
}
