package entitlement

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/audit"
	domain "github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/pricing"
	"github.com/depastori/clinica-psi/internal/models"
	"github.com/depastori/clinica-psi/internal/timezone"
)

type CreatePackageInput struct {
	PatientID     uuid.UUID
	Name          string
	TotalSessions int
	TotalAmount   decimal.Decimal
	Currency      string
	PurchaseDate  *time.Time
	ExpiryDate    *time.Time
}

type CreatePackage struct {
	store ledger.Store
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewCreatePackage(
	store ledger.Store,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CreatePackage {
	return &CreatePackage{
		store: store,
		audit: audit,
		clock: clock,
	}
}

func (uc *CreatePackage) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	in CreatePackageInput,
) (*models.Package, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	patient, err := uc.store.Directory().GetPatient(ctx, practitionerID, in.PatientID)
	if err != nil {
		return nil, ledger.NotFound(err, "patient_not_found", "Paciente não encontrado.")
	}

	currency, err := pricing.NormalizeCurrency(in.Currency, pricing.PatientCurrency(patient))
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	purchase := now
	if in.PurchaseDate != nil {
		purchase = *in.PurchaseDate
	}

	p := &models.Package{
		ID:             uuid.New(),
		PractitionerID: practitionerID,
		PatientID:      patient.ID,
		Name:           strings.TrimSpace(in.Name),
		TotalSessions:  in.TotalSessions,
		UsedSessions:   0,
		TotalAmount:    in.TotalAmount,
		Currency:       currency,
		Status:         string(domain.InitialStatus()),
		PurchaseDate:   purchase,
		ExpiryDate:     in.ExpiryDate,
		CreatedAt:      now,
	}

	if err := domain.Validate(p); err != nil {
		return nil, err
	}

	if err := uc.store.Packages().Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionPackageCreated, audit.EntityPackage, p.ID, map[string]any{
		"name":           p.Name,
		"total_sessions": p.TotalSessions,
	}))

	return p, nil
}
