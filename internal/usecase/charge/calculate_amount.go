package charge

import (
	"context"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/pricing"
)

// CalculateChargeAmount é a prévia do valor; não grava nada.
type CalculateChargeAmount struct {
	store ledger.Store
}

func NewCalculateChargeAmount(store ledger.Store) *CalculateChargeAmount {
	return &CalculateChargeAmount{store: store}
}

func (uc *CalculateChargeAmount) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	patientID uuid.UUID,
	appointmentIDs []uuid.UUID,
	currency string,
) (*pricing.Quote, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	cur, err := pricing.NormalizeCurrency(currency, pricing.CurrencyBRL)
	if err != nil {
		return nil, err
	}

	dir := uc.store.Directory()

	patient, err := dir.GetPatient(ctx, practitionerID, patientID)
	if err != nil {
		return nil, ledger.NotFound(err, "patient_not_found", "Paciente não encontrado.")
	}

	settings, err := dir.GetPaymentSettings(ctx, practitionerID)
	if err != nil {
		return nil, err
	}

	apps, err := dir.ListAppointments(ctx, practitionerID, appointmentIDs)
	if err != nil {
		return nil, err
	}

	rate := pricing.ResolveRate(cur, settings, patient)
	q := pricing.Calculate(apps, rate)
	q.Currency = cur

	return &q, nil
}
