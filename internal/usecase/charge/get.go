package charge

import (
	"context"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/pricing"
	"github.com/depastori/clinica-psi/internal/dto"
	"github.com/depastori/clinica-psi/internal/models"
	"github.com/depastori/clinica-psi/internal/timezone"
)

type GetCharge struct {
	store ledger.Store
	clock timezone.Clock
}

func NewGetCharge(store ledger.Store, clock timezone.Clock) *GetCharge {
	return &GetCharge{store: store, clock: clock}
}

func (uc *GetCharge) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) (*dto.ChargeDetail, error) {

	c, err := uc.load(ctx, practitionerID, chargeID)
	if err != nil {
		return nil, err
	}

	sessions := make([]pricing.SessionDetail, 0, len(c.AppointmentIDs))
	if len(c.AppointmentIDs) > 0 {
		apps, err := uc.store.Directory().ListAppointments(ctx, practitionerID, c.AppointmentIDs)
		if err != nil {
			return nil, err
		}
		for _, ap := range apps {
			sessions = append(sessions, pricing.Describe(ap))
		}
	}

	return &dto.ChargeDetail{
		Charge:      *c,
		PatientName: patientName(ctx, uc.store, practitionerID, c.PatientID),
		Sessions:    sessions,
	}, nil
}

// load busca e reconcilia uma cobrança.
func (uc *GetCharge) load(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) (*models.Charge, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	c, err := uc.store.Charges().Get(ctx, practitionerID, chargeID)
	if err != nil {
		return nil, ledger.NotFound(err, "charge_not_found", "Cobrança não encontrada.")
	}

	list, err := reconcileAll(ctx, uc.store.Charges(), practitionerID, []models.Charge{*c}, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}
