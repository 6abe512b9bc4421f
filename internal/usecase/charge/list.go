package charge

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	domain "github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/pricing"
	"github.com/depastori/clinica-psi/internal/dto"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/models"
	"github.com/depastori/clinica-psi/internal/timezone"
)

type ListChargesInput struct {
	PatientID *uuid.UUID
	Status    string
	DueFrom   *time.Time
	DueBefore *time.Time
}

type ListCharges struct {
	store ledger.Store
	clock timezone.Clock
}

func NewListCharges(store ledger.Store, clock timezone.Clock) *ListCharges {
	return &ListCharges{store: store, clock: clock}
}

// Execute reconcilia (e grava) as vencidas antes de filtrar por status.
func (uc *ListCharges) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	in ListChargesInput,
) ([]dto.ChargeListItem, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	var status domain.Status
	if in.Status != "" {
		s, ok := domain.ParseStatus(in.Status)
		if !ok {
			return nil, httperr.ErrValidation("invalid_status", "Status inválido.")
		}
		status = s
	}

	charges, err := uc.store.Charges().List(ctx, practitionerID, domain.ListFilter{
		PatientID: in.PatientID,
		DueFrom:   in.DueFrom,
		DueBefore: in.DueBefore,
	})
	if err != nil {
		return nil, err
	}

	charges, err = reconcileAll(ctx, uc.store.Charges(), practitionerID, charges, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	out := make([]dto.ChargeListItem, 0, len(charges))
	names := map[uuid.UUID]string{}

	for _, c := range charges {
		if status != "" && domain.Status(c.Status) != status {
			continue
		}

		name, ok := names[c.PatientID]
		if !ok {
			name = patientName(ctx, uc.store, practitionerID, c.PatientID)
			names[c.PatientID] = name
		}

		dates, err := appointmentDates(ctx, uc.store, practitionerID, c.AppointmentIDs)
		if err != nil {
			return nil, err
		}

		out = append(out, dto.ChargeListItem{
			Charge:           c,
			PatientName:      name,
			AppointmentDates: dates,
		})
	}

	return out, nil
}

// reconcileAll grava overdue nas pendentes vencidas e devolve a lista reconciliada.
func reconcileAll(
	ctx context.Context,
	repo domain.Repository,
	practitionerID uuid.UUID,
	charges []models.Charge,
	now time.Time,
) ([]models.Charge, error) {

	stale := make([]uuid.UUID, 0)
	for i := range charges {
		if domain.IsStale(charges[i], now) {
			stale = append(stale, charges[i].ID)
		}
		charges[i] = domain.Reconcile(charges[i], now)
	}

	if len(stale) == 0 {
		return charges, nil
	}

	n, err := repo.MarkOverdue(ctx, practitionerID, stale, now)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		log.Printf("[charge][usecase] %d charge(s) moved to overdue", n)
	}

	return charges, nil
}

func patientName(ctx context.Context, store ledger.Store, practitionerID, patientID uuid.UUID) string {
	p, err := store.Directory().GetPatient(ctx, practitionerID, patientID)
	if err != nil {
		return ""
	}
	return p.FullName
}

func appointmentDates(
	ctx context.Context,
	store ledger.Store,
	practitionerID uuid.UUID,
	ids []uuid.UUID,
) ([]string, error) {

	dates := make([]string, 0, len(ids))
	if len(ids) == 0 {
		return dates, nil
	}

	apps, err := store.Directory().ListAppointments(ctx, practitionerID, ids)
	if err != nil {
		return nil, err
	}
	for _, ap := range apps {
		dates = append(dates, pricing.FormatDate(ap.Date))
	}
	return dates, nil
}
