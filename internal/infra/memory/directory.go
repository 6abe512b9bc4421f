package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/directory"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/models"
)

type directoryRepo struct {
	s *Store
}

var _ directory.Directory = directoryRepo{}

func (r directoryRepo) GetPractitioner(
	_ context.Context,
	practitionerID uuid.UUID,
) (*models.Practitioner, error) {

	var out models.Practitioner
	err := r.s.with(func(st *state) error {
		p, ok := st.practitioners[practitionerID]
		if !ok {
			return ledger.ErrNotFound
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r directoryRepo) GetPatient(
	_ context.Context,
	practitionerID uuid.UUID,
	patientID uuid.UUID,
) (*models.Patient, error) {

	var out models.Patient
	err := r.s.with(func(st *state) error {
		p, ok := st.patients[patientID]
		if !ok || p.PractitionerID != practitionerID {
			return ledger.ErrNotFound
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r directoryRepo) FindPatientsByName(
	_ context.Context,
	practitionerID uuid.UUID,
	name string,
) ([]models.Patient, error) {

	needle := strings.ToLower(strings.TrimSpace(name))
	return r.patients(practitionerID, 0, func(p models.Patient) bool {
		return strings.ToLower(strings.TrimSpace(p.FullName)) == needle
	})
}

func (r directoryRepo) SearchPatients(
	_ context.Context,
	practitionerID uuid.UUID,
	term string,
	limit int,
) ([]models.Patient, error) {

	needle := strings.ToLower(strings.TrimSpace(term))
	return r.patients(practitionerID, limit, func(p models.Patient) bool {
		return strings.Contains(strings.ToLower(p.FullName), needle)
	})
}

func (r directoryRepo) ListAppointments(
	_ context.Context,
	practitionerID uuid.UUID,
	ids []uuid.UUID,
) ([]models.Appointment, error) {

	out := make([]models.Appointment, 0, len(ids))
	err := r.s.with(func(st *state) error {
		for _, id := range ids {
			ap, ok := st.appointments[id]
			if ok && ap.PractitionerID == practitionerID {
				out = append(out, ap)
			}
		}
		return nil
	})
	return out, err
}

func (r directoryRepo) GetPaymentSettings(
	_ context.Context,
	practitionerID uuid.UUID,
) (*models.PaymentSettings, error) {

	var out *models.PaymentSettings
	err := r.s.with(func(st *state) error {
		if ps, ok := st.settings[practitionerID]; ok {
			out = &ps
		}
		return nil
	})
	return out, err
}

func (r directoryRepo) ListActivePaymentMethods(
	_ context.Context,
	practitionerID uuid.UUID,
) ([]string, error) {

	names := make([]string, 0)
	err := r.s.with(func(st *state) error {
		for _, m := range st.methods {
			if m.PractitionerID == practitionerID && m.IsActive {
				names = append(names, m.Name)
			}
		}
		return nil
	})
	return names, err
}

func (r directoryRepo) patients(
	practitionerID uuid.UUID,
	limit int,
	keep func(models.Patient) bool,
) ([]models.Patient, error) {

	out := make([]models.Patient, 0)
	err := r.s.with(func(st *state) error {
		for _, p := range st.patients {
			if p.PractitionerID == practitionerID && keep(p) {
				out = append(out, p)
			}
		}
		return nil
	})

	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, err
}
