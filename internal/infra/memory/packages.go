package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/models"
)

type packageRepo struct {
	s *Store
}

var _ entitlement.Repository = packageRepo{}

func (r packageRepo) Create(_ context.Context, p *models.Package) error {
	return r.s.with(func(st *state) error {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now()
		}
		p.UpdatedAt = p.CreatedAt
		st.packages[p.ID] = *p
		return nil
	})
}

func (r packageRepo) Get(
	_ context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
) (*models.Package, error) {

	var out models.Package
	err := r.s.with(func(st *state) error {
		p, ok := st.packages[packageID]
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

func (r packageRepo) GetForUpdate(
	ctx context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
) (*models.Package, error) {
	return r.Get(ctx, practitionerID, packageID)
}

func (r packageRepo) List(
	_ context.Context,
	practitionerID uuid.UUID,
	filter entitlement.ListFilter,
) ([]models.Package, error) {

	out := make([]models.Package, 0)
	err := r.s.with(func(st *state) error {
		for _, p := range st.packages {
			if p.PractitionerID != practitionerID {
				continue
			}
			if filter.PatientID != nil && p.PatientID != *filter.PatientID {
				continue
			}
			if filter.ActiveOnly && p.Status != string(entitlement.StatusActive) {
				continue
			}
			out = append(out, p)
		}
		return nil
	})

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out, err
}

func (r packageRepo) Update(_ context.Context, p *models.Package) error {
	return r.s.with(func(st *state) error {
		cur, ok := st.packages[p.ID]
		if !ok || cur.PractitionerID != p.PractitionerID {
			return ledger.ErrNotFound
		}
		p.UpdatedAt = time.Now()
		st.packages[p.ID] = *p
		return nil
	})
}

func (r packageRepo) Delete(
	_ context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
) error {
	return r.s.with(func(st *state) error {
		p, ok := st.packages[packageID]
		if !ok || p.PractitionerID != practitionerID {
			return ledger.ErrNotFound
		}
		delete(st.packages, packageID)
		return nil
	})
}
