package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/models"
)

type chargeRepo struct {
	s *Store
}

var _ charge.Repository = chargeRepo{}

func (r chargeRepo) Create(_ context.Context, c *models.Charge) error {
	return r.s.with(func(st *state) error {
		for _, other := range st.charges {
			if other.PractitionerID == c.PractitionerID && other.Sequence == c.Sequence {
				return ledger.ErrNumberConflict
			}
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		c.UpdatedAt = c.CreatedAt
		st.charges[c.ID] = copyCharge(*c)
		return nil
	})
}

func (r chargeRepo) Get(
	_ context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) (*models.Charge, error) {

	var out models.Charge
	err := r.s.with(func(st *state) error {
		c, ok := st.charges[chargeID]
		if !ok || c.PractitionerID != practitionerID {
			return ledger.ErrNotFound
		}
		out = copyCharge(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetForUpdate: a transação em memória já é exclusiva.
func (r chargeRepo) GetForUpdate(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) (*models.Charge, error) {
	return r.Get(ctx, practitionerID, chargeID)
}

func (r chargeRepo) List(
	_ context.Context,
	practitionerID uuid.UUID,
	filter charge.ListFilter,
) ([]models.Charge, error) {

	out := make([]models.Charge, 0)
	err := r.s.with(func(st *state) error {
		for _, c := range st.charges {
			if c.PractitionerID != practitionerID {
				continue
			}
			if filter.PatientID != nil && c.PatientID != *filter.PatientID {
				continue
			}
			if filter.DueFrom != nil && c.DueDate.Before(*filter.DueFrom) {
				continue
			}
			if filter.DueBefore != nil && !c.DueDate.Before(*filter.DueBefore) {
				continue
			}
			out = append(out, copyCharge(c))
		}
		return nil
	})

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Sequence > out[j].Sequence
	})
	return out, err
}

func (r chargeRepo) Update(_ context.Context, c *models.Charge) error {
	return r.s.with(func(st *state) error {
		cur, ok := st.charges[c.ID]
		if !ok || cur.PractitionerID != c.PractitionerID {
			return ledger.ErrNotFound
		}
		c.UpdatedAt = time.Now()
		st.charges[c.ID] = copyCharge(*c)
		return nil
	})
}

func (r chargeRepo) MarkOverdue(
	_ context.Context,
	practitionerID uuid.UUID,
	chargeIDs []uuid.UUID,
	now time.Time,
) (int64, error) {

	var n int64
	err := r.s.with(func(st *state) error {
		for _, id := range chargeIDs {
			c, ok := st.charges[id]
			if !ok || c.PractitionerID != practitionerID {
				continue
			}
			if !charge.IsStale(c, now) {
				continue
			}
			c.Status = string(charge.StatusOverdue)
			c.UpdatedAt = now
			st.charges[id] = c
			n++
		}
		return nil
	})
	return n, err
}

func (r chargeRepo) SweepOverdue(_ context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.s.with(func(st *state) error {
		for id, c := range st.charges {
			if !charge.IsStale(c, now) {
				continue
			}
			c.Status = string(charge.StatusOverdue)
			c.UpdatedAt = now
			st.charges[id] = c
			n++
		}
		return nil
	})
	return n, err
}

func (r chargeRepo) Delete(
	_ context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) error {
	return r.s.with(func(st *state) error {
		c, ok := st.charges[chargeID]
		if !ok || c.PractitionerID != practitionerID {
			return ledger.ErrNotFound
		}
		delete(st.charges, chargeID)
		return nil
	})
}
