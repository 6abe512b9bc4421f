package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/receipt"
	"github.com/depastori/clinica-psi/internal/models"
)

type receiptRepo struct {
	s *Store
}

var _ receipt.Repository = receiptRepo{}

func (r receiptRepo) Create(_ context.Context, rc *models.Receipt) error {
	return r.s.with(func(st *state) error {
		for _, other := range st.receipts {
			if other.PractitionerID == rc.PractitionerID && other.Sequence == rc.Sequence {
				return ledger.ErrNumberConflict
			}
		}
		st.receipts[rc.ID] = copyReceipt(*rc)
		return nil
	})
}

func (r receiptRepo) Get(
	_ context.Context,
	practitionerID uuid.UUID,
	receiptID uuid.UUID,
) (*models.Receipt, error) {

	var out models.Receipt
	err := r.s.with(func(st *state) error {
		rc, ok := st.receipts[receiptID]
		if !ok || rc.PractitionerID != practitionerID {
			return ledger.ErrNotFound
		}
		out = copyReceipt(rc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r receiptRepo) List(
	_ context.Context,
	practitionerID uuid.UUID,
	patientID *uuid.UUID,
) ([]models.Receipt, error) {
	return r.filter(practitionerID, func(rc models.Receipt) bool {
		return patientID == nil || rc.PatientID == *patientID
	})
}

func (r receiptRepo) ListByCharge(
	_ context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) ([]models.Receipt, error) {
	return r.filter(practitionerID, func(rc models.Receipt) bool {
		return rc.ChargeID != nil && *rc.ChargeID == chargeID
	})
}

func (r receiptRepo) Delete(
	_ context.Context,
	practitionerID uuid.UUID,
	receiptID uuid.UUID,
) error {
	return r.s.with(func(st *state) error {
		rc, ok := st.receipts[receiptID]
		if !ok || rc.PractitionerID != practitionerID {
			return ledger.ErrNotFound
		}
		delete(st.receipts, receiptID)
		return nil
	})
}

func (r receiptRepo) filter(
	practitionerID uuid.UUID,
	keep func(models.Receipt) bool,
) ([]models.Receipt, error) {

	out := make([]models.Receipt, 0)
	err := r.s.with(func(st *state) error {
		for _, rc := range st.receipts {
			if rc.PractitionerID == practitionerID && keep(rc) {
				out = append(out, copyReceipt(rc))
			}
		}
		return nil
	})

	sort.Slice(out, func(i, j int) bool {
		if !out[i].IssuedAt.Equal(out[j].IssuedAt) {
			return out[i].IssuedAt.After(out[j].IssuedAt)
		}
		return out[i].Sequence > out[j].Sequence
	})
	return out, err
}
