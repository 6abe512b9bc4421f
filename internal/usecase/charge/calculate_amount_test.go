package charge

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/depastori/clinica-psi/internal/domain/directory"
	"github.com/depastori/clinica-psi/internal/domain/directory/mocks"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/infra/memory"
	"github.com/depastori/clinica-psi/internal/models"
)

// directoryStore troca só o Directory do store em memória.
type directoryStore struct {
	*memory.Store
	dir directory.Directory
}

func (s directoryStore) Directory() directory.Directory { return s.dir }

func TestCalculateChargeAmount(t *testing.T) {
	owner := uuid.New()
	patientID := uuid.New()
	ninety := 90
	apID := uuid.New()

	t.Run("EUR without settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dir := mocks.NewMockDirectory(ctrl)
		uc := NewCalculateChargeAmount(directoryStore{Store: memory.New(), dir: dir})

		dir.EXPECT().GetPatient(gomock.Any(), owner, patientID).Return(&models.Patient{ID: patientID}, nil)
		dir.EXPECT().GetPaymentSettings(gomock.Any(), owner).Return(nil, nil)
		dir.EXPECT().ListAppointments(gomock.Any(), owner, []uuid.UUID{apID}).Return([]models.Appointment{
			{ID: apID, PatientID: patientID, Date: "2025-03-10", Time: "14:00", DurationMinutes: &ninety, Status: "completed"},
		}, nil)

		q, err := uc.Execute(context.Background(), owner, patientID, []uuid.UUID{apID}, "EUR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Currency != "EUR" || q.TotalHours != 1.5 {
			t.Fatalf("unexpected quote %+v", q)
		}
		if !q.HourlyRate.Equal(decimal.NewFromInt(80)) || !q.TotalAmount.Equal(decimal.NewFromInt(120)) {
			t.Fatalf("expected 80/h and 120, got %s and %s", q.HourlyRate, q.TotalAmount)
		}
	})

	t.Run("settings rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dir := mocks.NewMockDirectory(ctrl)
		uc := NewCalculateChargeAmount(directoryStore{Store: memory.New(), dir: dir})

		brl := decimal.NewFromInt(200)
		dir.EXPECT().GetPatient(gomock.Any(), owner, patientID).Return(&models.Patient{ID: patientID}, nil)
		dir.EXPECT().GetPaymentSettings(gomock.Any(), owner).Return(&models.PaymentSettings{SessionPriceBRL: &brl}, nil)
		dir.EXPECT().ListAppointments(gomock.Any(), owner, gomock.Any()).Return([]models.Appointment{
			{ID: apID, Status: "completed"},
		}, nil)

		q, err := uc.Execute(context.Background(), owner, patientID, []uuid.UUID{apID}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Currency != "BRL" || !q.TotalAmount.Equal(brl) {
			t.Fatalf("expected 200 BRL, got %s %s", q.TotalAmount, q.Currency)
		}
	})

	t.Run("patient of another practitioner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dir := mocks.NewMockDirectory(ctrl)
		uc := NewCalculateChargeAmount(directoryStore{Store: memory.New(), dir: dir})

		dir.EXPECT().GetPatient(gomock.Any(), owner, patientID).Return(nil, ledger.ErrNotFound)

		_, err := uc.Execute(context.Background(), owner, patientID, []uuid.UUID{apID}, "BRL")
		if !httperr.IsBusiness(err, "patient_not_found") {
			t.Fatalf("expected patient_not_found, got %v", err)
		}
	})

	t.Run("directory error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dir := mocks.NewMockDirectory(ctrl)
		uc := NewCalculateChargeAmount(directoryStore{Store: memory.New(), dir: dir})

		dir.EXPECT().GetPatient(gomock.Any(), owner, patientID).Return(&models.Patient{ID: patientID}, nil)
		dir.EXPECT().GetPaymentSettings(gomock.Any(), owner).Return(nil, errors.New("db"))

		_, err := uc.Execute(context.Background(), owner, patientID, []uuid.UUID{apID}, "BRL")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("invalid currency", func(t *testing.T) {
		uc := NewCalculateChargeAmount(memory.New())
		_, err := uc.Execute(context.Background(), owner, patientID, nil, "USD")
		if !httperr.IsBusiness(err, "invalid_currency") {
			t.Fatalf("expected invalid_currency, got %v", err)
		}
	})
}
