package receipt

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/audit"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/pricing"
	domain "github.com/depastori/clinica-psi/internal/domain/receipt"
	"github.com/depastori/clinica-psi/internal/domain/sequence"
	"github.com/depastori/clinica-psi/internal/models"
	"github.com/depastori/clinica-psi/internal/timezone"
	"github.com/depastori/clinica-psi/internal/validators"
)

type IssueManualInput struct {
	PatientID      uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Description    string
	PaymentMethod  string
	AppointmentIDs []uuid.UUID
	PaymentDate    *time.Time
	SessionDetails string
}

// IssueManualReceipt registra um pagamento recebido sem cobrança.
type IssueManualReceipt struct {
	store   ledger.Store
	audit   *audit.Dispatcher
	clock   timezone.Clock
	retries int
}

func NewIssueManualReceipt(
	store ledger.Store,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	retries int,
) *IssueManualReceipt {
	return &IssueManualReceipt{
		store:   store,
		audit:   audit,
		clock:   clock,
		retries: retries,
	}
}

func (uc *IssueManualReceipt) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	in IssueManualInput,
) (*models.Receipt, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	currency, err := pricing.NormalizeCurrency(in.Currency, pricing.CurrencyBRL)
	if err != nil {
		return nil, err
	}

	method, err := validators.NormalizePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	patient, err := uc.store.Directory().GetPatient(ctx, practitionerID, in.PatientID)
	if err != nil {
		return nil, ledger.NotFound(err, "patient_not_found", "Paciente não encontrado.")
	}

	now := uc.clock.Now()
	paymentDate := now
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}

	var rc *models.Receipt

	err = ledger.WithNumberRetry(ctx, uc.retries, func() error {
		return uc.store.Transaction(ctx, func(tx ledger.Store) error {
			seq, number, err := sequence.Assign(ctx, tx.Sequences(), practitionerID, sequence.KindReceipt)
			if err != nil {
				return err
			}

			rc = &models.Receipt{
				ID:             uuid.New(),
				PractitionerID: practitionerID,
				PatientID:      patient.ID,
				AppointmentIDs: append([]uuid.UUID(nil), in.AppointmentIDs...),
				Sequence:       seq,
				Number:         number,
				Description:    strings.TrimSpace(in.Description),
				Amount:         pricing.RoundMoney(in.Amount),
				Currency:       currency,
				PaymentDate:    paymentDate,
				PaymentMethod:  method,
				SessionDetails: strings.TrimSpace(in.SessionDetails),
				IssuedAt:       now,
			}

			if err := domain.Validate(rc); err != nil {
				return err
			}
			return tx.Receipts().Create(ctx, rc)
		})
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[receipt][usecase] manual receipt %s issued for patient %s", rc.Number, rc.PatientID)

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionReceiptIssued, audit.EntityReceipt, rc.ID, map[string]any{
		"number": rc.Number,
		"amount": rc.Amount.String(),
		"manual": true,
	}))

	return rc, nil
}
