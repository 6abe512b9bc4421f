package charge

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/audit"
	domain "github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/dto"
	"github.com/depastori/clinica-psi/internal/timezone"
	ucReceipt "github.com/depastori/clinica-psi/internal/usecase/receipt"
	"github.com/depastori/clinica-psi/internal/validators"
)

type MarkPaidInput struct {
	PaymentMethod string
	PaymentDate   *time.Time
}

// MarkChargePaid baixa a cobrança e emite o recibo na mesma transação.
// Ou as duas coisas acontecem, ou nenhuma.
type MarkChargePaid struct {
	store   ledger.Store
	audit   *audit.Dispatcher
	clock   timezone.Clock
	retries int
}

func NewMarkChargePaid(
	store ledger.Store,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	retries int,
) *MarkChargePaid {
	return &MarkChargePaid{
		store:   store,
		audit:   audit,
		clock:   clock,
		retries: retries,
	}
}

func (uc *MarkChargePaid) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
	in MarkPaidInput,
) (*dto.PaidCharge, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	method, err := validators.NormalizePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var out dto.PaidCharge

	err = ledger.WithNumberRetry(ctx, uc.retries, func() error {
		return uc.store.Transaction(ctx, func(tx ledger.Store) error {
			c, err := tx.Charges().GetForUpdate(ctx, practitionerID, chargeID)
			if err != nil {
				return ledger.NotFound(err, "charge_not_found", "Cobrança não encontrada.")
			}

			now := uc.clock.Now()
			paidAt := now
			if in.PaymentDate != nil {
				paidAt = *in.PaymentDate
			}

			*c = domain.Reconcile(*c, now)
			if err := domain.MarkPaid(c, method, paidAt); err != nil {
				return err
			}

			if err := tx.Charges().Update(ctx, c); err != nil {
				return err
			}

			rc, err := ucReceipt.IssueFromCharge(ctx, tx, c, now)
			if err != nil {
				return err
			}

			out = dto.PaidCharge{Charge: c, Receipt: rc}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[charge][usecase] charge %s paid via %s, receipt %s", out.Charge.Number, method, out.Receipt.Number)

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionChargePaid, audit.EntityCharge, out.Charge.ID, map[string]any{
		"number":         out.Charge.Number,
		"payment_method": method,
		"receipt":        out.Receipt.Number,
	}))
	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionReceiptIssued, audit.EntityReceipt, out.Receipt.ID, map[string]any{
		"number": out.Receipt.Number,
		"charge": out.Charge.Number,
	}))

	return &out, nil
}
