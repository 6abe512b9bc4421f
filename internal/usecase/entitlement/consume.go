package entitlement

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/audit"
	domain "github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/dto"
	"github.com/depastori/clinica-psi/internal/timezone"
)

// ConsumeSession usa uma sessão do pacote.
type ConsumeSession struct {
	store ledger.Store
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewConsumeSession(
	store ledger.Store,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *ConsumeSession {
	return &ConsumeSession{
		store: store,
		audit: audit,
		clock: clock,
	}
}

func (uc *ConsumeSession) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	packageID uuid.UUID,
) (*dto.ConsumeResult, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	var out dto.ConsumeResult

	err := uc.store.Transaction(ctx, func(tx ledger.Store) error {
		p, err := tx.Packages().GetForUpdate(ctx, practitionerID, packageID)
		if err != nil {
			return ledger.NotFound(err, "package_not_found", "Pacote não encontrado.")
		}

		if domain.IsExpired(p, uc.clock.Now()) {
			// validade é informativa; só registramos
			log.Printf("[package][usecase] package %s consumed after expiry %s", p.ID, p.ExpiryDate.Format("2006-01-02"))
		}

		if err := domain.Consume(p); err != nil {
			return err
		}

		if err := tx.Packages().Update(ctx, p); err != nil {
			return err
		}

		out = dto.ConsumeResult{
			UsedSessions:      p.UsedSessions,
			RemainingSessions: domain.Remaining(p),
			Status:            p.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.For(practitionerID, audit.ActionPackageConsumed, audit.EntityPackage, packageID, out))

	return &out, nil
}
