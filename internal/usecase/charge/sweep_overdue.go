package charge

import (
	"context"
	"log"

	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/timezone"
)

// SweepOverdue grava overdue em lote. As leituras já reconciliam sozinhas;
// o sweep só mantém o banco em dia para relatórios e filtros por status.
type SweepOverdue struct {
	store ledger.Store
	clock timezone.Clock
}

func NewSweepOverdue(store ledger.Store, clock timezone.Clock) *SweepOverdue {
	return &SweepOverdue{store: store, clock: clock}
}

func (uc *SweepOverdue) Execute(ctx context.Context) (int64, error) {
	n, err := uc.store.Charges().SweepOverdue(ctx, uc.clock.Now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("[charge][sweep] %d charge(s) moved to overdue", n)
	}
	return n, nil
}
