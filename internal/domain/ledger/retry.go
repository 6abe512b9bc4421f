package ledger

import (
	"context"
	"errors"
	"log"

	"github.com/depastori/clinica-psi/internal/httperr"
)

const DefaultNumberRetries = 3

// WithNumberRetry repete fn enquanto a numeração colidir.
// fn deve abrir a própria transação: cada tentativa é uma unidade nova.
func WithNumberRetry(ctx context.Context, attempts int, fn func() error) error {
	if attempts <= 0 {
		attempts = DefaultNumberRetries
	}

	var err error
	for i := 0; i < attempts; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		err = fn()
		if !errors.Is(err, ErrNumberConflict) {
			return err
		}
		log.Printf("[ledger] number conflict, attempt %d/%d", i+1, attempts)
	}

	return httperr.ErrTransient(
		"numbering_conflict",
		"Não foi possível gerar o número do documento. Tente novamente.",
	)
}
