package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/domain/directory"
	"github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/domain/receipt"
	"github.com/depastori/clinica-psi/internal/domain/sequence"
	"github.com/depastori/clinica-psi/internal/httperr"
)

var (
	ErrNotFound       = errors.New("ledger: record not found")
	ErrNumberConflict = errors.New("ledger: document number already taken")
)

// Store agrupa os repositórios do financeiro.
// Dentro de Transaction, todos os acessos via tx são uma única unidade.
type Store interface {
	Charges() charge.Repository
	Receipts() receipt.Repository
	Packages() entitlement.Repository
	Directory() directory.Directory
	Sequences() sequence.Allocator

	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// RequirePractitioner falha antes de qualquer regra quando não há profissional autenticado.
func RequirePractitioner(practitionerID uuid.UUID) error {
	if practitionerID == uuid.Nil {
		return httperr.ErrUnauthorized("unauthorized", "Profissional não autenticado.")
	}
	return nil
}

// NotFound converte ErrNotFound no erro de negócio com o código dado.
// Outro profissional e inexistente caem no mesmo caso.
func NotFound(err error, code, message string) error {
	if errors.Is(err, ErrNotFound) {
		return httperr.ErrNotFound(code, message)
	}
	return err
}
