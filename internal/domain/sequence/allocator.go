package sequence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=allocator.go -destination=mocks/mock_allocator.go -package=mocks

type Kind string

const (
	KindCharge  Kind = "charge"
	KindReceipt Kind = "receipt"
)

// Allocator entrega o próximo valor do contador (practitioner, kind).
// Valores nunca se repetem; lacunas são aceitas.
type Allocator interface {
	Next(ctx context.Context, practitionerID uuid.UUID, kind Kind) (int64, error)
}

// Floor devolve o maior valor já gravado para (practitioner, kind), 0 se nenhum.
// Contadores fora do banco partem dele quando perdem o estado.
type Floor interface {
	Floor(ctx context.Context, practitionerID uuid.UUID, kind Kind) (int64, error)
}

func Prefix(kind Kind) string {
	switch kind {
	case KindCharge:
		return "COB"
	case KindReceipt:
		return "REC"
	default:
		return "DOC"
	}
}

// Format gera o número de exibição: COB-0001, REC-0042, COB-12345.
func Format(kind Kind, n int64) string {
	return fmt.Sprintf("%s-%04d", Prefix(kind), n)
}

// Assign reserva o próximo valor e devolve também o número de exibição.
func Assign(
	ctx context.Context,
	a Allocator,
	practitionerID uuid.UUID,
	kind Kind,
) (int64, string, error) {

	n, err := a.Next(ctx, practitionerID, kind)
	if err != nil {
		return 0, "", err
	}
	return n, Format(kind, n), nil
}
