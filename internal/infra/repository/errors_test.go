package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/depastori/clinica-psi/internal/domain/ledger"
)

func TestTranslate(t *testing.T) {
	other := errors.New("connection reset")
	serialization := &pgconn.PgError{Code: "40001"}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ledger.ErrNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", gorm.ErrRecordNotFound), ledger.ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, ledger.ErrNumberConflict},
		{"unique violation", &pgconn.PgError{Code: "23505"}, ledger.ErrNumberConflict},
		{"other pg error", serialization, serialization},
		{"passthrough", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.in); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAffected(t *testing.T) {
	if err := affected(&gorm.DB{RowsAffected: 0}); !errors.Is(err, ledger.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := affected(&gorm.DB{RowsAffected: 1}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := affected(&gorm.DB{Error: gorm.ErrDuplicatedKey}); !errors.Is(err, ledger.ErrNumberConflict) {
		t.Fatalf("expected ErrNumberConflict, got %v", err)
	}
}
