package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/depastori/clinica-psi/internal/domain/charge"
	"github.com/depastori/clinica-psi/internal/domain/directory"
	"github.com/depastori/clinica-psi/internal/domain/entitlement"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/receipt"
	"github.com/depastori/clinica-psi/internal/domain/sequence"
)

type GormStore struct {
	db    *gorm.DB
	alloc sequence.Allocator
}

var _ ledger.Store = (*GormStore)(nil)

// NewGormStore: alloc nil usa o contador em tabela (ledger_sequences),
// que participa da mesma transação do documento.
func NewGormStore(db *gorm.DB, alloc sequence.Allocator) *GormStore {
	return &GormStore{db: db, alloc: alloc}
}

func (s *GormStore) Charges() charge.Repository {
	return NewChargeGormRepository(s.db)
}

func (s *GormStore) Receipts() receipt.Repository {
	return NewReceiptGormRepository(s.db)
}

func (s *GormStore) Packages() entitlement.Repository {
	return NewPackageGormRepository(s.db)
}

func (s *GormStore) Directory() directory.Directory {
	return NewDirectoryGormRepository(s.db)
}

func (s *GormStore) Sequences() sequence.Allocator {
	if s.alloc != nil {
		return s.alloc
	}
	return NewSequenceGormAllocator(s.db)
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx ledger.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, alloc: s.alloc})
	})
}
