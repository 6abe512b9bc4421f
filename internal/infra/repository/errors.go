package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/depastori/clinica-psi/internal/domain/ledger"
)

const pgUniqueViolation = "23505"

// translate converte erros do gorm/postgres nas sentinelas do ledger.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.ErrNotFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ledger.ErrNumberConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ledger.ErrNumberConflict
	}

	return err
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrNotFound
	}
	return nil
}
