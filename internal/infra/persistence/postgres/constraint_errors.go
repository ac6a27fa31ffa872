package postgres

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgErrorCode extracts the SQLSTATE from a PostgreSQL error anywhere in err's chain.
func pgErrorCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}

	return "", false
}

func isUniqueConstraintViolation(err error) bool {
	// Translated by GORM when the dialector runs with TranslateError
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	code, ok := pgErrorCode(err)

	return ok && code == pgerrcode.UniqueViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, ok := pgErrorCode(err)

	return ok && code == pgerrcode.NotNullViolation
}
