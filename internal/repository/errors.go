package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lshigami/qa-service/internal/errorz"
	"gorm.io/gorm"
)

const pgForeignKeyViolation = "23503"

// translateError maps store errors onto the errorz sentinels. Anything it does
// not recognise is reported as errorz.ErrServer with the original error kept
// in the chain for logging.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, errorz.ErrNotFound)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%s: %w", op, errorz.ErrConstraintViolation)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%s: %w: %s", op, errorz.ErrConstraintViolation, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w: %w", op, errorz.ErrServer, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
