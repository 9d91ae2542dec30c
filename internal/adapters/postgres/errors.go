package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsamuelsen/quotable/internal/domain"
)

// PostgreSQL error codes.
const (
	foreignKeyViolationCode = "23503"
	notNullViolationCode    = "23502"
)

// mapError converts a pgx error into a domain error. Row misses become
// the domain not-found kind for the given entity; everything else is
// wrapped and left for the boundary to present as a server error.
func mapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return fmt.Errorf("foreign key violation (%s): %w", pgErr.ConstraintName, err)
		case notNullViolationCode:
			return fmt.Errorf("not null violation (%s): %w", pgErr.ColumnName, err)
		}
	}

	return err
}
