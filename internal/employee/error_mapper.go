package employee

import (
	"errors"

	employeeerrors "go-ems/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapDBError converts driver-level constraint violations into domain errors
// so concurrent inserts racing past the pre-check still surface as conflicts.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmailTaken
	}
	return err
}
