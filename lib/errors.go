package lib

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Business errors
var (
	ErrProductUnavailable = errors.New("product unavailable")
)

// MapPgError translates low-level Postgres errors into the sentinels above.
func MapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
