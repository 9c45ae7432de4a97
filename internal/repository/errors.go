// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation. The insert-if-absent paths normally swallow duplicates via
// ON CONFLICT DO NOTHING, but anything that reaches the constraint through
// another path still classifies as a duplicate, not a store failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
