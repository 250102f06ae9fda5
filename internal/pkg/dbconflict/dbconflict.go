// Package dbconflict classifies unique-constraint violations so services can
// surface which constraint was hit (duplicate code vs duplicate name) instead
// of a generic storage error.
package dbconflict

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// Constraint returns the violated unique constraint or column name, if err
// is a unique violation. Postgres reports the constraint name through
// pgconn; the sqlite driver only gives a "UNIQUE constraint failed:
// table.column" message.
func Constraint(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolationCode {
			return pgErr.ConstraintName, true
		}
		return "", false
	}

	msg := err.Error()
	if idx := strings.Index(msg, "UNIQUE constraint failed: "); idx >= 0 {
		return strings.TrimSpace(msg[idx+len("UNIQUE constraint failed: "):]), true
	}
	return "", false
}

// Matches reports whether the violated constraint refers to the given
// column, by constraint name suffix or table.column form.
func Matches(constraint, column string) bool {
	return strings.HasSuffix(constraint, "_"+column) || strings.HasSuffix(constraint, "."+column)
}
