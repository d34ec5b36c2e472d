package sqlutil

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes we react to
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// IsNoRows reports whether err is sql.ErrNoRows
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// IsUniqueViolation reports a unique constraint failure. When constraint is
// not empty the violated constraint name must match.
func IsUniqueViolation(err error, constraint string) bool {
	return isPQCode(err, codeUniqueViolation, constraint)
}

// IsForeignKeyViolation reports a foreign key failure
func IsForeignKeyViolation(err error) bool {
	return isPQCode(err, codeForeignKeyViolation, "")
}

// IsCheckViolation reports a CHECK constraint failure
func IsCheckViolation(err error) bool {
	return isPQCode(err, codeCheckViolation, "")
}

func isPQCode(err error, code, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
