// Package repository contains the sqlx persistence layer. Every natural-key
// lookup targets a unique or composite-unique constraint, so each query can
// match at most one row; absence is reported as sql.ErrNoRows and translated
// into a domain error by the service layer.
package repository

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code raised when an insert loses a
// check-then-insert race against a unique constraint.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
