// Package errs holds the error classes shared by every resource module.
// Repositories translate driver errors into these sentinels and the web
// layer maps each sentinel to exactly one HTTP status.
package errs

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means the write collides with existing state.
	ErrConflict = errors.New("conflict")
	// ErrInvalidReference means the payload points at a record that is absent or not eligible.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrUnauthorized means the caller could not be authenticated.
	ErrUnauthorized = errors.New("unauthorized")
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

// FromDB translates a database/sql or lib/pq error into a sentinel.
// Errors it does not recognise are returned unchanged.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflict, constraintMessage(pqErr))
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", ErrInvalidReference, constraintMessage(pqErr))
		}
	}
	return err
}

// FromDelete is FromDB for DELETE statements, where a foreign key violation
// means other records still point at the row.
func FromDelete(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: record is still referenced (%s)", ErrConflict, pqErr.Constraint)
	}
	return FromDB(err)
}

// CheckAffected turns a zero-row UPDATE or DELETE into ErrNotFound.
func CheckAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ParseID parses a resource identifier taken from a URL path. A malformed
// id cannot name a stored record, so it is reported as not found.
func ParseID(resource, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %s: %w", resource, id, ErrNotFound)
	}
	return parsed, nil
}

func constraintMessage(e *pq.Error) string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}
