package errs

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	affected int64
	err      error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, r.err }

func TestFromDB(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"unique violation", &pq.Error{Code: "23505", Detail: "Key (email)=(a@b.c) already exists."}, ErrConflict},
		{"foreign key violation", &pq.Error{Code: "23503", Message: "violates foreign key constraint"}, ErrInvalidReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, FromDB(tt.in), tt.want)
		})
	}
}

func TestFromDBPassesUnknownErrorsThrough(t *testing.T) {
	boom := errors.New("connection refused")
	assert.Same(t, boom, FromDB(boom))
	assert.NoError(t, FromDB(nil))

	checkViolation := &pq.Error{Code: "23514"}
	assert.Equal(t, error(checkViolation), FromDB(checkViolation))
}

func TestFromDeleteTreatsForeignKeyAsConflict(t *testing.T) {
	err := FromDelete(&pq.Error{Code: "23503", Constraint: "payments_customer_id_fkey"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "payments_customer_id_fkey")

	assert.ErrorIs(t, FromDelete(sql.ErrNoRows), ErrNotFound)
}

func TestCheckAffected(t *testing.T) {
	assert.NoError(t, CheckAffected(fakeResult{affected: 1}))
	assert.ErrorIs(t, CheckAffected(fakeResult{affected: 0}), ErrNotFound)

	boom := errors.New("driver does not support RowsAffected")
	assert.ErrorIs(t, CheckAffected(fakeResult{err: boom}), boom)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("payment", "0b7e3a2e-5f43-4f5e-9c53-3c2a5f0f6b11")
	require.NoError(t, err)
	assert.Equal(t, "0b7e3a2e-5f43-4f5e-9c53-3c2a5f0f6b11", id.String())

	_, err = ParseID("payment", "42")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "payment 42: not found")
}
