package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/devtask-api/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantIs   error
		passthru bool
	}{
		{name: "nil", err: nil},
		{name: "no_rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{
			name:   "unique_violation",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "users_email_idx"},
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "foreign_key_violation",
			err:    &pgconn.PgError{Code: "23503", ConstraintName: "tasks_owner_id_fkey"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "check_violation",
			err:    &pgconn.PgError{Code: "23514", ConstraintName: "tasks_status_check"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:     "other_pg_error",
			err:      &pgconn.PgError{Code: "57014"},
			passthru: true,
		},
		{
			name:     "plain_error",
			err:      errors.New("connection reset"),
			passthru: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)

			switch {
			case tt.err == nil:
				assert.NoError(t, mapped)
			case tt.passthru:
				assert.Equal(t, tt.err, mapped)
			default:
				require.Error(t, mapped)
				assert.ErrorIs(t, mapped, tt.wantIs)
				// The original error text is preserved in the wrap.
				assert.Contains(t, mapped.Error(), tt.err.Error())
			}
		})
	}
}

func TestMapErrorWrappedPgError(t *testing.T) {
	wrapped := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, MapError(wrapped), store.ErrDuplicate)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))
	assert.False(t, IsUniqueViolation(nil))
}

// fakeResult implements sql.Result for rows-affected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Run("rows_affected", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{rows: 1}, store.ErrTaskNotFound)
		assert.NoError(t, err)
	})

	t.Run("zero_rows", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrTaskNotFound)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("rows_affected_error", func(t *testing.T) {
		driverErr := errors.New("driver does not support RowsAffected")
		err := CheckRowsAffected(fakeResult{err: driverErr}, store.ErrTaskNotFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, driverErr)
		assert.NotErrorIs(t, err, store.ErrTaskNotFound)
	})
}
