package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/hearthkeep/hearthkeep-api/internal/store"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ColumnName: "task_key", ConstraintName: "tasks_fk"}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		input  error
		target error
	}{
		{name: "nil stays nil", input: nil, target: nil},
		{name: "no rows maps to not found", input: sql.ErrNoRows, target: store.ErrNotFound},
		{name: "unique violation maps to duplicate", input: pgError("23505"), target: store.ErrDuplicate},
		{name: "foreign key violation maps to invalid entity", input: pgError("23503"), target: store.ErrInvalidEntity},
		{name: "check violation maps to invalid entity", input: pgError("23514"), target: store.ErrInvalidEntity},
		{name: "not null violation maps to invalid entity", input: pgError("23502"), target: store.ErrInvalidEntity},
		{name: "undefined column maps to unsupported column", input: pgError("42703"), target: store.ErrUnsupportedColumn},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.input)
			if tc.target == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.target)
		})
	}

	t.Run("unknown errors pass through", func(t *testing.T) {
		err := errors.New("connection refused")
		assert.Equal(t, err, MapError(err))
	})

	t.Run("wrapped pg errors are still mapped", func(t *testing.T) {
		err := fmt.Errorf("insert failed: %w", pgError("23505"))
		assert.ErrorIs(t, MapError(err), store.ErrDuplicate)
	})
}

func TestIsUndefinedColumn(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUndefinedColumn(pgError("42703")))
	assert.True(t, IsUndefinedColumn(MapError(pgError("42703"))))
	assert.False(t, IsUndefinedColumn(pgError("23505")))
	assert.False(t, IsUndefinedColumn(errors.New("other")))
	assert.False(t, IsUndefinedColumn(nil))
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(sql.ErrNoRows))
	assert.True(t, IsNotFoundError(MapError(sql.ErrNoRows)))
	assert.True(t, IsNotFoundError(store.ErrTaskNotFound))
	assert.False(t, IsNotFoundError(errors.New("boom")))
}
