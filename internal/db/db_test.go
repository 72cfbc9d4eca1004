package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"fitcircle/internal/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	dbx := sqlx.NewDb(db, "sqlmock")

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := Exists(context.Background(), dbx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, "a@b.c")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotFoundOr(t *testing.T) {
	err := NotFoundOr(sql.ErrNoRows, "payment.get", "payment")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	boom := errors.New("boom")
	err = NotFoundOr(boom, "payment.get", "payment")
	assert.ErrorIs(t, err, boom)
	assert.False(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, CheckVersion(sqlmock.NewResult(0, 1), "facility.update"))

	err := CheckVersion(sqlmock.NewResult(0, 0), "facility.update")
	assert.ErrorIs(t, err, apperror.ErrConflict)

	err = CheckVersion(sqlmock.NewErrorResult(errors.New("driver")), "facility.update")
	assert.Error(t, err)
	assert.False(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestRetryOnConflict(t *testing.T) {
	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := RetryOnConflict(context.Background(), func() error {
			calls++
			if calls < 2 {
				return apperror.Conflict("op", "stale")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		calls := 0
		err := RetryOnConflict(context.Background(), func() error {
			calls++
			return apperror.Conflict("op", "stale")
		})
		assert.ErrorIs(t, err, apperror.ErrConflict)
		assert.Equal(t, ConflictRetries, calls)
	})

	t.Run("other errors are returned at once", func(t *testing.T) {
		calls := 0
		err := RetryOnConflict(context.Background(), func() error {
			calls++
			return apperror.InvalidState("op", "nope")
		})
		assert.ErrorIs(t, err, apperror.ErrInvalidState)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := RetryOnConflict(ctx, func() error {
			return apperror.Conflict("op", "stale")
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConstraintOr(t *testing.T) {
	err := ConstraintOr(&pq.Error{Code: "23505"}, "location.create_country", "country")
	assert.ErrorIs(t, err, apperror.ErrConflict)

	err = ConstraintOr(fmt.Errorf("exec: %w", &pq.Error{Code: "23503"}), "location.delete_city", "city")
	assert.ErrorIs(t, err, apperror.ErrInvalidState)

	err = ConstraintOr(&pq.Error{Code: "42P01"}, "location.delete_city", "city")
	_, isDomain := apperror.KindOf(err)
	assert.False(t, isDomain)
}
