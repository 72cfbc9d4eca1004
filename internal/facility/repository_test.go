package facility

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"fitcircle/internal/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewRepository(sqlxDB), mock
}

var facilityColumns = []string{
	"id", "gym_id", "name", "description", "kind", "max_capacity", "hourly_rate", "is_available",
	"current_occupancy", "maintenance_scheduled_at", "unavailable_reason", "version",
	"created_at", "updated_at", "deleted_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := setupMock(t)
	f := newTestFacility(t, 10)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO facilities")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), f))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := setupMock(t)
	id := uuid.New()
	gymID := uuid.New()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM facilities WHERE id = $1 AND deleted_at IS NULL")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(facilityColumns).
			AddRow(id.String(), gymID.String(), "Lap Pool", "25m lanes", 3, 25, "20.00", false, 0, nil, "cleaning", 4, ts, ts, nil))

	f, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, f.ID())
	assert.Equal(t, Pool, f.Kind())
	assert.Equal(t, 4, f.Version())
	assert.Equal(t, "cleaning", f.UnavailableReason())
	assert.False(t, f.IsAvailable())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM facilities WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRepository_ListByGym(t *testing.T) {
	repo, mock := setupMock(t)
	gymID := uuid.New()
	ts := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE gym_id = $1 AND deleted_at IS NULL")).
		WithArgs(gymID).
		WillReturnRows(sqlmock.NewRows(facilityColumns).
			AddRow(uuid.NewString(), gymID.String(), "Cardio", "Bikes", 1, 50, "15", true, 3, nil, nil, 1, ts, ts, nil).
			AddRow(uuid.NewString(), gymID.String(), "Sauna", "Finnish", 4, 10, "15", true, 0, nil, nil, 1, ts, ts, nil))

	list, err := repo.ListByGym(context.Background(), gymID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[0].CurrentOccupancy())
	assert.Equal(t, Sauna, list[1].Kind())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := setupMock(t)
	f := newTestFacility(t, 10)
	require.NoError(t, f.CheckIn(2))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE facilities SET")).
		WithArgs(f.ID(), f.Name(), f.Description(), 10, sqlmock.AnyArg(), true, 2,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), f))
	assert.Equal(t, 1, f.Version())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_Conflict(t *testing.T) {
	repo, mock := setupMock(t)
	f := newTestFacility(t, 10)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE facilities SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), f)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, 0, f.Version())
}
