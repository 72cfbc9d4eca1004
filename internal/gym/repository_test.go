package gym

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
	"github.com/shopspring/decimal"
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

var gymColumns = []string{
	"id", "name", "description", "address", "city_id", "phone", "email",
	"latitude", "longitude", "monthly_price", "is_vip_supported", "is_corporate_partner",
	"version", "created_at", "updated_at", "facility_ids", "trainer_ids",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO gyms")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), newTestGym(t)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := setupMock(t)
	id, cityID := uuid.New(), uuid.New()
	f1, f2, tr := uuid.New(), uuid.New(), uuid.New()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM gyms g WHERE g.id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(gymColumns).AddRow(
			id.String(), "Iron Temple", nil, "28 May St 12", cityID.String(), "+994501234567", "info@irontemple.az",
			40.3777, 49.892, "75.00", false, true, 2, ts, ts,
			"{"+f1.String()+","+f2.String()+"}", "{"+tr.String()+"}",
		))

	g, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Iron Temple", g.Name())
	assert.Equal(t, []uuid.UUID{f1, f2}, g.FacilityIDs())
	assert.Equal(t, []uuid.UUID{tr}, g.TrainerIDs())
	assert.Empty(t, g.Info().Description)
	assert.Equal(t, 2, g.Version())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	repo, mock := setupMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM gyms g WHERE g.id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := setupMock(t)
	cityID := uuid.New()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY g.name")).
		WithArgs(&cityID).
		WillReturnRows(sqlmock.NewRows(gymColumns).
			AddRow(uuid.NewString(), "A Gym", "desc", "Addr 1", cityID.String(), "1", nil, 0.0, 0.0, "50", false, false, 0, ts, ts, "{}", "{}").
			AddRow(uuid.NewString(), "B Gym", nil, "Addr 2", cityID.String(), "2", nil, 0.0, 0.0, "120", true, false, 0, ts, ts, "{}", "{}"))

	gyms, err := repo.List(context.Background(), &cityID)
	require.NoError(t, err)
	require.Len(t, gyms, 2)
	assert.Equal(t, "B Gym", gyms[1].Name())
	assert.Empty(t, gyms[0].FacilityIDs())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := setupMock(t)
	g := newTestGym(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE gyms SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), g))
	assert.Equal(t, 1, g.Version())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE gyms SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Update(context.Background(), g)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, 1, g.Version())
}

func TestRepository_ExistsAndPrice(t *testing.T) {
	repo, mock := setupMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := repo.Exists(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT monthly_price FROM gyms")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"monthly_price"}).AddRow("99.90"))
	price, err := repo.MonthlyPrice(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("99.90")))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT monthly_price FROM gyms")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)
	_, err = repo.MonthlyPrice(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
