package gym

import (
	"strings"
	"testing"
	"time"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func validInfo() Info {
	return Info{
		Name:         "Iron Temple",
		Description:  "Open 24/7",
		Address:      "28 May St 12",
		CityID:       uuid.New(),
		Phone:        "+994501234567",
		Email:        "info@irontemple.az",
		Latitude:     40.3777,
		Longitude:    49.892,
		MonthlyPrice: decimal.NewFromInt(75),
	}
}

func newTestGym(t *testing.T) *Gym {
	t.Helper()
	g, err := NewGym(validInfo())
	require.NoError(t, err)
	return g
}

func TestNewGym(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Info)
		wantErr error
	}{
		{"valid", func(*Info) {}, nil},
		{"no email", func(i *Info) { i.Email = "" }, nil},
		{"blank name", func(i *Info) { i.Name = "  " }, apperror.ErrValidation},
		{"long name", func(i *Info) { i.Name = strings.Repeat("n", 101) }, apperror.ErrValidation},
		{"no address", func(i *Info) { i.Address = "" }, apperror.ErrValidation},
		{"no city", func(i *Info) { i.CityID = uuid.Nil }, apperror.ErrValidation},
		{"no phone", func(i *Info) { i.Phone = "" }, apperror.ErrValidation},
		{"bad email", func(i *Info) { i.Email = "not-an-email" }, apperror.ErrValidation},
		{"latitude out of range", func(i *Info) { i.Latitude = 91 }, apperror.ErrRange},
		{"longitude out of range", func(i *Info) { i.Longitude = -180.5 }, apperror.ErrRange},
		{"free gym", func(i *Info) { i.MonthlyPrice = decimal.Zero }, apperror.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validInfo()
			tt.mutate(&info)

			g, err := NewGym(info)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, g.ID())
			assert.Empty(t, g.FacilityIDs())
		})
	}
}

func TestGym_UpdateInfo(t *testing.T) {
	freezeTime(t, time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	g := newTestGym(t)

	info := validInfo()
	info.Name = "  Iron Temple Downtown "
	info.VipSupported = true
	require.NoError(t, g.UpdateInfo(info))
	assert.Equal(t, "Iron Temple Downtown", g.Name())
	assert.True(t, g.Info().VipSupported)

	info.Name = ""
	assert.ErrorIs(t, g.UpdateInfo(info), apperror.ErrValidation)
	assert.Equal(t, "Iron Temple Downtown", g.Name())
}

func TestGym_Children(t *testing.T) {
	g := newTestGym(t)
	a, b := uuid.New(), uuid.New()

	require.NoError(t, g.AddFacility(a))
	require.NoError(t, g.AddFacility(b))
	assert.ErrorIs(t, g.AddFacility(a), apperror.ErrInvalidState)
	assert.ErrorIs(t, g.AddFacility(uuid.Nil), apperror.ErrValidation)
	assert.Equal(t, []uuid.UUID{a, b}, g.FacilityIDs())

	require.NoError(t, g.AddTrainer(a))
	assert.ErrorIs(t, g.AddTrainer(a), apperror.ErrInvalidState)

	ids := g.TrainerIDs()
	ids[0] = uuid.Nil
	assert.Equal(t, a, g.TrainerIDs()[0])
}

func TestGym_RecordRoundTrip(t *testing.T) {
	g := newTestGym(t)
	require.NoError(t, g.AddFacility(uuid.New()))
	require.NoError(t, g.AddTrainer(uuid.New()))

	restored, err := Restore(g.Record())
	require.NoError(t, err)
	assert.Equal(t, g.Record(), restored.Record())

	rec := g.Record()
	rec.TrainerIDs = append(rec.TrainerIDs, rec.TrainerIDs[0])
	_, err = Restore(rec)
	assert.Error(t, err)
}
