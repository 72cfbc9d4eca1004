package subscription

import (
	"math/rand"
	"testing"
	"time"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func newTestSubscription(t *testing.T, days int) *Subscription {
	t.Helper()
	s, err := NewSubscription(uuid.New(), TierBasic, t0, t0.AddDate(0, 0, days), decimal.NewFromInt(50), "azn", false, nil)
	require.NoError(t, err)
	return s
}

func TestNewSubscription(t *testing.T) {
	freezeTime(t, t0)
	user := uuid.New()
	fifty := decimal.NewFromInt(50)

	tests := []struct {
		name    string
		userID  uuid.UUID
		tier    Tier
		start   time.Time
		end     time.Time
		amount  decimal.Decimal
		wantErr bool
	}{
		{"valid", user, TierBasic, t0, t0.AddDate(0, 0, 30), fifty, false},
		{"started in the past", user, TierVip, t0.AddDate(0, 0, -10), t0.AddDate(0, 0, 1), fifty, false},
		{"ends later today", user, TierBasic, t0.Add(-48 * time.Hour), t0.Add(-time.Hour), fifty, false},
		{"start equals end", user, TierBasic, t0, t0, fifty, true},
		{"start after end", user, TierBasic, t0.AddDate(0, 0, 2), t0.AddDate(0, 0, 1), fifty, true},
		{"ended yesterday", user, TierBasic, t0.AddDate(0, 0, -30), t0.AddDate(0, 0, -1), fifty, true},
		{"zero amount", user, TierBasic, t0, t0.AddDate(0, 0, 30), decimal.Zero, true},
		{"negative amount", user, TierBasic, t0, t0.AddDate(0, 0, 30), decimal.NewFromInt(-5), true},
		{"unknown tier", user, Tier("trial"), t0, t0.AddDate(0, 0, 30), fifty, true},
		{"missing user", uuid.Nil, TierBasic, t0, t0.AddDate(0, 0, 30), fifty, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSubscription(tt.userID, tt.tier, tt.start, tt.end, tt.amount, "AZN", false, nil)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrValidation)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.False(t, s.IsCancelled())
			assert.Equal(t, "AZN", s.Currency())
		})
	}
}

func TestNewSubscription_RandomWindows(t *testing.T) {
	freezeTime(t, t0)
	rng := rand.New(rand.NewSource(11))
	day := 24 * time.Hour

	for i := 0; i < 300; i++ {
		start := t0.Add(time.Duration(rng.Intn(120)-60) * day)
		end := t0.Add(time.Duration(rng.Intn(120)-60) * day)

		_, err := NewSubscription(uuid.New(), TierBasic, start, end, decimal.NewFromInt(10), "AZN", false, nil)
		valid := start.Before(end) && !end.Before(today())
		if valid {
			require.NoError(t, err, "start=%s end=%s", start, end)
		} else {
			require.ErrorIs(t, err, apperror.ErrValidation, "start=%s end=%s", start, end)
		}
	}
}

func TestSubscription_CancelScenario(t *testing.T) {
	freezeTime(t, t0)
	s := newTestSubscription(t, 30)

	require.NoError(t, s.Cancel("moving away"))
	assert.True(t, s.IsCancelled())
	assert.False(t, s.IsActive())
	assert.Equal(t, "moving away", s.CancellationReason())
	require.NotNil(t, s.CancelledAt())

	assert.ErrorIs(t, s.Cancel(""), apperror.ErrInvalidState)

	freezeTime(t, t0.AddDate(0, 0, 31))
	assert.ErrorIs(t, s.Reactivate(), apperror.ErrInvalidState)
}

func TestSubscription_Reactivate(t *testing.T) {
	freezeTime(t, t0)
	s := newTestSubscription(t, 30)

	assert.ErrorIs(t, s.Reactivate(), apperror.ErrInvalidState)

	require.NoError(t, s.Cancel("pause"))
	require.NoError(t, s.Reactivate())
	assert.False(t, s.IsCancelled())
	assert.Nil(t, s.CancelledAt())
	assert.Empty(t, s.CancellationReason())
	assert.True(t, s.IsActive())
}

func TestSubscription_Extend(t *testing.T) {
	freezeTime(t, t0)
	s := newTestSubscription(t, 30)

	assert.ErrorIs(t, s.Extend(s.EndDate()), apperror.ErrInvalidState)
	assert.ErrorIs(t, s.Extend(s.EndDate().Add(-time.Hour)), apperror.ErrInvalidState)

	newEnd := s.EndDate().AddDate(0, 0, 10)
	require.NoError(t, s.Extend(newEnd))
	assert.Equal(t, newEnd, s.EndDate())

	require.NoError(t, s.Cancel(""))
	assert.ErrorIs(t, s.Extend(newEnd.AddDate(0, 0, 1)), apperror.ErrInvalidState)
}

func TestSubscription_DerivedFields(t *testing.T) {
	freezeTime(t, t0)
	s := newTestSubscription(t, 30)

	assert.True(t, s.IsActive())
	assert.Equal(t, 30, s.RemainingDays())
	assert.False(t, s.IsExpiringSoon())

	freezeTime(t, t0.AddDate(0, 0, 23))
	assert.Equal(t, 7, s.RemainingDays())
	assert.True(t, s.IsExpiringSoon())

	freezeTime(t, t0.AddDate(0, 0, 31))
	assert.False(t, s.IsActive())
	assert.Equal(t, 0, s.RemainingDays())
	assert.False(t, s.IsExpiringSoon())

	freezeTime(t, t0.Add(-time.Hour))
	assert.False(t, s.IsActive(), "not started yet")
}

func TestSubscription_Renew(t *testing.T) {
	freezeTime(t, t0)
	trainer := uuid.New()
	s, err := NewSubscription(uuid.New(), TierPremium, t0, t0.AddDate(0, 0, 30), decimal.NewFromInt(100), "AZN", true, &trainer)
	require.NoError(t, err)

	_, err = s.Renew(s.EndDate().AddDate(0, 0, -2), s.EndDate().AddDate(0, 0, 30), nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)

	sameDay := s.EndDate().Truncate(24 * time.Hour)
	next, err := s.Renew(sameDay, sameDay.AddDate(0, 0, 30), nil)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID(), next.ID())
	assert.Equal(t, s.UserID(), next.UserID())
	assert.Equal(t, TierPremium, next.Tier())
	assert.Equal(t, &trainer, next.TrainerID())
	assert.True(t, next.AutoRenewal())
	assert.True(t, next.Amount().Equal(s.Amount()))

	price := decimal.NewFromInt(120)
	next, err = s.Renew(s.EndDate(), s.EndDate().AddDate(0, 0, 30), &price)
	require.NoError(t, err)
	assert.True(t, next.Amount().Equal(price))

	require.NoError(t, s.Cancel(""))
	_, err = s.Renew(s.EndDate(), s.EndDate().AddDate(0, 0, 30), nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestSubscription_Trainer(t *testing.T) {
	freezeTime(t, t0)
	s := newTestSubscription(t, 30)
	trainer := uuid.New()

	assert.ErrorIs(t, s.AssignTrainer(uuid.Nil), apperror.ErrValidation)
	require.NoError(t, s.AssignTrainer(trainer))
	assert.Equal(t, trainer, *s.TrainerID())

	s.RemoveTrainer()
	assert.Nil(t, s.TrainerID())

	require.NoError(t, s.Cancel(""))
	assert.ErrorIs(t, s.AssignTrainer(trainer), apperror.ErrInvalidState)
}

func TestSubscription_AmountAndAutoRenewal(t *testing.T) {
	freezeTime(t, t0)
	s := newTestSubscription(t, 30)

	assert.ErrorIs(t, s.UpdateAmount(decimal.Zero), apperror.ErrValidation)
	require.NoError(t, s.UpdateAmount(decimal.RequireFromString("45.50")))
	assert.Equal(t, "45.5", s.Amount().String())

	require.NoError(t, s.EnableAutoRenewal())
	assert.True(t, s.AutoRenewal())
	s.DisableAutoRenewal()
	assert.False(t, s.AutoRenewal())

	require.NoError(t, s.Cancel(""))
	assert.ErrorIs(t, s.EnableAutoRenewal(), apperror.ErrInvalidState)
}

func TestSubscription_RecordRoundTrip(t *testing.T) {
	freezeTime(t, t0)
	s := newTestSubscription(t, 30)
	require.NoError(t, s.Cancel("too expensive"))

	restored, err := Restore(s.Record())
	require.NoError(t, err)
	assert.Equal(t, s.Record(), restored.Record())

	bad := s.Record()
	bad.Tier = "gold"
	_, err = Restore(bad)
	assert.Error(t, err)
}

func TestTier(t *testing.T) {
	assert.Len(t, AllTiers(), 4)

	tier, err := ParseTier(" VIP ")
	require.NoError(t, err)
	assert.Equal(t, TierVip, tier)

	_, err = ParseTier("trial")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	assert.Equal(t, 365, TierCorporate.DurationDays())
	assert.True(t, TierCorporate.BasePrice().Equal(decimal.NewFromInt(1000)))
	assert.False(t, TierBasic.RequiresTrainer())
	assert.True(t, TierPremium.RequiresTrainer())
	assert.Equal(t, "VIP", TierVip.View().DisplayName)
}

func TestTier_AllowsGym(t *testing.T) {
	tests := []struct {
		tier  Tier
		price string
		want  bool
	}{
		{TierVip, "500", true},
		{TierPremium, "100", true},
		{TierPremium, "100.01", false},
		{TierBasic, "60", true},
		{TierBasic, "61", false},
		{TierCorporate, "10", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tier.AllowsGym(decimal.RequireFromString(tt.price)), "%s at %s", tt.tier, tt.price)
	}
}
