package subscription

import (
	"strings"
	"time"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const expiringSoonDays = 7

var now = func() time.Time { return time.Now().UTC() }

func today() time.Time {
	return now().Truncate(24 * time.Hour)
}

// Subscription grants a user membership for the window [start, end].
type Subscription struct {
	id                 uuid.UUID
	userID             uuid.UUID
	tier               Tier
	start              time.Time
	end                time.Time
	amount             decimal.Decimal
	currency           string
	autoRenewal        bool
	cancelled          bool
	cancelledAt        *time.Time
	cancellationReason string
	trainerID          *uuid.UUID
	version            int
	createdAt          time.Time
	updatedAt          time.Time
}

// NewSubscription validates the window and amount and returns a
// subscription that is not cancelled.
func NewSubscription(
	userID uuid.UUID,
	tier Tier,
	start, end time.Time,
	amount decimal.Decimal,
	currency string,
	autoRenewal bool,
	trainerID *uuid.UUID,
) (*Subscription, error) {
	const op = "subscription.create"

	if userID == uuid.Nil {
		return nil, apperror.ValidationField(op, "user_id", "user id is required")
	}
	if !tier.Valid() {
		return nil, apperror.ValidationField(op, "tier", "unknown subscription tier %q", string(tier))
	}
	if err := validatePeriod(op, start, end); err != nil {
		return nil, err
	}
	if err := validateAmount(op, amount); err != nil {
		return nil, err
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return nil, apperror.ValidationField(op, "currency", "currency is required")
	}
	if trainerID != nil && *trainerID == uuid.Nil {
		trainerID = nil
	}

	t := now()
	return &Subscription{
		id:          uuid.New(),
		userID:      userID,
		tier:        tier,
		start:       start.UTC(),
		end:         end.UTC(),
		amount:      amount,
		currency:    currency,
		autoRenewal: autoRenewal,
		trainerID:   trainerID,
		createdAt:   t,
		updatedAt:   t,
	}, nil
}

func validatePeriod(op string, start, end time.Time) error {
	if !start.Before(end) {
		return apperror.ValidationField(op, "start_date", "start date must be before end date")
	}
	if end.Before(today()) {
		return apperror.ValidationField(op, "end_date", "end date cannot be in the past")
	}
	return nil
}

func validateAmount(op string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.ValidationField(op, "amount", "amount must be greater than zero")
	}
	return nil
}

func (s *Subscription) ID() uuid.UUID              { return s.id }
func (s *Subscription) UserID() uuid.UUID          { return s.userID }
func (s *Subscription) Tier() Tier                 { return s.tier }
func (s *Subscription) StartDate() time.Time       { return s.start }
func (s *Subscription) EndDate() time.Time         { return s.end }
func (s *Subscription) Amount() decimal.Decimal    { return s.amount }
func (s *Subscription) Currency() string           { return s.currency }
func (s *Subscription) AutoRenewal() bool          { return s.autoRenewal }
func (s *Subscription) IsCancelled() bool          { return s.cancelled }
func (s *Subscription) CancelledAt() *time.Time    { return s.cancelledAt }
func (s *Subscription) CancellationReason() string { return s.cancellationReason }
func (s *Subscription) TrainerID() *uuid.UUID      { return s.trainerID }
func (s *Subscription) Version() int               { return s.version }

// IsActive is evaluated against the clock on every call.
func (s *Subscription) IsActive() bool {
	t := now()
	return !s.cancelled && !t.Before(s.start) && !t.After(s.end)
}

// RemainingDays counts whole calendar days until the end date, zero when the
// subscription is not active.
func (s *Subscription) RemainingDays() int {
	if !s.IsActive() {
		return 0
	}
	days := int(s.end.Truncate(24*time.Hour).Sub(today()).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func (s *Subscription) IsExpiringSoon() bool {
	return s.IsActive() && s.RemainingDays() <= expiringSoonDays
}

func (s *Subscription) touch() {
	s.updatedAt = now()
}

func (s *Subscription) Extend(newEnd time.Time) error {
	const op = "subscription.extend"

	if s.cancelled {
		return apperror.InvalidState(op, "a cancelled subscription cannot be extended")
	}
	if !newEnd.After(s.end) {
		return apperror.InvalidState(op, "new end date must be after the current end date")
	}

	s.end = newEnd.UTC()
	s.touch()
	return nil
}

// Cancel is not idempotent: cancelling twice is an error.
func (s *Subscription) Cancel(reason string) error {
	if s.cancelled {
		return apperror.InvalidState("subscription.cancel", "subscription is already cancelled")
	}

	t := now()
	s.cancelled = true
	s.cancelledAt = &t
	s.cancellationReason = strings.TrimSpace(reason)
	s.updatedAt = t
	return nil
}

func (s *Subscription) Reactivate() error {
	const op = "subscription.reactivate"

	if !s.cancelled {
		return apperror.InvalidState(op, "subscription is not cancelled")
	}
	if now().After(s.end) {
		return apperror.InvalidState(op, "an expired subscription cannot be reactivated")
	}

	s.cancelled = false
	s.cancelledAt = nil
	s.cancellationReason = ""
	s.touch()
	return nil
}

// Renew returns a new subscription that continues this one. Tier, trainer,
// currency and auto-renewal carry over. A nil amount keeps the current one.
func (s *Subscription) Renew(newStart, newEnd time.Time, newAmount *decimal.Decimal) (*Subscription, error) {
	const op = "subscription.renew"

	if !s.IsActive() {
		return nil, apperror.InvalidState(op, "only an active subscription can be renewed")
	}
	if newStart.Before(s.end.Truncate(24 * time.Hour)) {
		return nil, apperror.InvalidState(op, "renewal cannot start before the current end date")
	}

	amount := s.amount
	if newAmount != nil {
		amount = *newAmount
	}
	return NewSubscription(s.userID, s.tier, newStart, newEnd, amount, s.currency, s.autoRenewal, s.trainerID)
}

func (s *Subscription) AssignTrainer(trainerID uuid.UUID) error {
	const op = "subscription.assign_trainer"

	if s.cancelled {
		return apperror.InvalidState(op, "a cancelled subscription cannot get a trainer")
	}
	if trainerID == uuid.Nil {
		return apperror.ValidationField(op, "trainer_id", "trainer id is required")
	}

	s.trainerID = &trainerID
	s.touch()
	return nil
}

func (s *Subscription) RemoveTrainer() {
	s.trainerID = nil
	s.touch()
}

func (s *Subscription) UpdateAmount(amount decimal.Decimal) error {
	if err := validateAmount("subscription.update_amount", amount); err != nil {
		return err
	}

	s.amount = amount
	s.touch()
	return nil
}

func (s *Subscription) EnableAutoRenewal() error {
	if s.cancelled {
		return apperror.InvalidState("subscription.enable_auto_renewal", "a cancelled subscription cannot auto-renew")
	}

	s.autoRenewal = true
	s.touch()
	return nil
}

func (s *Subscription) DisableAutoRenewal() {
	s.autoRenewal = false
	s.touch()
}

// Record is the persisted and serialized shape of a subscription.
type Record struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	UserID             uuid.UUID       `db:"user_id" json:"user_id"`
	Tier               Tier            `db:"tier" json:"tier"`
	StartDate          time.Time       `db:"start_date" json:"start_date"`
	EndDate            time.Time       `db:"end_date" json:"end_date"`
	Amount             decimal.Decimal `db:"amount" json:"amount"`
	Currency           string          `db:"currency" json:"currency"`
	AutoRenewal        bool            `db:"auto_renewal" json:"auto_renewal"`
	IsCancelled        bool            `db:"is_cancelled" json:"is_cancelled"`
	CancelledAt        *time.Time      `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CancellationReason *string         `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	TrainerID          *uuid.UUID      `db:"trainer_id" json:"trainer_id,omitempty"`
	Version            int             `db:"version" json:"version"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
}

func (s *Subscription) Record() Record {
	r := Record{
		ID:          s.id,
		UserID:      s.userID,
		Tier:        s.tier,
		StartDate:   s.start,
		EndDate:     s.end,
		Amount:      s.amount,
		Currency:    s.currency,
		AutoRenewal: s.autoRenewal,
		IsCancelled: s.cancelled,
		CancelledAt: s.cancelledAt,
		TrainerID:   s.trainerID,
		Version:     s.version,
		CreatedAt:   s.createdAt,
		UpdatedAt:   s.updatedAt,
	}
	if s.cancellationReason != "" {
		reason := s.cancellationReason
		r.CancellationReason = &reason
	}
	return r
}

func Restore(r Record) (*Subscription, error) {
	if !r.Tier.Valid() {
		return nil, apperror.Validation("subscription.restore", "unknown subscription tier %q", string(r.Tier))
	}

	s := &Subscription{
		id:          r.ID,
		userID:      r.UserID,
		tier:        r.Tier,
		start:       r.StartDate,
		end:         r.EndDate,
		amount:      r.Amount,
		currency:    r.Currency,
		autoRenewal: r.AutoRenewal,
		cancelled:   r.IsCancelled,
		cancelledAt: r.CancelledAt,
		trainerID:   r.TrainerID,
		version:     r.Version,
		createdAt:   r.CreatedAt,
		updatedAt:   r.UpdatedAt,
	}
	if r.CancellationReason != nil {
		s.cancellationReason = *r.CancellationReason
	}
	return s, nil
}

// View adds the clock-derived fields to the record.
type View struct {
	Record
	IsActive       bool `json:"is_active"`
	RemainingDays  int  `json:"remaining_days"`
	IsExpiringSoon bool `json:"is_expiring_soon"`
}

func (s *Subscription) View() View {
	return View{
		Record:         s.Record(),
		IsActive:       s.IsActive(),
		RemainingDays:  s.RemainingDays(),
		IsExpiringSoon: s.IsExpiringSoon(),
	}
}
