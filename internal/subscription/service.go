package subscription

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitcircle/internal/apperror"
	"fitcircle/internal/auth"
	"fitcircle/internal/db"
	"fitcircle/internal/logger"
	"fitcircle/internal/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GymPricer resolves a gym's monthly price for access checks.
type GymPricer interface {
	MonthlyPrice(ctx context.Context, gymID uuid.UUID) (decimal.Decimal, error)
}

type TrainerFinder interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Notifier receives subscription lifecycle events.
type Notifier interface {
	SubscriptionCancelled(ctx context.Context, userID uuid.UUID, tier, reason string)
	SubscriptionRenewed(ctx context.Context, userID uuid.UUID, tier string, start, end time.Time)
}

type CreateSubscriptionRequest struct {
	UserID      *uuid.UUID       `json:"user_id,omitempty" swaggertype:"string" example:"7f1c3a52-8d7e-4c8a-9a57-1b2f0e6d4c11"`
	Tier        string           `json:"tier" binding:"required" example:"premium"`
	StartDate   *time.Time       `json:"start_date,omitempty" example:"2026-11-01T00:00:00Z"`
	EndDate     *time.Time       `json:"end_date,omitempty" example:"2026-12-01T00:00:00Z"`
	Amount      *decimal.Decimal `json:"amount,omitempty" swaggertype:"string" example:"100"`
	Currency    string           `json:"currency,omitempty" example:"AZN"`
	AutoRenewal bool             `json:"auto_renewal" example:"true"`
	TrainerID   *uuid.UUID       `json:"trainer_id,omitempty" swaggertype:"string"`
}

type RenewRequest struct {
	StartDate *time.Time       `json:"start_date,omitempty" example:"2026-12-01T00:00:00Z"`
	EndDate   *time.Time       `json:"end_date,omitempty" example:"2027-01-01T00:00:00Z"`
	Amount    *decimal.Decimal `json:"amount,omitempty" swaggertype:"string" example:"90"`
}

// AccessDecision explains whether a user may enter a gym.
type AccessDecision struct {
	Allowed        bool       `json:"allowed" example:"true"`
	Reason         string     `json:"reason,omitempty" example:"gym price exceeds tier"`
	Tier           Tier       `json:"tier,omitempty" example:"premium"`
	SubscriptionID *uuid.UUID `json:"subscription_id,omitempty" swaggertype:"string"`
}

type Service interface {
	Tiers() []TierView

	Create(ctx context.Context, p auth.Principal, req CreateSubscriptionRequest) (*Subscription, error)
	Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*Subscription, error)
	ListForUser(ctx context.Context, p auth.Principal, userID uuid.UUID) ([]*Subscription, error)

	Extend(ctx context.Context, p auth.Principal, id uuid.UUID, newEnd time.Time) (*Subscription, error)
	Cancel(ctx context.Context, p auth.Principal, id uuid.UUID, reason string) (*Subscription, error)
	Reactivate(ctx context.Context, p auth.Principal, id uuid.UUID) (*Subscription, error)
	Renew(ctx context.Context, p auth.Principal, id uuid.UUID, req RenewRequest) (*Subscription, error)
	AssignTrainer(ctx context.Context, p auth.Principal, id, trainerID uuid.UUID) (*Subscription, error)
	RemoveTrainer(ctx context.Context, p auth.Principal, id uuid.UUID) (*Subscription, error)
	SetAutoRenewal(ctx context.Context, p auth.Principal, id uuid.UUID, enabled bool) (*Subscription, error)
	UpdateAmount(ctx context.Context, p auth.Principal, id uuid.UUID, amount decimal.Decimal) (*Subscription, error)

	CanAccessGym(ctx context.Context, userID, gymID uuid.UUID) (AccessDecision, error)
}

type service struct {
	repo            Repository
	gyms            GymPricer
	trainers        TrainerFinder
	notifier        Notifier
	defaultCurrency string
}

func NewService(repo Repository, gyms GymPricer, trainers TrainerFinder, notifier Notifier, defaultCurrency string) Service {
	return &service{
		repo:            repo,
		gyms:            gyms,
		trainers:        trainers,
		notifier:        notifier,
		defaultCurrency: defaultCurrency,
	}
}

func (s *service) Tiers() []TierView {
	all := AllTiers()
	views := make([]TierView, 0, len(all))
	for _, t := range all {
		views = append(views, t.View())
	}
	return views
}

func (s *service) Create(ctx context.Context, p auth.Principal, req CreateSubscriptionRequest) (*Subscription, error) {
	const op = "subscription.create"

	userID := p.UserID
	if req.UserID != nil {
		userID = *req.UserID
	}
	if !p.CanActFor(userID) {
		return nil, apperror.Forbidden(op, "cannot create a subscription for another user")
	}

	tier, err := ParseTier(req.Tier)
	if err != nil {
		return nil, err
	}

	if req.TrainerID != nil {
		if err := s.ensureTrainer(ctx, op, *req.TrainerID); err != nil {
			return nil, err
		}
	}

	start := now()
	if req.StartDate != nil {
		start = req.StartDate.UTC()
	}
	end := start.AddDate(0, 0, tier.DurationDays())
	if req.EndDate != nil {
		end = req.EndDate.UTC()
	}
	if err := checkPricing(op, p, req.Amount, req.Currency, s.defaultCurrency); err != nil {
		return nil, err
	}
	amount := tier.BasePrice()
	if req.Amount != nil {
		amount = *req.Amount
	}
	currency := req.Currency
	if strings.TrimSpace(currency) == "" {
		currency = s.defaultCurrency
	}

	sub, err := NewSubscription(userID, tier, start, end, amount, currency, req.AutoRenewal, req.TrainerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	metrics.RecordSubscription(string(tier))
	logger.Info("subscription created", "subscription_id", sub.ID(), "user_id", userID, "tier", tier)
	return sub, nil
}

// checkPricing keeps price overrides with managers. Members pay the tier
// price in the default currency.
func checkPricing(op string, p auth.Principal, amount *decimal.Decimal, currency, defaultCurrency string) error {
	if p.Role.HasAtLeast(auth.RoleManager) {
		return nil
	}
	if amount != nil {
		return apperror.Forbidden(op, "only managers can set the amount")
	}
	if c := strings.TrimSpace(currency); c != "" && !strings.EqualFold(c, defaultCurrency) {
		return apperror.Forbidden(op, "only managers can set the currency")
	}
	return nil
}

func (s *service) ensureTrainer(ctx context.Context, op string, trainerID uuid.UUID) error {
	ok, err := s.trainers.Exists(ctx, trainerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound(op, "trainer %s not found", trainerID)
	}
	return nil
}

func (s *service) Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*Subscription, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanActFor(sub.UserID()) {
		return nil, apperror.Forbidden("subscription.get", "subscription belongs to another user")
	}
	return sub, nil
}

func (s *service) ListForUser(ctx context.Context, p auth.Principal, userID uuid.UUID) ([]*Subscription, error) {
	if !p.CanActFor(userID) {
		return nil, apperror.Forbidden("subscription.list", "cannot list another user's subscriptions")
	}
	return s.repo.ListByUser(ctx, userID)
}

// mutate loads the subscription, checks ownership, applies one change and
// saves it, retrying when the row moved underneath.
func (s *service) mutate(ctx context.Context, p auth.Principal, id uuid.UUID, change func(*Subscription) error) (*Subscription, error) {
	var sub *Subscription
	err := db.RetryOnConflict(ctx, func() error {
		var err error
		sub, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !p.CanActFor(sub.UserID()) {
			return apperror.Forbidden("subscription.update", "subscription belongs to another user")
		}
		if err := change(sub); err != nil {
			return err
		}
		return s.repo.Update(ctx, sub)
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *service) Extend(ctx context.Context, p auth.Principal, id uuid.UUID, newEnd time.Time) (*Subscription, error) {
	sub, err := s.mutate(ctx, p, id, func(sub *Subscription) error { return sub.Extend(newEnd.UTC()) })
	if err != nil {
		return nil, err
	}

	logger.Info("subscription extended", "subscription_id", id, "end_date", sub.EndDate())
	return sub, nil
}

func (s *service) Cancel(ctx context.Context, p auth.Principal, id uuid.UUID, reason string) (*Subscription, error) {
	sub, err := s.mutate(ctx, p, id, func(sub *Subscription) error { return sub.Cancel(reason) })
	if err != nil {
		return nil, err
	}

	metrics.RecordSubscriptionCancellation(string(sub.Tier()))
	logger.Info("subscription cancelled", "subscription_id", id, "reason", sub.CancellationReason())
	s.notifier.SubscriptionCancelled(ctx, sub.UserID(), sub.Tier().DisplayName(), sub.CancellationReason())
	return sub, nil
}

func (s *service) Reactivate(ctx context.Context, p auth.Principal, id uuid.UUID) (*Subscription, error) {
	sub, err := s.mutate(ctx, p, id, func(sub *Subscription) error { return sub.Reactivate() })
	if err != nil {
		return nil, err
	}

	logger.Info("subscription reactivated", "subscription_id", id)
	return sub, nil
}

// Renew starts a follow-up subscription right after the current one. The
// original row is left untouched.
func (s *service) Renew(ctx context.Context, p auth.Principal, id uuid.UUID, req RenewRequest) (*Subscription, error) {
	current, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil && !p.Role.HasAtLeast(auth.RoleManager) {
		return nil, apperror.Forbidden("subscription.renew", "only managers can set the amount")
	}

	start := current.EndDate()
	if req.StartDate != nil {
		start = req.StartDate.UTC()
	}
	end := start.AddDate(0, 0, current.Tier().DurationDays())
	if req.EndDate != nil {
		end = req.EndDate.UTC()
	}

	next, err := current.Renew(start, end, req.Amount)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, next); err != nil {
		return nil, err
	}

	metrics.RecordSubscriptionRenewal(string(next.Tier()))
	logger.Info("subscription renewed", "subscription_id", id, "renewal_id", next.ID(), "end_date", next.EndDate())
	s.notifier.SubscriptionRenewed(ctx, next.UserID(), next.Tier().DisplayName(), next.StartDate(), next.EndDate())
	return next, nil
}

func (s *service) AssignTrainer(ctx context.Context, p auth.Principal, id, trainerID uuid.UUID) (*Subscription, error) {
	if err := s.ensureTrainer(ctx, "subscription.assign_trainer", trainerID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, p, id, func(sub *Subscription) error { return sub.AssignTrainer(trainerID) })
}

func (s *service) RemoveTrainer(ctx context.Context, p auth.Principal, id uuid.UUID) (*Subscription, error) {
	return s.mutate(ctx, p, id, func(sub *Subscription) error {
		sub.RemoveTrainer()
		return nil
	})
}

func (s *service) SetAutoRenewal(ctx context.Context, p auth.Principal, id uuid.UUID, enabled bool) (*Subscription, error) {
	return s.mutate(ctx, p, id, func(sub *Subscription) error {
		if enabled {
			return sub.EnableAutoRenewal()
		}
		sub.DisableAutoRenewal()
		return nil
	})
}

func (s *service) UpdateAmount(ctx context.Context, p auth.Principal, id uuid.UUID, amount decimal.Decimal) (*Subscription, error) {
	if !p.Role.HasAtLeast(auth.RoleManager) {
		return nil, apperror.Forbidden("subscription.update_amount", "only managers can change the amount")
	}
	return s.mutate(ctx, p, id, func(sub *Subscription) error { return sub.UpdateAmount(amount) })
}

func (s *service) CanAccessGym(ctx context.Context, userID, gymID uuid.UUID) (AccessDecision, error) {
	price, err := s.gyms.MonthlyPrice(ctx, gymID)
	if err != nil {
		return AccessDecision{}, err
	}

	sub, err := s.repo.GetActiveByUser(ctx, userID)
	if errors.Is(err, apperror.ErrNotFound) {
		return AccessDecision{Allowed: false, Reason: "no active subscription"}, nil
	}
	if err != nil {
		return AccessDecision{}, err
	}

	id := sub.ID()
	decision := AccessDecision{Tier: sub.Tier(), SubscriptionID: &id, Allowed: sub.Tier().AllowsGym(price)}
	if !decision.Allowed {
		decision.Reason = "gym price exceeds tier"
	}
	return decision, nil
}
