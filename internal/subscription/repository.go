package subscription

import (
	"context"
	"fmt"

	"fitcircle/internal/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const columns = `id, user_id, tier, start_date, end_date, amount, currency, auto_renewal,
	is_cancelled, cancelled_at, cancellation_reason, trainer_id, version, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id, user_id, tier, start_date, end_date, amount, currency, auto_renewal,
			is_cancelled, cancelled_at, cancellation_reason, trainer_id, version, created_at, updated_at
		) VALUES (
			:id, :user_id, :tier, :start_date, :end_date, :amount, :currency, :auto_renewal,
			:is_cancelled, :cancelled_at, :cancellation_reason, :trainer_id, :version, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, s.Record()); err != nil {
		return db.ConstraintOr(err, "subscription.create", "subscription")
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	query := `SELECT ` + columns + ` FROM subscriptions WHERE id = $1`

	var rec Record
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		return nil, db.NotFoundOr(err, "subscription.get", "subscription")
	}
	return Restore(rec)
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Subscription, error) {
	query := `SELECT ` + columns + ` FROM subscriptions WHERE user_id = $1 ORDER BY start_date DESC`

	var recs []Record
	if err := r.db.SelectContext(ctx, &recs, query, userID); err != nil {
		return nil, fmt.Errorf("subscription.list: %w", err)
	}
	return restoreAll(recs)
}

func (r *repository) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*Subscription, error) {
	query := `SELECT ` + columns + ` FROM subscriptions
		WHERE user_id = $1 AND NOT is_cancelled AND start_date <= $2 AND end_date >= $2
		ORDER BY end_date DESC
		LIMIT 1`

	var rec Record
	if err := r.db.GetContext(ctx, &rec, query, userID, now()); err != nil {
		return nil, db.NotFoundOr(err, "subscription.get_active", "active subscription")
	}
	return Restore(rec)
}

func (r *repository) Update(ctx context.Context, s *Subscription) error {
	query := `
		UPDATE subscriptions SET
			end_date = $2,
			amount = $3,
			auto_renewal = $4,
			is_cancelled = $5,
			cancelled_at = $6,
			cancellation_reason = $7,
			trainer_id = $8,
			updated_at = $9,
			version = version + 1
		WHERE id = $1 AND version = $10
	`

	rec := s.Record()
	res, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.EndDate, rec.Amount, rec.AutoRenewal, rec.IsCancelled,
		rec.CancelledAt, rec.CancellationReason, rec.TrainerID, rec.UpdatedAt, rec.Version,
	)
	if err != nil {
		return db.ConstraintOr(err, "subscription.update", "subscription")
	}
	if err := db.CheckVersion(res, "subscription.update"); err != nil {
		return err
	}

	s.version++
	return nil
}

func restoreAll(recs []Record) ([]*Subscription, error) {
	out := make([]*Subscription, 0, len(recs))
	for _, rec := range recs {
		s, err := Restore(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
