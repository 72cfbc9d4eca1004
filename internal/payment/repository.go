package payment

import (
	"context"
	"fmt"

	"fitcircle/internal/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const columns = `id, subscription_id, user_id, amount, currency, status, method, payment_date,
	completed_at, transaction_id, external_reference, description, failure_reason,
	refunded_amount, refunded_at, refund_reason, refund_notes, processor_response,
	version, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	query := `
		INSERT INTO payments (
			id, subscription_id, user_id, amount, currency, status, method, payment_date,
			completed_at, transaction_id, external_reference, description, failure_reason,
			refunded_amount, refunded_at, refund_reason, refund_notes, processor_response,
			version, created_at, updated_at
		) VALUES (
			:id, :subscription_id, :user_id, :amount, :currency, :status, :method, :payment_date,
			:completed_at, :transaction_id, :external_reference, :description, :failure_reason,
			:refunded_amount, :refunded_at, :refund_reason, :refund_notes, :processor_response,
			:version, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, p.Record()); err != nil {
		return db.ConstraintOr(err, "payment.create", "payment")
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	var rec Record
	if err := r.db.GetContext(ctx, &rec, `SELECT `+columns+` FROM payments WHERE id = $1`, id); err != nil {
		return nil, db.NotFoundOr(err, "payment.get", "payment")
	}
	return Restore(rec)
}

func (r *repository) ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*Payment, error) {
	query := `SELECT ` + columns + ` FROM payments WHERE subscription_id = $1 ORDER BY payment_date DESC`

	var recs []Record
	if err := r.db.SelectContext(ctx, &recs, query, subscriptionID); err != nil {
		return nil, fmt.Errorf("payment.list: %w", err)
	}

	out := make([]*Payment, 0, len(recs))
	for _, rec := range recs {
		p, err := Restore(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *repository) Update(ctx context.Context, p *Payment) error {
	query := `
		UPDATE payments SET
			status = $2,
			completed_at = $3,
			transaction_id = $4,
			external_reference = $5,
			description = $6,
			failure_reason = $7,
			refunded_amount = $8,
			refunded_at = $9,
			refund_reason = $10,
			refund_notes = $11,
			processor_response = $12,
			updated_at = $13,
			version = version + 1
		WHERE id = $1 AND version = $14
	`

	rec := p.Record()
	res, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Status, rec.CompletedAt, rec.TransactionID, rec.ExternalReference,
		rec.Description, rec.FailureReason, rec.RefundedAmount, rec.RefundedAt,
		rec.RefundReason, rec.RefundNotes, rec.ProcessorResponse, rec.UpdatedAt, rec.Version,
	)
	if err != nil {
		return fmt.Errorf("payment.update: %w", err)
	}
	if err := db.CheckVersion(res, "payment.update"); err != nil {
		return err
	}

	p.version++
	return nil
}
