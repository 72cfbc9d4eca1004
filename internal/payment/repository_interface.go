package payment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*Payment, error)
	Update(ctx context.Context, p *Payment) error
}
