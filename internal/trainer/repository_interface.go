package trainer

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, t *Trainer) error
	GetByID(ctx context.Context, id uuid.UUID) (*Trainer, error)
	Update(ctx context.Context, t *Trainer) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	CreateRating(ctx context.Context, r *Rating) error
	GetRating(ctx context.Context, id uuid.UUID) (*Rating, error)
	UpdateRating(ctx context.Context, r *Rating) error
}
