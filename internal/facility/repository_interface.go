package facility

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, f *Facility) error
	GetByID(ctx context.Context, id uuid.UUID) (*Facility, error)
	ListByGym(ctx context.Context, gymID uuid.UUID) ([]*Facility, error)
	Update(ctx context.Context, f *Facility) error
}
