package gym

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, g *Gym) error
	GetByID(ctx context.Context, id uuid.UUID) (*Gym, error)
	// List returns gyms ordered by name, optionally restricted to a city.
	List(ctx context.Context, cityID *uuid.UUID) ([]*Gym, error)
	Update(ctx context.Context, g *Gym) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	MonthlyPrice(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}
