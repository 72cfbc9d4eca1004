package location

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateCountry(ctx context.Context, c *Country) error
	ListCountries(ctx context.Context) ([]Country, error)
	CountryExists(ctx context.Context, id uuid.UUID) (bool, error)

	CreateCity(ctx context.Context, c *City) error
	ListCities(ctx context.Context, countryID *uuid.UUID) ([]City, error)
	CityExists(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteCity(ctx context.Context, id uuid.UUID) error
}
