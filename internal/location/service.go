package location

import (
	"context"
	"strings"
	"time"

	"fitcircle/internal/apperror"
	"fitcircle/internal/logger"

	"github.com/google/uuid"
)

type Service interface {
	CreateCountry(ctx context.Context, req CreateCountryRequest) (*Country, error)
	ListCountries(ctx context.Context) ([]Country, error)

	CreateCity(ctx context.Context, req CreateCityRequest) (*City, error)
	ListCities(ctx context.Context, countryID *uuid.UUID) ([]City, error)
	DeleteCity(ctx context.Context, id uuid.UUID) error
	CityExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCountry(ctx context.Context, req CreateCountryRequest) (*Country, error) {
	c := &Country{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Code:      strings.ToUpper(strings.TrimSpace(req.Code)),
		CreatedAt: time.Now().UTC(),
	}
	if c.Name == "" {
		return nil, apperror.ValidationField("location.create_country", "name", "name is required")
	}

	if err := s.repo.CreateCountry(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("country created", "country_id", c.ID, "code", c.Code)
	return c, nil
}

func (s *service) ListCountries(ctx context.Context) ([]Country, error) {
	return s.repo.ListCountries(ctx)
}

func (s *service) CreateCity(ctx context.Context, req CreateCityRequest) (*City, error) {
	const op = "location.create_city"

	c := &City{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		PostalCode: strings.TrimSpace(req.PostalCode),
		CountryID:  req.CountryID,
		CreatedAt:  time.Now().UTC(),
	}
	if c.Name == "" {
		return nil, apperror.ValidationField(op, "name", "name is required")
	}

	ok, err := s.repo.CountryExists(ctx, req.CountryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound(op, "country %s not found", req.CountryID)
	}

	if err := s.repo.CreateCity(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("city created", "city_id", c.ID, "name", c.Name)
	return c, nil
}

func (s *service) ListCities(ctx context.Context, countryID *uuid.UUID) ([]City, error) {
	return s.repo.ListCities(ctx, countryID)
}

func (s *service) DeleteCity(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCity(ctx, id); err != nil {
		return err
	}

	logger.Info("city deleted", "city_id", id)
	return nil
}

func (s *service) CityExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.CityExists(ctx, id)
}
