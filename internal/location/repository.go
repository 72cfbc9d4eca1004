package location

import (
	"context"
	"fmt"

	"fitcircle/internal/apperror"
	"fitcircle/internal/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateCountry(ctx context.Context, c *Country) error {
	query := `INSERT INTO countries (id, name, code, created_at) VALUES (:id, :name, :code, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return db.ConstraintOr(err, "location.create_country", "country")
	}
	return nil
}

func (r *repository) ListCountries(ctx context.Context) ([]Country, error) {
	var countries []Country
	query := `SELECT id, name, code, created_at FROM countries ORDER BY name`

	if err := r.db.SelectContext(ctx, &countries, query); err != nil {
		return nil, fmt.Errorf("location.list_countries: %w", err)
	}
	return countries, nil
}

func (r *repository) CountryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM countries WHERE id = $1)`, id)
}

func (r *repository) CreateCity(ctx context.Context, c *City) error {
	query := `
		INSERT INTO cities (id, name, postal_code, country_id, created_at)
		VALUES (:id, :name, :postal_code, :country_id, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return db.ConstraintOr(err, "location.create_city", "city")
	}
	return nil
}

func (r *repository) ListCities(ctx context.Context, countryID *uuid.UUID) ([]City, error) {
	var cities []City
	query := `
		SELECT id, name, postal_code, country_id, created_at
		FROM cities
		WHERE ($1::uuid IS NULL OR country_id = $1)
		ORDER BY name
	`

	if err := r.db.SelectContext(ctx, &cities, query, countryID); err != nil {
		return nil, fmt.Errorf("location.list_cities: %w", err)
	}
	return cities, nil
}

func (r *repository) CityExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM cities WHERE id = $1)`, id)
}

// DeleteCity refuses to remove a city that gyms still point at.
func (r *repository) DeleteCity(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return db.ConstraintOr(err, "location.delete_city", "city")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("location.delete_city: %w", err)
	}
	if n == 0 {
		return apperror.NotFound("location.delete_city", "city not found")
	}
	return nil
}
