package gym

import (
	"context"
	"fmt"

	"fitcircle/internal/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const selectGym = `
	SELECT g.id, g.name, g.description, g.address, g.city_id, g.phone, g.email,
		g.latitude, g.longitude, g.monthly_price, g.is_vip_supported, g.is_corporate_partner,
		g.version, g.created_at, g.updated_at,
		ARRAY(SELECT f.id::text FROM facilities f
			WHERE f.gym_id = g.id AND f.deleted_at IS NULL ORDER BY f.created_at) AS facility_ids,
		ARRAY(SELECT t.id::text FROM trainers t
			WHERE t.gym_id = g.id ORDER BY t.created_at) AS trainer_ids
	FROM gyms g`

// row is a gym with its child ids aggregated into postgres arrays.
type row struct {
	Record
	Facilities pq.StringArray `db:"facility_ids"`
	Trainers   pq.StringArray `db:"trainer_ids"`
}

func (r row) restore() (*Gym, error) {
	var err error
	if r.FacilityIDs, err = parseIDs(r.Facilities); err != nil {
		return nil, err
	}
	if r.TrainerIDs, err = parseIDs(r.Trainers); err != nil {
		return nil, err
	}
	return Restore(r.Record)
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("gym.restore: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, g *Gym) error {
	query := `
		INSERT INTO gyms (
			id, name, description, address, city_id, phone, email, latitude, longitude,
			monthly_price, is_vip_supported, is_corporate_partner, version, created_at, updated_at
		) VALUES (
			:id, :name, :description, :address, :city_id, :phone, :email, :latitude, :longitude,
			:monthly_price, :is_vip_supported, :is_corporate_partner, :version, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, g.Record()); err != nil {
		return fmt.Errorf("gym.create: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Gym, error) {
	var rw row
	if err := r.db.GetContext(ctx, &rw, selectGym+` WHERE g.id = $1`, id); err != nil {
		return nil, db.NotFoundOr(err, "gym.get", "gym")
	}
	return rw.restore()
}

func (r *repository) List(ctx context.Context, cityID *uuid.UUID) ([]*Gym, error) {
	query := selectGym + ` WHERE ($1::uuid IS NULL OR g.city_id = $1) ORDER BY g.name`

	var rows []row
	if err := r.db.SelectContext(ctx, &rows, query, cityID); err != nil {
		return nil, fmt.Errorf("gym.list: %w", err)
	}

	out := make([]*Gym, 0, len(rows))
	for _, rw := range rows {
		g, err := rw.restore()
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *repository) Update(ctx context.Context, g *Gym) error {
	query := `
		UPDATE gyms SET
			name = $2,
			description = $3,
			address = $4,
			city_id = $5,
			phone = $6,
			email = $7,
			latitude = $8,
			longitude = $9,
			monthly_price = $10,
			is_vip_supported = $11,
			is_corporate_partner = $12,
			updated_at = $13,
			version = version + 1
		WHERE id = $1 AND version = $14
	`

	rec := g.Record()
	res, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.Description, rec.Address, rec.CityID, rec.Phone, rec.Email,
		rec.Latitude, rec.Longitude, rec.MonthlyPrice, rec.VipSupported, rec.CorporatePartner,
		rec.UpdatedAt, rec.Version,
	)
	if err != nil {
		return fmt.Errorf("gym.update: %w", err)
	}
	if err := db.CheckVersion(res, "gym.update"); err != nil {
		return err
	}

	g.version++
	return nil
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM gyms WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("gym.exists: %w", err)
	}
	return exists, nil
}

func (r *repository) MonthlyPrice(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	var price decimal.Decimal
	if err := r.db.GetContext(ctx, &price, `SELECT monthly_price FROM gyms WHERE id = $1`, id); err != nil {
		return decimal.Zero, db.NotFoundOr(err, "gym.monthly_price", "gym")
	}
	return price, nil
}
