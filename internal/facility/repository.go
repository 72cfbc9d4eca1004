package facility

import (
	"context"
	"fmt"

	"fitcircle/internal/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const columns = `id, gym_id, name, description, kind, max_capacity, hourly_rate, is_available,
	current_occupancy, maintenance_scheduled_at, unavailable_reason, version,
	created_at, updated_at, deleted_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *Facility) error {
	query := `
		INSERT INTO facilities (
			id, gym_id, name, description, kind, max_capacity, hourly_rate, is_available,
			current_occupancy, maintenance_scheduled_at, unavailable_reason, version,
			created_at, updated_at
		) VALUES (
			:id, :gym_id, :name, :description, :kind, :max_capacity, :hourly_rate, :is_available,
			:current_occupancy, :maintenance_scheduled_at, :unavailable_reason, :version,
			:created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, f.Record()); err != nil {
		return fmt.Errorf("facility.create: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Facility, error) {
	query := `SELECT ` + columns + ` FROM facilities WHERE id = $1 AND deleted_at IS NULL`

	var rec Record
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		return nil, db.NotFoundOr(err, "facility.get", "facility")
	}
	return Restore(rec)
}

func (r *repository) ListByGym(ctx context.Context, gymID uuid.UUID) ([]*Facility, error) {
	query := `SELECT ` + columns + ` FROM facilities
		WHERE gym_id = $1 AND deleted_at IS NULL
		ORDER BY created_at`

	var recs []Record
	if err := r.db.SelectContext(ctx, &recs, query, gymID); err != nil {
		return nil, fmt.Errorf("facility.list: %w", err)
	}

	out := make([]*Facility, 0, len(recs))
	for _, rec := range recs {
		f, err := Restore(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Update writes every mutable column, guarded by the version the facility
// was loaded with.
func (r *repository) Update(ctx context.Context, f *Facility) error {
	query := `
		UPDATE facilities SET
			name = $2,
			description = $3,
			max_capacity = $4,
			hourly_rate = $5,
			is_available = $6,
			current_occupancy = $7,
			maintenance_scheduled_at = $8,
			unavailable_reason = $9,
			updated_at = $10,
			deleted_at = $11,
			version = version + 1
		WHERE id = $1 AND version = $12
	`

	rec := f.Record()
	res, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.Description, rec.MaxCapacity, rec.HourlyRate, rec.IsAvailable,
		rec.CurrentOccupancy, rec.MaintenanceScheduledAt, rec.UnavailableReason,
		rec.UpdatedAt, rec.DeletedAt, rec.Version,
	)
	if err != nil {
		return fmt.Errorf("facility.update: %w", err)
	}
	if err := db.CheckVersion(res, "facility.update"); err != nil {
		return err
	}

	f.version++
	return nil
}
