package trainer

import (
	"context"
	"fmt"

	"fitcircle/internal/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	columns = `id, gym_id, first_name, last_name, email, phone, bio, profile_image_url,
	cover_image_url, instagram_handle, version, created_at, updated_at`

	ratingColumns = `id, trainer_id, user_id, rating, comment, is_active, edited_at, version, created_at, updated_at`
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Trainer) error {
	query := `
		INSERT INTO trainers (
			id, gym_id, first_name, last_name, email, phone, bio, profile_image_url,
			cover_image_url, instagram_handle, version, created_at, updated_at
		) VALUES (
			:id, :gym_id, :first_name, :last_name, :email, :phone, :bio, :profile_image_url,
			:cover_image_url, :instagram_handle, :version, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, t.Record()); err != nil {
		return db.ConstraintOr(err, "trainer.create", "trainer")
	}
	return nil
}

// GetByID loads the trainer together with all of its ratings.
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Trainer, error) {
	var rec Record
	if err := r.db.GetContext(ctx, &rec, `SELECT `+columns+` FROM trainers WHERE id = $1`, id); err != nil {
		return nil, db.NotFoundOr(err, "trainer.get", "trainer")
	}

	var recs []RatingRecord
	query := `SELECT ` + ratingColumns + ` FROM trainer_ratings WHERE trainer_id = $1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &recs, query, id); err != nil {
		return nil, fmt.Errorf("trainer.get_ratings: %w", err)
	}

	ratings := make([]*Rating, 0, len(recs))
	for _, rr := range recs {
		rating, err := RestoreRating(rr)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return Restore(rec, ratings)
}

func (r *repository) Update(ctx context.Context, t *Trainer) error {
	query := `
		UPDATE trainers SET
			first_name = $2,
			last_name = $3,
			phone = $4,
			bio = $5,
			profile_image_url = $6,
			cover_image_url = $7,
			instagram_handle = $8,
			updated_at = $9,
			version = version + 1
		WHERE id = $1 AND version = $10
	`

	rec := t.Record()
	res, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.FirstName, rec.LastName, rec.Phone, rec.Bio,
		rec.ProfileImageURL, rec.CoverImageURL, rec.InstagramHandle, rec.UpdatedAt, rec.Version,
	)
	if err != nil {
		return fmt.Errorf("trainer.update: %w", err)
	}
	if err := db.CheckVersion(res, "trainer.update"); err != nil {
		return err
	}

	t.version++
	return nil
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM trainers WHERE id = $1)`, id)
}

func (r *repository) CreateRating(ctx context.Context, rating *Rating) error {
	query := `
		INSERT INTO trainer_ratings (
			id, trainer_id, user_id, rating, comment, is_active, edited_at, version, created_at, updated_at
		) VALUES (
			:id, :trainer_id, :user_id, :rating, :comment, :is_active, :edited_at, :version, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, rating.Record()); err != nil {
		return db.ConstraintOr(err, "rating.create", "rating")
	}
	return nil
}

func (r *repository) GetRating(ctx context.Context, id uuid.UUID) (*Rating, error) {
	var rec RatingRecord
	if err := r.db.GetContext(ctx, &rec, `SELECT `+ratingColumns+` FROM trainer_ratings WHERE id = $1`, id); err != nil {
		return nil, db.NotFoundOr(err, "rating.get", "rating")
	}
	return RestoreRating(rec)
}

func (r *repository) UpdateRating(ctx context.Context, rating *Rating) error {
	query := `
		UPDATE trainer_ratings SET
			rating = $2,
			comment = $3,
			is_active = $4,
			edited_at = $5,
			updated_at = $6,
			version = version + 1
		WHERE id = $1 AND version = $7
	`

	rec := rating.Record()
	res, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Rating, rec.Comment, rec.IsActive, rec.EditedAt, rec.UpdatedAt, rec.Version,
	)
	if err != nil {
		return fmt.Errorf("rating.update: %w", err)
	}
	if err := db.CheckVersion(res, "rating.update"); err != nil {
		return err
	}

	rating.version++
	return nil
}
