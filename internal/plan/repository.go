package plan

import (
	"context"
	"fmt"

	"fitcircle/internal/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const scheduleColumns = `id, user_id, trainer_id, name, description, start_date, end_date,
	is_completed, completed_at, special_instructions, restrictions, is_custom, version, created_at, updated_at`

const workoutPlanColumns = scheduleColumns + `,
	goal, level, workouts_per_week, session_minutes, required_equipment`

const dietPlanColumns = scheduleColumns + `,
	goal, diet_type, target_calories, target_protein, target_carbs, target_fats, meals_per_day`

const workoutColumns = `id, workout_plan_id, name, description, scheduled_at, estimated_minutes,
	is_completed, completed_at, actual_minutes, completion_notes, version, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWorkoutPlan(ctx context.Context, p *WorkoutPlan) error {
	query := `
		INSERT INTO workout_plans (` + workoutPlanColumns + `) VALUES (
			:id, :user_id, :trainer_id, :name, :description, :start_date, :end_date,
			:is_completed, :completed_at, :special_instructions, :restrictions, :is_custom, :version, :created_at, :updated_at,
			:goal, :level, :workouts_per_week, :session_minutes, :required_equipment
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, p.Record()); err != nil {
		return db.ConstraintOr(err, "workout_plan.create", "workout plan")
	}
	return nil
}

func (r *repository) GetWorkoutPlan(ctx context.Context, id uuid.UUID) (*WorkoutPlan, error) {
	query := `SELECT ` + workoutPlanColumns + ` FROM workout_plans WHERE id = $1`

	var rec WorkoutPlanRecord
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		return nil, db.NotFoundOr(err, "workout_plan.get", "workout plan")
	}
	return RestoreWorkoutPlan(rec)
}

func (r *repository) ListWorkoutPlansByUser(ctx context.Context, userID uuid.UUID) ([]*WorkoutPlan, error) {
	query := `SELECT ` + workoutPlanColumns + ` FROM workout_plans WHERE user_id = $1 ORDER BY start_date DESC`

	var recs []WorkoutPlanRecord
	if err := r.db.SelectContext(ctx, &recs, query, userID); err != nil {
		return nil, fmt.Errorf("workout_plan.list: %w", err)
	}
	out := make([]*WorkoutPlan, 0, len(recs))
	for _, rec := range recs {
		p, err := RestoreWorkoutPlan(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *repository) UpdateWorkoutPlan(ctx context.Context, p *WorkoutPlan) error {
	query := `
		UPDATE workout_plans SET
			trainer_id = $2,
			name = $3,
			description = $4,
			start_date = $5,
			end_date = $6,
			is_completed = $7,
			completed_at = $8,
			special_instructions = $9,
			restrictions = $10,
			goal = $11,
			level = $12,
			workouts_per_week = $13,
			session_minutes = $14,
			required_equipment = $15,
			updated_at = $16,
			version = version + 1
		WHERE id = $1 AND version = $17
	`

	rec := p.Record()
	res, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.TrainerID, rec.Name, rec.Description, rec.StartDate, rec.EndDate,
		rec.IsCompleted, rec.CompletedAt, rec.SpecialInstructions, rec.Restrictions,
		rec.Goal, rec.Level, rec.WorkoutsPerWeek, rec.SessionMinutes, rec.RequiredEquipment,
		rec.UpdatedAt, rec.Version,
	)
	if err != nil {
		return db.ConstraintOr(err, "workout_plan.update", "workout plan")
	}
	if err := db.CheckVersion(res, "workout_plan.update"); err != nil {
		return err
	}

	p.version++
	return nil
}

func (r *repository) CreateWorkout(ctx context.Context, w *Workout) error {
	query := `
		INSERT INTO workouts (` + workoutColumns + `) VALUES (
			:id, :workout_plan_id, :name, :description, :scheduled_at, :estimated_minutes,
			:is_completed, :completed_at, :actual_minutes, :completion_notes, :version, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, w.Record()); err != nil {
		return db.ConstraintOr(err, "workout.create", "workout")
	}
	return nil
}

func (r *repository) GetWorkout(ctx context.Context, id uuid.UUID) (*Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1`

	var rec WorkoutRecord
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		return nil, db.NotFoundOr(err, "workout.get", "workout")
	}
	return RestoreWorkout(rec), nil
}

func (r *repository) ListWorkouts(ctx context.Context, planID uuid.UUID) ([]*Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE workout_plan_id = $1 ORDER BY scheduled_at`

	var recs []WorkoutRecord
	if err := r.db.SelectContext(ctx, &recs, query, planID); err != nil {
		return nil, fmt.Errorf("workout.list: %w", err)
	}
	out := make([]*Workout, 0, len(recs))
	for _, rec := range recs {
		out = append(out, RestoreWorkout(rec))
	}
	return out, nil
}

func (r *repository) UpdateWorkout(ctx context.Context, w *Workout) error {
	query := `
		UPDATE workouts SET
			is_completed = $2,
			completed_at = $3,
			actual_minutes = $4,
			completion_notes = $5,
			updated_at = $6,
			version = version + 1
		WHERE id = $1 AND version = $7
	`

	rec := w.Record()
	res, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.IsCompleted, rec.CompletedAt, rec.ActualMinutes, rec.CompletionNotes, rec.UpdatedAt, rec.Version,
	)
	if err != nil {
		return fmt.Errorf("workout.update: %w", err)
	}
	if err := db.CheckVersion(res, "workout.update"); err != nil {
		return err
	}

	w.version++
	return nil
}

func (r *repository) CreateDietPlan(ctx context.Context, d *DietPlan) error {
	query := `
		INSERT INTO diet_plans (` + dietPlanColumns + `) VALUES (
			:id, :user_id, :trainer_id, :name, :description, :start_date, :end_date,
			:is_completed, :completed_at, :special_instructions, :restrictions, :is_custom, :version, :created_at, :updated_at,
			:goal, :diet_type, :target_calories, :target_protein, :target_carbs, :target_fats, :meals_per_day
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, d.Record()); err != nil {
		return db.ConstraintOr(err, "diet_plan.create", "diet plan")
	}
	return nil
}

func (r *repository) GetDietPlan(ctx context.Context, id uuid.UUID) (*DietPlan, error) {
	query := `SELECT ` + dietPlanColumns + ` FROM diet_plans WHERE id = $1`

	var rec DietPlanRecord
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		return nil, db.NotFoundOr(err, "diet_plan.get", "diet plan")
	}
	return RestoreDietPlan(rec)
}

func (r *repository) ListDietPlansByUser(ctx context.Context, userID uuid.UUID) ([]*DietPlan, error) {
	query := `SELECT ` + dietPlanColumns + ` FROM diet_plans WHERE user_id = $1 ORDER BY start_date DESC`

	var recs []DietPlanRecord
	if err := r.db.SelectContext(ctx, &recs, query, userID); err != nil {
		return nil, fmt.Errorf("diet_plan.list: %w", err)
	}
	out := make([]*DietPlan, 0, len(recs))
	for _, rec := range recs {
		d, err := RestoreDietPlan(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *repository) UpdateDietPlan(ctx context.Context, d *DietPlan) error {
	query := `
		UPDATE diet_plans SET
			trainer_id = $2,
			name = $3,
			description = $4,
			start_date = $5,
			end_date = $6,
			is_completed = $7,
			completed_at = $8,
			special_instructions = $9,
			restrictions = $10,
			goal = $11,
			diet_type = $12,
			target_calories = $13,
			target_protein = $14,
			target_carbs = $15,
			target_fats = $16,
			meals_per_day = $17,
			updated_at = $18,
			version = version + 1
		WHERE id = $1 AND version = $19
	`

	rec := d.Record()
	res, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.TrainerID, rec.Name, rec.Description, rec.StartDate, rec.EndDate,
		rec.IsCompleted, rec.CompletedAt, rec.SpecialInstructions, rec.Restrictions,
		rec.Goal, rec.DietType, rec.TargetCalories, rec.TargetProtein, rec.TargetCarbs, rec.TargetFats, rec.MealsPerDay,
		rec.UpdatedAt, rec.Version,
	)
	if err != nil {
		return db.ConstraintOr(err, "diet_plan.update", "diet plan")
	}
	if err := db.CheckVersion(res, "diet_plan.update"); err != nil {
		return err
	}

	d.version++
	return nil
}
