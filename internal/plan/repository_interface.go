package plan

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateWorkoutPlan(ctx context.Context, p *WorkoutPlan) error
	GetWorkoutPlan(ctx context.Context, id uuid.UUID) (*WorkoutPlan, error)
	ListWorkoutPlansByUser(ctx context.Context, userID uuid.UUID) ([]*WorkoutPlan, error)
	UpdateWorkoutPlan(ctx context.Context, p *WorkoutPlan) error

	CreateWorkout(ctx context.Context, w *Workout) error
	GetWorkout(ctx context.Context, id uuid.UUID) (*Workout, error)
	// ListWorkouts returns a plan's workouts in schedule order.
	ListWorkouts(ctx context.Context, planID uuid.UUID) ([]*Workout, error)
	UpdateWorkout(ctx context.Context, w *Workout) error

	CreateDietPlan(ctx context.Context, d *DietPlan) error
	GetDietPlan(ctx context.Context, id uuid.UUID) (*DietPlan, error)
	ListDietPlansByUser(ctx context.Context, userID uuid.UUID) ([]*DietPlan, error)
	UpdateDietPlan(ctx context.Context, d *DietPlan) error
}
