package plan

import (
	"context"
	"time"

	"fitcircle/internal/apperror"
	"fitcircle/internal/auth"
	"fitcircle/internal/db"
	"fitcircle/internal/logger"
	"fitcircle/internal/metrics"

	"github.com/google/uuid"
)

// defaultPlanDays is the window of a plan created without an end date.
const defaultPlanDays = 28

const (
	kindWorkout = "workout"
	kindDiet    = "diet"
)

type TrainerFinder interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CreateWorkoutPlanRequest struct {
	UserID              *uuid.UUID `json:"user_id,omitempty" swaggertype:"string"`
	TrainerID           *uuid.UUID `json:"trainer_id,omitempty" swaggertype:"string"`
	Name                string     `json:"name" binding:"required,min=3,max=100" example:"Spring strength block"`
	Description         string     `json:"description,omitempty" example:"Four weeks of compound lifts"`
	StartDate           *time.Time `json:"start_date,omitempty" example:"2026-11-01T00:00:00Z"`
	EndDate             *time.Time `json:"end_date,omitempty" example:"2026-11-29T00:00:00Z"`
	Goal                string     `json:"goal" binding:"required" example:"strength_building"`
	Level               string     `json:"level" binding:"required" example:"intermediate"`
	WorkoutsPerWeek     *int       `json:"workouts_per_week,omitempty" example:"4"`
	SessionMinutes      *int       `json:"session_minutes,omitempty" example:"75"`
	RequiredEquipment   string     `json:"required_equipment,omitempty" example:"barbell, rack"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
	Restrictions        string     `json:"restrictions,omitempty"`
	IsCustom            bool       `json:"is_custom" example:"true"`
}

// UpdateWorkoutPlanRequest changes only the fields that are set.
type UpdateWorkoutPlanRequest struct {
	Name                *string    `json:"name,omitempty" binding:"omitempty,min=3,max=100"`
	Description         *string    `json:"description,omitempty"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	Goal                *string    `json:"goal,omitempty" example:"endurance"`
	Level               *string    `json:"level,omitempty" example:"advanced"`
	WorkoutsPerWeek     *int       `json:"workouts_per_week,omitempty"`
	SessionMinutes      *int       `json:"session_minutes,omitempty"`
	RequiredEquipment   *string    `json:"required_equipment,omitempty"`
	SpecialInstructions *string    `json:"special_instructions,omitempty"`
	Restrictions        *string    `json:"restrictions,omitempty"`
}

type AddWorkoutRequest struct {
	Name             string    `json:"name" binding:"required,min=3,max=100" example:"Lower body A"`
	Description      string    `json:"description,omitempty" example:"Squat 5x5, RDL 3x8"`
	ScheduledAt      time.Time `json:"scheduled_at" binding:"required" example:"2026-11-03T07:00:00Z"`
	EstimatedMinutes int       `json:"estimated_minutes,omitempty" example:"70"`
}

type CompleteWorkoutRequest struct {
	ActualMinutes int    `json:"actual_minutes" binding:"required,gt=0" example:"65"`
	Notes         string `json:"notes,omitempty" binding:"max=1000" example:"felt strong"`
}

type CreateDietPlanRequest struct {
	UserID              *uuid.UUID       `json:"user_id,omitempty" swaggertype:"string"`
	TrainerID           *uuid.UUID       `json:"trainer_id,omitempty" swaggertype:"string"`
	Name                string           `json:"name" binding:"required,min=3,max=100" example:"Lean bulk"`
	Description         string           `json:"description,omitempty"`
	StartDate           *time.Time       `json:"start_date,omitempty" example:"2026-11-01T00:00:00Z"`
	EndDate             *time.Time       `json:"end_date,omitempty" example:"2026-11-29T00:00:00Z"`
	Goal                string           `json:"goal" binding:"required" example:"muscle_gain"`
	DietType            string           `json:"diet_type" binding:"required" example:"high_protein"`
	Targets             NutritionTargets `json:"targets"`
	MealsPerDay         *int             `json:"meals_per_day,omitempty" example:"5"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
	Restrictions        string           `json:"restrictions,omitempty" example:"no peanuts"`
	IsCustom            bool             `json:"is_custom"`
}

type UpdateDietPlanRequest struct {
	Name                *string           `json:"name,omitempty" binding:"omitempty,min=3,max=100"`
	Description         *string           `json:"description,omitempty"`
	StartDate           *time.Time        `json:"start_date,omitempty"`
	EndDate             *time.Time        `json:"end_date,omitempty"`
	Goal                *string           `json:"goal,omitempty"`
	DietType            *string           `json:"diet_type,omitempty"`
	Targets             *NutritionTargets `json:"targets,omitempty"`
	MealsPerDay         *int              `json:"meals_per_day,omitempty"`
	SpecialInstructions *string           `json:"special_instructions,omitempty"`
	Restrictions        *string           `json:"restrictions,omitempty"`
}

// WorkoutPlanDetail is a workout plan together with its sessions.
type WorkoutPlanDetail struct {
	Plan     *WorkoutPlan
	Workouts []*Workout
}

func (d *WorkoutPlanDetail) View() WorkoutPlanView {
	return d.Plan.View(d.Workouts)
}

type Service interface {
	Options() Options

	CreateWorkoutPlan(ctx context.Context, p auth.Principal, req CreateWorkoutPlanRequest) (*WorkoutPlanDetail, error)
	GetWorkoutPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error)
	ListWorkoutPlans(ctx context.Context, p auth.Principal, userID uuid.UUID) ([]*WorkoutPlanDetail, error)
	UpdateWorkoutPlan(ctx context.Context, p auth.Principal, id uuid.UUID, req UpdateWorkoutPlanRequest) (*WorkoutPlanDetail, error)
	CompleteWorkoutPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error)
	ReopenWorkoutPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error)

	AddWorkout(ctx context.Context, p auth.Principal, planID uuid.UUID, req AddWorkoutRequest) (*Workout, error)
	CompleteWorkout(ctx context.Context, p auth.Principal, workoutID uuid.UUID, req CompleteWorkoutRequest) (*Workout, error)

	CreateDietPlan(ctx context.Context, p auth.Principal, req CreateDietPlanRequest) (*DietPlan, error)
	GetDietPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*DietPlan, error)
	ListDietPlans(ctx context.Context, p auth.Principal, userID uuid.UUID) ([]*DietPlan, error)
	UpdateDietPlan(ctx context.Context, p auth.Principal, id uuid.UUID, req UpdateDietPlanRequest) (*DietPlan, error)
	CompleteDietPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*DietPlan, error)
	ReopenDietPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*DietPlan, error)
}

type service struct {
	repo     Repository
	trainers TrainerFinder
}

func NewService(repo Repository, trainers TrainerFinder) Service {
	return &service{repo: repo, trainers: trainers}
}

// canManage lets the owner and anyone at trainer level or above work on a
// user's plans.
func canManage(p auth.Principal, owner uuid.UUID) bool {
	return p.CanActFor(owner) || p.Role.HasAtLeast(auth.RoleTrainer)
}

func (s *service) Options() Options {
	return AllOptions()
}

func (s *service) owner(op string, p auth.Principal, requested *uuid.UUID) (uuid.UUID, error) {
	userID := p.UserID
	if requested != nil {
		userID = *requested
	}
	if !canManage(p, userID) {
		return uuid.Nil, apperror.Forbidden(op, "cannot manage plans of another user")
	}
	return userID, nil
}

func (s *service) ensureTrainer(ctx context.Context, op string, trainerID *uuid.UUID) error {
	if trainerID == nil || *trainerID == uuid.Nil {
		return nil
	}
	ok, err := s.trainers.Exists(ctx, *trainerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound(op, "trainer %s not found", *trainerID)
	}
	return nil
}

func window(start, end *time.Time) (time.Time, time.Time) {
	from := today()
	if start != nil {
		from = start.UTC()
	}
	to := from.AddDate(0, 0, defaultPlanDays)
	if end != nil {
		to = end.UTC()
	}
	return from, to
}

func (s *service) CreateWorkoutPlan(ctx context.Context, p auth.Principal, req CreateWorkoutPlanRequest) (*WorkoutPlanDetail, error) {
	const op = "workout_plan.create"

	userID, err := s.owner(op, p, req.UserID)
	if err != nil {
		return nil, err
	}
	goal, err := ParseWorkoutGoal(req.Goal)
	if err != nil {
		return nil, err
	}
	level, err := ParseFitnessLevel(req.Level)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTrainer(ctx, op, req.TrainerID); err != nil {
		return nil, err
	}

	start, end := window(req.StartDate, req.EndDate)
	wp, err := NewWorkoutPlan(userID, req.TrainerID, req.Name, req.Description, start, end, goal, level, req.IsCustom)
	if err != nil {
		return nil, err
	}
	if req.WorkoutsPerWeek != nil || req.SessionMinutes != nil {
		if err := wp.SetWorkoutFrequency(intOr(req.WorkoutsPerWeek, wp.WorkoutsPerWeek()), intOr(req.SessionMinutes, wp.SessionMinutes())); err != nil {
			return nil, err
		}
	}
	wp.SetEquipment(req.RequiredEquipment)
	wp.SetSpecialInstructions(req.SpecialInstructions)
	wp.SetRestrictions(req.Restrictions)

	if err := s.repo.CreateWorkoutPlan(ctx, wp); err != nil {
		return nil, err
	}

	metrics.RecordPlan(kindWorkout, string(goal))
	logger.Info("workout plan created", "plan_id", wp.ID(), "user_id", userID, "goal", goal)
	return &WorkoutPlanDetail{Plan: wp}, nil
}

func (s *service) detail(ctx context.Context, wp *WorkoutPlan) (*WorkoutPlanDetail, error) {
	workouts, err := s.repo.ListWorkouts(ctx, wp.ID())
	if err != nil {
		return nil, err
	}
	return &WorkoutPlanDetail{Plan: wp, Workouts: workouts}, nil
}

func (s *service) loadWorkoutPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*WorkoutPlan, error) {
	wp, err := s.repo.GetWorkoutPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(p, wp.UserID()) {
		return nil, apperror.Forbidden("workout_plan.get", "workout plan belongs to another user")
	}
	return wp, nil
}

func (s *service) GetWorkoutPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error) {
	wp, err := s.loadWorkoutPlan(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, wp)
}

func (s *service) ListWorkoutPlans(ctx context.Context, p auth.Principal, userID uuid.UUID) ([]*WorkoutPlanDetail, error) {
	if !canManage(p, userID) {
		return nil, apperror.Forbidden("workout_plan.list", "cannot list another user's plans")
	}
	plans, err := s.repo.ListWorkoutPlansByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*WorkoutPlanDetail, 0, len(plans))
	for _, wp := range plans {
		d, err := s.detail(ctx, wp)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// mutateWorkoutPlan loads the plan, checks access, applies one change and
// saves it, retrying when the row moved underneath.
func (s *service) mutateWorkoutPlan(ctx context.Context, p auth.Principal, id uuid.UUID, change func(*WorkoutPlan) error) (*WorkoutPlanDetail, error) {
	var wp *WorkoutPlan
	err := db.RetryOnConflict(ctx, func() error {
		var err error
		wp, err = s.loadWorkoutPlan(ctx, p, id)
		if err != nil {
			return err
		}
		if err := change(wp); err != nil {
			return err
		}
		return s.repo.UpdateWorkoutPlan(ctx, wp)
	})
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, wp)
}

func (s *service) UpdateWorkoutPlan(ctx context.Context, p auth.Principal, id uuid.UUID, req UpdateWorkoutPlanRequest) (*WorkoutPlanDetail, error) {
	var (
		goal  *WorkoutGoal
		level *FitnessLevel
	)
	if req.Goal != nil {
		g, err := ParseWorkoutGoal(*req.Goal)
		if err != nil {
			return nil, err
		}
		goal = &g
	}
	if req.Level != nil {
		l, err := ParseFitnessLevel(*req.Level)
		if err != nil {
			return nil, err
		}
		level = &l
	}

	d, err := s.mutateWorkoutPlan(ctx, p, id, func(wp *WorkoutPlan) error {
		if err := applySchedule(&wp.schedule, req.Name, req.Description, req.StartDate, req.EndDate, req.SpecialInstructions, req.Restrictions); err != nil {
			return err
		}
		if goal != nil || level != nil {
			g, l := wp.Goal(), wp.Level()
			if goal != nil {
				g = *goal
			}
			if level != nil {
				l = *level
			}
			if err := wp.UpdateGoalAndLevel(g, l); err != nil {
				return err
			}
		}
		if req.WorkoutsPerWeek != nil || req.SessionMinutes != nil {
			if err := wp.SetWorkoutFrequency(intOr(req.WorkoutsPerWeek, wp.WorkoutsPerWeek()), intOr(req.SessionMinutes, wp.SessionMinutes())); err != nil {
				return err
			}
		}
		if req.RequiredEquipment != nil {
			wp.SetEquipment(*req.RequiredEquipment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("workout plan updated", "plan_id", id)
	return d, nil
}

func (s *service) CompleteWorkoutPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error) {
	d, err := s.mutateWorkoutPlan(ctx, p, id, func(wp *WorkoutPlan) error { return wp.Complete() })
	if err != nil {
		return nil, err
	}

	metrics.RecordPlanCompleted(kindWorkout)
	logger.Info("workout plan completed", "plan_id", id)
	return d, nil
}

func (s *service) ReopenWorkoutPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error) {
	return s.mutateWorkoutPlan(ctx, p, id, func(wp *WorkoutPlan) error { return wp.Reopen() })
}

func (s *service) AddWorkout(ctx context.Context, p auth.Principal, planID uuid.UUID, req AddWorkoutRequest) (*Workout, error) {
	wp, err := s.loadWorkoutPlan(ctx, p, planID)
	if err != nil {
		return nil, err
	}
	w, err := wp.ScheduleWorkout(req.Name, req.Description, req.ScheduledAt, req.EstimatedMinutes)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateWorkout(ctx, w); err != nil {
		return nil, err
	}

	logger.Info("workout scheduled", "workout_id", w.ID(), "plan_id", planID, "scheduled_at", w.ScheduledAt())
	return w, nil
}

func (s *service) CompleteWorkout(ctx context.Context, p auth.Principal, workoutID uuid.UUID, req CompleteWorkoutRequest) (*Workout, error) {
	var w *Workout
	err := db.RetryOnConflict(ctx, func() error {
		var err error
		w, err = s.repo.GetWorkout(ctx, workoutID)
		if err != nil {
			return err
		}
		if _, err := s.loadWorkoutPlan(ctx, p, w.PlanID()); err != nil {
			return err
		}
		if err := w.MarkCompleted(req.ActualMinutes, req.Notes); err != nil {
			return err
		}
		return s.repo.UpdateWorkout(ctx, w)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWorkoutCompleted()
	logger.Info("workout completed", "workout_id", workoutID, "actual_minutes", req.ActualMinutes)
	return w, nil
}

func (s *service) CreateDietPlan(ctx context.Context, p auth.Principal, req CreateDietPlanRequest) (*DietPlan, error) {
	const op = "diet_plan.create"

	userID, err := s.owner(op, p, req.UserID)
	if err != nil {
		return nil, err
	}
	goal, err := ParseDietGoal(req.Goal)
	if err != nil {
		return nil, err
	}
	dietType, err := ParseDietType(req.DietType)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTrainer(ctx, op, req.TrainerID); err != nil {
		return nil, err
	}

	start, end := window(req.StartDate, req.EndDate)
	dp, err := NewDietPlan(userID, req.TrainerID, req.Name, req.Description, start, end, goal, dietType, req.IsCustom)
	if err != nil {
		return nil, err
	}
	if err := dp.SetNutritionTargets(req.Targets); err != nil {
		return nil, err
	}
	if req.MealsPerDay != nil {
		if err := dp.SetMealsPerDay(*req.MealsPerDay); err != nil {
			return nil, err
		}
	}
	dp.SetSpecialInstructions(req.SpecialInstructions)
	dp.SetRestrictions(req.Restrictions)

	if err := s.repo.CreateDietPlan(ctx, dp); err != nil {
		return nil, err
	}

	metrics.RecordPlan(kindDiet, string(goal))
	logger.Info("diet plan created", "plan_id", dp.ID(), "user_id", userID, "goal", goal)
	return dp, nil
}

func (s *service) GetDietPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*DietPlan, error) {
	dp, err := s.repo.GetDietPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(p, dp.UserID()) {
		return nil, apperror.Forbidden("diet_plan.get", "diet plan belongs to another user")
	}
	return dp, nil
}

func (s *service) ListDietPlans(ctx context.Context, p auth.Principal, userID uuid.UUID) ([]*DietPlan, error) {
	if !canManage(p, userID) {
		return nil, apperror.Forbidden("diet_plan.list", "cannot list another user's plans")
	}
	return s.repo.ListDietPlansByUser(ctx, userID)
}

func (s *service) mutateDietPlan(ctx context.Context, p auth.Principal, id uuid.UUID, change func(*DietPlan) error) (*DietPlan, error) {
	var dp *DietPlan
	err := db.RetryOnConflict(ctx, func() error {
		var err error
		dp, err = s.GetDietPlan(ctx, p, id)
		if err != nil {
			return err
		}
		if err := change(dp); err != nil {
			return err
		}
		return s.repo.UpdateDietPlan(ctx, dp)
	})
	if err != nil {
		return nil, err
	}
	return dp, nil
}

func (s *service) UpdateDietPlan(ctx context.Context, p auth.Principal, id uuid.UUID, req UpdateDietPlanRequest) (*DietPlan, error) {
	var (
		goal     *DietGoal
		dietType *DietType
	)
	if req.Goal != nil {
		g, err := ParseDietGoal(*req.Goal)
		if err != nil {
			return nil, err
		}
		goal = &g
	}
	if req.DietType != nil {
		t, err := ParseDietType(*req.DietType)
		if err != nil {
			return nil, err
		}
		dietType = &t
	}

	dp, err := s.mutateDietPlan(ctx, p, id, func(dp *DietPlan) error {
		if err := applySchedule(&dp.schedule, req.Name, req.Description, req.StartDate, req.EndDate, req.SpecialInstructions, req.Restrictions); err != nil {
			return err
		}
		if goal != nil || dietType != nil {
			g, t := dp.Goal(), dp.Type()
			if goal != nil {
				g = *goal
			}
			if dietType != nil {
				t = *dietType
			}
			if err := dp.UpdateGoalAndType(g, t); err != nil {
				return err
			}
		}
		if req.Targets != nil {
			if err := dp.SetNutritionTargets(*req.Targets); err != nil {
				return err
			}
		}
		if req.MealsPerDay != nil {
			return dp.SetMealsPerDay(*req.MealsPerDay)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("diet plan updated", "plan_id", id)
	return dp, nil
}

func (s *service) CompleteDietPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*DietPlan, error) {
	dp, err := s.mutateDietPlan(ctx, p, id, func(dp *DietPlan) error { return dp.Complete() })
	if err != nil {
		return nil, err
	}

	metrics.RecordPlanCompleted(kindDiet)
	logger.Info("diet plan completed", "plan_id", id)
	return dp, nil
}

func (s *service) ReopenDietPlan(ctx context.Context, p auth.Principal, id uuid.UUID) (*DietPlan, error) {
	return s.mutateDietPlan(ctx, p, id, func(dp *DietPlan) error { return dp.Reopen() })
}

// applySchedule applies the shared optional fields of a plan update.
func applySchedule(s *schedule, name, description *string, start, end *time.Time, instructions, restrictions *string) error {
	if name != nil || description != nil {
		if err := s.UpdateBasicInfo(strOr(name, s.Name()), strOr(description, s.Description())); err != nil {
			return err
		}
	}
	if start != nil || end != nil {
		from, to := s.StartDate(), s.EndDate()
		if start != nil {
			from = *start
		}
		if end != nil {
			to = *end
		}
		if err := s.UpdateDates(from, to); err != nil {
			return err
		}
	}
	if instructions != nil {
		s.SetSpecialInstructions(*instructions)
	}
	if restrictions != nil {
		s.SetRestrictions(*restrictions)
	}
	return nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func strOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
