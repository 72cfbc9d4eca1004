package plan

import (
	"strings"
	"time"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultWorkoutsPerWeek = 3
	defaultSessionMinutes  = 60
	maxWorkoutsPerWeek     = 7
	minSessionMinutes      = 15
	maxSessionMinutes      = 300
)

// WorkoutPlan is a training program for one user over a date window.
type WorkoutPlan struct {
	schedule
	goal            WorkoutGoal
	level           FitnessLevel
	workoutsPerWeek int
	sessionMinutes  int
	equipment       string
}

func NewWorkoutPlan(
	userID uuid.UUID,
	trainerID *uuid.UUID,
	name, description string,
	start, end time.Time,
	goal WorkoutGoal,
	level FitnessLevel,
	custom bool,
) (*WorkoutPlan, error) {
	const op = "workout_plan.create"

	if !goal.Valid() {
		return nil, apperror.ValidationField(op, "goal", "unknown workout goal %q", string(goal))
	}
	if !level.Valid() {
		return nil, apperror.ValidationField(op, "level", "unknown fitness level %q", string(level))
	}
	s, err := newSchedule(op, userID, trainerID, name, description, start, end, custom)
	if err != nil {
		return nil, err
	}

	return &WorkoutPlan{
		schedule:        s,
		goal:            goal,
		level:           level,
		workoutsPerWeek: defaultWorkoutsPerWeek,
		sessionMinutes:  defaultSessionMinutes,
	}, nil
}

func (p *WorkoutPlan) Goal() WorkoutGoal         { return p.goal }
func (p *WorkoutPlan) Level() FitnessLevel       { return p.level }
func (p *WorkoutPlan) WorkoutsPerWeek() int      { return p.workoutsPerWeek }
func (p *WorkoutPlan) SessionMinutes() int       { return p.sessionMinutes }
func (p *WorkoutPlan) RequiredEquipment() string { return p.equipment }

func (p *WorkoutPlan) SetWorkoutFrequency(perWeek, minutes int) error {
	const op = "workout_plan.set_frequency"

	if perWeek < 1 || perWeek > maxWorkoutsPerWeek {
		return apperror.Range(op, "workouts_per_week", "workouts per week must be between 1 and %d", maxWorkoutsPerWeek)
	}
	if minutes < minSessionMinutes || minutes > maxSessionMinutes {
		return apperror.Range(op, "session_minutes", "session length must be between %d and %d minutes", minSessionMinutes, maxSessionMinutes)
	}

	p.workoutsPerWeek = perWeek
	p.sessionMinutes = minutes
	p.touch()
	return nil
}

func (p *WorkoutPlan) UpdateGoalAndLevel(goal WorkoutGoal, level FitnessLevel) error {
	const op = "workout_plan.update"

	if !goal.Valid() {
		return apperror.ValidationField(op, "goal", "unknown workout goal %q", string(goal))
	}
	if !level.Valid() {
		return apperror.ValidationField(op, "level", "unknown fitness level %q", string(level))
	}

	p.goal = goal
	p.level = level
	p.touch()
	return nil
}

func (p *WorkoutPlan) SetEquipment(equipment string) {
	p.equipment = strings.TrimSpace(equipment)
	p.touch()
}

// ScheduleWorkout adds a session to the plan. The session must fall inside
// the plan window and the plan must still be open.
func (p *WorkoutPlan) ScheduleWorkout(name, description string, at time.Time, estimatedMinutes int) (*Workout, error) {
	const op = "workout_plan.add_workout"

	if p.completed {
		return nil, apperror.InvalidState(op, "a completed plan cannot get new workouts")
	}
	at = at.UTC()
	if at.Before(p.start) || at.After(p.end) {
		return nil, apperror.ValidationField(op, "scheduled_at", "workout must fall between the plan start and end dates")
	}
	if estimatedMinutes == 0 {
		estimatedMinutes = p.sessionMinutes
	}
	return NewWorkout(p.id, name, description, at, estimatedMinutes)
}

// CompletionPercentage is the share of completed workouts, rounded to two
// decimals. A plan without workouts is at zero.
func CompletionPercentage(workouts []*Workout) decimal.Decimal {
	if len(workouts) == 0 {
		return decimal.Zero
	}
	done := 0
	for _, w := range workouts {
		if w.IsCompleted() {
			done++
		}
	}
	return decimal.NewFromInt(int64(done * 100)).
		Div(decimal.NewFromInt(int64(len(workouts)))).
		Round(2)
}

type WorkoutPlanRecord struct {
	ScheduleRecord
	Goal              WorkoutGoal  `db:"goal" json:"goal"`
	Level             FitnessLevel `db:"level" json:"level"`
	WorkoutsPerWeek   int          `db:"workouts_per_week" json:"workouts_per_week"`
	SessionMinutes    int          `db:"session_minutes" json:"session_minutes"`
	RequiredEquipment string       `db:"required_equipment" json:"required_equipment"`
}

func (p *WorkoutPlan) Record() WorkoutPlanRecord {
	return WorkoutPlanRecord{
		ScheduleRecord:    p.record(),
		Goal:              p.goal,
		Level:             p.level,
		WorkoutsPerWeek:   p.workoutsPerWeek,
		SessionMinutes:    p.sessionMinutes,
		RequiredEquipment: p.equipment,
	}
}

func RestoreWorkoutPlan(r WorkoutPlanRecord) (*WorkoutPlan, error) {
	const op = "workout_plan.restore"

	if !r.Goal.Valid() {
		return nil, apperror.Validation(op, "unknown workout goal %q", string(r.Goal))
	}
	if !r.Level.Valid() {
		return nil, apperror.Validation(op, "unknown fitness level %q", string(r.Level))
	}

	return &WorkoutPlan{
		schedule:        restoreSchedule(r.ScheduleRecord),
		goal:            r.Goal,
		level:           r.Level,
		workoutsPerWeek: r.WorkoutsPerWeek,
		sessionMinutes:  r.SessionMinutes,
		equipment:       r.RequiredEquipment,
	}, nil
}

type WorkoutPlanView struct {
	WorkoutPlanRecord
	GoalName             string          `json:"goal_name"`
	LevelName            string          `json:"level_name"`
	IsActive             bool            `json:"is_active"`
	RemainingDays        int             `json:"remaining_days"`
	CompletionPercentage decimal.Decimal `json:"completion_percentage" swaggertype:"string" example:"66.67"`
	Workouts             []WorkoutRecord `json:"workouts"`
}

func (p *WorkoutPlan) View(workouts []*Workout) WorkoutPlanView {
	recs := make([]WorkoutRecord, 0, len(workouts))
	for _, w := range workouts {
		recs = append(recs, w.Record())
	}
	return WorkoutPlanView{
		WorkoutPlanRecord:    p.Record(),
		GoalName:             p.goal.DisplayName(),
		LevelName:            p.level.DisplayName(),
		IsActive:             p.IsActive(),
		RemainingDays:        p.RemainingDays(),
		CompletionPercentage: CompletionPercentage(workouts),
		Workouts:             recs,
	}
}

// Workout is one scheduled session of a workout plan.
type Workout struct {
	id               uuid.UUID
	planID           uuid.UUID
	name             string
	description      string
	scheduledAt      time.Time
	estimatedMinutes int
	completed        bool
	completedAt      *time.Time
	actualMinutes    *int
	notes            string
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

func NewWorkout(planID uuid.UUID, name, description string, at time.Time, estimatedMinutes int) (*Workout, error) {
	const op = "workout.create"

	if planID == uuid.Nil {
		return nil, apperror.ValidationField(op, "workout_plan_id", "workout plan id is required")
	}
	name, err := validateName(op, name)
	if err != nil {
		return nil, err
	}
	if estimatedMinutes < minSessionMinutes || estimatedMinutes > maxSessionMinutes {
		return nil, apperror.Range(op, "estimated_minutes", "estimated length must be between %d and %d minutes", minSessionMinutes, maxSessionMinutes)
	}

	t := now()
	return &Workout{
		id:               uuid.New(),
		planID:           planID,
		name:             name,
		description:      strings.TrimSpace(description),
		scheduledAt:      at.UTC(),
		estimatedMinutes: estimatedMinutes,
		createdAt:        t,
		updatedAt:        t,
	}, nil
}

func (w *Workout) ID() uuid.UUID           { return w.id }
func (w *Workout) PlanID() uuid.UUID       { return w.planID }
func (w *Workout) Name() string            { return w.name }
func (w *Workout) ScheduledAt() time.Time  { return w.scheduledAt }
func (w *Workout) EstimatedMinutes() int   { return w.estimatedMinutes }
func (w *Workout) IsCompleted() bool       { return w.completed }
func (w *Workout) CompletedAt() *time.Time { return w.completedAt }
func (w *Workout) ActualMinutes() *int     { return w.actualMinutes }
func (w *Workout) Notes() string           { return w.notes }
func (w *Workout) Version() int            { return w.version }

// MarkCompleted records the session as done. Completing twice is an error.
func (w *Workout) MarkCompleted(actualMinutes int, notes string) error {
	const op = "workout.complete"

	if w.completed {
		return apperror.InvalidState(op, "workout is already completed")
	}
	if actualMinutes <= 0 {
		return apperror.Range(op, "actual_minutes", "actual minutes must be greater than zero")
	}

	t := now()
	w.completed = true
	w.completedAt = &t
	w.actualMinutes = &actualMinutes
	w.notes = strings.TrimSpace(notes)
	w.updatedAt = t
	return nil
}

type WorkoutRecord struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	WorkoutPlanID    uuid.UUID  `db:"workout_plan_id" json:"workout_plan_id"`
	Name             string     `db:"name" json:"name"`
	Description      string     `db:"description" json:"description"`
	ScheduledAt      time.Time  `db:"scheduled_at" json:"scheduled_at"`
	EstimatedMinutes int        `db:"estimated_minutes" json:"estimated_minutes"`
	IsCompleted      bool       `db:"is_completed" json:"is_completed"`
	CompletedAt      *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	ActualMinutes    *int       `db:"actual_minutes" json:"actual_minutes,omitempty"`
	CompletionNotes  string     `db:"completion_notes" json:"completion_notes"`
	Version          int        `db:"version" json:"version"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

func (w *Workout) Record() WorkoutRecord {
	return WorkoutRecord{
		ID:               w.id,
		WorkoutPlanID:    w.planID,
		Name:             w.name,
		Description:      w.description,
		ScheduledAt:      w.scheduledAt,
		EstimatedMinutes: w.estimatedMinutes,
		IsCompleted:      w.completed,
		CompletedAt:      w.completedAt,
		ActualMinutes:    w.actualMinutes,
		CompletionNotes:  w.notes,
		Version:          w.version,
		CreatedAt:        w.createdAt,
		UpdatedAt:        w.updatedAt,
	}
}

func RestoreWorkout(r WorkoutRecord) *Workout {
	return &Workout{
		id:               r.ID,
		planID:           r.WorkoutPlanID,
		name:             r.Name,
		description:      r.Description,
		scheduledAt:      r.ScheduledAt,
		estimatedMinutes: r.EstimatedMinutes,
		completed:        r.IsCompleted,
		completedAt:      r.CompletedAt,
		actualMinutes:    r.ActualMinutes,
		notes:            r.CompletionNotes,
		version:          r.Version,
		createdAt:        r.CreatedAt,
		updatedAt:        r.UpdatedAt,
	}
}
