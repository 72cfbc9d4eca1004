package plan

import (
	"time"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultMealsPerDay = 3
	maxMealsPerDay     = 8
)

// NutritionTargets are daily goals. Nil fields are not tracked.
type NutritionTargets struct {
	Calories *decimal.Decimal `json:"calories,omitempty" swaggertype:"string" example:"2200"`
	Protein  *decimal.Decimal `json:"protein,omitempty" swaggertype:"string" example:"150"`
	Carbs    *decimal.Decimal `json:"carbs,omitempty" swaggertype:"string" example:"220"`
	Fats     *decimal.Decimal `json:"fats,omitempty" swaggertype:"string" example:"70"`
}

func (n NutritionTargets) validate(op string) error {
	if n.Calories != nil && !n.Calories.IsPositive() {
		return apperror.Range(op, "calories", "calories must be greater than zero")
	}
	macros := []struct {
		field string
		value *decimal.Decimal
	}{{"protein", n.Protein}, {"carbs", n.Carbs}, {"fats", n.Fats}}
	for _, m := range macros {
		if m.value != nil && m.value.IsNegative() {
			return apperror.Range(op, m.field, "%s cannot be negative", m.field)
		}
	}
	return nil
}

// DietPlan is a nutrition program for one user over a date window.
type DietPlan struct {
	schedule
	goal        DietGoal
	dietType    DietType
	targets     NutritionTargets
	mealsPerDay int
}

func NewDietPlan(
	userID uuid.UUID,
	trainerID *uuid.UUID,
	name, description string,
	start, end time.Time,
	goal DietGoal,
	dietType DietType,
	custom bool,
) (*DietPlan, error) {
	const op = "diet_plan.create"

	if !goal.Valid() {
		return nil, apperror.ValidationField(op, "goal", "unknown diet goal %q", string(goal))
	}
	if !dietType.Valid() {
		return nil, apperror.ValidationField(op, "diet_type", "unknown diet type %q", string(dietType))
	}
	s, err := newSchedule(op, userID, trainerID, name, description, start, end, custom)
	if err != nil {
		return nil, err
	}

	return &DietPlan{
		schedule:    s,
		goal:        goal,
		dietType:    dietType,
		mealsPerDay: defaultMealsPerDay,
	}, nil
}

func (d *DietPlan) Goal() DietGoal            { return d.goal }
func (d *DietPlan) Type() DietType            { return d.dietType }
func (d *DietPlan) Targets() NutritionTargets { return d.targets }
func (d *DietPlan) MealsPerDay() int          { return d.mealsPerDay }

func (d *DietPlan) SetNutritionTargets(t NutritionTargets) error {
	if err := t.validate("diet_plan.set_targets"); err != nil {
		return err
	}

	d.targets = t
	d.touch()
	return nil
}

func (d *DietPlan) SetMealsPerDay(n int) error {
	if n < 1 || n > maxMealsPerDay {
		return apperror.Range("diet_plan.set_meals", "meals_per_day", "meals per day must be between 1 and %d", maxMealsPerDay)
	}

	d.mealsPerDay = n
	d.touch()
	return nil
}

func (d *DietPlan) UpdateGoalAndType(goal DietGoal, dietType DietType) error {
	const op = "diet_plan.update"

	if !goal.Valid() {
		return apperror.ValidationField(op, "goal", "unknown diet goal %q", string(goal))
	}
	if !dietType.Valid() {
		return apperror.ValidationField(op, "diet_type", "unknown diet type %q", string(dietType))
	}

	d.goal = goal
	d.dietType = dietType
	d.touch()
	return nil
}

type DietPlanRecord struct {
	ScheduleRecord
	Goal           DietGoal         `db:"goal" json:"goal"`
	DietType       DietType         `db:"diet_type" json:"diet_type"`
	TargetCalories *decimal.Decimal `db:"target_calories" json:"target_calories,omitempty" swaggertype:"string"`
	TargetProtein  *decimal.Decimal `db:"target_protein" json:"target_protein,omitempty" swaggertype:"string"`
	TargetCarbs    *decimal.Decimal `db:"target_carbs" json:"target_carbs,omitempty" swaggertype:"string"`
	TargetFats     *decimal.Decimal `db:"target_fats" json:"target_fats,omitempty" swaggertype:"string"`
	MealsPerDay    int              `db:"meals_per_day" json:"meals_per_day"`
}

func (d *DietPlan) Record() DietPlanRecord {
	return DietPlanRecord{
		ScheduleRecord: d.record(),
		Goal:           d.goal,
		DietType:       d.dietType,
		TargetCalories: d.targets.Calories,
		TargetProtein:  d.targets.Protein,
		TargetCarbs:    d.targets.Carbs,
		TargetFats:     d.targets.Fats,
		MealsPerDay:    d.mealsPerDay,
	}
}

func RestoreDietPlan(r DietPlanRecord) (*DietPlan, error) {
	const op = "diet_plan.restore"

	if !r.Goal.Valid() {
		return nil, apperror.Validation(op, "unknown diet goal %q", string(r.Goal))
	}
	if !r.DietType.Valid() {
		return nil, apperror.Validation(op, "unknown diet type %q", string(r.DietType))
	}

	return &DietPlan{
		schedule: restoreSchedule(r.ScheduleRecord),
		goal:     r.Goal,
		dietType: r.DietType,
		targets: NutritionTargets{
			Calories: r.TargetCalories,
			Protein:  r.TargetProtein,
			Carbs:    r.TargetCarbs,
			Fats:     r.TargetFats,
		},
		mealsPerDay: r.MealsPerDay,
	}, nil
}

type DietPlanView struct {
	DietPlanRecord
	GoalName      string `json:"goal_name"`
	TypeName      string `json:"diet_type_name"`
	IsActive      bool   `json:"is_active"`
	RemainingDays int    `json:"remaining_days"`
}

func (d *DietPlan) View() DietPlanView {
	return DietPlanView{
		DietPlanRecord: d.Record(),
		GoalName:       d.goal.DisplayName(),
		TypeName:       d.dietType.DisplayName(),
		IsActive:       d.IsActive(),
		RemainingDays:  d.RemainingDays(),
	}
}
