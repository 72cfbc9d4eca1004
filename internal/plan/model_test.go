package plan

import (
	"testing"
	"time"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func newTestWorkoutPlan(t *testing.T, user uuid.UUID) *WorkoutPlan {
	t.Helper()
	wp, err := NewWorkoutPlan(user, nil, "Spring block", "", t0, t0.AddDate(0, 0, 28), GoalStrength, LevelIntermediate, false)
	require.NoError(t, err)
	return wp
}

func newTestDietPlan(t *testing.T, user uuid.UUID) *DietPlan {
	t.Helper()
	dp, err := NewDietPlan(user, nil, "Lean bulk", "", t0, t0.AddDate(0, 0, 28), DietMuscleGain, DietHighProtein, false)
	require.NoError(t, err)
	return dp
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestParseKinds(t *testing.T) {
	g, err := ParseWorkoutGoal(" Muscle_Gain ")
	require.NoError(t, err)
	assert.Equal(t, GoalMuscleGain, g)
	assert.Equal(t, "Muscle Gain", g.DisplayName())

	l, err := ParseFitnessLevel("EXPERT")
	require.NoError(t, err)
	assert.Equal(t, LevelExpert, l)

	dt, err := ParseDietType("keto")
	require.NoError(t, err)
	assert.Equal(t, "Ketogenic", dt.DisplayName())

	_, err = ParseDietGoal("bulking")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	_, err = ParseWorkoutGoal("")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestAllOptions(t *testing.T) {
	o := AllOptions()
	assert.Len(t, o.WorkoutGoals, len(workoutGoals))
	assert.Len(t, o.FitnessLevels, len(fitnessLevels))
	assert.Len(t, o.DietGoals, len(dietGoals))
	assert.Len(t, o.DietTypes, len(dietTypes))
	assert.Equal(t, Option{Value: "beginner", DisplayName: "Beginner"}, o.FitnessLevels[0])
}

func TestNewWorkoutPlan(t *testing.T) {
	freezeTime(t, t0)
	user := uuid.New()

	tests := []struct {
		name    string
		userID  uuid.UUID
		plan    string
		start   time.Time
		end     time.Time
		goal    WorkoutGoal
		level   FitnessLevel
		wantErr bool
	}{
		{"valid", user, "Spring block", t0, t0.AddDate(0, 0, 28), GoalEndurance, LevelBeginner, false},
		{"name trimmed to minimum", user, "  Abc  ", t0, t0.AddDate(0, 0, 1), GoalEndurance, LevelBeginner, false},
		{"missing user", uuid.Nil, "Spring block", t0, t0.AddDate(0, 0, 28), GoalEndurance, LevelBeginner, true},
		{"short name", user, " ab ", t0, t0.AddDate(0, 0, 28), GoalEndurance, LevelBeginner, true},
		{"blank name", user, "   ", t0, t0.AddDate(0, 0, 28), GoalEndurance, LevelBeginner, true},
		{"start after end", user, "Spring block", t0, t0.AddDate(0, 0, -1), GoalEndurance, LevelBeginner, true},
		{"start equals end", user, "Spring block", t0, t0, GoalEndurance, LevelBeginner, true},
		{"ended in the past", user, "Spring block", t0.AddDate(0, 0, -30), t0.AddDate(0, 0, -2), GoalEndurance, LevelBeginner, true},
		{"unknown goal", user, "Spring block", t0, t0.AddDate(0, 0, 28), WorkoutGoal("bulk"), LevelBeginner, true},
		{"unknown level", user, "Spring block", t0, t0.AddDate(0, 0, 28), GoalEndurance, FitnessLevel("pro"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp, err := NewWorkoutPlan(tt.userID, nil, tt.plan, "", tt.start, tt.end, tt.goal, tt.level, false)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, wp.WorkoutsPerWeek())
			assert.Equal(t, 60, wp.SessionMinutes())
			assert.False(t, wp.IsCompleted())
			assert.GreaterOrEqual(t, len(wp.Name()), minNameLength)
		})
	}
}

func TestNewWorkoutPlan_NilTrainerDropped(t *testing.T) {
	freezeTime(t, t0)
	nilID := uuid.Nil
	wp, err := NewWorkoutPlan(uuid.New(), &nilID, "Spring block", "", t0, t0.AddDate(0, 0, 7), GoalEndurance, LevelBeginner, true)
	require.NoError(t, err)
	assert.Nil(t, wp.TrainerID())
	assert.True(t, wp.IsCustom())
}

func TestWorkoutPlan_SetWorkoutFrequency(t *testing.T) {
	freezeTime(t, t0)

	tests := []struct {
		name    string
		perWeek int
		minutes int
		wantErr bool
	}{
		{"lower bounds", 1, 15, false},
		{"upper bounds", 7, 300, false},
		{"no workouts", 0, 60, true},
		{"eight a week", 8, 60, true},
		{"too short", 3, 14, true},
		{"too long", 3, 301, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := newTestWorkoutPlan(t, uuid.New())
			err := wp.SetWorkoutFrequency(tt.perWeek, tt.minutes)
			if tt.wantErr {
				assert.True(t, apperror.IsKind(err, apperror.KindRange))
				assert.Equal(t, 3, wp.WorkoutsPerWeek())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.perWeek, wp.WorkoutsPerWeek())
			assert.Equal(t, tt.minutes, wp.SessionMinutes())
		})
	}
}

func TestSchedule_CompleteAndReopen(t *testing.T) {
	freezeTime(t, t0)
	wp := newTestWorkoutPlan(t, uuid.New())
	assert.True(t, wp.IsActive())
	assert.Equal(t, 28, wp.RemainingDays())

	require.NoError(t, wp.Complete())
	assert.True(t, wp.IsCompleted())
	require.NotNil(t, wp.CompletedAt())
	assert.Equal(t, t0, *wp.CompletedAt())
	assert.False(t, wp.IsActive())
	assert.Zero(t, wp.RemainingDays())

	assert.ErrorIs(t, wp.Complete(), apperror.ErrInvalidState)
	assert.ErrorIs(t, wp.UpdateDates(t0, t0.AddDate(0, 0, 60)), apperror.ErrInvalidState)

	require.NoError(t, wp.Reopen())
	assert.Nil(t, wp.CompletedAt())
	assert.ErrorIs(t, wp.Reopen(), apperror.ErrInvalidState)
}

func TestSchedule_Updates(t *testing.T) {
	freezeTime(t, t0)
	dp := newTestDietPlan(t, uuid.New())

	require.NoError(t, dp.UpdateBasicInfo("  Cutting phase ", " less sugar "))
	assert.Equal(t, "Cutting phase", dp.Name())
	assert.Equal(t, "less sugar", dp.Description())
	assert.ErrorIs(t, dp.UpdateBasicInfo("no", ""), apperror.ErrValidation)
	assert.Equal(t, "Cutting phase", dp.Name())

	require.NoError(t, dp.UpdateDates(t0.AddDate(0, 0, 7), t0.AddDate(0, 0, 14)))
	assert.False(t, dp.IsActive())
	assert.ErrorIs(t, dp.UpdateDates(t0.AddDate(0, 0, 14), t0.AddDate(0, 0, 7)), apperror.ErrValidation)

	dp.SetSpecialInstructions("  eat slowly ")
	dp.SetRestrictions("no peanuts")
	assert.Equal(t, "eat slowly", dp.SpecialInstructions())
	assert.Equal(t, "no peanuts", dp.Restrictions())
}

func TestWorkoutPlan_ScheduleWorkout(t *testing.T) {
	freezeTime(t, t0)
	wp := newTestWorkoutPlan(t, uuid.New())
	require.NoError(t, wp.SetWorkoutFrequency(4, 75))

	w, err := wp.ScheduleWorkout("Lower body A", "squats", t0.AddDate(0, 0, 2), 0)
	require.NoError(t, err)
	assert.Equal(t, wp.ID(), w.PlanID())
	assert.Equal(t, 75, w.EstimatedMinutes())

	_, err = wp.ScheduleWorkout("Lower body A", "", t0.AddDate(0, 0, 29), 60)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	_, err = wp.ScheduleWorkout("Lower body A", "", t0.Add(-time.Hour), 60)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	_, err = wp.ScheduleWorkout("Lower body A", "", t0.AddDate(0, 0, 1), 10)
	assert.True(t, apperror.IsKind(err, apperror.KindRange))

	require.NoError(t, wp.Complete())
	_, err = wp.ScheduleWorkout("Lower body B", "", t0.AddDate(0, 0, 3), 60)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestWorkout_MarkCompleted(t *testing.T) {
	freezeTime(t, t0)
	w, err := NewWorkout(uuid.New(), "Intervals", "", t0, 45)
	require.NoError(t, err)

	assert.True(t, apperror.IsKind(w.MarkCompleted(0, ""), apperror.KindRange))
	assert.False(t, w.IsCompleted())

	require.NoError(t, w.MarkCompleted(50, "  legs burning "))
	assert.True(t, w.IsCompleted())
	require.NotNil(t, w.ActualMinutes())
	assert.Equal(t, 50, *w.ActualMinutes())
	assert.Equal(t, "legs burning", w.Notes())

	assert.ErrorIs(t, w.MarkCompleted(50, ""), apperror.ErrInvalidState)
}

func TestCompletionPercentage(t *testing.T) {
	freezeTime(t, t0)
	plan := uuid.New()
	mk := func(done bool) *Workout {
		w, err := NewWorkout(plan, "Session", "", t0, 60)
		require.NoError(t, err)
		if done {
			require.NoError(t, w.MarkCompleted(60, ""))
		}
		return w
	}

	tests := []struct {
		name     string
		workouts []*Workout
		want     string
	}{
		{"none", nil, "0"},
		{"all open", []*Workout{mk(false), mk(false)}, "0"},
		{"two of three", []*Workout{mk(true), mk(true), mk(false)}, "66.67"},
		{"one of three", []*Workout{mk(true), mk(false), mk(false)}, "33.33"},
		{"all done", []*Workout{mk(true), mk(true)}, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, CompletionPercentage(tt.workouts).Equal(decimal.RequireFromString(tt.want)),
				"got %s", CompletionPercentage(tt.workouts))
		})
	}
}

func TestDietPlan_SetNutritionTargets(t *testing.T) {
	freezeTime(t, t0)

	tests := []struct {
		name      string
		targets   NutritionTargets
		wantField string
	}{
		{"untracked", NutritionTargets{}, ""},
		{"full", NutritionTargets{Calories: dec("2200"), Protein: dec("150"), Carbs: dec("0"), Fats: dec("70")}, ""},
		{"zero calories", NutritionTargets{Calories: dec("0")}, "calories"},
		{"negative protein", NutritionTargets{Protein: dec("-1")}, "protein"},
		{"negative fats", NutritionTargets{Calories: dec("1800"), Fats: dec("-0.5")}, "fats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dp := newTestDietPlan(t, uuid.New())
			err := dp.SetNutritionTargets(tt.targets)
			if tt.wantField != "" {
				var appErr *apperror.Error
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, apperror.KindRange, appErr.Kind)
				assert.Equal(t, tt.wantField, appErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.targets, dp.Targets())
		})
	}
}

func TestDietPlan_SetMealsPerDay(t *testing.T) {
	freezeTime(t, t0)
	dp := newTestDietPlan(t, uuid.New())
	assert.Equal(t, 3, dp.MealsPerDay())

	require.NoError(t, dp.SetMealsPerDay(8))
	assert.Equal(t, 8, dp.MealsPerDay())
	assert.True(t, apperror.IsKind(dp.SetMealsPerDay(0), apperror.KindRange))
	assert.True(t, apperror.IsKind(dp.SetMealsPerDay(9), apperror.KindRange))
	assert.Equal(t, 8, dp.MealsPerDay())
}

func TestDietPlan_RecordRoundTrip(t *testing.T) {
	freezeTime(t, t0)
	trainer := uuid.New()
	dp, err := NewDietPlan(uuid.New(), &trainer, "Lean bulk", "five meals", t0, t0.AddDate(0, 0, 28), DietMuscleGain, DietHighProtein, true)
	require.NoError(t, err)
	require.NoError(t, dp.SetNutritionTargets(NutritionTargets{Calories: dec("2800"), Protein: dec("180")}))
	require.NoError(t, dp.Complete())

	restored, err := RestoreDietPlan(dp.Record())
	require.NoError(t, err)
	assert.Equal(t, dp.Record(), restored.Record())

	rec := dp.Record()
	rec.DietType = "carnivore"
	_, err = RestoreDietPlan(rec)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestWorkoutPlan_View(t *testing.T) {
	freezeTime(t, t0)
	wp := newTestWorkoutPlan(t, uuid.New())
	done, err := wp.ScheduleWorkout("Upper body", "", t0.AddDate(0, 0, 1), 60)
	require.NoError(t, err)
	require.NoError(t, done.MarkCompleted(55, ""))
	open, err := wp.ScheduleWorkout("Lower body", "", t0.AddDate(0, 0, 3), 60)
	require.NoError(t, err)

	v := wp.View([]*Workout{done, open})
	assert.Equal(t, "Strength Building", v.GoalName)
	assert.Equal(t, "Intermediate", v.LevelName)
	assert.True(t, v.IsActive)
	assert.Equal(t, "50", v.CompletionPercentage.String())
	assert.Len(t, v.Workouts, 2)
}
