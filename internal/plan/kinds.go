package plan

import (
	"strings"

	"fitcircle/internal/apperror"
)

type WorkoutGoal string

const (
	GoalWeightLoss     WorkoutGoal = "weight_loss"
	GoalMuscleGain     WorkoutGoal = "muscle_gain"
	GoalStrength       WorkoutGoal = "strength_building"
	GoalEndurance      WorkoutGoal = "endurance"
	GoalGeneralFitness WorkoutGoal = "general_fitness"
	GoalFlexibility    WorkoutGoal = "flexibility"
	GoalSportsSpecific WorkoutGoal = "sports_specific"
	GoalRehabilitation WorkoutGoal = "rehabilitation"
)

var workoutGoals = map[WorkoutGoal]string{
	GoalWeightLoss:     "Weight Loss",
	GoalMuscleGain:     "Muscle Gain",
	GoalStrength:       "Strength Building",
	GoalEndurance:      "Endurance",
	GoalGeneralFitness: "General Fitness",
	GoalFlexibility:    "Flexibility",
	GoalSportsSpecific: "Sports Specific",
	GoalRehabilitation: "Rehabilitation",
}

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
	LevelExpert       FitnessLevel = "expert"
)

var fitnessLevels = map[FitnessLevel]string{
	LevelBeginner:     "Beginner",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
	LevelExpert:       "Expert",
}

type DietGoal string

const (
	DietWeightLoss        DietGoal = "weight_loss"
	DietWeightGain        DietGoal = "weight_gain"
	DietWeightMaintenance DietGoal = "weight_maintenance"
	DietMuscleGain        DietGoal = "muscle_gain"
	DietFatLoss           DietGoal = "fat_loss"
	DietHealth            DietGoal = "health_improvement"
	DietSportsPerformance DietGoal = "sports_performance"
)

var dietGoals = map[DietGoal]string{
	DietWeightLoss:        "Weight Loss",
	DietWeightGain:        "Weight Gain",
	DietWeightMaintenance: "Weight Maintenance",
	DietMuscleGain:        "Muscle Gain",
	DietFatLoss:           "Fat Loss",
	DietHealth:            "Health Improvement",
	DietSportsPerformance: "Sports Performance",
}

type DietType string

const (
	DietBalanced      DietType = "balanced"
	DietLowCarb       DietType = "low_carb"
	DietLowFat        DietType = "low_fat"
	DietHighProtein   DietType = "high_protein"
	DietKeto          DietType = "keto"
	DietVegetarian    DietType = "vegetarian"
	DietVegan         DietType = "vegan"
	DietMediterranean DietType = "mediterranean"
	DietPaleo         DietType = "paleo"
)

var dietTypes = map[DietType]string{
	DietBalanced:      "Balanced",
	DietLowCarb:       "Low Carb",
	DietLowFat:        "Low Fat",
	DietHighProtein:   "High Protein",
	DietKeto:          "Ketogenic",
	DietVegetarian:    "Vegetarian",
	DietVegan:         "Vegan",
	DietMediterranean: "Mediterranean",
	DietPaleo:         "Paleo",
}

// parseKind lowercases and trims s and looks it up in known.
func parseKind[T ~string](s string, known map[T]string, field, what string) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := known[v]; !ok {
		var zero T
		return zero, apperror.ValidationField("plan.parse", field, "unknown %s %q", what, s)
	}
	return v, nil
}

func ParseWorkoutGoal(s string) (WorkoutGoal, error) {
	return parseKind(s, workoutGoals, "goal", "workout goal")
}

func ParseFitnessLevel(s string) (FitnessLevel, error) {
	return parseKind(s, fitnessLevels, "level", "fitness level")
}

func ParseDietGoal(s string) (DietGoal, error) {
	return parseKind(s, dietGoals, "goal", "diet goal")
}

func ParseDietType(s string) (DietType, error) {
	return parseKind(s, dietTypes, "diet_type", "diet type")
}

func (g WorkoutGoal) Valid() bool {
	_, ok := workoutGoals[g]
	return ok
}

func (l FitnessLevel) Valid() bool {
	_, ok := fitnessLevels[l]
	return ok
}

func (g DietGoal) Valid() bool {
	_, ok := dietGoals[g]
	return ok
}

func (t DietType) Valid() bool {
	_, ok := dietTypes[t]
	return ok
}

func (g WorkoutGoal) DisplayName() string  { return workoutGoals[g] }
func (l FitnessLevel) DisplayName() string { return fitnessLevels[l] }
func (g DietGoal) DisplayName() string     { return dietGoals[g] }
func (t DietType) DisplayName() string     { return dietTypes[t] }

// Option is one selectable value with its label.
type Option struct {
	Value       string `json:"value" example:"muscle_gain"`
	DisplayName string `json:"display_name" example:"Muscle Gain"`
}

// Options lists every value a plan form can offer.
type Options struct {
	WorkoutGoals  []Option `json:"workout_goals"`
	FitnessLevels []Option `json:"fitness_levels"`
	DietGoals     []Option `json:"diet_goals"`
	DietTypes     []Option `json:"diet_types"`
}

func options[T ~string](order []T, known map[T]string) []Option {
	out := make([]Option, 0, len(order))
	for _, v := range order {
		out = append(out, Option{Value: string(v), DisplayName: known[v]})
	}
	return out
}

func AllOptions() Options {
	return Options{
		WorkoutGoals: options([]WorkoutGoal{
			GoalWeightLoss, GoalMuscleGain, GoalStrength, GoalEndurance,
			GoalGeneralFitness, GoalFlexibility, GoalSportsSpecific, GoalRehabilitation,
		}, workoutGoals),
		FitnessLevels: options([]FitnessLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}, fitnessLevels),
		DietGoals: options([]DietGoal{
			DietWeightLoss, DietWeightGain, DietWeightMaintenance, DietMuscleGain,
			DietFatLoss, DietHealth, DietSportsPerformance,
		}, dietGoals),
		DietTypes: options([]DietType{
			DietBalanced, DietLowCarb, DietLowFat, DietHighProtein, DietKeto,
			DietVegetarian, DietVegan, DietMediterranean, DietPaleo,
		}, dietTypes),
	}
}
