// Package calories estimates energy expenditure for exercises and yoga poses
// using MET (Metabolic Equivalent of Task) coefficients. All functions are
// pure and deterministic.
package calories

import (
	"math"

	"github.com/meltforce/repflow/internal/models"
)

// DefaultWeightKg is used when no user-specific body weight is available.
const DefaultWeightKg = 64

// secondsPerRep estimates how long one repetition takes.
const secondsPerRep = 2

// defaultMET is applied to categories missing from the table.
const defaultMET = 4.0

// PoseCaloriesPerSecond is the flat burn rate for yoga holds (~4.2 cal/min).
const PoseCaloriesPerSecond = 0.07

// metByCategory maps exercise categories to MET coefficients.
var metByCategory = map[string]float64{
	models.CategoryChest: 8.0, // push-ups
	models.CategoryBack:  5.0, // rows, pull-ups
	models.CategoryArms:  3.8, // curls, dips
	models.CategoryLegs:  5.0, // squats, lunges
	models.CategoryCore:  3.8, // crunches, sit-ups
	"jumping":            8.0, // jumping jacks
	"plank":              3.3,
}

// ForExercise estimates calories for a performed quantity — reps for
// rep-based exercises, seconds held for hold-based ones — at the default
// body weight. Result is rounded to one decimal place.
func ForExercise(ex models.Exercise, quantity int) float64 {
	return ForExerciseWeighted(ex, quantity, DefaultWeightKg)
}

// ForExerciseWeighted is ForExercise with an explicit body weight in kg.
func ForExerciseWeighted(ex models.Exercise, quantity int, weightKg float64) float64 {
	if quantity < 0 {
		quantity = 0
	}
	seconds := float64(quantity)
	if !ex.IsHold() {
		seconds = float64(quantity * secondsPerRep)
	}

	met, ok := metByCategory[ex.Category]
	if !ok {
		met = defaultMET
	}

	cal := met * 3.5 * weightKg / 200 * (seconds / 60)
	return round1(cal * difficultyMultiplier(ex.Difficulty))
}

// ForPoseSeconds estimates calories for a yoga pose held the given number
// of seconds.
func ForPoseSeconds(seconds int) float64 {
	if seconds < 0 {
		seconds = 0
	}
	return round1(PoseCaloriesPerSecond * float64(seconds))
}

func difficultyMultiplier(difficulty string) float64 {
	switch difficulty {
	case models.DifficultyBeginner:
		return 0.8
	case models.DifficultyAdvanced:
		return 1.2
	default: // Intermediate and unset
		return 1.0
	}
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 { return round1(v) }

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
