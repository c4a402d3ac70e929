// Package catalog holds the built-in exercise and yoga pose data. Everything
// here is immutable after init; session records snapshot names at completion
// time, so edits to this data never rewrite history.
package catalog

import (
	"strings"

	"github.com/meltforce/repflow/internal/models"
)

// WorkoutCategories is the muscle-group catalog.
var WorkoutCategories = []models.WorkoutCategory{
	{
		ID:          "chest",
		Name:        "Chest",
		Description: "Push movements building the chest, shoulders, and triceps.",
		Exercises: []models.Exercise{
			{ID: "push-up", Name: "Push-Up", Category: models.CategoryChest, Difficulty: models.DifficultyBeginner, TargetMuscles: []string{"chest", "triceps", "shoulders"}},
			{ID: "wide-push-up", Name: "Wide Push-Up", Category: models.CategoryChest, Difficulty: models.DifficultyIntermediate, TargetMuscles: []string{"chest", "shoulders"}},
			{ID: "decline-push-up", Name: "Decline Push-Up", Category: models.CategoryChest, Difficulty: models.DifficultyIntermediate, TargetMuscles: []string{"upper chest", "shoulders"}},
			{ID: "diamond-push-up", Name: "Diamond Push-Up", Category: models.CategoryChest, Difficulty: models.DifficultyAdvanced, TargetMuscles: []string{"triceps", "inner chest"}},
			{ID: "chest-dip", Name: "Chest Dip", Category: models.CategoryChest, Difficulty: models.DifficultyIntermediate, TargetMuscles: []string{"chest", "triceps"}},
		},
	},
	{
		ID:          "back",
		Name:        "Back",
		Description: "Pull movements for the lats, traps, and rear delts.",
		Exercises: []models.Exercise{
			{ID: "pull-up", Name: "Pull-Up", Category: models.CategoryBack, Difficulty: models.DifficultyIntermediate, TargetMuscles: []string{"lats", "biceps"}},
			{ID: "chin-up", Name: "Chin-Up", Category: models.CategoryBack, Difficulty: models.DifficultyIntermediate, TargetMuscles: []string{"lats", "biceps"}},
			{ID: "inverted-row", Name: "Inverted Row", Category: models.CategoryBack, Difficulty: models.DifficultyBeginner, TargetMuscles: []string{"mid back", "biceps"}},
			{ID: "superman", Name: "Superman", Category: models.CategoryBack, Difficulty: models.DifficultyBeginner, TimerType: models.TimerHold, DefaultDuration: 20, TargetMuscles: []string{"lower back"}},
		},
	},
	{
		ID:          "arms",
		Name:        "Arms",
		Description: "Biceps and triceps isolation work.",
		Exercises: []models.Exercise{
			{ID: "bench-dip", Name: "Bench Dip", Category: models.CategoryArms, Difficulty: models.DifficultyBeginner, TargetMuscles: []string{"triceps"}},
			{ID: "bicep-curl", Name: "Bicep Curl", Category: models.CategoryArms, Difficulty: models.DifficultyBeginner, TargetMuscles: []string{"biceps"}},
			{ID: "hammer-curl", Name: "Hammer Curl", Category: models.CategoryArms, Difficulty: models.DifficultyBeginner, TargetMuscles: []string{"biceps", "forearms"}},
			{ID: "overhead-extension", Name: "Overhead Triceps Extension", Category: models.CategoryArms, Difficulty: models.DifficultyIntermediate, TargetMuscles: []string{"triceps"}},
		},
	},
	{
		ID:          "legs",
		Name:        "Legs",
		Description: "Squat and lunge patterns for quads, glutes, and hamstrings.",
		Exercises: []models.Exercise{
			{ID: "squat", Name: "Bodyweight Squat", Category: models.CategoryLegs, Difficulty: models.DifficultyBeginner, TargetMuscles: []string{"quads", "glutes"}},
			{ID: "lunge", Name: "Lunge", Category: models.CategoryLegs, Difficulty: models.DifficultyBeginner, Bilateral: true, TargetMuscles: []string{"quads", "glutes"}},
			{ID: "bulgarian-split-squat", Name: "Bulgarian Split Squat", Category: models.CategoryLegs, Difficulty: models.DifficultyAdvanced, Bilateral: true, TargetMuscles: []string{"quads", "glutes"}},
			{ID: "wall-sit", Name: "Wall Sit", Category: models.CategoryLegs, Difficulty: models.DifficultyIntermediate, TimerType: models.TimerHold, DefaultDuration: 45, TargetMuscles: []string{"quads"}},
			{ID: "calf-raise", Name: "Calf Raise", Category: models.CategoryLegs, Difficulty: models.DifficultyBeginner, TargetMuscles: []string{"calves"}},
		},
	},
	{
		ID:          "core",
		Name:        "Core",
		Description: "Abdominal and trunk stability work.",
		Exercises: []models.Exercise{
			{ID: "crunch", Name: "Crunch", Category: models.CategoryCore, Difficulty: models.DifficultyBeginner, TargetMuscles: []string{"abs"}},
			{ID: "sit-up", Name: "Sit-Up", Category: models.CategoryCore, Difficulty: models.DifficultyBeginner, TargetMuscles: []string{"abs", "hip flexors"}},
			{ID: "plank", Name: "Plank", Category: models.CategoryCore, Difficulty: models.DifficultyBeginner, TimerType: models.TimerHold, DefaultDuration: 30, TargetMuscles: []string{"abs", "lower back"}},
			{ID: "side-plank", Name: "Side Plank", Category: models.CategoryCore, Difficulty: models.DifficultyIntermediate, TimerType: models.TimerHold, DefaultDuration: 20, Bilateral: true, TargetMuscles: []string{"obliques"}},
			{ID: "leg-raise", Name: "Leg Raise", Category: models.CategoryCore, Difficulty: models.DifficultyIntermediate, TargetMuscles: []string{"lower abs"}},
			{ID: "mountain-climber", Name: "Mountain Climber", Category: models.CategoryCore, Difficulty: models.DifficultyIntermediate, TargetMuscles: []string{"abs", "shoulders"}},
		},
	},
}

// WeeklySchedule maps each weekday to a planned workout.
var WeeklySchedule = []models.WorkoutDay{
	{Day: "Monday", ShortDay: "mon", Workout: "Push 1", Description: "Chest-focused push day.", Exercises: exercisesOf("chest", "arms")},
	{Day: "Tuesday", ShortDay: "tue", Workout: "Pull 1", Description: "Back and biceps pull day.", Exercises: exercisesOf("back", "arms")},
	{Day: "Wednesday", ShortDay: "wed", Workout: "Legs", Description: "Lower body strength.", Exercises: exercisesOf("legs")},
	{Day: "Thursday", ShortDay: "thu", Workout: "Push 2", Description: "Shoulder-leaning push variation.", Exercises: exercisesOf("chest")},
	{Day: "Friday", ShortDay: "fri", Workout: "Pull 2", Description: "Row-heavy pull variation.", Exercises: exercisesOf("back")},
	{Day: "Saturday", ShortDay: "sat", Workout: "Core & Conditioning", Description: "Trunk work and conditioning finishers.", Exercises: exercisesOf("core")},
	{Day: "Sunday", ShortDay: "sun", Workout: "Active Recovery", Description: "Light movement and mobility.", Exercises: exercisesOf("core", "legs")},
}

func exercisesOf(categoryIDs ...string) []models.Exercise {
	var out []models.Exercise
	for _, id := range categoryIDs {
		for _, c := range WorkoutCategories {
			if c.ID == id {
				out = append(out, c.Exercises...)
			}
		}
	}
	return out
}

// CategoryByID looks up a workout category.
func CategoryByID(id string) (models.WorkoutCategory, bool) {
	for _, c := range WorkoutCategories {
		if c.ID == id {
			return c, true
		}
	}
	return models.WorkoutCategory{}, false
}

// DayByShortName looks up a weekly schedule entry by its short day name
// (case-insensitive match on "mon".."sun").
func DayByShortName(short string) (models.WorkoutDay, bool) {
	for _, d := range WeeklySchedule {
		if strings.EqualFold(d.ShortDay, short) {
			return d, true
		}
	}
	return models.WorkoutDay{}, false
}

// ExerciseByID searches all categories for an exercise.
func ExerciseByID(id string) (models.Exercise, bool) {
	for _, c := range WorkoutCategories {
		for _, e := range c.Exercises {
			if e.ID == id {
				return e, true
			}
		}
	}
	return models.Exercise{}, false
}
