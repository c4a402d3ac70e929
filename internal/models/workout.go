package models

// Exercise category names. Used for MET lookup and grouping.
const (
	CategoryChest = "chest"
	CategoryBack  = "back"
	CategoryArms  = "arms"
	CategoryLegs  = "legs"
	CategoryCore  = "core"
)

// Difficulty tiers shared by exercises and yoga poses.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// TimerType values. Hold-based exercises are measured in seconds held,
// rep-based in repetition count.
const (
	TimerHold = "hold"
	TimerReps = "reps"
)

// Exercise is a catalog entry. Immutable, defined at build time.
type Exercise struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Difficulty      string   `json:"difficulty,omitempty"`
	TargetMuscles   []string `json:"targetMuscles,omitempty"`
	Section         string   `json:"section,omitempty"`
	TimerType       string   `json:"timerType,omitempty"`
	DefaultDuration int      `json:"defaultDuration,omitempty"`
	Bilateral       bool     `json:"bilateral,omitempty"`
}

// IsHold reports whether the exercise is measured by seconds held.
func (e Exercise) IsHold() bool { return e.TimerType == TimerHold }

// WorkoutSet is a single logged set. Mutable during an active session.
type WorkoutSet struct {
	Reps      int     `json:"reps"`
	Duration  int     `json:"duration,omitempty"`
	Weight    float64 `json:"weight,omitempty"`
	Completed bool    `json:"completed"`
}

// Quantity returns the performed amount for the set: seconds held for
// hold-based exercises, repetition count otherwise.
func (s WorkoutSet) Quantity(hold bool) int {
	if hold {
		return s.Duration
	}
	return s.Reps
}

// ExerciseLog is the per-exercise record inside a session. Name is a
// denormalized snapshot so catalog edits do not alter history.
type ExerciseLog struct {
	ExerciseID    string       `json:"exerciseId"`
	ExerciseName  string       `json:"exerciseName"`
	Sets          []WorkoutSet `json:"sets"`
	TotalReps     int          `json:"totalReps"`
	TotalCalories float64      `json:"totalCalories"`
	Notes         string       `json:"notes,omitempty"`
}

// WorkoutSession is a finalized session record. Totals are recomputed from
// the exercise logs at save time, never carried forward stale.
type WorkoutSession struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"` // YYYY-MM-DD
	WorkoutType   string        `json:"workoutType"`
	Exercises     []ExerciseLog `json:"exercises"`
	TotalDuration int           `json:"totalDuration"` // minutes
	TotalCalories float64       `json:"totalCalories"`
	TotalSets     int           `json:"totalSets"`
	TotalReps     int           `json:"totalReps"`
	Notes         string        `json:"notes,omitempty"`
}

// WorkoutStats are the aggregate numbers the history view shows.
type WorkoutStats struct {
	TotalSessions             int     `json:"totalSessions"`
	TotalCalories             float64 `json:"totalCalories"`
	TotalWorkoutTime          int     `json:"totalWorkoutTime"` // minutes
	AverageCaloriesPerSession int     `json:"averageCaloriesPerSession"`
}

// WorkoutDay is one entry of the weekly schedule.
type WorkoutDay struct {
	Day         string     `json:"day"`
	ShortDay    string     `json:"shortDay"`
	Workout     string     `json:"workout"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}

// WorkoutCategory groups catalog exercises by muscle group.
type WorkoutCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}
