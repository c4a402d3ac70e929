package models

// YogaPose is a catalog entry. Immutable.
type YogaPose struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"` // Beginner | Intermediate | Advanced | "Beginner / Intermediate"
}

// YogaCategory groups poses by theme (standing, seated, twists, ...).
type YogaCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Poses       []YogaPose `json:"poses"`
}

// YogaPlanPose is a weekday-plan pose with guidance text and a suggested
// hold duration in seconds.
type YogaPlanPose struct {
	Name        string `json:"name"`
	Difficulty  string `json:"difficulty,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Procedure   string `json:"procedure,omitempty"`
	Duration    int    `json:"duration"` // seconds
}

// YogaPoseLog is one pose inside a finalized yoga session log.
// A skipped pose carries duration 0 and calories 0.
type YogaPoseLog struct {
	Name       string  `json:"name"`
	Difficulty string  `json:"difficulty"`
	Duration   int     `json:"duration"` // seconds actually held
	Calories   float64 `json:"calories"`
}

// YogaSessionLog is a finalized yoga session. Never mutated after creation
// except by whole-record deletion.
type YogaSessionLog struct {
	ID          string        `json:"id"`
	Category    string        `json:"category"`
	Poses       []YogaPoseLog `json:"poses"`
	CompletedAt string        `json:"completedAt"` // RFC 3339
}
