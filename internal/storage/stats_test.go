package storage

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		today string
		want  int
	}{
		{"no sessions", nil, "2025-06-10", 0},
		{"single session today", []string{"2025-06-10"}, "2025-06-10", 1},
		{"single session yesterday", []string{"2025-06-09"}, "2025-06-10", 1},
		{"session two days ago breaks", []string{"2025-06-08"}, "2025-06-10", 0},
		{
			"run ending today",
			[]string{"2025-06-08", "2025-06-09", "2025-06-10"},
			"2025-06-10",
			3,
		},
		{
			"run ending yesterday still counts",
			[]string{"2025-06-07", "2025-06-08", "2025-06-09"},
			"2025-06-10",
			3,
		},
		{
			"gap resets the count",
			[]string{"2025-06-05", "2025-06-06", "2025-06-08", "2025-06-09", "2025-06-10"},
			"2025-06-10",
			3,
		},
		{
			"duplicate dates count once",
			[]string{"2025-06-09", "2025-06-09", "2025-06-10", "2025-06-10"},
			"2025-06-10",
			2,
		},
		{
			"unordered input",
			[]string{"2025-06-10", "2025-06-08", "2025-06-09"},
			"2025-06-10",
			3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStreak(tt.dates, day(tt.today)); got != tt.want {
				t.Errorf("ComputeStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestComputeStreakIgnoresTimeOfDay pins that only the calendar date matters.
func TestComputeStreakIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 23, 45, 12, 0, time.UTC)
	if got := ComputeStreak([]string{"2025-06-10"}, now); got != 1 {
		t.Errorf("ComputeStreak() = %d, want 1", got)
	}
}
