package storage

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/meltforce/repflow/internal/calories"
	"github.com/meltforce/repflow/internal/models"
)

// GetWorkoutStats returns the aggregate numbers for the history view. A user
// with no sessions gets all zeroes.
func (db *DB) GetWorkoutStats(ctx context.Context, userID int64) (*models.WorkoutStats, error) {
	stats := &models.WorkoutStats{}
	err := db.Pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_calories), 0), COALESCE(SUM(total_duration), 0)
		FROM workout_sessions WHERE user_id = $1
	`, userID).Scan(&stats.TotalSessions, &stats.TotalCalories, &stats.TotalWorkoutTime)
	if err != nil {
		return nil, fmt.Errorf("querying workout stats: %w", err)
	}

	stats.TotalCalories = calories.Round1(stats.TotalCalories)
	if stats.TotalSessions > 0 {
		stats.AverageCaloriesPerSession = int(math.Round(stats.TotalCalories / float64(stats.TotalSessions)))
	}
	return stats, nil
}

// GetStreak returns the user's current consecutive-day workout streak as of
// today in the given location.
func (db *DB) GetStreak(ctx context.Context, userID int64, loc *time.Location) (int, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT DISTINCT session_date::text FROM workout_sessions WHERE user_id = $1
	`, userID)
	if err != nil {
		return 0, fmt.Errorf("querying workout dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return 0, fmt.Errorf("scanning workout date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	return ComputeStreak(dates, time.Now().In(loc)), nil
}

// ComputeStreak counts consecutive days with at least one session, walking
// backwards from today. A streak survives one not-yet-trained day: if today
// has no session the count starts from yesterday instead, so the streak only
// breaks once a full day is missed.
func ComputeStreak(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		seen[d] = true
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if !seen[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for seen[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
