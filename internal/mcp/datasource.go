package mcp

import (
	"context"
	"time"

	"github.com/meltforce/repflow/internal/models"
	"github.com/meltforce/repflow/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListWorkoutSessions(ctx context.Context, userID int64) ([]models.WorkoutSession, error)
	ListWorkoutSessionsByDate(ctx context.Context, userID int64, date string) ([]models.WorkoutSession, error)
	GetWorkoutStats(ctx context.Context, userID int64) (*models.WorkoutStats, error)
	GetStreak(ctx context.Context, userID int64, loc *time.Location) (int, error)
	ListYogaLogs(ctx context.Context, userID int64) ([]models.YogaSessionLog, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
