package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("RepFlow", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("RepFlow fitness data server. Query completed workout sessions, yoga session logs, lifetime stats, and the current training streak. All data is scoped to the authenticated user. The weekly schedule and pose catalog resources describe the built-in training programs."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkoutSessions, Handler: h.getWorkoutSessions},
		server.ServerTool{Tool: toolGetWorkoutStats, Handler: h.getWorkoutStats},
		server.ServerTool{Tool: toolGetStreak, Handler: h.getStreak},
		server.ServerTool{Tool: toolGetYogaLogs, Handler: h.getYogaLogs},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWeeklySchedule, Handler: h.weeklySchedule},
		server.ServerResource{Resource: resWorkoutCatalog, Handler: h.workoutCatalog},
		server.ServerResource{Resource: resYogaCatalog, Handler: h.yogaCatalog},
		server.ServerResource{Resource: resRecentSessions, Handler: h.recentSessions},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resWeeklySchedule = mcp.NewResource(
	"repflow://weekly_schedule",
	"Weekly Schedule",
	mcp.WithResourceDescription("The seven-day workout schedule with the exercises planned for each day"),
	mcp.WithMIMEType("application/json"),
)

var resWorkoutCatalog = mcp.NewResource(
	"repflow://workout_catalog",
	"Workout Catalog",
	mcp.WithResourceDescription("All workout categories with their exercises, MET values, and difficulty levels"),
	mcp.WithMIMEType("application/json"),
)

var resYogaCatalog = mcp.NewResource(
	"repflow://yoga_catalog",
	"Yoga Catalog",
	mcp.WithResourceDescription("Yoga categories and the daily pose plans with durations and instructions"),
	mcp.WithMIMEType("application/json"),
)

var resRecentSessions = mcp.NewResource(
	"repflow://recent_sessions",
	"Recent Sessions",
	mcp.WithResourceDescription("The user's most recent completed workout sessions"),
	mcp.WithMIMEType("application/json"),
)
