package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// validDate reports whether s is a YYYY-MM-DD calendar date.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// --- Tool definitions ---

var toolGetWorkoutSessions = mcp.NewTool("get_workout_sessions",
	mcp.WithDescription("Retrieve completed workout sessions, newest first. Each session includes the workout type, per-exercise logs, and total reps, sets, calories, and duration."),
	mcp.WithString("date", mcp.Description("Filter to a single day (YYYY-MM-DD). Omit for full history.")),
)

var toolGetWorkoutStats = mcp.NewTool("get_workout_stats",
	mcp.WithDescription("Lifetime workout statistics: total sessions, total calories burned, total workout minutes, and average calories per session."),
)

var toolGetStreak = mcp.NewTool("get_streak",
	mcp.WithDescription("Current consecutive-day training streak. A day counts when at least one workout session was completed on it; the streak survives a day where training has not happened yet."),
	mcp.WithString("timezone", mcp.Description("IANA time zone for day boundaries (e.g. 'Europe/Berlin'). Defaults to the server's local zone.")),
)

var toolGetYogaLogs = mcp.NewTool("get_yoga_logs",
	mcp.WithDescription("Retrieve completed yoga sessions, newest first. Each log lists the poses held, their durations in seconds, calories, and skipped poses."),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	date := req.GetString("date", "")
	if date != "" && !validDate(date) {
		return mcp.NewToolResultError("date must be YYYY-MM-DD"), nil
	}

	var sessions any
	var err error
	if date != "" {
		sessions, err = h.ds.ListWorkoutSessionsByDate(ctx, uid, date)
	} else {
		sessions, err = h.ds.ListWorkoutSessions(ctx, uid)
	}
	if err != nil {
		h.log.Error("mcp get_workout_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	stats, err := h.ds.GetWorkoutStats(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_workout_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getStreak(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	loc := time.Local
	if tz := req.GetString("timezone", ""); tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return mcp.NewToolResultError("unknown timezone: " + tz), nil
		}
	}

	streak, err := h.ds.GetStreak(ctx, uid, loc)
	if err != nil {
		h.log.Error("mcp get_streak", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]int{"streak": streak})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getYogaLogs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	logs, err := h.ds.ListYogaLogs(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_yoga_logs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(logs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
