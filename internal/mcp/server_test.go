package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// TestUserIDFromContextDefault verifies the default user ID (1) when no value
// is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != 1 {
		t.Errorf("UserIDFromContext(empty) = %d, want 1", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	if id := UserIDFromContext(ctx); id != 42 {
		t.Errorf("UserIDFromContext = %d, want 42", id)
	}
}

func TestValidDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2026-08-28", true},
		{"2026-02-30", false},
		{"28-08-2026", false},
		{"yesterday", false},
		{"", false},
	}
	for _, c := range cases {
		if got := validDate(c.in); got != c.want {
			t.Errorf("validDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// TestWeeklyScheduleResource verifies the schedule resource serves all seven
// days as JSON without touching the data source.
func TestWeeklyScheduleResource(t *testing.T) {
	h := &handlers{}

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "repflow://weekly_schedule"

	contents, err := h.weeklySchedule(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T, want TextResourceContents", contents[0])
	}
	if text.MIMEType != "application/json" {
		t.Errorf("mime type = %q, want application/json", text.MIMEType)
	}

	var days []map[string]any
	if err := json.Unmarshal([]byte(text.Text), &days); err != nil {
		t.Fatalf("schedule is not valid JSON: %v", err)
	}
	if len(days) != 7 {
		t.Errorf("got %d days, want 7", len(days))
	}
}

// TestYogaCatalogResource verifies the yoga resource bundles categories and
// the per-day plans.
func TestYogaCatalogResource(t *testing.T) {
	h := &handlers{}

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "repflow://yoga_catalog"

	contents, err := h.yogaCatalog(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	text := contents[0].(mcp.TextResourceContents)
	if !strings.Contains(text.Text, "categories") || !strings.Contains(text.Text, "plans") {
		t.Errorf("yoga catalog missing sections: %s", text.Text[:min(len(text.Text), 200)])
	}
}
