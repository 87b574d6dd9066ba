// ABOUTME: MCP tool implementations for fitness activities.
// ABOUTME: Covers activity CRUD, stats, preferences, and workout suggestions.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/prefs"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/harperreed/fitlog/internal/suggest"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log a fitness activity (running, cycling, swimming, etc.)",
	}, s.handleLogActivity)

	// list_activities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_activities",
		Description: "List recent activities, optionally filtered by type or date",
	}, s.handleListActivities)

	// delete_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_activity",
		Description: "Delete an activity by ID",
	}, s.handleDeleteActivity)

	// activity_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "activity_stats",
		Description: "Get total calories, distance, duration, and activity count",
	}, s.handleActivityStats)

	// set_step_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_step_goal",
		Description: "Set the daily step goal (1000-50000)",
	}, s.handleSetStepGoal)

	// get_preferences
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_preferences",
		Description: "Get current user preferences (theme, daily step goal)",
	}, s.handleGetPreferences)

	// suggest_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "suggest_workouts",
		Description: "Suggest exercises from the workout catalog, with optional filters",
	}, s.handleSuggestWorkouts)
}

// Tool input/output types

type logActivityInput struct {
	ActivityType    string  `json:"activity_type" jsonschema:"Type of activity (running, cycling, swimming, walking, etc.)"`
	DurationMinutes int     `json:"duration_minutes" jsonschema:"Duration in minutes"`
	CaloriesBurned  int     `json:"calories_burned,omitempty" jsonschema:"Calories burned; estimated from type and duration when omitted"`
	DistanceKm      float64 `json:"distance_km,omitempty" jsonschema:"Distance in kilometers"`
	Steps           int     `json:"steps,omitempty" jsonschema:"Step count"`
	Notes           string  `json:"notes,omitempty" jsonschema:"Optional notes"`
	LoggedAt        string  `json:"logged_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
}

type activityOutput struct {
	ID              int64  `json:"id"`
	ActivityType    string `json:"activity_type"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
	Message         string `json:"message"`
}

type listActivitiesInput struct {
	ActivityType string `json:"activity_type,omitempty" jsonschema:"Filter by activity type (case-insensitive)"`
	Since        string `json:"since,omitempty" jsonschema:"Only activities at or after this time (ISO 8601)"`
	Limit        int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteActivityInput struct {
	ID int64 `json:"id" jsonschema:"Activity ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type setStepGoalInput struct {
	Goal int `json:"goal" jsonschema:"Daily step goal between 1000 and 50000"`
}

type preferencesOutput struct {
	DarkTheme     bool `json:"dark_theme"`
	DailyStepGoal int  `json:"daily_step_goal"`
}

type suggestWorkoutsInput struct {
	Search    string `json:"search,omitempty" jsonschema:"Name search term"`
	Category  int    `json:"category,omitempty" jsonschema:"Category id filter"`
	Muscle    int    `json:"muscle,omitempty" jsonschema:"Muscle id filter"`
	Equipment int    `json:"equipment,omitempty" jsonschema:"Equipment id filter"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Max results (default 10)"`
}

type suggestWorkoutsOutput struct {
	Suggestions  []suggest.Suggestion `json:"suggestions"`
	Message      string               `json:"message,omitempty"`
	FromFallback bool                 `json:"from_fallback,omitempty"`
}

// parseTimestamp accepts RFC 3339 first, then two looser date forms.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q", value)
}

// Tool handlers

func (s *Server) handleLogActivity(ctx context.Context, req *mcp.CallToolRequest, input logActivityInput) (*mcp.CallToolResult, activityOutput, error) {
	activityType := strings.TrimSpace(input.ActivityType)
	if activityType == "" {
		return nil, activityOutput{}, fmt.Errorf("activity_type is required")
	}
	if input.DurationMinutes <= 0 {
		return nil, activityOutput{}, fmt.Errorf("duration_minutes must be positive")
	}

	calories := input.CaloriesBurned
	if calories <= 0 {
		calories = models.EstimateCaloriesFor(activityType, input.DurationMinutes, s.weightKg)
	}

	a := models.NewActivity(activityType, input.DurationMinutes, calories)
	if input.DistanceKm > 0 {
		a.WithDistance(input.DistanceKm)
	}
	if input.Steps > 0 {
		a.WithSteps(input.Steps)
	}
	if input.Notes != "" {
		a.WithNotes(input.Notes)
	}
	if input.LoggedAt != "" {
		t, err := parseTimestamp(input.LoggedAt)
		if err != nil {
			return nil, activityOutput{}, err
		}
		a.WithTimestamp(t)
	}

	id, err := s.repo.Save(ctx, a)
	if err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to save activity: %w", err)
	}

	return nil, activityOutput{
		ID:              id,
		ActivityType:    activityType,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  calories,
		Message:         fmt.Sprintf("Logged %s: %d min, %d kcal (ID: %d)", activityType, input.DurationMinutes, calories, id),
	}, nil
}

func (s *Server) handleListActivities(ctx context.Context, req *mcp.CallToolRequest, input listActivitiesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	f := storage.ListFilter{
		Type:  input.ActivityType,
		Limit: input.Limit,
	}
	if input.Since != "" {
		since, err := parseTimestamp(input.Since)
		if err != nil {
			return nil, nil, err
		}
		f.Since = since
	}

	activities, err := s.repo.ListActivities(ctx, f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list activities: %w", err)
	}

	if len(activities) == 0 {
		return nil, map[string]interface{}{"message": "No activities found."}, nil
	}

	return nil, activities, nil
}

func (s *Server) handleDeleteActivity(ctx context.Context, req *mcp.CallToolRequest, input deleteActivityInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteByID(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete activity: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted activity: %d", input.ID),
	}, nil
}

func (s *Server) handleActivityStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read stats: %w", err)
	}
	return nil, stats, nil
}

func (s *Server) handleSetStepGoal(ctx context.Context, req *mcp.CallToolRequest, input setStepGoalInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.prefs.SetStepGoal(input.Goal); err != nil {
		if errors.Is(err, prefs.ErrGoalOutOfRange) {
			return nil, simpleOutput{}, err
		}
		return nil, simpleOutput{}, fmt.Errorf("failed to set step goal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Daily step goal set to %d", input.Goal),
	}, nil
}

func (s *Server) handleGetPreferences(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, preferencesOutput, error) {
	p, err := s.prefs.Preferences()
	if err != nil {
		return nil, preferencesOutput{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	return nil, preferencesOutput{
		DarkTheme:     p.DarkTheme,
		DailyStepGoal: p.DailyStepGoal,
	}, nil
}

func (s *Server) handleSuggestWorkouts(ctx context.Context, req *mcp.CallToolRequest, input suggestWorkoutsInput) (*mcp.CallToolResult, suggestWorkoutsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}

	q := suggest.Query{
		Search:    input.Search,
		Category:  input.Category,
		Muscle:    input.Muscle,
		Equipment: input.Equipment,
		Limit:     input.Limit,
	}

	suggestions, err := s.fetcher.Suggestions(ctx, q)
	if err != nil {
		// Degrade to the bundled catalog rather than failing the call.
		return nil, suggestWorkoutsOutput{
			Suggestions:  suggest.Fallback(),
			Message:      suggest.UserMessage(err),
			FromFallback: true,
		}, nil
	}

	return nil, suggestWorkoutsOutput{Suggestions: suggestions}, nil
}
