// ABOUTME: MCP resource implementations for fitness activities.
// ABOUTME: Provides recent-activity, stats-summary, and preference resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	uriRecent      = "fitlog://activities/recent"
	uriSummary     = "fitlog://stats/summary"
	uriPreferences = "fitlog://preferences"
)

func (s *Server) registerResources() {
	// fitlog://activities/recent - last 10 logged activities
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriRecent,
		Name:        "Recent Activities",
		Description: "Last 10 logged fitness activities",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// fitlog://stats/summary - aggregate totals plus today's calories
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriSummary,
		Name:        "Activity Summary",
		Description: "Total calories, distance, duration, and activity count",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// fitlog://preferences - current user preferences
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriPreferences,
		Name:        "User Preferences",
		Description: "Theme and daily step goal settings",
		MIMEType:    "application/json",
	}, s.handlePreferencesResource)
}

// jsonResource marshals v and wraps it as a single-content result.
func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	activities, err := s.repo.ListActivities(ctx, storage.ListFilter{Limit: 10})
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	result := map[string]interface{}{
		"activities": activities,
		"count":      len(activities),
	}
	return jsonResource(uriRecent, result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	// Today's calories use the local midnight-to-now window.
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayActivities, err := s.repo.ListActivities(ctx, storage.ListFilter{Since: todayStart})
	if err != nil {
		return nil, fmt.Errorf("failed to list today's activities: %w", err)
	}

	todayCalories := 0
	for _, a := range todayActivities {
		todayCalories += a.CaloriesBurned
	}

	result := map[string]interface{}{
		"generated_at": now.Format(time.RFC3339),
		"totals":       stats,
		"today": map[string]interface{}{
			"date":           todayStart.Format("2006-01-02"),
			"activity_count": len(todayActivities),
			"calories":       todayCalories,
		},
	}
	return jsonResource(uriSummary, result)
}

func (s *Server) handlePreferencesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.prefs.Preferences()
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	result := map[string]interface{}{
		"dark_theme":      p.DarkTheme,
		"daily_step_goal": p.DailyStepGoal,
	}
	return jsonResource(uriPreferences, result)
}
