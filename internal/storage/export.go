// ABOUTME: Export functionality for the activity log.
// ABOUTME: Supports JSON and YAML export formats.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for the activity log.
type ExportData struct {
	Version    string             `json:"version" yaml:"version"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool       string             `json:"tool" yaml:"tool"`
	Activities []*models.Activity `json:"activities" yaml:"activities"`
}

// GetAllData retrieves all activities for export, most recent first.
func GetAllData(ctx context.Context, repo Repository) (*ExportData, error) {
	activities, err := repo.ListActivities(ctx, ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fitlog",
		Activities: activities,
	}, nil
}

// ExportJSON exports all activities as indented JSON.
func ExportJSON(ctx context.Context, repo Repository) ([]byte, error) {
	data, err := GetAllData(ctx, repo)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all activities as YAML, with optional fields
// omitted rather than rendered as null.
func ExportYAML(ctx context.Context, repo Repository) ([]byte, error) {
	data, err := GetAllData(ctx, repo)
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string         `yaml:"version"`
		ExportedAt string         `yaml:"exported_at"`
		Tool       string         `yaml:"tool"`
		Activities []yamlActivity `yaml:"activities"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Activities: make([]yamlActivity, 0, len(data.Activities)),
	}

	for _, a := range data.Activities {
		ya := yamlActivity{
			ID:              a.ID,
			Type:            a.Type,
			DurationMinutes: a.DurationMinutes,
			CaloriesBurned:  a.CaloriesBurned,
			Timestamp:       a.Timestamp.Format(time.RFC3339),
		}
		if a.DistanceKm != nil {
			ya.DistanceKm = *a.DistanceKm
		}
		if a.Steps != nil {
			ya.Steps = *a.Steps
		}
		if a.Notes != nil {
			ya.Notes = *a.Notes
		}
		yamlData.Activities = append(yamlData.Activities, ya)
	}

	return yaml.Marshal(yamlData)
}

type yamlActivity struct {
	ID              int64   `yaml:"id"`
	Type            string  `yaml:"type"`
	DurationMinutes int     `yaml:"duration_minutes"`
	CaloriesBurned  int     `yaml:"calories_burned"`
	DistanceKm      float64 `yaml:"distance_km,omitempty"`
	Steps           int     `yaml:"steps,omitempty"`
	Timestamp       string  `yaml:"timestamp"`
	Notes           string  `yaml:"notes,omitempty"`
}
