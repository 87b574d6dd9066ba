// ABOUTME: CLI command for logging fitness activities.
// ABOUTME: Estimates calories from type and duration when not provided.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	addCalories int
	addDistance float64
	addSteps    int
	addNotes    string
	addAt       string
)

var addCmd = &cobra.Command{
	Use:     "add <type> <minutes>",
	Aliases: []string{"a", "log"},
	Short:   "Log a fitness activity",
	Long: `Log a fitness activity. Calories are estimated from the activity type
and duration when --calories is not given.

Examples:
  fitlog add running 30
  fitlog add cycling 45 --calories 400
  fitlog add running 30 --distance 5.2 --at "2026-08-14 07:00"
  fitlog add walking 60 --steps 7200 --notes "Morning walk"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		activityType := args[0]

		duration, err := strconv.Atoi(args[1])
		if err != nil || duration <= 0 {
			return fmt.Errorf("invalid duration: %s (must be a positive number of minutes)", args[1])
		}

		calories := addCalories
		estimated := false
		if calories <= 0 {
			calories = models.EstimateCaloriesFor(activityType, duration, cfg.GetWeightKg())
			estimated = true
		}

		a := models.NewActivity(activityType, duration, calories)

		if addDistance > 0 {
			a.WithDistance(addDistance)
		}
		if addSteps > 0 {
			a.WithSteps(addSteps)
		}
		if addNotes != "" {
			a.WithNotes(addNotes)
		}
		if addAt != "" {
			t, err := parseTime(addAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", addAt)
			}
			a.WithTimestamp(t)
		}

		id, err := repo.Save(cmd.Context(), a)
		if err != nil {
			return fmt.Errorf("failed to save activity: %w", err)
		}

		color.Green("✓ Logged %s", activityType)
		suffix := ""
		if estimated {
			suffix = " (estimated)"
		}
		fmt.Printf("  %s %d min, %d kcal%s\n",
			color.New(color.Faint).Sprintf("#%d", id),
			duration, calories, suffix)

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	addCmd.Flags().IntVar(&addCalories, "calories", 0, "calories burned (estimated when omitted)")
	addCmd.Flags().Float64Var(&addDistance, "distance", 0, "distance in kilometers")
	addCmd.Flags().IntVar(&addSteps, "steps", 0, "step count")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "notes for the activity")
	addCmd.Flags().StringVar(&addAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	rootCmd.AddCommand(addCmd)
}
