// ABOUTME: CLI command for updating an existing activity.
// ABOUTME: Reads the stored record and rewrites only the flagged fields.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	updateType     string
	updateDuration int
	updateCalories int
	updateDistance float64
	updateSteps    int
	updateNotes    string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a logged activity",
	Long: `Update fields of an existing activity. Only the flags you pass change;
everything else keeps its stored value.

EXAMPLES:

  fitlog update 12 --duration 45          # Correct the duration
  fitlog update 12 --calories 500         # Correct the calories
  fitlog update 12 --notes "Tempo run"    # Replace the notes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid activity id: %s", args[0])
		}

		a, err := repo.Activity(cmd.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("activity not found: %d", id)
			}
			return fmt.Errorf("failed to read activity: %w", err)
		}

		if cmd.Flags().Changed("type") {
			a.Type = updateType
		}
		if cmd.Flags().Changed("duration") {
			if updateDuration <= 0 {
				return fmt.Errorf("duration must be a positive number of minutes")
			}
			a.DurationMinutes = updateDuration
		}
		if cmd.Flags().Changed("calories") {
			if updateCalories <= 0 {
				return fmt.Errorf("calories must be a positive number")
			}
			a.CaloriesBurned = updateCalories
		}
		if cmd.Flags().Changed("distance") {
			a.WithDistance(updateDistance)
		}
		if cmd.Flags().Changed("steps") {
			a.WithSteps(updateSteps)
		}
		if cmd.Flags().Changed("notes") {
			a.WithNotes(updateNotes)
		}

		if err := repo.Update(cmd.Context(), a); err != nil {
			return fmt.Errorf("failed to update activity: %w", err)
		}

		color.Green("✓ Updated %s", a.Type)
		fmt.Printf("  %s %d min, %d kcal\n",
			color.New(color.Faint).Sprintf("#%d", a.ID),
			a.DurationMinutes, a.CaloriesBurned)

		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateType, "type", "", "activity type")
	updateCmd.Flags().IntVar(&updateDuration, "duration", 0, "duration in minutes")
	updateCmd.Flags().IntVar(&updateCalories, "calories", 0, "calories burned")
	updateCmd.Flags().Float64Var(&updateDistance, "distance", 0, "distance in kilometers")
	updateCmd.Flags().IntVar(&updateSteps, "steps", 0, "step count")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "notes for the activity")
	rootCmd.AddCommand(updateCmd)
}
