// ABOUTME: CLI command for the daily step goal preference.
// ABOUTME: Shows the current goal or sets a new one within valid bounds.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/prefs"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [steps]",
	Short: "Show or set the daily step goal",
	Long: fmt.Sprintf(`Show the current daily step goal, or set a new one.

Goals must be between %d and %d steps. Out-of-range values are
rejected without touching the stored goal.

EXAMPLES:

  fitlog goal           # Show the current goal
  fitlog goal 12000     # Set a new goal`, prefs.MinStepGoal, prefs.MaxStepGoal),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cfg.OpenPreferences()
		if err != nil {
			return fmt.Errorf("failed to open preferences: %w", err)
		}

		if len(args) == 0 {
			goal, err := store.StepGoal()
			if err != nil {
				return fmt.Errorf("failed to read step goal: %w", err)
			}
			fmt.Printf("Daily step goal: %d\n", goal)
			return nil
		}

		goal, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid step goal: %s", args[0])
		}

		if err := store.SetStepGoal(goal); err != nil {
			if errors.Is(err, prefs.ErrGoalOutOfRange) {
				return err
			}
			return fmt.Errorf("failed to set step goal: %w", err)
		}

		color.Green("✓ Daily step goal set to %d", goal)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
}
