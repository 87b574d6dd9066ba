// ABOUTME: CLI command for aggregate activity statistics.
// ABOUTME: Prints lifetime totals across the whole activity log.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate activity statistics",
	Long: `Show lifetime totals across the whole activity log: calories burned,
distance covered, time spent, and activity count. Activities without a
recorded distance don't contribute to the distance total.

EXAMPLES:

  fitlog stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := repo.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read stats: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Println("Activity totals")
		fmt.Printf("  Activities  %d\n", stats.ActivityCount)
		fmt.Printf("  Calories    %d kcal\n", stats.TotalCalories)
		fmt.Printf("  Distance    %.1f km\n", stats.TotalDistanceKm)
		fmt.Printf("  Duration    %s\n", formatDuration(stats.TotalDurationMinutes))

		return nil
	},
}

// formatDuration renders minutes as "Xh YYm" (or "Ym" under an hour).
func formatDuration(minutes int64) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
