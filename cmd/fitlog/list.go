// ABOUTME: CLI command for listing fitness activities.
// ABOUTME: Supports filtering by type and date and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listType  string
	listSince string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List fitness activities",
	Long: `List recent activities from your fitness log, newest first.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  TYPE  DURATION  CALORIES  [DISTANCE]  [STEPS]  (NOTES)

  The ID is what you pass to update and delete commands.

FILTERING:

  Type filtering is case-insensitive: --type Running matches "running".

EXAMPLES:

  fitlog list                        # Show last 20 activities
  fitlog list --type running         # Show only runs
  fitlog list --since 2026-08-01     # Activities from August onward
  fitlog list -t cycling -n 50       # Last 50 rides`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := storage.ListFilter{
			Type:  listType,
			Limit: listLimit,
		}
		if listSince != "" {
			t, err := parseTime(listSince)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", listSince)
			}
			f.Since = t
		}

		activities, err := repo.ListActivities(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}

		if len(activities) == 0 {
			fmt.Println("No activities found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range activities {
			extras := ""
			if a.DistanceKm != nil {
				extras += fmt.Sprintf(" %.1f km", *a.DistanceKm)
			}
			if a.Steps != nil {
				extras += fmt.Sprintf(" %d steps", *a.Steps)
			}
			notes := ""
			if a.Notes != nil && *a.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*a.Notes, 30))
			}
			fmt.Printf("%s %s %s %4d min %5d kcal%s%s\n",
				faint.Sprintf("#%-4d", a.ID),
				faint.Sprint(a.Timestamp.Format("2006-01-02 15:04")),
				padRight(a.Type, 12),
				a.DurationMinutes,
				a.CaloriesBurned,
				extras,
				notes)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "filter by activity type")
	listCmd.Flags().StringVar(&listSince, "since", "", "only activities since date (YYYY-MM-DD)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
