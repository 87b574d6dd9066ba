// ABOUTME: CLI command for deleting fitness activities.
// ABOUTME: Supports deletion by ID, by cutoff date, or wiping the whole log.
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
	deleteBefore string
	deleteAll    bool
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"del", "rm"},
	Short:   "Delete fitness activities",
	Long: `Delete one activity by ID, everything before a date, or the whole log.

EXAMPLES:

  fitlog delete 12                  # Delete activity #12
  fitlog delete --before 2026-01-01 # Drop everything older than 2026
  fitlog delete --all               # Wipe the activity log

CAUTION:

  Deletion is permanent. There is no undo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case deleteAll:
			if err := repo.DeleteAll(cmd.Context()); err != nil {
				return fmt.Errorf("failed to delete activities: %w", err)
			}
			color.Yellow("✗ Deleted all activities")
			return nil

		case deleteBefore != "":
			cutoff, err := parseTime(deleteBefore)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", deleteBefore)
			}
			deleted, err := repo.DeleteBefore(cmd.Context(), cutoff)
			if err != nil {
				return fmt.Errorf("failed to delete activities: %w", err)
			}
			color.Yellow("✗ Deleted %d activities before %s", deleted, cutoff.Format("2006-01-02"))
			return nil

		case len(args) == 1:
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid activity id: %s", args[0])
			}

			// Show what is being deleted
			a, err := repo.Activity(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("activity not found: %d", id)
				}
				return fmt.Errorf("failed to read activity: %w", err)
			}

			if err := repo.DeleteByID(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete activity: %w", err)
			}

			color.Yellow("✗ Deleted %s", a.Type)
			fmt.Printf("  %s %d min, %d kcal\n",
				color.New(color.Faint).Sprintf("#%d", a.ID),
				a.DurationMinutes, a.CaloriesBurned)
			return nil

		default:
			return fmt.Errorf("provide an activity id, --before, or --all")
		}
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteBefore, "before", "", "delete activities before date (YYYY-MM-DD)")
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "delete every activity")
	rootCmd.AddCommand(deleteCmd)
}
