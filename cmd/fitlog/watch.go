// ABOUTME: CLI command for the live activity dashboard.
// ABOUTME: Re-renders totals and recent activities on every store write.
package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/viewmodel"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard that follows writes",
	Long: `Show a live dashboard of totals and recent activities. The view
re-renders whenever anything writes to the store, including other
fitlog processes sharing the same database. Press Ctrl-C to exit.

EXAMPLES:

  fitlog watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dashboard := viewmodel.NewDashboard(repo)
		defer dashboard.Close()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			updates := dashboard.State().Watch(ctx)
			for state := range updates {
				render(state)
			}
			return nil
		})

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// render clears the terminal and draws one dashboard state.
func render(state viewmodel.DashboardState) {
	// ANSI clear screen + home
	fmt.Print("\033[2J\033[H")

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Println("fitlog — live dashboard (Ctrl-C to exit)")
	fmt.Println()
	fmt.Printf("  Activities  %d\n", state.ActivityCount)
	fmt.Printf("  Calories    %d kcal\n", state.TotalCalories)
	fmt.Printf("  Distance    %.1f km\n", state.TotalDistanceKm)
	fmt.Printf("  Duration    %s\n", formatDuration(state.TotalDurationMinutes))
	fmt.Println()

	if state.ErrorMessage != "" {
		color.Red("! %s", state.ErrorMessage)
		fmt.Println()
	}

	if len(state.Activities) == 0 {
		fmt.Println("No activities yet. Log one with 'fitlog add'.")
		return
	}

	bold.Println("Recent activities")
	shown := state.Activities
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, a := range shown {
		fmt.Printf("  %s %s %s %4d min %5d kcal\n",
			faint.Sprintf("#%-4d", a.ID),
			faint.Sprint(a.Timestamp.Format("2006-01-02 15:04")),
			padRight(a.Type, 12),
			a.DurationMinutes,
			a.CaloriesBurned)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
