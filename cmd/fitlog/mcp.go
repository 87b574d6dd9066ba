// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLIENT CONFIGURATION:

  {
    "mcpServers": {
      "fitlog": {
        "command": "fitlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_activity      Log a fitness activity
  list_activities   List recent activities
  delete_activity   Delete an activity by ID
  activity_stats    Aggregate totals
  set_step_goal     Set the daily step goal
  get_preferences   Read user preferences
  suggest_workouts  Exercise suggestions with filters

AVAILABLE RESOURCES:

  fitlog://activities/recent   Last 10 logged activities
  fitlog://stats/summary       Totals plus today's calories
  fitlog://preferences         Theme and step goal`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefStore, err := cfg.OpenPreferences()
		if err != nil {
			return fmt.Errorf("failed to open preferences: %w", err)
		}

		server, err := mcp.NewServer(repo, prefStore, cfg.NewSuggestFetcher(), cfg.GetWeightKg())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
