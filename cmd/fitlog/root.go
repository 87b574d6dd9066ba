// ABOUTME: Root Cobra command for fitlog CLI.
// ABOUTME: Handles config load and repository lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/harperreed/fitlog/internal/config"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository

	flagDataDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Personal fitness activity tracker",
	Long: `Fitlog is a CLI tool for tracking fitness activities.

WHAT IT TRACKS:

  Activities with duration, calories burned, and optional distance,
  step count, and notes. Calories are estimated from the activity type
  and duration when you don't provide them.

QUICK START:

  $ fitlog add running 30                   # Log a 30-minute run (calories estimated)
  $ fitlog add cycling 45 --calories 400    # Log with explicit calories
  $ fitlog add running 30 --distance 5.2    # Track distance too
  $ fitlog list                             # See recent activities
  $ fitlog list --type running              # Filter by type
  $ fitlog stats                            # Lifetime totals
  $ fitlog watch                            # Live dashboard that follows writes

PREFERENCES:

  $ fitlog goal 12000       # Set your daily step goal (1000-50000)
  $ fitlog theme dark       # Switch to the dark theme

SUGGESTIONS:

  $ fitlog suggest                  # Fetch workout ideas from wger.de
  $ fitlog suggest --search squat   # Search by name
  $ fitlog suggest --offline        # Use the bundled catalog

MCP INTEGRATION:

  Run 'fitlog mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fitlog": { "command": "fitlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Activities live in a SQLite database and preferences in a local
  key-value store under ~/.local/share/fitlog (XDG_DATA_HOME honored).
  Configuration is read from ~/.config/fitlog/config.json.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store setup for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}

		repo, err = cfg.OpenRepository()
		if err != nil {
			return fmt.Errorf("failed to open activity store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "override the data directory")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}
