// ABOUTME: CLI command for the theme preference.
// ABOUTME: Shows or switches between light and dark theme.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or set the color theme",
	ValidArgs: []string{"light", "dark"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cfg.OpenPreferences()
		if err != nil {
			return fmt.Errorf("failed to open preferences: %w", err)
		}

		if len(args) == 0 {
			dark, err := store.DarkTheme()
			if err != nil {
				return fmt.Errorf("failed to read theme: %w", err)
			}
			if dark {
				fmt.Println("Theme: dark")
			} else {
				fmt.Println("Theme: light")
			}
			return nil
		}

		dark := args[0] == "dark"
		if err := store.SetDarkTheme(dark); err != nil {
			return fmt.Errorf("failed to set theme: %w", err)
		}

		color.Green("✓ Theme set to %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
