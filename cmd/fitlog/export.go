// ABOUTME: CLI command for exporting fitness data.
// ABOUTME: Supports JSON and YAML export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export fitness data",
	Long: `Export the full activity log in various formats.

FORMATS:

  json   Full JSON export (suitable for backup)
  yaml   YAML export (human-readable)

EXAMPLES:

  fitlog export json                # Export all data as JSON to stdout
  fitlog export json -o backup.json # Save to file
  fitlog export yaml                # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = storage.ExportJSON(cmd.Context(), repo)
		case "yaml":
			data, err = storage.ExportYAML(cmd.Context(), repo)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
