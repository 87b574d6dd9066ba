// ABOUTME: CLI command for workout suggestions.
// ABOUTME: Fetches from the exercise service, falling back to the bundled catalog.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/suggest"
	"github.com/spf13/cobra"
)

var (
	suggestSearch    string
	suggestCategory  int
	suggestMuscle    int
	suggestEquipment int
	suggestLimit     int
	suggestOffline   bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest workouts",
	Long: `Suggest exercises from the wger.de workout catalog.

Suggestions are fetched fresh each session and never stored. When the
service can't be reached, a small bundled catalog is shown instead.

EXAMPLES:

  fitlog suggest                    # A page of suggestions
  fitlog suggest --search squat     # Search by name
  fitlog suggest --category 10      # Filter by category id
  fitlog suggest --muscle 4         # Filter by muscle id
  fitlog suggest --offline          # Skip the network entirely`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var suggestions []suggest.Suggestion

		if suggestOffline {
			suggestions = suggest.Fallback()
		} else {
			fetcher := cfg.NewSuggestFetcher()
			q := suggest.Query{
				Search:    suggestSearch,
				Category:  suggestCategory,
				Muscle:    suggestMuscle,
				Equipment: suggestEquipment,
				Limit:     suggestLimit,
			}

			var err error
			suggestions, err = fetcher.Suggestions(cmd.Context(), q)
			if err != nil {
				color.Yellow("! %s", suggest.UserMessage(err))
				fmt.Println("Showing the bundled catalog instead:")
				fmt.Println()
				suggestions = suggest.Fallback()
			}
		}

		if len(suggestions) == 0 {
			fmt.Println("No suggestions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range suggestions {
			fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(s.Name), faint.Sprintf("[%s]", s.Difficulty))
			if s.Category != "" {
				fmt.Printf("  Category: %s\n", s.Category)
			}
			if len(s.Muscles) > 0 {
				fmt.Printf("  Muscles: %v\n", s.Muscles)
			}
			if len(s.Equipment) > 0 {
				fmt.Printf("  Equipment: %v\n", s.Equipment)
			}
			if s.Description != "" {
				fmt.Printf("  %s\n", truncate(s.Description, 100))
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	suggestCmd.Flags().StringVar(&suggestSearch, "search", "", "search by exercise name")
	suggestCmd.Flags().IntVar(&suggestCategory, "category", 0, "filter by category id")
	suggestCmd.Flags().IntVar(&suggestMuscle, "muscle", 0, "filter by muscle id")
	suggestCmd.Flags().IntVar(&suggestEquipment, "equipment", 0, "filter by equipment id")
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 10, "max number of suggestions")
	suggestCmd.Flags().BoolVar(&suggestOffline, "offline", false, "use the bundled catalog")
	rootCmd.AddCommand(suggestCmd)
}
