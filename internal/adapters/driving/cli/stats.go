package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus-wide category and tag counts",
	Long: `Computes category and tag frequency counts over the entire
content corpus, independent of any search. Useful for discovering what
is available to filter on.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output stats as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	stats := searchService.Stats(cmd.Context())

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Total items: %d\n", stats.TotalItems)

	cmd.Println("\nCategories:")
	if len(stats.Categories) == 0 {
		cmd.Println("  (none)")
	}
	for _, facet := range stats.Categories {
		cmd.Printf("  %-20s %d\n", facet.Value, facet.Count)
	}

	cmd.Println("\nTags:")
	if len(stats.Tags) == 0 {
		cmd.Println("  (none)")
	}
	for _, facet := range stats.Tags {
		cmd.Printf("  %-20s %d\n", facet.Value, facet.Count)
	}

	return nil
}
