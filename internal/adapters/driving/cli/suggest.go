package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [partial]",
	Short: "Show autocomplete suggestions for a partial query",
	Long: `Scans record titles and tags for tokens containing the partial
query. Without an argument, falls back to the most recent history
entries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	partial := ""
	if len(args) > 0 {
		partial = args[0]
	}

	suggestions := searchService.Suggestions(cmd.Context(), partial)
	if len(suggestions) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}

	for _, s := range suggestions {
		cmd.Println("  " + s)
	}
	return nil
}
