package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent search queries",
	Long: `Lists the recent search queries, most recent first.
The list is capped at 10 entries and persists across sessions.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the search history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	queries := searchService.History()
	if len(queries) == 0 {
		cmd.Println("No search history.")
		return nil
	}

	for i, query := range queries {
		cmd.Printf("  %2d. %s\n", i+1, query)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	searchService.ClearHistory()
	cmd.Println("Search history cleared.")
	return nil
}
