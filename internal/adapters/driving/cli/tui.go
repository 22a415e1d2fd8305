package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/lumenboard/lumen-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive search view",
	Long: `Launch the interactive terminal interface for Lumen.

Every keystroke reruns the search over the live content corpus.

Controls:
  type     - Refine the query
  ↑/↓      - Navigate results
  Tab      - Cycle the source type filter
  Enter    - Record the query in history
  Esc      - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	// Panic recovery so terminal state problems come with a trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	return tui.Run(cmd.Context(), searchService)
}
