// Package cli implements the cobra command tree for the lumen binary.
package cli

import (
	"github.com/spf13/cobra"

	configfile "github.com/lumenboard/lumen-cli/internal/adapters/driven/config/file"
	historyfile "github.com/lumenboard/lumen-cli/internal/adapters/driven/history/file"
	"github.com/lumenboard/lumen-cli/internal/adapters/driven/storage/sqlite"
	"github.com/lumenboard/lumen-cli/internal/core/ports/driven"
	"github.com/lumenboard/lumen-cli/internal/core/ports/driving"
	"github.com/lumenboard/lumen-cli/internal/core/services"
	"github.com/lumenboard/lumen-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagDataDir   string
	flagConfigDir string
)

// Services wired by initServices. Tests inject fakes here.
var (
	searchService driving.SearchService
	contentStore  driven.ContentStore
	closeStore    func() error
)

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Universal search for your Lumenboard content",
	Long: `Lumen searches your dashboard content - notes, links, videos,
images and todos - as one corpus, with structural filters, relevance
ranking and facet counts.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "content database directory (default ~/.lumen/data)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.lumen)")
}

// initServices wires the default adapters. It is a no-op when a service
// was already injected (tests).
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if searchService != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return err
	}
	if cfg.GetBool("verbose") {
		logger.SetVerbose(true)
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.GetString("data_dir")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return err
	}
	contentStore = store.ContentStore()
	closeStore = store.Close

	// History is best-effort; search works without it.
	var historyStore driven.HistoryStore
	if hs, err := historyfile.NewHistoryStore(flagConfigDir); err != nil {
		logger.Warn("History store unavailable: %v", err)
	} else {
		historyStore = hs
	}

	svc := services.NewSearchService(contentStore, historyStore)
	if locale := cfg.GetString("locale"); locale != "" {
		svc.SetLocale(locale)
	}
	searchService = svc

	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if closeStore != nil {
			closeStore() //nolint:errcheck // shutdown path
		}
	}()
	return rootCmd.Execute()
}
