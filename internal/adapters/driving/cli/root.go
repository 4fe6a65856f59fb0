// Package cli wires the cobra command tree that drives docstat.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstat-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docstat-cli/internal/core/domain"
	"github.com/custodia-labs/docstat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docstat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docstat-cli/internal/core/services"
	"github.com/custodia-labs/docstat-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Wired in PersistentPreRunE;
// tests may pre-inject replacements.
var (
	statsService  driving.StatsService
	settingsStore driven.SettingsStore
)

var (
	verboseFlag   bool
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "docstat",
	Short: "Descriptive statistics for plain-text files",
	Long: `docstat reports descriptive statistics for plain-text files:
line count, word count under a configurable delimiter, average word
length, and the most frequently occurring letter.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)

		if settingsStore == nil {
			store, err := file.NewSettingsStore(configDirFlag)
			if err != nil {
				return fmt.Errorf("initialising settings store: %w", err)
			}
			settingsStore = store
		}
		if statsService == nil {
			statsService = services.NewStatsService()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Directory holding config.toml (default ~/.docstat)")
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadSettings reads persisted settings, degrading to defaults when
// the store is unreadable.
func loadSettings() domain.Settings {
	if settingsStore == nil {
		return domain.Settings{}
	}
	settings, err := settingsStore.Load()
	if err != nil {
		logger.Warn("could not load settings: %v", err)
		return domain.Settings{}
	}
	return settings
}
