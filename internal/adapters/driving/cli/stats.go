package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstat-cli/internal/core/domain"
	"github.com/custodia-labs/docstat-cli/internal/core/ports/driving"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]...",
	Short: "Report statistics for one or more text files",
	Long: `Reads each file and prints its line count, word count, average word
length, and most common letter. A failure on one file is reported and
the remaining files are still processed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

// Flags for the stats and watch commands.
var (
	delimiterFlag   string
	ignoreBlankFlag bool
	tieBreakFlag    string
	noColorFlag     bool
)

func init() {
	statsCmd.Flags().StringVarP(&delimiterFlag, "delimiter", "d", "", "Word delimiter pattern (regular expression; default: whitespace runs)")
	statsCmd.Flags().BoolVar(&ignoreBlankFlag, "ignore-blank", false, "Exclude blank lines from the line count")
	statsCmd.Flags().StringVar(&tieBreakFlag, "tie-break", "", "Most-common-letter tie-break policy: first-to-max or first-seen")
	statsCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return fmt.Errorf("stats service %w", domain.ErrNotConfigured)
	}

	opts, noColor, err := resolveReportOptions()
	if err != nil {
		return err
	}

	// Every path argument must be non-blank before any file is touched.
	for _, path := range args {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%w: blank file path argument", domain.ErrInvalidInput)
		}
	}

	out := newRenderer(cmd.OutOrStdout(), noColor)
	ctx := cmd.Context()

	for _, path := range args {
		doc, err := domain.NewDocument(path)
		if err != nil {
			out.Failure(path, err)
			continue
		}

		report, err := statsService.Analyse(ctx, doc, opts)
		if err != nil {
			out.Failure(path, err)
			continue
		}

		out.Report(report, ignoreBlankFlag)
	}

	return nil
}

// resolveReportOptions merges flags over persisted settings.
// Flags win; unset flags fall back to config.toml, then to defaults.
func resolveReportOptions() (driving.ReportOptions, bool, error) {
	settings := loadSettings()

	delimiter := delimiterFlag
	if delimiter == "" {
		delimiter = settings.Stats.Delimiter
	}

	tieName := tieBreakFlag
	if tieName == "" {
		tieName = settings.Stats.TieBreak
	}
	tie := domain.TieFirstToMax
	if tieName != "" {
		parsed, err := domain.ParseTieBreak(tieName)
		if err != nil {
			return driving.ReportOptions{}, false, err
		}
		tie = parsed
	}

	noColor := noColorFlag || settings.Output.NoColor

	return driving.ReportOptions{Delimiter: delimiter, TieBreak: tie}, noColor, nil
}
