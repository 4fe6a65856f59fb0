package cli

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstat-cli/internal/core/domain"
	"github.com/custodia-labs/docstat-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]...",
	Short: "Re-report statistics whenever a file changes",
	Long: `Prints the statistics report for each file, then watches the files
and prints a fresh report every time one is written. Each change
triggers a full re-analysis; nothing is computed incrementally.
Stop with Ctrl-C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&delimiterFlag, "delimiter", "d", "", "Word delimiter pattern (regular expression; default: whitespace runs)")
	watchCmd.Flags().BoolVar(&ignoreBlankFlag, "ignore-blank", false, "Exclude blank lines from the line count")
	watchCmd.Flags().StringVar(&tieBreakFlag, "tie-break", "", "Most-common-letter tie-break policy: first-to-max or first-seen")
	watchCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return fmt.Errorf("stats service %w", domain.ErrNotConfigured)
	}

	opts, noColor, err := resolveReportOptions()
	if err != nil {
		return err
	}

	// Watched paths must all be valid up front; watching a missing
	// file would never fire.
	docs := make(map[string]domain.Document, len(args))
	for _, path := range args {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%w: blank file path argument", domain.ErrInvalidInput)
		}
		doc, err := domain.NewDocument(path)
		if err != nil {
			return err
		}
		docs[path] = doc
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for path := range docs {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	out := newRenderer(cmd.OutOrStdout(), noColor)
	ctx := cmd.Context()

	// Initial report for every file, in argument order.
	for _, path := range args {
		if report, err := statsService.Analyse(ctx, docs[path], opts); err != nil {
			out.Failure(path, err)
		} else {
			out.Report(report, ignoreBlankFlag)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldReanalyse(event) {
				continue
			}
			doc, watched := docs[event.Name]
			if !watched {
				continue
			}
			logger.Debug("change detected: %s %s", event.Op, event.Name)
			if report, err := statsService.Analyse(ctx, doc, opts); err != nil {
				out.Failure(event.Name, err)
			} else {
				out.Report(report, ignoreBlankFlag)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// shouldReanalyse reports whether a filesystem event changes file
// content. Editors that replace files emit Create; chmod alone does
// not warrant a re-read.
func shouldReanalyse(event fsnotify.Event) bool {
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create)
}
