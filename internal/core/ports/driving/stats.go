package driving

import (
	"context"

	"github.com/custodia-labs/docstat-cli/internal/core/domain"
)

// StatsService computes descriptive statistics for a document.
//
// Every query opens its own read pass over the file and accumulates
// purely local state, so queries may be invoked in any order, any
// number of times, and from concurrent goroutines.
type StatsService interface {
	// CountLines returns the number of lines in the document.
	// With ignoreBlank set, lines that are empty or whitespace-only
	// are excluded. An empty file has 0 lines in both modes.
	CountLines(ctx context.Context, doc domain.Document, ignoreBlank bool) (int, error)

	// CountWords returns the number of tokens under the delimiter.
	// A blank delimiter selects whitespace-run splitting; anything
	// else is compiled as a regular expression.
	CountWords(ctx context.Context, doc domain.Document, delimiter string) (int, error)

	// AverageWordLength returns the mean token length in runes,
	// rounded half-up to one decimal place. A document with no
	// tokens yields exactly 0.0, never a division error.
	AverageWordLength(ctx context.Context, doc domain.Document, delimiter string) (float64, error)

	// MostCommonLetter returns the most frequent letter after
	// case-folding, with ties resolved by the given policy.
	// It returns domain.NoLetter with a nil error when the document
	// contains no alphabetic characters.
	MostCommonLetter(ctx context.Context, doc domain.Document, tie domain.TieBreak) (rune, error)

	// Analyse runs every query against the document and bundles the
	// results into a Report.
	Analyse(ctx context.Context, doc domain.Document, opts ReportOptions) (*domain.Report, error)
}

// ReportOptions configures a full analysis run.
type ReportOptions struct {
	// Delimiter is the word delimiter; blank means whitespace runs.
	Delimiter string

	// TieBreak is the most-common-letter tie-break policy.
	TieBreak domain.TieBreak
}
