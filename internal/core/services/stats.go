package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/docstat-cli/internal/core/domain"
	"github.com/custodia-labs/docstat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docstat-cli/internal/logger"
	"github.com/custodia-labs/docstat-cli/internal/tokeniser"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// maxLineSize bounds a single line during line counting.
const maxLineSize = 1 << 20

// StatsService computes descriptive statistics for plain-text files.
//
// The service is stateless. Every query opens its own handle on the
// document, performs one full sequential pass, and closes the handle
// before returning, so queries are independent and safe to run from
// concurrent goroutines.
type StatsService struct{}

// NewStatsService creates a new statistics service.
func NewStatsService() *StatsService {
	return &StatsService{}
}

// CountLines returns the number of lines in the document.
//
// An empty file has 0 lines; no synthetic trailing line is counted for
// content without a final terminator, but a final unterminated line of
// content does count. With ignoreBlank set, lines that trim to the
// empty string are excluded.
func (s *StatsService) CountLines(_ context.Context, doc domain.Document, ignoreBlank bool) (int, error) {
	start := time.Now()

	f, err := os.Open(doc.Path())
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", doc.Path(), err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	count := 0
	for scanner.Scan() {
		if ignoreBlank && strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading %s: %w", doc.Path(), err)
	}

	logger.Query("count-lines", doc.Path(), time.Since(start))
	return count, nil
}

// CountWords returns the number of tokens under the delimiter.
// Delimiter semantics are those of the tokeniser package: blank means
// whitespace runs, anything else is a regular expression pattern.
func (s *StatsService) CountWords(ctx context.Context, doc domain.Document, delimiter string) (int, error) {
	start := time.Now()

	words, err := s.words(ctx, doc, delimiter)
	if err != nil {
		return 0, err
	}

	logger.Query("count-words", doc.Path(), time.Since(start))
	return len(words), nil
}

// AverageWordLength returns the mean token length in runes, rounded
// half-up to one decimal place.
//
// A document with no tokens yields exactly 0.0. The zero case bypasses
// rounding entirely; it is a deliberate guard against division by
// zero, not an error.
func (s *StatsService) AverageWordLength(ctx context.Context, doc domain.Document, delimiter string) (float64, error) {
	start := time.Now()

	words, err := s.words(ctx, doc, delimiter)
	if err != nil {
		return 0, err
	}
	if len(words) == 0 {
		return 0, nil
	}

	sum := 0
	for _, word := range words {
		sum += utf8.RuneCountInString(word)
	}
	average := roundOneDecimal(float64(sum) / float64(len(words)))

	logger.Query("average-word-length", doc.Path(), time.Since(start))
	return average, nil
}

// MostCommonLetter scans the document rune by rune, folds each rune to
// lowercase, and tallies alphabetic runes only. Non-letter characters
// are consumed but never tallied and never elected.
//
// Ties are resolved by the given policy. When the document contains no
// letters at all, the result is domain.NoLetter with a nil error;
// errors are reserved for genuine read failures.
func (s *StatsService) MostCommonLetter(_ context.Context, doc domain.Document, tie domain.TieBreak) (rune, error) {
	start := time.Now()

	f, err := os.Open(doc.Path())
	if err != nil {
		return domain.NoLetter, fmt.Errorf("opening %s: %w", doc.Path(), err)
	}
	defer f.Close()

	counts := make(map[rune]int)
	var order []rune // first-appearance order of tallied letters
	leader := domain.NoLetter
	leadMax := 0
	reader := bufio.NewReader(f)

	for {
		r, _, err := reader.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.NoLetter, fmt.Errorf("reading %s: %w", doc.Path(), err)
		}

		r = unicode.ToLower(r)
		if !unicode.IsLetter(r) {
			continue
		}

		if _, seen := counts[r]; !seen {
			order = append(order, r)
		}
		counts[r]++

		// Strictly greater: the first letter to reach a new maximum
		// keeps the lead over later letters that merely equal it.
		if counts[r] > leadMax {
			leader = r
			leadMax = counts[r]
		}
	}

	logger.Query("most-common-letter", doc.Path(), time.Since(start))

	if tie == domain.TieFirstSeen {
		return firstSeenLeader(counts, order), nil
	}
	return leader, nil
}

// Analyse runs every query against the document and bundles the
// results into a Report. Each query still opens its own read pass.
func (s *StatsService) Analyse(ctx context.Context, doc domain.Document, opts driving.ReportOptions) (*domain.Report, error) {
	report := &domain.Report{
		ID:          uuid.New().String(),
		Path:        doc.Path(),
		GeneratedAt: time.Now(),
	}
	logger.Debug("analysing %s (report %s)", doc.Path(), report.ID)

	var err error
	if report.Lines, err = s.CountLines(ctx, doc, false); err != nil {
		return nil, err
	}
	if report.NonBlankLines, err = s.CountLines(ctx, doc, true); err != nil {
		return nil, err
	}
	if report.Words, err = s.CountWords(ctx, doc, opts.Delimiter); err != nil {
		return nil, err
	}
	if report.AverageWordLength, err = s.AverageWordLength(ctx, doc, opts.Delimiter); err != nil {
		return nil, err
	}
	if report.MostCommonLetter, err = s.MostCommonLetter(ctx, doc, opts.TieBreak); err != nil {
		return nil, err
	}

	return report, nil
}

// words opens the document and tokenises it under the delimiter.
func (s *StatsService) words(_ context.Context, doc domain.Document, delimiter string) ([]string, error) {
	tok, err := tokeniser.New(delimiter)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(doc.Path())
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", doc.Path(), err)
	}
	defer f.Close()

	words, err := tok.Tokenise(f)
	if err != nil {
		return nil, fmt.Errorf("tokenising %s: %w", doc.Path(), err)
	}
	return words, nil
}

// firstSeenLeader picks the letter with the highest count, resolving
// ties in favour of the letter that appeared first in the document.
func firstSeenLeader(counts map[rune]int, order []rune) rune {
	leader := domain.NoLetter
	best := 0
	for _, r := range order {
		if counts[r] > best {
			leader = r
			best = counts[r]
		}
	}
	return leader
}

// roundOneDecimal rounds half-up to one decimal place. Inputs are
// non-negative, so half away from zero is half-up.
func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
