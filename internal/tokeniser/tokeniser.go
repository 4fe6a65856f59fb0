// Package tokeniser splits document content into words.
package tokeniser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/custodia-labs/docstat-cli/internal/core/domain"
)

// maxTokenSize bounds a single whitespace-delimited token.
const maxTokenSize = 1 << 20

// Tokeniser splits text into tokens on a delimiter.
//
// A nil, empty, or whitespace-only delimiter selects the default:
// splitting on runs of one or more whitespace characters, which never
// produces empty tokens. Any other delimiter is compiled as a Go
// regular expression and has pattern semantics - a delimiter
// containing regexp metacharacters is interpreted as a pattern, not
// literally. Empty tokens arising from adjacent, leading, or trailing
// delimiter matches are dropped, so tokens are always non-empty.
//
// Tokens preserve original casing and punctuation. No normalisation
// is applied.
type Tokeniser struct {
	pattern *regexp.Regexp // nil means whitespace default
}

// New creates a Tokeniser for the given delimiter.
// An unparsable delimiter pattern fails with domain.ErrInvalidInput.
func New(delimiter string) (*Tokeniser, error) {
	if isBlank(delimiter) {
		return &Tokeniser{}, nil
	}

	re, err := regexp.Compile(delimiter)
	if err != nil {
		return nil, fmt.Errorf("%w: bad delimiter pattern %q: %v", domain.ErrInvalidInput, delimiter, err)
	}
	return &Tokeniser{pattern: re}, nil
}

// Pattern returns the delimiter pattern, or "" for the default.
func (t *Tokeniser) Pattern() string {
	if t.pattern == nil {
		return ""
	}
	return t.pattern.String()
}

// Tokenise reads r to the end and returns its tokens in order.
// Content with no tokens yields an empty (nil) slice.
func (t *Tokeniser) Tokenise(r io.Reader) ([]string, error) {
	if t.pattern == nil {
		return t.scanWhitespace(r)
	}
	return t.splitPattern(r)
}

// scanWhitespace streams maximal non-whitespace runs.
func (t *Tokeniser) scanWhitespace(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning words: %w", err)
	}
	return tokens, nil
}

// splitPattern reads everything and splits on the delimiter pattern.
func (t *Tokeniser) splitPattern(r io.Reader) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}

	var tokens []string
	for _, part := range t.pattern.Split(string(content), -1) {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens, nil
}

// isBlank reports whether s is empty or whitespace-only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
