package domain

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Document is an immutable reference to a plain-text file on disk.
//
// The path is validated once, at construction. Queries against the
// document assume the file existed at that point; if it is deleted or
// replaced afterwards, the query that touches it fails with an I/O
// error rather than returning stale results.
type Document struct {
	path string
}

// NewDocument validates path and returns a Document for it.
//
// It fails with ErrInvalidInput if the path is blank, does not exist,
// or does not name a regular file. Validation happens here and only
// here; queries do not re-stat the file.
func NewDocument(path string) (Document, error) {
	if strings.TrimSpace(path) == "" {
		return Document{}, fmt.Errorf("%w: blank file path", ErrInvalidInput)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s is not a valid file", ErrInvalidInput, path)
	}
	if !info.Mode().IsRegular() {
		return Document{}, fmt.Errorf("%w: %s is not a regular file", ErrInvalidInput, path)
	}

	return Document{path: path}, nil
}

// Path returns the validated file path.
func (d Document) Path() string {
	return d.path
}

// String returns a human-readable representation of the document.
func (d Document) String() string {
	return fmt.Sprintf("Document[%s]", d.path)
}

// Report bundles the statistics computed for one document.
// It is an in-memory value; nothing persists it.
type Report struct {
	// ID is a unique identifier for this analysis run,
	// used to correlate verbose log lines.
	ID string

	// Path is the analysed file.
	Path string

	// Lines is the total line count, blank lines included.
	Lines int

	// NonBlankLines is the line count excluding blank lines.
	NonBlankLines int

	// Words is the token count under the report's delimiter.
	Words int

	// AverageWordLength is the mean token length in runes,
	// rounded half-up to one decimal place. 0.0 when Words is 0.
	AverageWordLength float64

	// MostCommonLetter is the winning lowercase letter,
	// or NoLetter when the document contains no letters.
	MostCommonLetter rune

	// GeneratedAt is when the analysis ran.
	GeneratedAt time.Time
}
