package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/docstat-cli/internal/core/domain"
)

// reportStyles holds the lipgloss styles for a rendered report.
type reportStyles struct {
	Title lipgloss.Style
	Rule  lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Fail  lipgloss.Style
}

func newReportStyles() *reportStyles {
	return &reportStyles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Rule:  lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Value: lipgloss.NewStyle().Bold(true),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}

// renderer writes labelled reports, styled when the destination is a
// terminal and colour has not been disabled.
type renderer struct {
	w      io.Writer
	styles *reportStyles // nil means plain output
}

func newRenderer(w io.Writer, noColor bool) *renderer {
	r := &renderer{w: w}
	if !noColor && isTerminal(w) {
		r.styles = newReportStyles()
	}
	return r
}

// Report prints one file's labelled statistics in query order.
// ignoreBlank selects which line count the report shows.
func (r *renderer) Report(rep *domain.Report, ignoreBlank bool) {
	lines := rep.Lines
	if ignoreBlank {
		lines = rep.NonBlankLines
	}

	r.rule()
	r.title(fmt.Sprintf("Statistics for %s", rep.Path))
	r.row("Line count is", fmt.Sprintf("%d", lines))
	r.row("Word count is", fmt.Sprintf("%d", rep.Words))
	r.row("Average word length is", fmt.Sprintf("%.1f", rep.AverageWordLength))
	r.row("Most common letter is", letterLabel(rep.MostCommonLetter))
}

// Failure prints a per-file failure without aborting the run.
func (r *renderer) Failure(path string, err error) {
	r.rule()
	r.title(fmt.Sprintf("Statistics for %s", path))
	msg := err.Error()
	if r.styles != nil {
		msg = r.styles.Fail.Render(msg)
	}
	fmt.Fprintln(r.w, msg)
}

func (r *renderer) rule() {
	const rule = "================="
	if r.styles != nil {
		fmt.Fprintln(r.w, r.styles.Rule.Render(rule))
		return
	}
	fmt.Fprintln(r.w, rule)
}

func (r *renderer) title(s string) {
	if r.styles != nil {
		s = r.styles.Title.Render(s)
	}
	fmt.Fprintln(r.w, s)
}

func (r *renderer) row(label, value string) {
	if r.styles != nil {
		label = r.styles.Label.Render(label)
		value = r.styles.Value.Render(value)
	}
	fmt.Fprintf(r.w, "%s: %s\n", label, value)
}

// letterLabel formats the most-common-letter result, spelling out the
// no-letters sentinel.
func letterLabel(letter rune) string {
	if letter == domain.NoLetter {
		return "none (no letters found)"
	}
	return string(letter)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
