package tokeniser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstat-cli/internal/core/domain"
)

func tokenise(t *testing.T, delimiter, content string) []string {
	t.Helper()
	tok, err := New(delimiter)
	require.NoError(t, err)
	tokens, err := tok.Tokenise(strings.NewReader(content))
	require.NoError(t, err)
	return tokens
}

func TestTokenise_DefaultWhitespace(t *testing.T) {
	tokens := tokenise(t, "", "the quick\tbrown\nfox")
	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, tokens)
}

func TestTokenise_ConsecutiveWhitespace(t *testing.T) {
	// Runs of whitespace never produce empty tokens.
	tokens := tokenise(t, "", "a   b\n\n\t c")
	assert.Equal(t, []string{"a", "b", "c"}, tokens)
}

func TestTokenise_LeadingTrailingPadding(t *testing.T) {
	tokens := tokenise(t, "", "   hello world   \n")
	assert.Equal(t, []string{"hello", "world"}, tokens)
}

func TestTokenise_PreservesCasingAndPunctuation(t *testing.T) {
	tokens := tokenise(t, "", "Hello, World!")
	assert.Equal(t, []string{"Hello,", "World!"}, tokens)
}

func TestTokenise_EmptyContent(t *testing.T) {
	assert.Empty(t, tokenise(t, "", ""))
	assert.Empty(t, tokenise(t, "", "  \n\t  "))
}

func TestTokenise_BlankDelimiterSelectsDefault(t *testing.T) {
	for _, delimiter := range []string{"", " ", "\t\n"} {
		tokens := tokenise(t, delimiter, "a  b")
		assert.Equal(t, []string{"a", "b"}, tokens)
	}
}

func TestTokenise_PatternDelimiter(t *testing.T) {
	tokens := tokenise(t, "[0-9]", "a1b2c")
	assert.Equal(t, []string{"a", "b", "c"}, tokens)
}

func TestTokenise_PatternDropsEmptyTokens(t *testing.T) {
	// Adjacent, leading, and trailing matches yield no empty tokens.
	tokens := tokenise(t, ",", ",a,,b,")
	assert.Equal(t, []string{"a", "b"}, tokens)
}

func TestTokenise_PatternSemantics(t *testing.T) {
	// The delimiter is a pattern, not a literal: "." matches any rune.
	tokens := tokenise(t, ".", "abc")
	assert.Empty(t, tokens)
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New("[unclosed")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPattern(t *testing.T) {
	tok, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "", tok.Pattern())

	tok, err = New(";")
	require.NoError(t, err)
	assert.Equal(t, ";", tok.Pattern())
}
