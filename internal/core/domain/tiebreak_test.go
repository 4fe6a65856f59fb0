package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTieBreak(t *testing.T) {
	tb, err := ParseTieBreak("first-to-max")
	require.NoError(t, err)
	assert.Equal(t, TieFirstToMax, tb)

	tb, err = ParseTieBreak("first-seen")
	require.NoError(t, err)
	assert.Equal(t, TieFirstSeen, tb)
}

func TestParseTieBreak_Unknown(t *testing.T) {
	_, err := ParseTieBreak("alphabetical")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseTieBreak("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTieBreak_String(t *testing.T) {
	assert.Equal(t, "first-to-max", TieFirstToMax.String())
	assert.Equal(t, "first-seen", TieFirstSeen.String())
	assert.Equal(t, "unknown", TieBreak(99).String())
}

func TestTieBreak_StringRoundTrip(t *testing.T) {
	for _, tb := range []TieBreak{TieFirstToMax, TieFirstSeen} {
		parsed, err := ParseTieBreak(tb.String())
		require.NoError(t, err)
		assert.Equal(t, tb, parsed)
	}
}
