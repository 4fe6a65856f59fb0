package domain

import "fmt"

// NoLetter is the sentinel returned when a document contains no
// alphabetic characters. It is distinct from every real letter and
// from an error: letter-free input is a legitimate empty result.
const NoLetter rune = 0

// TieBreak selects the winner among letters sharing the maximum count.
type TieBreak int

const (
	// TieFirstToMax elects the letter that reaches a new maximum count
	// earliest in a left-to-right scan. Later letters that merely equal
	// the maximum do not displace it. This is the default.
	TieFirstToMax TieBreak = iota

	// TieFirstSeen elects, among the letters sharing the maximum count,
	// the one that first appeared in the document.
	TieFirstSeen
)

// String returns the configuration name of the policy.
func (t TieBreak) String() string {
	switch t {
	case TieFirstToMax:
		return "first-to-max"
	case TieFirstSeen:
		return "first-seen"
	default:
		return "unknown"
	}
}

// ParseTieBreak converts a configuration string to a TieBreak.
// Unknown names fail with ErrInvalidInput.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "first-to-max":
		return TieFirstToMax, nil
	case "first-seen":
		return TieFirstSeen, nil
	default:
		return TieFirstToMax, fmt.Errorf("%w: unknown tie-break policy %q (want first-to-max or first-seen)", ErrInvalidInput, s)
	}
}
