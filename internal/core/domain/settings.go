package domain

// Settings holds the persisted user preferences.
// Flags override these values per invocation.
type Settings struct {
	Stats  StatsSettings  `toml:"stats"`
	Output OutputSettings `toml:"output"`
}

// StatsSettings configures the statistics queries.
type StatsSettings struct {
	// Delimiter is the default word delimiter, a regular expression.
	// Empty selects whitespace-run splitting.
	Delimiter string `toml:"delimiter"`

	// TieBreak is the most-common-letter tie-break policy name.
	// Empty selects first-to-max.
	TieBreak string `toml:"tie_break"`
}

// OutputSettings configures report rendering.
type OutputSettings struct {
	// NoColor disables styled output even on a terminal.
	NoColor bool `toml:"no_color"`
}
