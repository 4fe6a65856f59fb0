package driven

import "github.com/custodia-labs/docstat-cli/internal/core/domain"

// SettingsStore persists user preferences across invocations.
type SettingsStore interface {
	// Load reads the stored settings. A missing store yields the
	// zero Settings, not an error.
	Load() (domain.Settings, error)

	// Save persists the settings, replacing any previous values.
	Save(settings domain.Settings) error

	// Path returns the location of the backing store, for display.
	Path() string
}
