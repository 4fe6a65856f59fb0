package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstat-cli/internal/core/domain"
)

func TestNewSettingsStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewSettingsStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestSettingsStore_LoadMissingFile(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	// No config file yet - zero settings, not an error.
	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{}, settings)
}

func TestSettingsStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	want := domain.Settings{
		Stats: domain.StatsSettings{
			Delimiter: "[,;]",
			TieBreak:  "first-seen",
		},
		Output: domain.OutputSettings{NoColor: true},
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsStore_SaveReplaces(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(domain.Settings{
		Stats: domain.StatsSettings{Delimiter: "old"},
	}))
	require.NoError(t, store.Save(domain.Settings{
		Stats: domain.StatsSettings{TieBreak: "first-to-max"},
	}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Stats.Delimiter)
	assert.Equal(t, "first-to-max", got.Stats.TieBreak)
}

func TestSettingsStore_LoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSettingsStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("not = [valid"), 0600))

	_, err = store.Load()
	assert.Error(t, err)
}
