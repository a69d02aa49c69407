package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
form_url: https://example.com/form
count: 25
names:
  - Alice
  - Bob
max_workers: 3
rate_limit: 1.5
headless: false
`)

	profile, err := LoadProfile(path)
	require.NoError(t, err)

	spec := profile.RunSpec(true)
	assert.Equal(t, "https://example.com/form", spec.FormURL)
	assert.Equal(t, 25, spec.Count)
	assert.Equal(t, []string{"Alice", "Bob"}, spec.Names)
	assert.Equal(t, 3, spec.MaxWorkers)
	assert.InDelta(t, 1.5, spec.RateLimit, 1e-9)
	assert.False(t, spec.Headless)
}

func TestLoadProfileHeadlessDefault(t *testing.T) {
	path := writeProfile(t, `
form_url: https://example.com/form
count: 1
`)

	profile, err := LoadProfile(path)
	require.NoError(t, err)

	assert.True(t, profile.RunSpec(true).Headless)
	assert.False(t, profile.RunSpec(false).Headless)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadProfileInvalidYAML(t *testing.T) {
	path := writeProfile(t, "count: [not a number")

	_, err := LoadProfile(path)
	assert.Error(t, err)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_INT", "7")
	t.Setenv("TEST_FLOAT", "2.5")
	t.Setenv("TEST_STRING", "debug")
	t.Setenv("TEST_BAD", "nonsense")

	assert.True(t, Bool("TEST_BOOL", false))
	assert.Equal(t, 7, Int("TEST_INT", 0))
	assert.InDelta(t, 2.5, Float("TEST_FLOAT", 0), 1e-9)
	assert.Equal(t, "debug", String("TEST_STRING", "info"))

	// Unset and unparseable values fall back to the default.
	assert.False(t, Bool("TEST_UNSET", false))
	assert.Equal(t, 4, Int("TEST_BAD", 4))
	assert.InDelta(t, 1.0, Float("TEST_BAD", 1.0), 1e-9)
	assert.Equal(t, "info", String("TEST_UNSET", "info"))
}
