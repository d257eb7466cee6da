// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: temp filesystem, environment variables
// PURPOSE: Test settings layering and sidecar degradation on bad JSON

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "", s.Target)
	assert.True(t, s.Sign, "signing defaults to on")
}

func TestLoadSettingsFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cctweak.toml")
	require.NoError(t, os.WriteFile(path, []byte("target = \"/opt/claude/cli.js\"\nsign = false\n"), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/claude/cli.js", s.Target)
	assert.False(t, s.Sign)
}

func TestLoadSettingsEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cctweak.toml")
	require.NoError(t, os.WriteFile(path, []byte("target = \"/from/file\"\n"), 0644))
	t.Setenv("CCTWEAK_TARGET", "/from/env")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", s.Target)
}

func TestLoadSettingsBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cctweak.toml")
	require.NoError(t, os.WriteFile(path, []byte("target = [broken"), 0644))

	_, err := LoadSettings(path)
	require.Error(t, err)
}

func TestLoadModels(t *testing.T) {
	t.Run("valid sidecar", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "models.json")
		require.NoError(t, os.WriteFile(path,
			[]byte(`{"subagent":"claude-sonnet-4-20250514","haiku":""}`), 0644))

		models := LoadModels(path)
		assert.Equal(t, map[string]string{"subagent": "claude-sonnet-4-20250514"}, models,
			"empty values are dropped")
	})

	t.Run("missing sidecar is nothing configured", func(t *testing.T) {
		assert.Nil(t, LoadModels(filepath.Join(t.TempDir(), "missing.json")))
	})

	t.Run("malformed sidecar degrades to nothing configured", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "models.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"subagent": nope}`), 0644))

		assert.Nil(t, LoadModels(path))
	})
}

func TestWriteSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cctweak.toml")

	require.NoError(t, WriteSettings(path, &Settings{Target: "/x/cli.js", Sign: true}))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "/x/cli.js", s.Target)

	// Never clobbers
	require.Error(t, WriteSettings(path, &Settings{}))
}

func TestWriteModelsSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.json")

	require.NoError(t, WriteModelsSeed(path))

	// Seed parses but configures nothing (all values empty)
	assert.Empty(t, LoadModels(path))

	require.Error(t, WriteModelsSeed(path))
}
