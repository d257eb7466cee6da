// cmd/cctweak/root_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: temp filesystem, environment variables
// PURPOSE: Test the CLI surface end to end against temp targets

package cctweak

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cctweak/pkg/errors"
)

const testBundle = `#!/usr/bin/env node
case"thinking":if(!j9()&&!Q.thinkingVisible)return null;return xE(Q);
W2.isDeprecated&&await uJ1(W2.model);
`

// runCLI executes the root command with args and captures stdout
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Keep logs and config out of the real home directory
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("CCTWEAK_CONFIG_DIR", filepath.Join(tmp, "config"))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeBundle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.js")
	require.NoError(t, os.WriteFile(path, []byte(testBundle), 0755))
	return path
}

func TestApplyCommand(t *testing.T) {
	path := writeBundle(t)

	out, err := runCLI(t, "apply", "--file", path, "thinking", "banner")
	require.NoError(t, err)
	assert.Contains(t, out, "patched")

	patched, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(patched), `case"thinking":return xE(Q);`)
}

func TestApplyDryRun(t *testing.T) {
	path := writeBundle(t)

	out, err := runCLI(t, "apply", "--dry-run", "--file", path, "thinking")
	require.NoError(t, err)
	assert.Contains(t, out, "would patch")

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testBundle, string(onDisk))
}

func TestApplyUnrecognizedExitsNonzero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.js")
	require.NoError(t, os.WriteFile(path, []byte("#!/usr/bin/env node\nnothing\n"), 0755))

	out, err := runCLI(t, "apply", "--file", path, "thinking")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnrecognizedShape))
	assert.Contains(t, out, "not found")
}

func TestStatusCommandNeverWrites(t *testing.T) {
	path := writeBundle(t)

	out, err := runCLI(t, "status", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "would patch")

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testBundle, string(onDisk), "status must not write")
}

func TestStatusUnrecognizedExitsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.js")
	require.NoError(t, os.WriteFile(path, []byte("#!/usr/bin/env node\nnothing\n"), 0755))

	out, err := runCLI(t, "status", "--file", path, "thinking")
	require.NoError(t, err, "unrecognized version is information for status, not failure")
	assert.Contains(t, out, "not found")
}

func TestRestoreCommand(t *testing.T) {
	path := writeBundle(t)

	_, err := runCLI(t, "apply", "--file", path, "thinking")
	require.NoError(t, err)

	out, err := runCLI(t, "restore", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Restored")

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testBundle, string(onDisk))
}

func TestRestoreWithoutBackup(t *testing.T) {
	path := writeBundle(t)

	_, err := runCLI(t, "restore", "--file", path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBackupMissing))
}

func TestApplyMissingFileOverride(t *testing.T) {
	_, err := runCLI(t, "apply", "--file", filepath.Join(t.TempDir(), "gone.js"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetNotFound))
}

func TestApplyUnknownTweak(t *testing.T) {
	path := writeBundle(t)

	_, err := runCLI(t, "apply", "--file", path, "bogus")
	require.Error(t, err)
}

func TestTriageCommand(t *testing.T) {
	out, err := runCLI(t, "triage")
	require.NoError(t, err)
	assert.Contains(t, out, "Triage")
}

func TestGenconfigCommand(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("CCTWEAK_CONFIG_DIR", filepath.Join(tmp, "cfg"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"genconfig"})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(tmp, "cfg", "cctweak.toml"))
	assert.FileExists(t, filepath.Join(tmp, "cfg", "models.json"))
}

func TestHelpTopicsCommand(t *testing.T) {
	out, err := runCLI(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "tweaks")
	assert.Contains(t, out, "discovery")
}

func TestNoCommandShowsHelpAndFails(t *testing.T) {
	out, err := runCLI(t)
	require.Error(t, err)
	assert.Contains(t, out, "COMMANDS:")
}
