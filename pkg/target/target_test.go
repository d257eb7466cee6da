// pkg/target/target_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: temp filesystem
// PURPOSE: Test target classification and loading

package target

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cctweak/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want Kind
	}{
		{
			name: "js extension",
			file: "cli.js",
			data: []byte("var x=1;"),
			want: KindScript,
		},
		{
			name: "mjs extension",
			file: "cli.mjs",
			data: []byte("export default 1;"),
			want: KindScript,
		},
		{
			name: "shebang without extension",
			file: "claude",
			data: []byte("#!/usr/bin/env node\nconsole.log(1);\n"),
			want: KindScript,
		},
		{
			name: "elf magic",
			file: "claude",
			data: []byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0},
			want: KindNativeBinary,
		},
		{
			name: "macho 64 little endian",
			file: "claude",
			data: []byte{0xcf, 0xfa, 0xed, 0xfe, 0, 0, 0, 0},
			want: KindNativeBinary,
		},
		{
			name: "macho fat binary",
			file: "claude",
			data: []byte{0xca, 0xfe, 0xba, 0xbe, 0, 0, 0, 2},
			want: KindNativeBinary,
		},
		{
			name: "pe stub",
			file: "claude.exe",
			data: []byte{'M', 'Z', 0x90, 0x00},
			want: KindNativeBinary,
		},
		{
			name: "embedded nul without magic",
			file: "claude",
			data: []byte("some text\x00more text"),
			want: KindNativeBinary,
		},
		{
			name: "plain text is unknown",
			file: "claude",
			data: []byte("just some text with no markers"),
			want: KindUnknown,
		},
		{
			name: "empty file is unknown",
			file: "claude",
			data: []byte{},
			want: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.file, tt.data)
			assert.Equal(t, tt.want, Classify(path))
		})
	}
}

func TestClassifyUnreadable(t *testing.T) {
	// Nonexistent files are unknown, never an error
	assert.Equal(t, KindUnknown, Classify(filepath.Join(t.TempDir(), "missing")))
}

func TestLoad(t *testing.T) {
	data := []byte("#!/usr/bin/env node\nvar y=2;\n")
	path := writeTemp(t, "claude", data)

	tgt, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, KindScript, tgt.Kind)
	assert.Equal(t, data, tgt.Data)
	assert.Equal(t, path, tgt.Path)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetNotFound))
}

func TestLoadUnknownKind(t *testing.T) {
	path := writeTemp(t, "claude", []byte("no markers here"))
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetUnknown))
}
