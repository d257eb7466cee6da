package config

import (
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	cterrors "github.com/arthur-debert/cctweak/pkg/errors"
)

// sidecarSeed is the models.json written by genconfig, with every role
// present but empty so the keys are discoverable.
var sidecarSeed = map[string]string{
	"default":  "",
	"plan":     "",
	"subagent": "",
	"haiku":    "",
}

// WriteSettings marshals the current settings to path, creating parent
// directories. Refuses to clobber an existing file.
func WriteSettings(path string, s *Settings) error {
	if _, err := os.Stat(path); err == nil {
		return cterrors.Newf(cterrors.ErrInvalidInput, "%s already exists", path)
	}

	data, err := gotoml.Marshal(s)
	if err != nil {
		return cterrors.Wrap(err, cterrors.ErrInternal, "settings did not marshal")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return cterrors.Wrapf(err, cterrors.ErrFileWrite, "cannot create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return cterrors.Wrapf(err, cterrors.ErrFileWrite, "cannot write %s", path)
	}
	return nil
}

// WriteModelsSeed writes an empty-keyed models.json so the operator can fill
// in role names. Refuses to clobber an existing file.
func WriteModelsSeed(path string) error {
	if _, err := os.Stat(path); err == nil {
		return cterrors.Newf(cterrors.ErrInvalidInput, "%s already exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return cterrors.Wrapf(err, cterrors.ErrFileWrite, "cannot create %s", filepath.Dir(path))
	}

	content := "{\n"
	keys := []string{"default", "plan", "subagent", "haiku"}
	for i, k := range keys {
		content += "  \"" + k + "\": \"" + sidecarSeed[k] + "\""
		if i < len(keys)-1 {
			content += ","
		}
		content += "\n"
	}
	content += "}\n"

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return cterrors.Wrapf(err, cterrors.ErrFileWrite, "cannot write %s", path)
	}
	return nil
}
