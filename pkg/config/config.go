// Package config loads cctweak's settings and the models sidecar file.
//
// Settings (cctweak.toml) layer embedded defaults, the user's file, and
// CCTWEAK_* environment variables, in that order. The models sidecar
// (models.json) maps logical role names to model-name strings; a malformed
// sidecar is a warning, never an error, and behaves as if nothing were
// configured.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	cterrors "github.com/arthur-debert/cctweak/pkg/errors"
	"github.com/arthur-debert/cctweak/pkg/logging"
)

// Settings are the tool-level options from cctweak.toml.
type Settings struct {
	// Target is an explicit target path, overriding discovery
	Target string `koanf:"target" toml:"target"`

	// Sign controls macOS re-signing after a binary write
	Sign bool `koanf:"sign" toml:"sign"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadSettings loads settings from path, layered over the embedded defaults.
// A missing file is fine; a file that exists but does not parse is a
// configuration error.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, cterrors.Wrap(err, cterrors.ErrConfigLoad, "failed to load embedded defaults")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, cterrors.Wrapf(err, cterrors.ErrConfigParse, "failed to parse %s", path)
		}
	}

	// CCTWEAK_TARGET and CCTWEAK_SIGN override the files
	if err := k.Load(env.Provider("CCTWEAK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CCTWEAK_"))
	}), nil); err != nil {
		return nil, cterrors.Wrap(err, cterrors.ErrConfigLoad, "failed to load environment overrides")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, cterrors.Wrap(err, cterrors.ErrConfigValid, "settings did not unmarshal")
	}
	return &s, nil
}

// LoadModels reads the JSON sidecar mapping role names to model names.
// Missing or malformed files degrade to an empty map with a warning, per the
// "nothing configured" contract.
func LoadModels(path string) map[string]string {
	logger := logging.GetLogger("config")

	if _, err := os.Stat(path); err != nil {
		logger.Debug().Str("path", path).Msg("No models sidecar")
		return nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Malformed models sidecar, ignoring")
		return nil
	}

	models := make(map[string]string)
	for _, key := range k.Keys() {
		if v := k.String(key); v != "" {
			models[key] = v
		}
	}

	logger.Debug().Int("roles", len(models)).Str("path", path).Msg("Models sidecar loaded")
	return models
}
