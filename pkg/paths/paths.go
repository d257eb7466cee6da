// Package paths provides centralized path handling for cctweak.
// It implements XDG Base Directory specification compliance for cctweak's
// own files and the discovery chain for the patch target.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/cctweak/pkg/errors"
	"github.com/arthur-debert/cctweak/pkg/logging"
)

// Environment variable names
const (
	// EnvTarget overrides target discovery entirely
	EnvTarget = "CCTWEAK_TARGET"

	// EnvConfigDir overrides the XDG config directory for cctweak
	EnvConfigDir = "CCTWEAK_CONFIG_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for cctweak-specific files
	AppDirName = "cctweak"

	// SettingsFile is the name of the tool settings file
	SettingsFile = "cctweak.toml"

	// ModelsFile is the name of the JSON sidecar mapping roles to models
	ModelsFile = "models.json"

	// launcherName is the binary name looked up on PATH during discovery
	launcherName = "claude"

	// bundleRelPath is where npm installs the distributable under a prefix
	bundleRelPath = "lib/node_modules/@anthropic-ai/claude-code/cli.js"
)

// ConfigDir returns cctweak's configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// SettingsPath returns the path of the tool settings file.
func SettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFile)
}

// ModelsPath returns the path of the models sidecar config.
func ModelsPath() string {
	return filepath.Join(ConfigDir(), ModelsFile)
}

// DiscoverTarget resolves the file to patch. An explicit override (flag or
// settings) wins, then the CCTWEAK_TARGET environment variable, then the
// conventional install locations, then a PATH lookup on the launcher with
// symlinks resolved. The returned attempts list records every method tried,
// in order, for the not-found report.
func DiscoverTarget(override string) (string, []string, error) {
	logger := logging.GetLogger("paths")
	var attempts []string

	if override != "" {
		override = ExpandPath(override)
		attempts = append(attempts, "explicit path "+override)
		if fileExists(override) {
			return override, attempts, nil
		}
		// A stated override that does not exist is an error, not a fallthrough
		return "", attempts, errors.Newf(errors.ErrTargetNotFound,
			"target %s does not exist", override)
	}

	if env := os.Getenv(EnvTarget); env != "" {
		env = ExpandPath(env)
		attempts = append(attempts, "$"+EnvTarget+" = "+env)
		if fileExists(env) {
			return env, attempts, nil
		}
		return "", attempts, errors.Newf(errors.ErrTargetNotFound,
			"$%s points at %s which does not exist", EnvTarget, env)
	}

	for _, candidate := range installCandidates() {
		attempts = append(attempts, "install dir "+candidate)
		if fileExists(candidate) {
			logger.Debug().Str("path", candidate).Msg("Target found in install dir")
			return candidate, attempts, nil
		}
	}

	attempts = append(attempts, "PATH lookup for "+launcherName)
	if launcher, err := exec.LookPath(launcherName); err == nil {
		resolved, err := filepath.EvalSymlinks(launcher)
		if err != nil {
			resolved = launcher
		}
		attempts = append(attempts, "resolved launcher "+resolved)

		// An npm shim resolves into node_modules next to the real bundle;
		// a native install resolves to the executable itself.
		if bundle := bundleNextTo(resolved); bundle != "" {
			return bundle, attempts, nil
		}
		if fileExists(resolved) {
			return resolved, attempts, nil
		}
	}

	return "", attempts, errors.New(errors.ErrTargetNotFound,
		"no installation located; tried: "+strings.Join(attempts, "; "))
}

// installCandidates lists the conventional install locations, most specific
// first.
func installCandidates() []string {
	var candidates []string

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".claude", "local", "node_modules", "@anthropic-ai", "claude-code", "cli.js"),
			filepath.Join(home, ".npm-global", bundleRelPath),
		)
	}

	candidates = append(candidates,
		filepath.Join(xdg.DataHome, "npm", bundleRelPath),
		filepath.Join("/usr/local", bundleRelPath),
		filepath.Join("/opt/homebrew", bundleRelPath),
	)
	return candidates
}

// bundleNextTo maps a resolved launcher path inside a node_modules tree to
// the cli.js bundle it launches. Returns "" when the path is not an npm
// layout.
func bundleNextTo(resolved string) string {
	idx := strings.Index(resolved, "node_modules")
	if idx < 0 {
		return ""
	}
	root := resolved[:idx]
	bundle := filepath.Join(root, "node_modules", "@anthropic-ai", "claude-code", "cli.js")
	if fileExists(bundle) {
		return bundle
	}
	return ""
}

// ExpandPath expands ~ and environment variables in a path. Settings files
// commonly carry targets like ~/.claude/local/... verbatim.
func ExpandPath(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return os.ExpandEnv(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
