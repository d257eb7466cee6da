// Package core orchestrates a patch run: resolve the target, classify and
// load it, evaluate every selected tweak's rule sets, and, outside dry-run,
// back up, write, and re-sign. All state is local to the run; nothing is
// cached across invocations.
package core

import (
	"os"
	"runtime"

	"github.com/arthur-debert/cctweak/pkg/backup"
	"github.com/arthur-debert/cctweak/pkg/codesign"
	"github.com/arthur-debert/cctweak/pkg/config"
	"github.com/arthur-debert/cctweak/pkg/errors"
	"github.com/arthur-debert/cctweak/pkg/logging"
	"github.com/arthur-debert/cctweak/pkg/patch"
	"github.com/arthur-debert/cctweak/pkg/paths"
	"github.com/arthur-debert/cctweak/pkg/rules"
	"github.com/arthur-debert/cctweak/pkg/target"
)

// Options select what a run operates on. Zero value means: discover the
// target, load the default sidecar, run every tweak, write changes.
type Options struct {
	// TargetPath is the --file override; beats settings and discovery
	TargetPath string

	// ModelsPath is the --models override for the JSON sidecar
	ModelsPath string

	// Tweaks are tweak names to run; empty means all
	Tweaks []string

	// DryRun evaluates and reports without writing
	DryRun bool

	// NoSign skips macOS re-signing after a binary write
	NoSign bool
}

// SetResult is the outcome of one logical transformation.
type SetResult struct {
	Tweak   string
	Set     string
	Outcome patch.Outcome
	Rule    string // rule that applied or reported already-applied
}

// TweakSummary aggregates a tweak's sets for user-facing reporting.
// Heuristic is true when the outcome is already-applied only because the
// advisory detector fired, not because a rule recognized its own output.
type TweakSummary struct {
	Name      string
	Outcome   patch.Outcome
	Heuristic bool

	// NothingConfigured is set for tweaks that produced no rule sets, e.g.
	// models with an empty sidecar
	NothingConfigured bool
}

// Result reports everything a run did or would do.
type Result struct {
	TargetPath string
	Kind       target.Kind
	Attempts   []string

	Sets    []SetResult
	Summary []TweakSummary

	Changed    bool
	Written    bool
	BackupPath string
	Signed     bool
	DryRun     bool
}

// Unrecognized reports whether any selected tweak found nothing to do and
// could not be explained as already patched. Callers turn this into the
// "pattern not found, version may have changed" exit.
func (r *Result) Unrecognized() bool {
	for _, s := range r.Summary {
		if s.Outcome == patch.OutcomeAbsent && !s.NothingConfigured {
			return true
		}
	}
	return false
}

// resolveTarget merges the flag override with settings before discovery.
func resolveTarget(opts Options, settings *config.Settings) (string, []string, error) {
	override := opts.TargetPath
	if override == "" {
		override = settings.Target
	}
	return paths.DiscoverTarget(override)
}

// shouldSign merges the --no-sign flag with the settings toggle. The flag
// only disables; it cannot force signing back on over sign = false.
func shouldSign(noSign bool, settings *config.Settings) bool {
	return !noSign && settings.Sign
}

// Run executes a patch run. Structural failures (unsafe replacement, length
// invariant) abort before any write, leaving the target untouched on disk.
// A run with nothing recognized is not an error here; inspect
// Result.Unrecognized.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("core")

	settings, err := config.LoadSettings(paths.SettingsPath())
	if err != nil {
		return nil, err
	}

	targetPath, attempts, err := resolveTarget(opts, settings)
	if err != nil {
		return nil, err
	}

	tgt, err := target.Load(targetPath)
	if err != nil {
		return nil, err
	}

	modelsPath := opts.ModelsPath
	if modelsPath == "" {
		modelsPath = paths.ModelsPath()
	}
	models := config.LoadModels(modelsPath)

	tweaks, err := rules.Get(opts.Tweaks, models)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "bad tweak selection")
	}

	result := &Result{
		TargetPath: targetPath,
		Kind:       tgt.Kind,
		Attempts:   attempts,
		DryRun:     opts.DryRun,
	}

	original := string(tgt.Data)
	content := original
	binary := tgt.Kind == target.KindNativeBinary

	for _, tw := range tweaks {
		summary := TweakSummary{Name: tw.Name, Outcome: patch.OutcomeAbsent}

		if len(tw.Sets) == 0 {
			summary.NothingConfigured = true
			result.Summary = append(result.Summary, summary)
			continue
		}

		sawApplied := false
		for _, set := range tw.Sets {
			out, outcome, rule, err := patch.ApplyFirst(content, set.Rules, binary)
			if err != nil {
				// Fatal before any write; the file on disk is untouched
				return nil, err
			}

			sr := SetResult{Tweak: tw.Name, Set: set.Name, Outcome: outcome}
			if rule != nil {
				sr.Rule = rule.Name
			}
			result.Sets = append(result.Sets, sr)

			switch outcome {
			case patch.OutcomeFound:
				content = out
				summary.Outcome = patch.OutcomeFound
			case patch.OutcomeApplied:
				sawApplied = true
			}
		}

		if summary.Outcome != patch.OutcomeFound {
			if sawApplied {
				summary.Outcome = patch.OutcomeApplied
			} else if tw.AlreadyPatched != nil && tw.AlreadyPatched(content) {
				// Advisory only: affects messaging, never a write
				summary.Outcome = patch.OutcomeApplied
				summary.Heuristic = true
			}
		}
		result.Summary = append(result.Summary, summary)
	}

	result.Changed = content != original
	if !result.Changed {
		logger.Debug().Str("target", targetPath).Msg("No content change")
		return result, nil
	}

	if binary && len(content) != len(original) {
		// Refuse to write at all
		return nil, errors.Newf(errors.ErrLengthInvariant,
			"output is %d bytes but target is %d bytes", len(content), len(original))
	}

	if opts.DryRun {
		logger.Info().Str("target", targetPath).Msg("Dry run, skipping write")
		return result, nil
	}

	backupPath, err := backup.Ensure(targetPath)
	if err != nil {
		return nil, err
	}
	result.BackupPath = backupPath

	if err := os.WriteFile(targetPath, []byte(content), tgt.Mode.Perm()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", targetPath)
	}
	result.Written = true

	logger.Info().
		Str("target", targetPath).
		Str("kind", string(tgt.Kind)).
		Int("bytes", len(content)).
		Msg("Target written")

	if binary && shouldSign(opts.NoSign, settings) {
		if err := codesign.Resign(targetPath); err != nil {
			// The write already happened; signing trouble is a warning
			logger.Warn().Err(err).Msg("Re-signing failed")
		} else {
			result.Signed = runtime.GOOS == "darwin"
		}
	}

	return result, nil
}

// Restore copies the backup back over the target. The target is resolved
// with the same chain as a patch run.
func Restore(opts Options) (string, error) {
	settings, err := config.LoadSettings(paths.SettingsPath())
	if err != nil {
		return "", err
	}
	targetPath, _, err := resolveTarget(opts, settings)
	if err != nil {
		return "", err
	}
	if err := backup.Restore(targetPath); err != nil {
		return "", err
	}
	return targetPath, nil
}
