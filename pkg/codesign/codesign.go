// Package codesign re-signs a modified native executable on macOS. In-place
// edits invalidate the existing signature, so after a successful binary
// write the target gets an ad hoc signature. On other platforms this is a
// no-op.
package codesign

import (
	"os/exec"
	"runtime"

	"github.com/arthur-debert/cctweak/pkg/errors"
	"github.com/arthur-debert/cctweak/pkg/logging"
)

// Resign applies an ad hoc signature to path. Only meaningful on darwin;
// elsewhere it returns nil without doing anything.
func Resign(path string) error {
	logger := logging.GetLogger("codesign")

	if runtime.GOOS != "darwin" {
		logger.Debug().Str("os", runtime.GOOS).Msg("Not macOS, skipping codesign")
		return nil
	}

	codesignBin, err := exec.LookPath("codesign")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodesign, "codesign tool not found on PATH")
	}

	args := []string{"--force", "--sign", "-", path}
	logging.LogCommand(codesignBin, args)

	out, err := exec.Command(codesignBin, args...).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, errors.ErrCodesign, "codesign failed: %s", string(out))
	}

	logger.Info().Str("path", path).Msg("Re-signed with ad hoc signature")
	return nil
}
