// Package backup manages the single pristine copy of the target kept next
// to it on disk. The backup is created at most once, before the first
// modifying write, and is the unit of the restore operation. It is never
// rotated or pruned.
package backup

import (
	"os"

	"github.com/arthur-debert/cctweak/pkg/errors"
	"github.com/arthur-debert/cctweak/pkg/logging"
)

// Suffix appended to the target path to form the backup path
const Suffix = ".cctweak.bak"

// Path returns the backup path for a target.
func Path(targetPath string) string {
	return targetPath + Suffix
}

// Ensure creates the backup if it does not exist yet and returns its path.
// An existing backup is left untouched: it holds the pristine bytes from
// before the first patch, which later runs must not clobber.
func Ensure(targetPath string) (string, error) {
	logger := logging.GetLogger("backup")
	backupPath := Path(targetPath)

	if _, err := os.Stat(backupPath); err == nil {
		logger.Debug().Str("path", backupPath).Msg("Backup already exists")
		return backupPath, nil
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupCreate, "cannot stat %s", targetPath)
	}

	data, err := os.ReadFile(targetPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupCreate, "cannot read %s", targetPath)
	}

	if err := os.WriteFile(backupPath, data, info.Mode().Perm()); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupCreate, "cannot write %s", backupPath)
	}

	logger.Info().
		Str("target", targetPath).
		Str("backup", backupPath).
		Int("bytes", len(data)).
		Msg("Backup created")

	return backupPath, nil
}

// Restore copies the backup back over the target byte-for-byte, preserving
// the target's current mode.
func Restore(targetPath string) error {
	logger := logging.GetLogger("backup")
	backupPath := Path(targetPath)

	data, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrBackupMissing, "no backup at %s", backupPath)
		}
		return errors.Wrapf(err, errors.ErrBackupRestore, "cannot read %s", backupPath)
	}

	mode := os.FileMode(0755)
	if info, err := os.Stat(targetPath); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(targetPath, data, mode); err != nil {
		return errors.Wrapf(err, errors.ErrBackupRestore, "cannot write %s", targetPath)
	}

	logger.Info().
		Str("target", targetPath).
		Str("backup", backupPath).
		Msg("Target restored from backup")

	return nil
}
