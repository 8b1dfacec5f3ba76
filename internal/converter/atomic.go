package converter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcncl/filefmt/internal/config"
	"github.com/mcncl/filefmt/internal/errors"
)

// writeFileAtomic commits data to path by writing a temporary file in the
// destination directory and renaming it into place. On any failure the
// temporary file is removed and the destination is left untouched, so a
// failed conversion never leaves a truncated output file behind.
func writeFileAtomic(path string, data []byte, cfg *config.Config) error {
	if !cfg.Output.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.NewOutputError(
				fmt.Sprintf("destination file '%s' already exists and overwrite is disabled", path), nil)
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".filefmt-*.tmp")
	if err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to create temporary file in '%s'", dir), err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.NewOutputError("failed to write output", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.NewOutputError("failed to flush output", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return errors.NewOutputError("failed to set output file permissions", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.NewOutputError(fmt.Sprintf("failed to move output into place at '%s'", path), err)
	}
	return nil
}
