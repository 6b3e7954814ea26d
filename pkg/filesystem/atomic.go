package filesystem

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mutagen-io/osutil/pkg/logging"
	"github.com/mutagen-io/osutil/pkg/must"
)

const (
	// TemporaryNamePrefix is the file name prefix used for temporary files
	// created alongside their final destination.
	TemporaryNamePrefix = ".osutil-temporary-"
)

// WriteFileAtomic writes a file to disk in an atomic fashion by using an
// intermediate temporary file in the target directory that is swapped into
// place using a rename operation. Cleanup failures are reported to the logger.
func WriteFileAtomic(path string, data []byte, permissions os.FileMode, logger *logging.Logger) error {
	// Create a temporary file. The os package already uses secure permissions
	// for creating temporary files.
	temporary, err := os.CreateTemp(filepath.Dir(path), TemporaryNamePrefix+"atomic-write")
	if err != nil {
		return errors.Wrap(err, "unable to create temporary file")
	}

	// Write data.
	if _, err = temporary.Write(data); err != nil {
		must.Close(temporary, logger)
		must.OSRemove(temporary.Name(), logger)
		return errors.Wrap(err, "unable to write data to temporary file")
	}

	// Close out the file.
	if err = temporary.Close(); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return errors.Wrap(err, "unable to close temporary file")
	}

	// Set the file's permissions.
	if err = os.Chmod(temporary.Name(), permissions); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return errors.Wrap(err, "unable to change file permissions")
	}

	// Swap the file into place.
	if err = os.Rename(temporary.Name(), path); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return errors.Wrap(err, "unable to rename file")
	}

	// Success.
	return nil
}
