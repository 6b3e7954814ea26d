package filesystem

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// DataDirectoryName is the name of the global data directory inside the
	// user's home directory.
	DataDirectoryName = ".osutil"

	// ConfigurationName is the name of the global configuration file inside
	// the user's home directory.
	ConfigurationName = ".osutil.yml"
)

// DataDirectory computes (and optionally creates) subdirectories inside the
// global data directory.
func DataDirectory(create bool, pathComponents ...string) (string, error) {
	// Compute the path to the user's home directory.
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to compute path to home directory")
	}

	// Compute the target path.
	result := filepath.Join(homeDirectory, DataDirectoryName, filepath.Join(pathComponents...))

	// If requested, create the data directory and the specified subpath.
	if create {
		if err := os.MkdirAll(result, 0700); err != nil {
			return "", errors.Wrap(err, "unable to create subpath")
		}
	}

	// Success.
	return result, nil
}
