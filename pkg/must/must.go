// Package must provides helpers for operations whose failure can only be
// reported, typically cleanup operations performed on exit paths.
package must

import (
	"io"
	"os"

	"github.com/mutagen-io/osutil/pkg/logging"
)

// Close closes the closer and logs a warning on failure.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}

// OSRemove removes the named filesystem entry and logs a warning on failure.
func OSRemove(name string, logger *logging.Logger) {
	if err := os.Remove(name); err != nil {
		logger.Warnf("Unable to remove '%s': %s", name, err.Error())
	}
}

// Succeed logs a warning if the error recorded for the named task is non-nil.
func Succeed(err error, task string, logger *logging.Logger) {
	if err != nil {
		logger.Warnf("Unable to succeed at %s; %s", task, err.Error())
	}
}
