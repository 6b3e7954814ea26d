//go:build !windows

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/mutagen-io/osutil/pkg/logging"
)

// openatRetryingOnEINTR is a wrapper around the openat system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func openatRetryingOnEINTR(directory int, path string, flags int, mode uint32) (int, error) {
	for {
		result, err := unix.Openat(directory, path, flags, mode)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// closeConsideringEINTR is a direct passthrough to the close system call that
// doesn't retry on EINTR. It's only defined to highlight the intentional
// absence of closeRetryingOnEINTR. POSIX makes no guarantees about the state of
// a file descriptor after an EINTR error, so retrying closure could race with
// file descriptor re-use.
func closeConsideringEINTR(file int) error {
	return unix.Close(file)
}

// mustCloseConsideringEINTR closes a file descriptor using
// closeConsideringEINTR and logs a warning on failure.
func mustCloseConsideringEINTR(file int, logger *logging.Logger) {
	if err := closeConsideringEINTR(file); err != nil {
		logger.Warnf("Unable to close file descriptor: %s", err.Error())
	}
}

// fstatatRetryingOnEINTR is a wrapper around the fstatat system call that
// retries on EINTR errors and returns on the first successful call or non-EINTR
// error.
func fstatatRetryingOnEINTR(directory int, path string, metadata *unix.Stat_t, flags int) error {
	for {
		err := unix.Fstatat(directory, path, metadata, flags)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// lstatRetryingOnEINTR is a wrapper around the lstat system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func lstatRetryingOnEINTR(path string, metadata *unix.Stat_t) error {
	for {
		err := unix.Lstat(path, metadata)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}
