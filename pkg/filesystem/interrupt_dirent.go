//go:build linux || darwin || freebsd || netbsd || openbsd

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// readDirentRetryingOnEINTR is a wrapper around the platform's raw directory
// reading system call (getdents or getdirentries) that retries on EINTR errors
// and returns on the first successful call or non-EINTR error.
func readDirentRetryingOnEINTR(directory int, buffer []byte) (int, error) {
	for {
		result, err := unix.ReadDirent(directory, buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}
