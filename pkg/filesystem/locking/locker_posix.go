//go:build !windows && !plan9

package locking

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// lockFile acquires an exclusive flock on the file. Unlike fcntl locks, flock
// locks are associated with the open file description, so separate lockers in
// the same process exclude each other.
func lockFile(file *os.File, block bool) error {
	operation := unix.LOCK_EX
	if !block {
		operation |= unix.LOCK_NB
	}
	for {
		err := unix.Flock(int(file.Fd()), operation)
		if errors.Is(err, unix.EINTR) {
			continue
		} else if errors.Is(err, unix.EWOULDBLOCK) {
			return ErrLockHeld
		}
		return err
	}
}

// unlockFile releases the flock on the file.
func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
