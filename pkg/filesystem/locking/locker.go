// Package locking provides advisory file locks used to ensure that only a
// single listing service instance owns an endpoint at a time.
package locking

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrLockHeld indicates that a non-blocking lock acquisition failed because the
// lock is held elsewhere.
var ErrLockHeld = errors.New("lock held by another owner")

// Locker provides file locking facilities.
type Locker struct {
	// file is the underlying file object that's locked.
	file *os.File
	// held indicates whether or not the lock is currently held.
	held bool
}

// NewLocker attempts to create a lock with the file at the specified path,
// creating the file if necessary. The lock is returned in an unlocked state.
func NewLocker(path string, permissions os.FileMode) (*Locker, error) {
	mode := os.O_RDWR | os.O_CREATE
	if file, err := os.OpenFile(path, mode, permissions); err != nil {
		return nil, errors.Wrap(err, "unable to open lock file")
	} else {
		return &Locker{file: file}, nil
	}
}

// Held returns whether or not the lock is currently held.
func (l *Locker) Held() bool {
	return l.held
}

// Lock attempts to acquire the lock. If block is false and the lock is held
// elsewhere, ErrLockHeld is returned.
func (l *Locker) Lock(block bool) error {
	if l.held {
		return errors.New("lock already held")
	}
	if err := lockFile(l.file, block); err != nil {
		return err
	}
	l.held = true
	return nil
}

// Unlock releases the lock.
func (l *Locker) Unlock() error {
	if !l.held {
		return errors.New("lock not held")
	}
	if err := unlockFile(l.file); err != nil {
		return err
	}
	l.held = false
	return nil
}

// RecordOwner replaces the contents of the lock file with the current process
// identifier. It errors if the lock is not currently held.
func (l *Locker) RecordOwner() error {
	// Verify that the lock is held.
	if !l.held {
		return errors.New("lock not held")
	}

	// Replace the file contents.
	if err := l.file.Truncate(0); err != nil {
		return errors.Wrap(err, "unable to truncate lock file")
	} else if _, err := l.file.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0); err != nil {
		return errors.Wrap(err, "unable to write lock owner")
	}
	return nil
}

// ReadOwner reads the process identifier recorded in the lock file at the
// specified path. It doesn't require that the lock be held.
func ReadOwner(path string) (int, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "unable to read lock file")
	}
	owner, err := strconv.Atoi(strings.TrimSpace(string(contents)))
	if err != nil {
		return 0, errors.Wrap(err, "unable to parse lock owner")
	}
	return owner, nil
}

// Close closes the file underlying the locker. This will release any lock held
// on the file and disable future locking.
func (l *Locker) Close() error {
	l.held = false
	return l.file.Close()
}
