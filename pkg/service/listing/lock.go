package listing

import (
	"github.com/pkg/errors"

	"github.com/mutagen-io/osutil/pkg/filesystem/locking"
)

// lockSuffix is the suffix appended to an endpoint path to form its lock path.
const lockSuffix = ".lock"

// Lock represents ownership of a listing service endpoint. It is held by a
// single service instance at a time.
type Lock struct {
	// locker is the underlying file locker.
	locker *locking.Locker
}

// LockPath computes the lock path associated with an endpoint.
func LockPath(endpoint string) string {
	return endpoint + lockSuffix
}

// AcquireLock attempts to acquire the lock for the specified endpoint without
// blocking. If another instance holds the lock, the returned error wraps
// locking.ErrLockHeld.
func AcquireLock(endpoint string) (*Lock, error) {
	// Create the locker and attempt to acquire the lock.
	locker, err := locking.NewLocker(LockPath(endpoint), 0600)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create endpoint file locker")
	} else if err = locker.Lock(false); err != nil {
		locker.Close()
		return nil, errors.Wrap(err, "unable to lock endpoint")
	}

	// Record ourselves as the owner.
	if err := locker.RecordOwner(); err != nil {
		locker.Unlock()
		locker.Close()
		return nil, errors.Wrap(err, "unable to record endpoint owner")
	}

	// Create the lock.
	return &Lock{
		locker: locker,
	}, nil
}

// Release releases the endpoint lock.
func (l *Lock) Release() error {
	// Release the lock.
	if err := l.locker.Unlock(); err != nil {
		l.locker.Close()
		return err
	}

	// Close the locker.
	return errors.Wrap(l.locker.Close(), "unable to close locker")
}
