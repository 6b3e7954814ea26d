package filesystem

import (
	"syscall"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput indicates that a path or name passed to an operation
	// could not be represented natively, e.g. because it contained a NUL byte.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnsupported indicates that an operation is not available on the
	// current platform.
	ErrUnsupported = errors.New("operation not supported on this platform")
)

var (
	// errBatchUnsupported indicates that batched attribute enumeration isn't
	// supported for the target directory.
	errBatchUnsupported = errors.New("batched enumeration unsupported")
	// errBatchMutated indicates that the target directory was modified while a
	// batched attribute enumeration was in progress.
	errBatchMutated = errors.New("directory modified during batched enumeration")
)

// IsNameTooLong returns whether or not an error indicates that a path exceeded
// the platform's maximum path length.
func IsNameTooLong(err error) bool {
	return errors.Is(err, syscall.ENAMETOOLONG)
}
