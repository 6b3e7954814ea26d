//go:build !windows && !netbsd

package filesystem

import (
	"golang.org/x/sys/unix"
)

// extractTimes is a convenience function for extracting the modification and
// status change time specifications from a Stat_t structure. It's necessary
// since not all POSIX platforms use the same struct field names for these
// values.
func extractTimes(metadata *unix.Stat_t) (unix.Timespec, unix.Timespec) {
	return metadata.Mtim, metadata.Ctim
}
