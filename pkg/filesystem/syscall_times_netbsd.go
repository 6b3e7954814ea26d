package filesystem

import (
	"golang.org/x/sys/unix"
)

// extractTimes is a convenience function for extracting the modification and
// status change time specifications from a Stat_t structure.
func extractTimes(metadata *unix.Stat_t) (unix.Timespec, unix.Timespec) {
	return metadata.Mtimespec, metadata.Ctimespec
}
