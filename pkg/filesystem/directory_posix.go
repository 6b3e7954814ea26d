//go:build !windows

package filesystem

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// beforeEntryMetadataQuery is invoked (if non-nil) with the path of each entry
// immediately before its metadata is queried. It is only set by tests.
var beforeEntryMetadataQuery func(path string)

// checkPathLength returns an ENAMETOOLONG path error if path reaches the
// platform's maximum path length.
func checkPathLength(path string) error {
	if len(path) >= maximumPathLength {
		return &os.PathError{Op: "open", Path: path, Err: unix.ENAMETOOLONG}
	}
	return nil
}

// openDirectory opens a directory for reading.
func openDirectory(path string) (int, error) {
	descriptor, err := openatRetryingOnEINTR(unix.AT_FDCWD, path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return -1, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return descriptor, nil
}

// queryEntry constructs an entry for the named object within a directory. If
// the kind is unknown or metadata is requested, then the object's metadata is
// queried relative to the directory descriptor and the kind is taken from the
// result. It returns false if the object no longer exists.
func queryEntry(directory int, path, name string, kind EntryKind, metadata bool) (*Entry, bool, error) {
	// Create the entry.
	entry := &Entry{Name: name, Kind: kind}

	// If no metadata query is needed, then we're done.
	if kind != EntryKindUnknown && !metadata {
		return entry, true, nil
	}

	// Query metadata.
	if beforeEntryMetadataQuery != nil {
		beforeEntryMetadataQuery(entryPath(path, name))
	}
	var stat unix.Stat_t
	if err := fstatatRetryingOnEINTR(directory, name, &stat, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		if errors.Is(err, unix.ENOENT) {
			return nil, false, nil
		}
		return nil, false, &os.PathError{Op: "fstatat", Path: entryPath(path, name), Err: err}
	}

	// Update the entry.
	entry.Kind = KindFromMode(Mode(stat.Mode))
	if metadata {
		entry.Metadata = newMetadataFromStat(&stat)
	}

	// Success.
	return entry, true, nil
}
