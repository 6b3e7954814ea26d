//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd

package filesystem

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"

	"github.com/mutagen-io/osutil/pkg/logging"
	"github.com/mutagen-io/osutil/pkg/must"
)

// enumerate performs a stat-based enumeration on platforms without raw
// directory entry parsing support. Metadata queries use full paths.
func enumerate(path string, metadata bool, skip string, logger *logging.Logger) ([]*Entry, error) {
	// Reject overlong paths.
	if err := checkPathLength(path); err != nil {
		return nil, err
	}

	// Open the directory and defer its closure.
	directory, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer must.Close(directory, logger)

	// Read the directory contents.
	contents, err := directory.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	// Process the contents.
	entries := make([]*Entry, 0, len(contents))
	for _, content := range contents {
		name := content.Name()
		entry := &Entry{Name: name, Kind: kindFromFileMode(content.Type())}
		if entry.Kind == EntryKindUnknown || metadata {
			full := entryPath(path, name)
			if beforeEntryMetadataQuery != nil {
				beforeEntryMetadataQuery(full)
			}
			var stat unix.Stat_t
			if err := lstatRetryingOnEINTR(full, &stat); err != nil {
				if errors.Is(err, unix.ENOENT) {
					continue
				}
				return nil, &os.PathError{Op: "lstat", Path: full, Err: err}
			}
			entry.Kind = KindFromMode(Mode(stat.Mode))
			if metadata {
				entry.Metadata = newMetadataFromStat(&stat)
			}
		}
		if skip != "" && entry.Kind == EntryKindDirectory && name == skip {
			return []*Entry{}, nil
		}
		entries = append(entries, entry)
	}

	// Success.
	return entries, nil
}
