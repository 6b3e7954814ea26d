//go:build !windows

package filesystem

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// BulkStatSupported indicates whether or not StatFiles is supported on the
// current platform.
const BulkStatSupported = true

// statCancellationInterval is the number of paths processed between checks for
// context cancellation in StatFiles.
const statCancellationInterval = 1000

// StatFiles queries metadata for each of the specified paths without following
// symbolic links. The result has the same length and order as paths. A result
// slot is nil if its path couldn't be queried or if it doesn't refer to a
// regular file or symbolic link. The context is checked periodically and, if
// cancelled, the call is aborted with the context's error.
func StatFiles(ctx context.Context, paths []string) ([]*Metadata, error) {
	// Validate paths.
	for _, path := range paths {
		if strings.IndexByte(path, 0) >= 0 {
			return nil, errors.Wrapf(ErrMalformedInput, "path %q contains NUL byte", path)
		}
	}

	// Perform queries.
	results := make([]*Metadata, len(paths))
	for i, path := range paths {
		// Check for cancellation.
		if i%statCancellationInterval == statCancellationInterval-1 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		// Query metadata and record it if the entry is of interest.
		var stat unix.Stat_t
		if err := lstatRetryingOnEINTR(path, &stat); err != nil {
			continue
		}
		if kind := KindFromMode(Mode(stat.Mode)); kind == EntryKindRegular || kind == EntryKindSymbolicLink {
			results[i] = newMetadataFromStat(&stat)
		}
	}

	// Success.
	return results, nil
}
