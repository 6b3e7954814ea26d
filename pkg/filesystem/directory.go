package filesystem

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/mutagen-io/osutil/pkg/logging"
)

// Entry is a single directory listing entry.
type Entry struct {
	// Name is the base name of the entry.
	Name string `json:"name" yaml:"name"`
	// Kind is the kind of the entry.
	Kind EntryKind `json:"kind" yaml:"kind"`
	// Metadata is the entry's metadata. It is only set if requested.
	Metadata *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// enumerator is the signature shared by the platform enumerators.
type enumerator func(path string, metadata bool, skip string, logger *logging.Logger) ([]*Entry, error)

// batchedEnumerate is the platform's batched attribute enumerator, if any. It
// is tried before the platform's general enumerator, which is used if the
// batched enumerator reports an unsupported or mutated condition.
var batchedEnumerate enumerator

// ListDirectory lists the contents of the directory at the specified path. The
// returned entries never include "." or "..", and their order is the order in
// which the platform reports them. If metadata is true, each entry carries a
// metadata snapshot. If skip is non-empty and a directory with that name is
// encountered, the enumeration is abandoned and an empty listing is returned.
// Entries removed while the enumeration is in progress are silently omitted.
func ListDirectory(path string, metadata bool, skip string, logger *logging.Logger) ([]*Entry, error) {
	// Validate arguments.
	if err := validateListingArguments(path, skip); err != nil {
		return nil, err
	}

	// Attempt a batched enumeration if the platform supports it. Any partial
	// results from an aborted attempt are discarded.
	if batchedEnumerate != nil {
		entries, err := batchedEnumerate(path, metadata, skip, logger)
		if err == nil {
			return entries, nil
		} else if !errors.Is(err, errBatchUnsupported) && !errors.Is(err, errBatchMutated) {
			return nil, err
		}
		logger.Debugf("Falling back to stat-based enumeration for %s: %s", path, err.Error())
	}

	// Perform a general enumeration.
	return enumerate(path, metadata, skip, logger)
}

// validateListingArguments ensures that a path and skip name can be passed to
// native enumeration facilities.
func validateListingArguments(path, skip string) error {
	if strings.IndexByte(path, 0) >= 0 {
		return errors.Wrapf(ErrMalformedInput, "path %q contains NUL byte", path)
	} else if strings.IndexByte(skip, 0) >= 0 {
		return errors.Wrapf(ErrMalformedInput, "skip name %q contains NUL byte", skip)
	} else if strings.IndexByte(skip, '/') >= 0 || strings.IndexByte(skip, os.PathSeparator) >= 0 {
		return errors.Wrapf(ErrMalformedInput, "skip name %q contains path separator", skip)
	}
	return nil
}

// entryPath computes the full path of an entry within a directory for error
// reporting and path-based queries.
func entryPath(directory, name string) string {
	if directory == "" {
		return name
	} else if strings.HasSuffix(directory, "/") || strings.HasSuffix(directory, string(os.PathSeparator)) {
		return directory + name
	}
	return directory + string(os.PathSeparator) + name
}
