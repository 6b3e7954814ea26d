//go:build linux || darwin || freebsd || netbsd || openbsd

package filesystem

import (
	"os"

	"github.com/pkg/errors"

	"github.com/mutagen-io/osutil/pkg/logging"
)

// enumerate performs a stat-based enumeration, reading raw directory entry
// records and querying metadata relative to the directory descriptor where
// necessary.
func enumerate(path string, metadata bool, skip string, logger *logging.Logger) ([]*Entry, error) {
	// Reject overlong paths.
	if err := checkPathLength(path); err != nil {
		return nil, err
	}

	// Open the directory and defer its closure.
	descriptor, err := openDirectory(path)
	if err != nil {
		return nil, err
	}
	defer mustCloseConsideringEINTR(descriptor, logger)

	// Open a separate descriptor for metadata queries if the platform requires
	// one.
	metadataDescriptor := descriptor
	if separateMetadataDescriptor {
		if metadataDescriptor, err = openDirectory(path); err != nil {
			return nil, err
		}
		defer mustCloseConsideringEINTR(metadataDescriptor, logger)
	}

	// Read and process records.
	buffer := make([]byte, direntBufferSize)
	var records []direntRecord
	entries := make([]*Entry, 0)
	for {
		// Read the next batch of records.
		n, err := readDirentRetryingOnEINTR(descriptor, buffer)
		if err != nil {
			return nil, &os.PathError{Op: "readdirent", Path: path, Err: err}
		} else if n <= 0 {
			break
		}

		// Parse the records.
		records, err = parseDirentRecords(buffer[:n], records[:0])
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read directory entries for %s", path)
		}

		// Process the records.
		for _, record := range records {
			if record.name == "." || record.name == ".." {
				continue
			}
			entry, ok, err := queryEntry(metadataDescriptor, path, record.name, record.kind, metadata)
			if err != nil {
				return nil, err
			} else if !ok {
				continue
			}
			if skip != "" && entry.Kind == EntryKindDirectory && entry.Name == skip {
				return []*Entry{}, nil
			}
			entries = append(entries, entry)
		}
	}

	// Success.
	return entries, nil
}
