package filesystem

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"

	"github.com/mutagen-io/osutil/pkg/filesystem/internal/syscall"
	"github.com/mutagen-io/osutil/pkg/logging"
)

const (
	// attributeBatchSize is the maximum number of entries requested from each
	// getdirentriesattr call.
	attributeBatchSize = 50
	// attributeNameMaximum is NAME_MAX on macOS.
	attributeNameMaximum = 255
	// attributeBufferSize is the size of the attribute buffer. It is large
	// enough to hold a full batch of records with worst-case name lengths,
	// since getdirentriesattr silently truncates attribute data that doesn't
	// fit.
	attributeBufferSize = attributeBatchSize * (attributeRecordMaximumFixedSize + 3*attributeNameMaximum + 1)
)

func init() {
	batchedEnumerate = enumerateBatched
}

// enumerateBatched performs a batched attribute enumeration using
// getdirentriesattr. It returns errBatchUnsupported if the filesystem doesn't
// support the call and errBatchMutated if the directory changed between
// batches, in which case a subsequent batch may have silently omitted entries.
func enumerateBatched(path string, metadata bool, skip string, logger *logging.Logger) ([]*Entry, error) {
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

	// Set up the attribute request.
	attributes := &syscall.Attrlist{
		Bitmapcount: syscall.ATTR_BIT_MAP_COUNT,
		Commonattr: syscall.ATTR_CMN_NAME | syscall.ATTR_CMN_OBJTYPE |
			syscall.ATTR_CMN_MODTIME | syscall.ATTR_CMN_ACCESSMASK,
		Fileattr: syscall.ATTR_FILE_DATALENGTH,
	}

	// Read and process batches.
	buffer := make([]byte, attributeBufferSize)
	var state uint32
	var stateSeen bool
	entries := make([]*Entry, 0)
	for {
		// Read the next batch.
		count := uint32(attributeBatchSize)
		var base, newState uint32
		last, err := syscall.Getdirentriesattr(descriptor, attributes, buffer, &count, &base, &newState, 0)
		if err != nil {
			if errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP) ||
				errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EINTR) {
				return nil, errBatchUnsupported
			}
			return nil, &os.PathError{Op: "getdirentriesattr", Path: path, Err: err}
		}

		// Verify that the directory hasn't changed since the first batch.
		if !stateSeen {
			state, stateSeen = newState, true
		} else if newState != state {
			return nil, errBatchMutated
		}

		// Parse the batch.
		records, err := parseAttributeRecords(buffer, int(count))
		if err != nil {
			return nil, &os.PathError{Op: "getdirentriesattr", Path: path, Err: err}
		}

		// Process the records.
		for r := range records {
			record := &records[r]
			if record.name == "." || record.name == ".." {
				continue
			}

			// Objects of unrecognized type are resolved with a metadata query.
			var entry *Entry
			if kind := kindFromObjectType(record.objectType); kind != EntryKindUnknown {
				entry = record.entry(kind, metadata)
			} else {
				var ok bool
				entry, ok, err = queryEntry(descriptor, path, record.name, EntryKindUnknown, metadata)
				if err != nil {
					return nil, err
				} else if !ok {
					continue
				}
			}

			// Check for the skip directory.
			if skip != "" && entry.Kind == EntryKindDirectory && entry.Name == skip {
				return []*Entry{}, nil
			}

			// Record the entry.
			entries = append(entries, entry)
		}

		// Check for termination.
		if last || count == 0 {
			break
		}
	}

	// Success.
	return entries, nil
}
