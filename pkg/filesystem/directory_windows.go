package filesystem

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"

	"github.com/mutagen-io/osutil/pkg/logging"
)

// newFindRecord converts a find data structure to a platform-neutral record.
func newFindRecord(data *windows.Win32finddata) *findRecord {
	return &findRecord{
		name:          windows.UTF16ToString(data.FileName[:]),
		attributes:    data.FileAttributes,
		creationTime:  int64(data.CreationTime.HighDateTime)<<32 | int64(data.CreationTime.LowDateTime),
		lastWriteTime: int64(data.LastWriteTime.HighDateTime)<<32 | int64(data.LastWriteTime.LowDateTime),
		size:          uint64(data.FileSizeHigh)<<32 | uint64(data.FileSizeLow),
	}
}

// enumerate performs an enumeration using a find handle.
func enumerate(path string, metadata bool, skip string, logger *logging.Logger) ([]*Entry, error) {
	// Compute the search pattern.
	pattern, err := windows.UTF16PtrFromString(findPattern(path))
	if err != nil {
		return nil, &os.PathError{Op: "FindFirstFile", Path: path, Err: err}
	}

	// Start the search and defer closure of the find handle.
	var data windows.Win32finddata
	handle, err := windows.FindFirstFile(pattern, &data)
	if err != nil {
		return nil, &os.PathError{Op: "FindFirstFile", Path: path, Err: err}
	}
	defer func() {
		if err := windows.FindClose(handle); err != nil {
			logger.Warnf("Unable to close find handle: %s", err.Error())
		}
	}()

	// Process results.
	entries := make([]*Entry, 0)
	for {
		// Process the current result.
		record := newFindRecord(&data)
		if record.name != "." && record.name != ".." {
			entry := record.entry(metadata)
			if skip != "" && entry.Kind == EntryKindDirectory && entry.Name == skip {
				return []*Entry{}, nil
			}
			entries = append(entries, entry)
		}

		// Advance to the next result.
		if err := windows.FindNextFile(handle, &data); err != nil {
			if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
				break
			}
			return nil, &os.PathError{Op: "FindNextFile", Path: path, Err: err}
		}
	}

	// Success.
	return entries, nil
}
