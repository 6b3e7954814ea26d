package filesystem

import (
	"strings"
	"time"
)

// File attribute bits reported by FindFirstFile and FindNextFile.
const (
	findAttributeReadOnly     = 0x1
	findAttributeDirectory    = 0x10
	findAttributeReparsePoint = 0x400
)

// filetimeUnixEpochTicks is the Unix epoch expressed in FILETIME ticks (100
// nanosecond intervals since January 1, 1601 UTC).
const filetimeUnixEpochTicks = 116444736000000000

// filetimeTicksPerSecond is the number of FILETIME ticks in one second.
const filetimeTicksPerSecond = 10000000

// findRecord is the platform-neutral representation of a find data structure.
type findRecord struct {
	// name is the entry name.
	name string
	// attributes are the file attribute bits.
	attributes uint32
	// creationTime is the creation time in FILETIME ticks.
	creationTime int64
	// lastWriteTime is the last write time in FILETIME ticks.
	lastWriteTime int64
	// size is the file size.
	size uint64
}

// findPattern computes the search pattern used to enumerate the contents of a
// directory, inserting a separator before the wildcard unless the path is
// empty or already ends in a drive or path separator.
func findPattern(path string) string {
	if path == "" || strings.HasSuffix(path, ":") || strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return path + "*"
	}
	return path + "\\*"
}

// kindFromFindAttributes classifies an entry based on its file attributes.
// Directory reparse points are reported as symbolic links. Everything that
// isn't a directory is reported as a regular file.
func kindFromFindAttributes(attributes uint32) EntryKind {
	if attributes&findAttributeDirectory != 0 {
		if attributes&findAttributeReparsePoint != 0 {
			return EntryKindSymbolicLink
		}
		return EntryKindDirectory
	}
	return EntryKindRegular
}

// filetimeToTime converts FILETIME ticks to a time value. Ticks are split into
// seconds before scaling so that the full FILETIME range converts.
func filetimeToTime(ticks int64) time.Time {
	ticks -= filetimeUnixEpochTicks
	return time.Unix(ticks/filetimeTicksPerSecond, (ticks%filetimeTicksPerSecond)*100)
}

// entry converts the record to a listing entry.
func (r *findRecord) entry(metadata bool) *Entry {
	// Classify the entry.
	kind := kindFromFindAttributes(r.attributes)
	entry := &Entry{Name: r.name, Kind: kind}
	if !metadata {
		return entry
	}

	// Compute the mode using the same logic as the os package.
	mode := Mode(0666)
	if r.attributes&findAttributeReadOnly != 0 {
		mode = Mode(0444)
	}
	if kind == EntryKindSymbolicLink {
		mode |= ModeTypeSymbolicLink
	} else if kind == EntryKindDirectory {
		mode |= ModeTypeDirectory | 0111
	}

	// Create the metadata.
	entry.Metadata = &Metadata{
		Mode:             mode,
		ModificationTime: filetimeToTime(r.lastWriteTime),
		ChangeTime:       filetimeToTime(r.creationTime),
	}
	if kind == EntryKindRegular {
		entry.Metadata.Size = r.size
	}

	// Done.
	return entry
}
