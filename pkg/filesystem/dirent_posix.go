//go:build linux || darwin || freebsd || netbsd || openbsd

package filesystem

import (
	"bytes"
	"encoding/binary"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	// direntBufferSize is the size of the buffer used to read raw directory
	// entry records.
	direntBufferSize = 8 * 1024

	// direntRecordLengthOffset is the offset of the record length field within
	// a raw directory entry record.
	direntRecordLengthOffset = int(unsafe.Offsetof(unix.Dirent{}.Reclen))
	// direntTypeOffset is the offset of the type field within a raw directory
	// entry record.
	direntTypeOffset = int(unsafe.Offsetof(unix.Dirent{}.Type))
	// direntNameOffset is the offset of the name field within a raw directory
	// entry record.
	direntNameOffset = int(unsafe.Offsetof(unix.Dirent{}.Name))
)

// direntRecord is a single parsed directory entry record.
type direntRecord struct {
	// name is the entry name.
	name string
	// kind is the entry kind indicated by the record's type field.
	kind EntryKind
}

// kindFromDirentType classifies an entry based on the type field of its raw
// directory entry record. Types that don't identify a known kind (including
// DT_UNKNOWN) yield EntryKindUnknown, which forces a metadata query.
func kindFromDirentType(direntType uint8) EntryKind {
	switch direntType {
	case unix.DT_REG:
		return EntryKindRegular
	case unix.DT_DIR:
		return EntryKindDirectory
	case unix.DT_LNK:
		return EntryKindSymbolicLink
	case unix.DT_BLK:
		return EntryKindBlockDevice
	case unix.DT_CHR:
		return EntryKindCharacterDevice
	case unix.DT_FIFO:
		return EntryKindNamedPipe
	case unix.DT_SOCK:
		return EntryKindSocket
	default:
		return EntryKindUnknown
	}
}

// direntInode extracts the inode number from a raw directory entry record whose
// length has already been validated.
func direntInode(record []byte) uint64 {
	if direntInodeSize == 8 {
		return binary.NativeEndian.Uint64(record[direntInodeOffset:])
	}
	return uint64(binary.NativeEndian.Uint32(record[direntInodeOffset:]))
}

// parseDirentRecords parses the raw directory entry records in buffer and
// appends them to records. The record length of each entry is validated
// against the remaining buffer before any of its fields are read.
func parseDirentRecords(buffer []byte, records []direntRecord) ([]direntRecord, error) {
	for len(buffer) > 0 {
		// Extract and validate the record length.
		if len(buffer) < direntRecordLengthOffset+2 {
			return records, errors.New("truncated directory entry record")
		}
		length := int(binary.NativeEndian.Uint16(buffer[direntRecordLengthOffset:]))
		if length <= direntNameOffset || length > len(buffer) {
			return records, errors.Errorf("invalid directory entry record length: %d", length)
		}
		record := buffer[:length]
		buffer = buffer[length:]

		// Skip records for removed entries, which some platforms report with a
		// zero inode number.
		if direntInode(record) == 0 {
			continue
		}

		// Extract the name, which is NUL-terminated within the record.
		name := record[direntNameOffset:]
		if terminator := bytes.IndexByte(name, 0); terminator >= 0 {
			name = name[:terminator]
		}
		if len(name) == 0 {
			continue
		}

		// Record the entry.
		records = append(records, direntRecord{
			name: string(name),
			kind: kindFromDirentType(record[direntTypeOffset]),
		})
	}

	// Success.
	return records, nil
}
