package filesystem

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/pkg/errors"
)

// Packed attribute records, as returned by getdirentriesattr for the attribute
// set requested by the batched enumerator, have the following layout (all
// values little-endian):
//
//	0   u32  record length (including padding)
//	4   i32  name data offset, relative to offset 4
//	8   u32  name data length, including NUL terminator
//	12  u32  vnode type
//	16  i64  modification time seconds
//	24  i64  modification time nanoseconds
//	32  u32  access mask
//	36  i64  data length (only present for regular files and links)
//
// Name data follows the fixed-size attributes.
const (
	attributeRecordNameReferenceOffset    = 4
	attributeRecordNameLengthOffset       = 8
	attributeRecordObjectTypeOffset       = 12
	attributeRecordModificationTimeOffset = 16
	attributeRecordAccessMaskOffset       = 32
	attributeRecordSizeOffset             = 36
	// attributeRecordMinimumFixedSize is the size of the fixed attributes
	// without the data length.
	attributeRecordMinimumFixedSize = 36
	// attributeRecordMaximumFixedSize is the size of the fixed attributes
	// including the data length.
	attributeRecordMaximumFixedSize = 44
)

// Vnode types reported in the object type attribute.
const (
	objectTypeRegular         = 1
	objectTypeDirectory       = 2
	objectTypeBlockDevice     = 3
	objectTypeCharacterDevice = 4
	objectTypeSymbolicLink    = 5
	objectTypeSocket          = 6
	objectTypeNamedPipe       = 7
)

// attributeRecord is a parsed packed attribute record.
type attributeRecord struct {
	// name is the entry name.
	name string
	// objectType is the vnode type.
	objectType uint32
	// modificationTime is the modification time.
	modificationTime time.Time
	// accessMask is the access mask. Only its permission bits are valid.
	accessMask uint32
	// size is the data length. It is only valid if hasSize is true.
	size uint64
	// hasSize indicates whether or not the record included a data length.
	hasSize bool
}

// kindFromObjectType classifies an entry based on its vnode type. Types that
// don't identify a known kind yield EntryKindUnknown.
func kindFromObjectType(objectType uint32) EntryKind {
	switch objectType {
	case objectTypeRegular:
		return EntryKindRegular
	case objectTypeDirectory:
		return EntryKindDirectory
	case objectTypeSymbolicLink:
		return EntryKindSymbolicLink
	case objectTypeBlockDevice:
		return EntryKindBlockDevice
	case objectTypeCharacterDevice:
		return EntryKindCharacterDevice
	case objectTypeNamedPipe:
		return EntryKindNamedPipe
	case objectTypeSocket:
		return EntryKindSocket
	default:
		return EntryKindUnknown
	}
}

// parseAttributeRecords parses count packed attribute records from buffer.
// Each record is located using the length declared by its predecessor, and
// every offset is validated against both the record and the buffer.
func parseAttributeRecords(buffer []byte, count int) ([]attributeRecord, error) {
	records := make([]attributeRecord, 0, count)
	for i := 0; i < count; i++ {
		// Extract and validate the record length.
		if len(buffer) < 4 {
			return nil, errors.Errorf("attribute record %d truncated", i)
		}
		length := binary.LittleEndian.Uint32(buffer)
		if length < attributeRecordMinimumFixedSize || uint64(length) > uint64(len(buffer)) {
			return nil, errors.Errorf("attribute record %d has invalid length: %d", i, length)
		}
		record := buffer[:length]
		buffer = buffer[length:]

		// Locate and validate the name.
		nameOffset := int64(int32(binary.LittleEndian.Uint32(record[attributeRecordNameReferenceOffset:])))
		nameLength := int64(binary.LittleEndian.Uint32(record[attributeRecordNameLengthOffset:]))
		nameStart := attributeRecordNameReferenceOffset + nameOffset
		nameEnd := nameStart + nameLength
		if nameLength == 0 || nameStart < attributeRecordMinimumFixedSize || nameEnd > int64(length) {
			return nil, errors.Errorf("attribute record %d has invalid name reference", i)
		}
		name := record[nameStart:nameEnd]
		if terminator := bytes.IndexByte(name, 0); terminator >= 0 {
			name = name[:terminator]
		}

		// Extract fixed attributes.
		seconds := int64(binary.LittleEndian.Uint64(record[attributeRecordModificationTimeOffset:]))
		nanoseconds := int64(binary.LittleEndian.Uint64(record[attributeRecordModificationTimeOffset+8:]))
		parsed := attributeRecord{
			name:             string(name),
			objectType:       binary.LittleEndian.Uint32(record[attributeRecordObjectTypeOffset:]),
			modificationTime: time.Unix(seconds, nanoseconds),
			accessMask:       binary.LittleEndian.Uint32(record[attributeRecordAccessMaskOffset:]),
		}

		// The data length is only present if the fixed attributes extend far
		// enough to hold it.
		if nameStart >= attributeRecordMaximumFixedSize {
			parsed.size = binary.LittleEndian.Uint64(record[attributeRecordSizeOffset:])
			parsed.hasSize = true
		}

		// Record the result.
		records = append(records, parsed)
	}

	// Success.
	return records, nil
}

// entry converts the record to a listing entry. The kind must have already
// been resolved.
func (r *attributeRecord) entry(kind EntryKind, metadata bool) *Entry {
	entry := &Entry{Name: r.name, Kind: kind}
	if metadata {
		entry.Metadata = &Metadata{
			Mode:             (Mode(r.accessMask) &^ ModeTypeMask) | kind.modeType(),
			ModificationTime: r.modificationTime,
		}
		if r.hasSize {
			entry.Metadata.Size = r.size
		}
	}
	return entry
}
