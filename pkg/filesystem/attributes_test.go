package filesystem

import (
	"encoding/binary"
	"testing"
)

// buildAttributeRecord constructs a packed attribute record. The data length
// is only included if size is non-nil.
func buildAttributeRecord(name string, objectType uint32, seconds, nanoseconds int64, accessMask uint32, size *uint64) []byte {
	fixed := attributeRecordMinimumFixedSize
	if size != nil {
		fixed = attributeRecordMaximumFixedSize
	}
	nameData := append([]byte(name), 0)
	length := (fixed + len(nameData) + 3) &^ 3
	record := make([]byte, length)
	binary.LittleEndian.PutUint32(record[0:], uint32(length))
	binary.LittleEndian.PutUint32(record[attributeRecordNameReferenceOffset:], uint32(fixed-attributeRecordNameReferenceOffset))
	binary.LittleEndian.PutUint32(record[attributeRecordNameLengthOffset:], uint32(len(nameData)))
	binary.LittleEndian.PutUint32(record[attributeRecordObjectTypeOffset:], objectType)
	binary.LittleEndian.PutUint64(record[attributeRecordModificationTimeOffset:], uint64(seconds))
	binary.LittleEndian.PutUint64(record[attributeRecordModificationTimeOffset+8:], uint64(nanoseconds))
	binary.LittleEndian.PutUint32(record[attributeRecordAccessMaskOffset:], accessMask)
	if size != nil {
		binary.LittleEndian.PutUint64(record[attributeRecordSizeOffset:], *size)
	}
	copy(record[fixed:], nameData)
	return record
}

// TestParseAttributeRecords tests parsing of well-formed records.
func TestParseAttributeRecords(t *testing.T) {
	// Create a buffer with a directory and a file, followed by garbage that
	// mustn't be read.
	size := uint64(1234)
	var buffer []byte
	buffer = append(buffer, buildAttributeRecord("directory", objectTypeDirectory, 1600000000, 5, 0755, nil)...)
	buffer = append(buffer, buildAttributeRecord("file.txt", objectTypeRegular, 1700000000, 42, 0644, &size)...)
	buffer = append(buffer, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)

	// Parse the records.
	records, err := parseAttributeRecords(buffer, 2)
	if err != nil {
		t.Fatal("unable to parse attribute records:", err)
	} else if len(records) != 2 {
		t.Fatal("unexpected record count:", len(records))
	}

	// Verify the directory.
	if records[0].name != "directory" {
		t.Error("directory name incorrect:", records[0].name)
	} else if kindFromObjectType(records[0].objectType) != EntryKindDirectory {
		t.Error("directory kind incorrect")
	} else if records[0].hasSize {
		t.Error("directory record reports data length")
	} else if records[0].modificationTime.Unix() != 1600000000 || records[0].modificationTime.Nanosecond() != 5 {
		t.Error("directory modification time incorrect:", records[0].modificationTime)
	}

	// Verify the file.
	if records[1].name != "file.txt" {
		t.Error("file name incorrect:", records[1].name)
	} else if !records[1].hasSize || records[1].size != size {
		t.Error("file size incorrect:", records[1].size)
	} else if records[1].accessMask != 0644 {
		t.Errorf("file access mask incorrect: %o", records[1].accessMask)
	}

	// Verify entry conversion.
	entry := records[1].entry(EntryKindRegular, true)
	if entry.Metadata == nil {
		t.Fatal("entry metadata missing")
	} else if entry.Metadata.Mode != ModeTypeFile|0644 {
		t.Errorf("entry mode incorrect: %o", entry.Metadata.Mode)
	} else if entry.Metadata.Size != size {
		t.Error("entry size incorrect:", entry.Metadata.Size)
	} else if !entry.Metadata.ModificationTime.Equal(records[1].modificationTime) {
		t.Error("entry modification time incorrect")
	}
	if entry := records[0].entry(EntryKindDirectory, false); entry.Metadata != nil {
		t.Error("entry metadata present when not requested")
	}
}

// TestParseAttributeRecordsMalformed tests that malformed records are
// rejected.
func TestParseAttributeRecordsMalformed(t *testing.T) {
	valid := buildAttributeRecord("name", objectTypeRegular, 0, 0, 0644, nil)

	// Count exceeds the available records.
	if _, err := parseAttributeRecords(valid, 2); err == nil {
		t.Error("truncated buffer parsed successfully")
	}

	// Record length exceeds the buffer.
	overrun := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(overrun, uint32(len(valid)+8))
	if _, err := parseAttributeRecords(overrun, 1); err == nil {
		t.Error("overrunning record length parsed successfully")
	}

	// Record length too small to hold fixed attributes.
	short := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(short, 8)
	if _, err := parseAttributeRecords(short, 1); err == nil {
		t.Error("undersized record length parsed successfully")
	}

	// Name extends past the record.
	longName := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(longName[attributeRecordNameLengthOffset:], 1000)
	if _, err := parseAttributeRecords(longName, 1); err == nil {
		t.Error("overrunning name parsed successfully")
	}

	// Name points into the fixed attributes.
	negative := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(negative[attributeRecordNameReferenceOffset:], uint32(0xfffffff0))
	if _, err := parseAttributeRecords(negative, 1); err == nil {
		t.Error("negative name offset parsed successfully")
	}
}

// TestKindFromObjectType tests classification of vnode types.
func TestKindFromObjectType(t *testing.T) {
	testCases := []struct {
		objectType uint32
		expected   EntryKind
	}{
		{0, EntryKindUnknown},
		{objectTypeRegular, EntryKindRegular},
		{objectTypeDirectory, EntryKindDirectory},
		{objectTypeBlockDevice, EntryKindBlockDevice},
		{objectTypeCharacterDevice, EntryKindCharacterDevice},
		{objectTypeSymbolicLink, EntryKindSymbolicLink},
		{objectTypeSocket, EntryKindSocket},
		{objectTypeNamedPipe, EntryKindNamedPipe},
		{8, EntryKindUnknown},
	}
	for _, testCase := range testCases {
		if kind := kindFromObjectType(testCase.objectType); kind != testCase.expected {
			t.Errorf("object type %d classified as %s, expected %s", testCase.objectType, kind, testCase.expected)
		}
	}
}
