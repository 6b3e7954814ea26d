package filesystem

import (
	"time"
)

// Metadata is a snapshot of filesystem metadata for a single entry. Not every
// producer can populate every field. In particular, listings on macOS that are
// served by batched attribute enumeration only populate Mode, Size, and
// ModificationTime, and listings on Windows leave DeviceID and LinkCount unset.
type Metadata struct {
	// DeviceID is the device ID of the filesystem on which the entry resides.
	DeviceID uint64 `json:"deviceID,omitempty" yaml:"deviceID,omitempty"`
	// Mode is the mode of the entry, including type bits.
	Mode Mode `json:"mode" yaml:"mode"`
	// LinkCount is the number of hard links to the entry.
	LinkCount uint64 `json:"linkCount,omitempty" yaml:"linkCount,omitempty"`
	// Size is the size of the entry in bytes. It is only meaningful for regular
	// files and symbolic links.
	Size uint64 `json:"size" yaml:"size"`
	// ModificationTime is the modification time of the entry.
	ModificationTime time.Time `json:"modificationTime" yaml:"modificationTime"`
	// ChangeTime is the status change time of the entry on POSIX systems and
	// its creation time on Windows.
	ChangeTime time.Time `json:"changeTime" yaml:"changeTime"`
}

// Kind returns the kind of entry described by the metadata.
func (m *Metadata) Kind() EntryKind {
	return KindFromMode(m.Mode)
}
