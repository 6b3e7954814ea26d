//go:build !windows

package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// newMetadataFromStat converts a raw stat structure to a metadata snapshot.
func newMetadataFromStat(metadata *unix.Stat_t) *Metadata {
	modificationTime, changeTime := extractTimes(metadata)
	return &Metadata{
		DeviceID:         uint64(metadata.Dev),
		Mode:             Mode(metadata.Mode),
		LinkCount:        uint64(metadata.Nlink),
		Size:             uint64(metadata.Size),
		ModificationTime: time.Unix(modificationTime.Unix()),
		ChangeTime:       time.Unix(changeTime.Unix()),
	}
}
