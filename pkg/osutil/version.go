package osutil

import (
	"fmt"

	"github.com/pkg/errors"
)

// Version is the revision of the native interface. It is incremented whenever
// the semantics of the interface operations change.
const Version = 2

const (
	// VersionMajor represents the current major version of the build.
	VersionMajor = 0
	// VersionMinor represents the current minor version of the build.
	VersionMinor = 3
	// VersionPatch represents the current patch version of the build.
	VersionPatch = 0
	// VersionTag represents a tag to be appended to the build version string.
	// It must not contain spaces. If empty, no tag is appended.
	VersionTag = ""
)

// BuildVersion provides a stringified version of the current build.
var BuildVersion string

func init() {
	if VersionTag != "" {
		BuildVersion = fmt.Sprintf("%d.%d.%d-%s", VersionMajor, VersionMinor, VersionPatch, VersionTag)
	} else {
		BuildVersion = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	}
}

// CheckVersion returns an error if a remote interface revision doesn't match
// the local interface revision.
func CheckVersion(remote int) error {
	if remote != Version {
		return errors.Errorf("interface revision mismatch: local %d, remote %d", Version, remote)
	}
	return nil
}
