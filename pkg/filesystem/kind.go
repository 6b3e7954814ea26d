package filesystem

import (
	"io/fs"

	"github.com/pkg/errors"
)

// EntryKind is the type of a filesystem entry.
type EntryKind uint8

const (
	// EntryKindUnknown indicates that the kind of an entry couldn't be
	// determined without a metadata query. It never appears in listings.
	EntryKindUnknown EntryKind = iota
	// EntryKindRegular indicates a regular file.
	EntryKindRegular
	// EntryKindDirectory indicates a directory.
	EntryKindDirectory
	// EntryKindSymbolicLink indicates a symbolic link.
	EntryKindSymbolicLink
	// EntryKindBlockDevice indicates a block device.
	EntryKindBlockDevice
	// EntryKindCharacterDevice indicates a character device.
	EntryKindCharacterDevice
	// EntryKindNamedPipe indicates a named pipe (FIFO).
	EntryKindNamedPipe
	// EntryKindSocket indicates a UNIX domain socket.
	EntryKindSocket
)

// entryKindNames maps entry kinds to their textual representations.
var entryKindNames = map[EntryKind]string{
	EntryKindUnknown:         "unknown",
	EntryKindRegular:         "file",
	EntryKindDirectory:       "directory",
	EntryKindSymbolicLink:    "symlink",
	EntryKindBlockDevice:     "block-device",
	EntryKindCharacterDevice: "character-device",
	EntryKindNamedPipe:       "fifo",
	EntryKindSocket:          "socket",
}

// String returns a human-readable representation of the kind.
func (k EntryKind) String() string {
	if name, ok := entryKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (k *EntryKind) UnmarshalText(text []byte) error {
	name := string(text)
	for kind, kindName := range entryKindNames {
		if kindName == name {
			*k = kind
			return nil
		}
	}
	return errors.Errorf("unknown entry kind: %s", name)
}

// modeType returns the type bits corresponding to the kind.
func (k EntryKind) modeType() Mode {
	switch k {
	case EntryKindRegular:
		return ModeTypeFile
	case EntryKindDirectory:
		return ModeTypeDirectory
	case EntryKindSymbolicLink:
		return ModeTypeSymbolicLink
	case EntryKindBlockDevice:
		return ModeTypeBlockDevice
	case EntryKindCharacterDevice:
		return ModeTypeCharacterDevice
	case EntryKindNamedPipe:
		return ModeTypeNamedPipe
	case EntryKindSocket:
		return ModeTypeSocket
	default:
		return 0
	}
}

// KindFromMode classifies a filesystem entry based on the type bits of its
// mode.
func KindFromMode(mode Mode) EntryKind {
	switch mode & ModeTypeMask {
	case ModeTypeFile:
		return EntryKindRegular
	case ModeTypeDirectory:
		return EntryKindDirectory
	case ModeTypeSymbolicLink:
		return EntryKindSymbolicLink
	case ModeTypeBlockDevice:
		return EntryKindBlockDevice
	case ModeTypeCharacterDevice:
		return EntryKindCharacterDevice
	case ModeTypeNamedPipe:
		return EntryKindNamedPipe
	case ModeTypeSocket:
		return EntryKindSocket
	default:
		return EntryKindUnknown
	}
}

// kindFromFileMode classifies a filesystem entry based on the type bits of an
// io/fs file mode.
func kindFromFileMode(mode fs.FileMode) EntryKind {
	switch mode.Type() {
	case 0:
		return EntryKindRegular
	case fs.ModeDir:
		return EntryKindDirectory
	case fs.ModeSymlink:
		return EntryKindSymbolicLink
	case fs.ModeDevice:
		return EntryKindBlockDevice
	case fs.ModeDevice | fs.ModeCharDevice:
		return EntryKindCharacterDevice
	case fs.ModeNamedPipe:
		return EntryKindNamedPipe
	case fs.ModeSocket:
		return EntryKindSocket
	default:
		return EntryKindUnknown
	}
}
