// Package osutil provides the public interface to the native directory
// enumeration and metadata facilities.
package osutil

import (
	"context"

	"github.com/mutagen-io/osutil/pkg/filesystem"
	"github.com/mutagen-io/osutil/pkg/ipc"
	"github.com/mutagen-io/osutil/pkg/logging"
)

// logger is the logger used by the interface operations.
var logger = logging.RootLogger.Sublogger("osutil")

// Listdir lists the contents of the directory at path. If stat is true, each
// entry carries a metadata snapshot. If skip is non-empty and a directory of
// that name is encountered, an empty listing is returned.
func Listdir(path string, stat bool, skip string) ([]*filesystem.Entry, error) {
	return filesystem.ListDirectory(path, stat, skip, logger.Sublogger("listdir"))
}

// StatFiles queries metadata for each path without following symbolic links.
// Slots for paths that don't exist, can't be queried, or don't refer to a
// regular file or symbolic link are nil.
func StatFiles(ctx context.Context, paths []string) ([]*filesystem.Metadata, error) {
	return filesystem.StatFiles(ctx, paths)
}

// ReceiveDescriptors receives the descriptors carried by a single message on a
// UNIX domain socket.
func ReceiveDescriptors(socket int) ([]int, error) {
	return ipc.ReceiveDescriptors(socket)
}
