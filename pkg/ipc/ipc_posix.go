//go:build !windows

package ipc

import (
	"context"
	"net"
	"os"

	"github.com/pkg/errors"

	"github.com/mutagen-io/osutil/pkg/logging"
	"github.com/mutagen-io/osutil/pkg/must"
)

// DialContext attempts to establish an IPC connection, timing out if the
// provided context expires.
func DialContext(ctx context.Context, path string) (net.Conn, error) {
	// Create a zero-valued dialer, which will have the same dialing behavior as
	// the raw dialing functions.
	dialer := &net.Dialer{}

	// Perform dialing.
	return dialer.DialContext(ctx, "unix", path)
}

// NewListener creates a new IPC listener at the specified path. The socket is
// only accessible by the current user.
func NewListener(path string, logger *logging.Logger) (net.Listener, error) {
	// Create the listener.
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}

	// Explicitly set socket permissions.
	if err := os.Chmod(path, 0600); err != nil {
		must.Close(listener, logger)
		return nil, errors.Wrap(err, "unable to set socket permissions")
	}

	// Success.
	return listener, nil
}
