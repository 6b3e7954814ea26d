package ipc

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/pkg/errors"

	"github.com/google/uuid"

	"github.com/Microsoft/go-winio"

	"github.com/mutagen-io/osutil/pkg/logging"
	"github.com/mutagen-io/osutil/pkg/must"
)

// DialContext attempts to establish an IPC connection, timing out if the
// provided context expires. The path is that of the file recording the name of
// the listener's named pipe.
func DialContext(ctx context.Context, path string) (net.Conn, error) {
	// Read the pipe name.
	pipeNameBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read pipe name")
	}

	// Attempt to connect.
	return winio.DialPipeContext(ctx, string(pipeNameBytes))
}

// listener implements net.Listener but removes the pipe name record when
// closed.
type listener struct {
	// Listener is the underlying named pipe listener.
	net.Listener
	// path is the path to the file where the named pipe name is stored.
	path string
	// logger is the logger used for cleanup failures.
	logger *logging.Logger
}

// Close closes the listener and removes the pipe name record.
func (l *listener) Close() error {
	// Remove the pipe name record.
	if err := os.Remove(l.path); err != nil {
		must.Close(l.Listener, l.logger)
		return errors.Wrap(err, "unable to remove pipe name record")
	}

	// Close the underlying listener.
	return l.Listener.Close()
}

// NewListener creates a new IPC listener backed by a uniquely named pipe. The
// pipe name is recorded in a file at the specified path, which mustn't already
// exist. The pipe is only accessible by the current user.
func NewListener(path string, logger *logging.Logger) (net.Listener, error) {
	// Create a unique pipe name.
	randomUUID, err := uuid.NewRandom()
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate UUID for named pipe")
	}
	pipeName := fmt.Sprintf(`\\.\pipe\osutil-listing-%s`, randomUUID.String())

	// Compute the SID of the user.
	user, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, "unable to look up current user")
	}

	// Create the pipe configuration. The security descriptor grants generic
	// access to the current user and disables inherited permissions.
	configuration := &winio.PipeConfig{
		SecurityDescriptor: fmt.Sprintf("D:P(A;;GA;;;%s)", user.Uid),
	}

	// Create the pipe name record, enforcing that it doesn't already exist.
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, "unable to open endpoint")
	}

	// Defer closure of the record, along with its removal in the event of
	// failure.
	var successful bool
	defer func() {
		must.Close(file, logger)
		if !successful {
			must.OSRemove(path, logger)
		}
	}()

	// Create the named pipe listener.
	rawListener, err := winio.ListenPipe(pipeName, configuration)
	if err != nil {
		return nil, err
	}

	// Record the pipe name.
	if _, err := file.Write([]byte(pipeName)); err != nil {
		must.Close(rawListener, logger)
		return nil, errors.Wrap(err, "unable to write pipe name")
	}

	// Success.
	successful = true
	return &listener{rawListener, path, logger}, nil
}
