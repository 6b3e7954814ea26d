// Package ipc provides the local inter-process communication facilities used
// by the listing service: listener creation and dialing for the service
// endpoint, and passing of file descriptors over UNIX domain sockets.
package ipc

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// RecommendedDialTimeout is the recommended timeout to use when
	// establishing IPC connections.
	RecommendedDialTimeout = 1 * time.Second
)

// ErrUnsupported indicates that descriptor passing is not supported on the
// current platform.
var ErrUnsupported = errors.New("descriptor passing not supported on this platform")
