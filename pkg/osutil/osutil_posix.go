//go:build !windows

package osutil

import (
	"golang.org/x/sys/unix"
)

// O_CLOEXEC is the platform's close-on-exec open flag.
const O_CLOEXEC = unix.O_CLOEXEC
