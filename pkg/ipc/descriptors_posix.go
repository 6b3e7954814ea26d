//go:build !windows

package ipc

import (
	"errors"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// DescriptorPassingSupported indicates whether or not descriptor passing is
// supported on the current platform.
const DescriptorPassingSupported = true

// receiveControlBufferSize is the size of the ancillary data buffer used when
// receiving descriptors.
const receiveControlBufferSize = 256

// ReceiveDescriptors performs a single receive operation on a UNIX domain
// socket and returns the descriptors carried in the first SCM_RIGHTS control
// message of the ancillary data. At most one byte of regular data is consumed.
// Other control messages are ignored and, if no rights message is present, an
// empty slice is returned. The caller owns the returned descriptors.
func ReceiveDescriptors(socket int) ([]int, error) {
	// Perform the receive operation.
	data := make([]byte, 1)
	control := make([]byte, receiveControlBufferSize)
	var controlLength int
	for {
		_, n, _, _, err := unix.Recvmsg(socket, data, control, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		} else if err != nil {
			return nil, os.NewSyscallError("recvmsg", err)
		}
		controlLength = n
		break
	}

	// Extract the descriptors.
	return parseRights(control[:controlLength])
}

// parseRights extracts the descriptors from the first SCM_RIGHTS control
// message in control.
func parseRights(control []byte) ([]int, error) {
	messages, err := unix.ParseSocketControlMessage(control)
	if err != nil {
		return nil, os.NewSyscallError("recvmsg", err)
	}
	for m := range messages {
		message := &messages[m]
		if message.Header.Level == unix.SOL_SOCKET && message.Header.Type == unix.SCM_RIGHTS {
			descriptors, err := unix.ParseUnixRights(message)
			if err != nil {
				return nil, os.NewSyscallError("recvmsg", err)
			}
			return descriptors, nil
		}
	}
	return []int{}, nil
}

// SendDescriptors sends the specified descriptors over a UNIX domain socket
// in an SCM_RIGHTS control message accompanied by a single byte of regular
// data.
func SendDescriptors(socket int, descriptors []int) error {
	rights := unix.UnixRights(descriptors...)
	for {
		err := unix.Sendmsg(socket, []byte{0}, rights, nil, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		} else if err != nil {
			return os.NewSyscallError("sendmsg", err)
		}
		return nil
	}
}

// ReceiveDescriptorsFromConnection performs ReceiveDescriptors on the socket
// underlying a UNIX domain socket connection, waiting for the socket to become
// readable if necessary.
func ReceiveDescriptorsFromConnection(connection *net.UnixConn) ([]int, error) {
	raw, err := connection.SyscallConn()
	if err != nil {
		return nil, err
	}
	var descriptors []int
	var receiveErr error
	if err := raw.Read(func(socket uintptr) bool {
		descriptors, receiveErr = ReceiveDescriptors(int(socket))
		return !errors.Is(receiveErr, unix.EAGAIN)
	}); err != nil {
		return nil, err
	}
	return descriptors, receiveErr
}

// SendDescriptorsOverConnection performs SendDescriptors on the socket
// underlying a UNIX domain socket connection, waiting for the socket to become
// writable if necessary.
func SendDescriptorsOverConnection(connection *net.UnixConn, descriptors []int) error {
	raw, err := connection.SyscallConn()
	if err != nil {
		return err
	}
	var sendErr error
	if err := raw.Write(func(socket uintptr) bool {
		sendErr = SendDescriptors(int(socket), descriptors)
		return !errors.Is(sendErr, unix.EAGAIN)
	}); err != nil {
		return err
	}
	return sendErr
}
