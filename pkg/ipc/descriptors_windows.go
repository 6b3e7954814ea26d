package ipc

import (
	"net"
)

// DescriptorPassingSupported indicates whether or not descriptor passing is
// supported on the current platform.
const DescriptorPassingSupported = false

// ReceiveDescriptors is not supported on Windows.
func ReceiveDescriptors(_ int) ([]int, error) {
	return nil, ErrUnsupported
}

// SendDescriptors is not supported on Windows.
func SendDescriptors(_ int, _ []int) error {
	return ErrUnsupported
}

// ReceiveDescriptorsFromConnection is not supported on Windows.
func ReceiveDescriptorsFromConnection(_ *net.UnixConn) ([]int, error) {
	return nil, ErrUnsupported
}

// SendDescriptorsOverConnection is not supported on Windows.
func SendDescriptorsOverConnection(_ *net.UnixConn, _ []int) error {
	return ErrUnsupported
}
