//go:build !windows

package ipc

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/mutagen-io/osutil/pkg/logging"
	"github.com/mutagen-io/osutil/pkg/must"
)

// createSocketPair creates a connected pair of UNIX domain stream sockets and
// registers their closure.
func createSocketPair(t *testing.T) [2]int {
	t.Helper()
	sockets, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatal("unable to create socket pair:", err)
	}
	t.Cleanup(func() {
		unix.Close(sockets[0])
		unix.Close(sockets[1])
	})
	return sockets
}

// createTestFiles creates and opens the specified number of files, registering
// their closure.
func createTestFiles(t *testing.T, count int) []*os.File {
	t.Helper()
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})
	root := t.TempDir()
	files := make([]*os.File, count)
	for i := range files {
		file, err := os.Create(filepath.Join(root, string(rune('a'+i))))
		if err != nil {
			t.Fatal("unable to create file:", err)
		}
		t.Cleanup(func() { must.Close(file, logger) })
		files[i] = file
	}
	return files
}

// verifySameFile verifies that two descriptors refer to the same file.
func verifySameFile(t *testing.T, expected, actual int) {
	t.Helper()
	var expectedMetadata, actualMetadata unix.Stat_t
	if err := unix.Fstat(expected, &expectedMetadata); err != nil {
		t.Fatal("unable to query original descriptor:", err)
	} else if err := unix.Fstat(actual, &actualMetadata); err != nil {
		t.Fatal("unable to query received descriptor:", err)
	}
	if expectedMetadata.Dev != actualMetadata.Dev || expectedMetadata.Ino != actualMetadata.Ino {
		t.Error("received descriptor refers to a different file")
	}
}

// TestDescriptorPassing tests sending and receiving descriptors over a socket
// pair.
func TestDescriptorPassing(t *testing.T) {
	sockets := createSocketPair(t)
	files := createTestFiles(t, 2)

	// Send the descriptors.
	if err := SendDescriptors(sockets[0], []int{int(files[0].Fd()), int(files[1].Fd())}); err != nil {
		t.Fatal("unable to send descriptors:", err)
	}

	// Receive the descriptors and defer their closure.
	received, err := ReceiveDescriptors(sockets[1])
	if err != nil {
		t.Fatal("unable to receive descriptors:", err)
	}
	defer func() {
		for _, descriptor := range received {
			unix.Close(descriptor)
		}
	}()

	// Verify the descriptors.
	if len(received) != 2 {
		t.Fatal("unexpected descriptor count:", len(received))
	}
	verifySameFile(t, int(files[0].Fd()), received[0])
	verifySameFile(t, int(files[1].Fd()), received[1])
}

// TestReceiveDescriptorsWithoutRights tests that a message without ancillary
// data yields an empty result.
func TestReceiveDescriptorsWithoutRights(t *testing.T) {
	sockets := createSocketPair(t)
	if _, err := unix.Write(sockets[0], []byte{1}); err != nil {
		t.Fatal("unable to write data:", err)
	}
	if received, err := ReceiveDescriptors(sockets[1]); err != nil {
		t.Fatal("unable to receive descriptors:", err)
	} else if received == nil || len(received) != 0 {
		t.Error("unexpected descriptors received:", received)
	}
}

// TestReceiveDescriptorsInvalidSocket tests that failures are reported as
// system call errors.
func TestReceiveDescriptorsInvalidSocket(t *testing.T) {
	_, err := ReceiveDescriptors(-1)
	var syscallErr *os.SyscallError
	if !errors.As(err, &syscallErr) {
		t.Fatal("receive failure not reported as system call error:", err)
	} else if syscallErr.Syscall != "recvmsg" {
		t.Error("receive failure names incorrect system call:", syscallErr.Syscall)
	} else if !errors.Is(err, unix.EBADF) {
		t.Error("receive failure does not carry EBADF:", err)
	}
}

// TestDescriptorPassingOverConnection tests descriptor passing using network
// connection wrappers.
func TestDescriptorPassingOverConnection(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})
	sockets, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatal("unable to create socket pair:", err)
	}

	// Wrap each socket in a connection. The connections hold duplicates, so the
	// original sockets can be closed immediately.
	connections := make([]*net.UnixConn, 2)
	for s, socket := range sockets {
		file := os.NewFile(uintptr(socket), "socket")
		connection, err := net.FileConn(file)
		must.Close(file, logger)
		if err != nil {
			t.Fatal("unable to create connection:", err)
		}
		defer must.Close(connection, logger)
		unixConnection, ok := connection.(*net.UnixConn)
		if !ok {
			t.Fatal("connection is not a UNIX domain socket connection")
		}
		connections[s] = unixConnection
	}

	// Send and receive a descriptor.
	files := createTestFiles(t, 1)
	if err := SendDescriptorsOverConnection(connections[0], []int{int(files[0].Fd())}); err != nil {
		t.Fatal("unable to send descriptor:", err)
	}
	received, err := ReceiveDescriptorsFromConnection(connections[1])
	if err != nil {
		t.Fatal("unable to receive descriptor:", err)
	} else if len(received) != 1 {
		t.Fatal("unexpected descriptor count:", len(received))
	}
	defer unix.Close(received[0])
	verifySameFile(t, int(files[0].Fd()), received[0])
}
