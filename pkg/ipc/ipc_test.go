package ipc

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mutagen-io/osutil/pkg/logging"
	"github.com/mutagen-io/osutil/pkg/must"
)

// TestDialContextNoEndpoint tests that DialContext fails if there is no
// endpoint at the specified path.
func TestDialContextNoEndpoint(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})

	// Compute the IPC endpoint path.
	endpoint := filepath.Join(t.TempDir(), "test.sock")

	// Attempt to dial the listener and ensure that doing so fails.
	if c, err := DialContext(context.Background(), endpoint); err == nil {
		must.Close(c, logger)
		t.Error("IPC connection succeeded unexpectedly")
	}
}

// testIPCRequest is a structure used to test IPC messaging.
type testIPCRequest struct {
	// Path is a directory path.
	Path string
	// Metadata indicates whether or not metadata is requested.
	Metadata bool
}

// TestIPC tests that an IPC connection can be established between a listener
// and a dialer.
func TestIPC(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})

	// Create a test message.
	expected := testIPCRequest{"/tmp/t", true}

	// Compute the IPC endpoint path.
	endpoint := filepath.Join(t.TempDir(), "test.sock")

	// Create a listener and defer its closure.
	listener, err := NewListener(endpoint, logger)
	if err != nil {
		t.Fatal("unable to create listener:", err)
	}
	defer must.Close(listener, logger)

	// Perform dialing and message sending in a separate Goroutine.
	go func() {
		// Dial and defer connection closure.
		ctx, cancel := context.WithTimeout(context.Background(), RecommendedDialTimeout)
		defer cancel()
		connection, err := DialContext(ctx, endpoint)
		if err != nil {
			return
		}
		defer must.Close(connection, logger)

		// Send a test message.
		if err := json.NewEncoder(connection).Encode(expected); err != nil {
			logger.Error("unable to send test message:", err)
		}
	}()

	// Accept a connection and defer its closure.
	connection, err := listener.Accept()
	if err != nil {
		t.Fatal("unable to accept connection:", err)
	}
	defer must.Close(connection, logger)

	// Receive and validate test message.
	var received testIPCRequest
	if err := json.NewDecoder(connection).Decode(&received); err != nil {
		t.Fatal("unable to receive test message:", err)
	} else if received != expected {
		t.Error("received message does not match expected:", received, "!=", expected)
	}
}
