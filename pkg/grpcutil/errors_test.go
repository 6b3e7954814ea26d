package grpcutil

import (
	"testing"

	"github.com/pkg/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TestPeelAwayRPCErrorLayer tests PeelAwayRPCErrorLayer.
func TestPeelAwayRPCErrorLayer(t *testing.T) {
	// Test a status error.
	wrapped := status.Error(codes.NotFound, "unable to list directory: no such file or directory")
	if peeled := PeelAwayRPCErrorLayer(wrapped); peeled.Error() != "unable to list directory: no such file or directory" {
		t.Error("status error not peeled correctly:", peeled)
	}

	// Test a non-status error.
	plain := errors.New("plain")
	if peeled := PeelAwayRPCErrorLayer(plain); peeled != plain {
		t.Error("non-status error modified:", peeled)
	}
}
