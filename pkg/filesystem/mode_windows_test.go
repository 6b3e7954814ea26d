package filesystem

import (
	"os"
	"testing"
)

// TestModeConstantsMatchOS verifies that the mode constants match the values
// used by the os package on Windows.
func TestModeConstantsMatchOS(t *testing.T) {
	if ModePermissionsMask != Mode(os.ModePerm) {
		t.Error("ModePermissionsMask does not match expected value")
	}
	if ModeTypeMask&ModeTypeDirectory != ModeTypeDirectory {
		t.Error("ModeTypeMask does not include directory bit")
	}
	if ModeTypeMask&ModeTypeSymbolicLink != ModeTypeSymbolicLink {
		t.Error("ModeTypeMask does not include symbolic link bit")
	}
}
