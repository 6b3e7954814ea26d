package filesystem

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomicNonExistentDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing", "file")
	if WriteFileAtomic(target, []byte{}, 0600, nil) == nil {
		t.Error("atomic file write did not fail for non-existent parent")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	// Compute the target path.
	directory := t.TempDir()
	target := filepath.Join(directory, "file")

	// Write the file twice to ensure that replacement works.
	if err := WriteFileAtomic(target, []byte("stale"), 0600, nil); err != nil {
		t.Fatal("initial atomic file write failed:", err)
	}
	contents := []byte{0, 1, 2, 3, 4, 5, 6}
	if err := WriteFileAtomic(target, contents, 0600, nil); err != nil {
		t.Fatal("atomic file write failed:", err)
	}

	// Read the contents back and ensure they match what's expected.
	if data, err := os.ReadFile(target); err != nil {
		t.Fatal("unable to read back file:", err)
	} else if !bytes.Equal(data, contents) {
		t.Error("file contents did not match expected")
	}

	// Ensure that no temporary files were left behind.
	if entries, err := os.ReadDir(directory); err != nil {
		t.Fatal("unable to read directory:", err)
	} else if len(entries) != 1 {
		t.Error("unexpected directory contents after atomic write:", len(entries))
	}
}
