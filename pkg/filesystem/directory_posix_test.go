//go:build !windows

package filesystem

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/mutagen-io/osutil/pkg/logging"
)

// TestListDirectoryNameTooLong tests that overlong paths are rejected.
func TestListDirectoryNameTooLong(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})
	path := "/" + strings.Repeat("a", maximumPathLength)
	_, err := ListDirectory(path, false, "", logger)
	if err == nil {
		t.Fatal("listing succeeded for overlong path")
	} else if !IsNameTooLong(err) {
		t.Error("overlong path error not classified as name too long:", err)
	} else if !errors.Is(err, unix.ENAMETOOLONG) {
		t.Error("overlong path error does not carry ENAMETOOLONG:", err)
	}
}

// TestListDirectorySpecialEntries tests classification of symbolic links and
// named pipes, including the metadata reported for a symbolic link.
func TestListDirectorySpecialEntries(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})
	root := createListingFixture(t)
	if err := os.Symlink("b", filepath.Join(root, "link")); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}
	if err := unix.Mkfifo(filepath.Join(root, "pipe"), 0600); err != nil {
		t.Fatal("unable to create named pipe:", err)
	}

	for _, metadata := range []bool{false, true} {
		entries, err := ListDirectory(root, metadata, "", logger)
		if err != nil {
			t.Fatal("unable to list directory:", err)
		}
		byName := entriesByName(t, entries)
		if link := byName["link"]; link == nil || link.Kind != EntryKindSymbolicLink {
			t.Error("symbolic link missing or misclassified")
		} else if metadata && link.Metadata.Kind() != EntryKindSymbolicLink {
			t.Error("symbolic link metadata was followed")
		}
		if pipe := byName["pipe"]; pipe == nil || pipe.Kind != EntryKindNamedPipe {
			t.Error("named pipe missing or misclassified")
		}
	}
}

// TestListDirectoryMetadataMatchesLstat tests that listing metadata agrees with
// lstat.
func TestListDirectoryMetadataMatchesLstat(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})
	root := createListingFixture(t)

	entries, err := ListDirectory(root, true, "", logger)
	if err != nil {
		t.Fatal("unable to list directory:", err)
	}
	for _, entry := range entries {
		var expected unix.Stat_t
		if err := unix.Lstat(filepath.Join(root, entry.Name), &expected); err != nil {
			t.Fatal("unable to query metadata:", err)
		}
		if entry.Metadata.Mode&ModePermissionsMask != Mode(expected.Mode)&ModePermissionsMask {
			t.Errorf("permissions differ for %s: %o != %o", entry.Name, entry.Metadata.Mode, expected.Mode)
		}
		if entry.Kind == EntryKindRegular && entry.Metadata.Size != uint64(expected.Size) {
			t.Errorf("sizes differ for %s: %d != %d", entry.Name, entry.Metadata.Size, expected.Size)
		}
		modificationTime, _ := extractTimes(&expected)
		if seconds, _ := modificationTime.Unix(); entry.Metadata.ModificationTime.Unix() != seconds {
			t.Error("modification times differ for", entry.Name)
		}
	}
}

// TestEnumerateConcurrentDeletion tests that an entry removed between the
// reading of names and the querying of its metadata is omitted without error.
func TestEnumerateConcurrentDeletion(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})
	root := t.TempDir()
	for _, name := range []string{"x", "y", "z"} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0644); err != nil {
			t.Fatal("unable to create file:", err)
		}
	}

	// Remove "y" immediately before its metadata is queried.
	beforeEntryMetadataQuery = func(path string) {
		if filepath.Base(path) == "y" {
			if err := os.Remove(path); err != nil {
				t.Error("unable to remove file:", err)
			}
		}
	}
	defer func() {
		beforeEntryMetadataQuery = nil
	}()

	entries, err := enumerate(root, true, "", logger)
	if err != nil {
		t.Fatal("listing failed with concurrent deletion:", err)
	}
	byName := entriesByName(t, entries)
	if _, ok := byName["y"]; ok {
		t.Error("deleted entry present in listing")
	}
	if byName["x"] == nil || byName["z"] == nil {
		t.Error("surviving entries missing from listing")
	}
}

// TestEnumerateMatchesListDirectory tests that the general enumerator and the
// facade produce the same names and kinds.
func TestEnumerateMatchesListDirectory(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})
	root := createListingFixture(t)

	general, err := enumerate(root, false, "", logger)
	if err != nil {
		t.Fatal("unable to perform general enumeration:", err)
	}
	facade, err := ListDirectory(root, false, "", logger)
	if err != nil {
		t.Fatal("unable to list directory:", err)
	}
	if len(general) != len(facade) {
		t.Fatal("listing lengths differ:", len(general), "!=", len(facade))
	}
	facadeByName := entriesByName(t, facade)
	for _, entry := range general {
		if other := facadeByName[entry.Name]; other == nil || other.Kind != entry.Kind {
			t.Error("listings differ for", entry.Name)
		}
	}
}
