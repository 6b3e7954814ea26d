//go:build !windows

package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

// TestStatFiles tests bulk metadata queries.
func TestStatFiles(t *testing.T) {
	root := createListingFixture(t)
	if err := os.Symlink("b", filepath.Join(root, "link")); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}
	paths := []string{
		filepath.Join(root, "b"),
		filepath.Join(root, "a"),
		filepath.Join(root, "missing"),
		filepath.Join(root, "link"),
	}

	results, err := StatFiles(context.Background(), paths)
	if err != nil {
		t.Fatal("unable to query metadata:", err)
	} else if len(results) != len(paths) {
		t.Fatal("result count does not match path count:", len(results))
	}
	if results[0] == nil {
		t.Error("file metadata missing")
	} else if results[0].Size != 5 || results[0].Kind() != EntryKindRegular {
		t.Error("file metadata incorrect")
	} else if results[0].LinkCount != 1 {
		t.Error("file link count incorrect:", results[0].LinkCount)
	}
	if results[1] != nil {
		t.Error("directory metadata present")
	}
	if results[2] != nil {
		t.Error("missing file metadata present")
	}
	if results[3] == nil {
		t.Error("symbolic link metadata missing")
	} else if results[3].Kind() != EntryKindSymbolicLink {
		t.Error("symbolic link metadata was followed")
	}
}

// TestStatFilesEmpty tests a bulk query with no paths.
func TestStatFilesEmpty(t *testing.T) {
	if results, err := StatFiles(context.Background(), nil); err != nil {
		t.Fatal("unable to query metadata:", err)
	} else if len(results) != 0 {
		t.Error("non-empty result for empty query")
	}
}

// TestStatFilesMalformedInput tests that a path containing a NUL byte rejects
// the entire query.
func TestStatFilesMalformedInput(t *testing.T) {
	paths := []string{t.TempDir(), "bad\x00path"}
	if _, err := StatFiles(context.Background(), paths); !errors.Is(err, ErrMalformedInput) {
		t.Error("malformed path not rejected:", err)
	}
}

// TestStatFilesCancellation tests that cancellation is observed periodically.
func TestStatFilesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Short queries complete before the first cancellation check.
	short := make([]string, statCancellationInterval-1)
	for i := range short {
		short[i] = "missing"
	}
	if _, err := StatFiles(ctx, short); err != nil {
		t.Error("short query failed:", err)
	}

	// Longer queries are aborted.
	long := make([]string, statCancellationInterval*2)
	for i := range long {
		long[i] = "missing"
	}
	if _, err := StatFiles(ctx, long); !errors.Is(err, context.Canceled) {
		t.Error("cancellation not observed:", err)
	}
}
