package filesystem

import (
	"context"
)

// BulkStatSupported indicates whether or not StatFiles is supported on the
// current platform.
const BulkStatSupported = false

// StatFiles is not supported on Windows.
func StatFiles(_ context.Context, _ []string) ([]*Metadata, error) {
	return nil, ErrUnsupported
}
