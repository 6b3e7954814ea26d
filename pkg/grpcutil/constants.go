package grpcutil

const (
	// MaximumMessageSize specifies the maximum message size that we'll allow
	// over IPC channels. Listings of very large directories with metadata are
	// the largest messages exchanged.
	MaximumMessageSize = 64 * 1024 * 1024
)
