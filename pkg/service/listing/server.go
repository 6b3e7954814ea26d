package listing

import (
	"context"
	"io/fs"

	"github.com/pkg/errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mutagen-io/osutil/pkg/filesystem"
	"github.com/mutagen-io/osutil/pkg/grpcutil"
	"github.com/mutagen-io/osutil/pkg/ipc"
	"github.com/mutagen-io/osutil/pkg/logging"
	"github.com/mutagen-io/osutil/pkg/osutil"
)

// Server provides an implementation of the Listing service. The underlying
// operations hold no shared state, so requests are served concurrently without
// coordination.
type Server struct {
	// logger is the underlying logger.
	logger *logging.Logger
}

// NewServer creates a new listing server.
func NewServer(logger *logging.Logger) *Server {
	return &Server{logger: logger}
}

// NewGRPCServer creates a gRPC server with a listing server registered.
func NewGRPCServer(logger *logging.Logger) *grpc.Server {
	server := grpc.NewServer(
		grpc.MaxSendMsgSize(grpcutil.MaximumMessageSize),
		grpc.MaxRecvMsgSize(grpcutil.MaximumMessageSize),
	)
	RegisterListingServer(server, NewServer(logger))
	return server
}

// statusFromError converts an operation error to a gRPC status error with an
// appropriate code.
func statusFromError(err error, message string) error {
	code := codes.Internal
	switch {
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, filesystem.ErrMalformedInput) || filesystem.IsNameTooLong(err):
		code = codes.InvalidArgument
	case errors.Is(err, filesystem.ErrUnsupported) || errors.Is(err, ipc.ErrUnsupported):
		code = codes.Unimplemented
	case errors.Is(err, fs.ErrNotExist):
		code = codes.NotFound
	case errors.Is(err, fs.ErrPermission):
		code = codes.PermissionDenied
	}
	return status.Error(code, errors.Wrap(err, message).Error())
}

// List lists a directory.
func (s *Server) List(_ context.Context, request *ListRequest) (*ListResponse, error) {
	// Validate the request.
	if err := request.ensureValid(); err != nil {
		return nil, status.Error(codes.InvalidArgument, errors.Wrap(err, "invalid list request").Error())
	}

	// Perform the listing.
	s.logger.Debugf("Listing %s (metadata: %t, skip: %q)", request.Path, request.Metadata, request.Skip)
	entries, err := filesystem.ListDirectory(request.Path, request.Metadata, request.Skip, s.logger)
	if err != nil {
		s.logger.Debugf("Listing of %s failed: %s", request.Path, err.Error())
		return nil, statusFromError(err, "unable to list directory")
	}

	// Success.
	return &ListResponse{Entries: entries}, nil
}

// StatFiles performs a bulk metadata query. The request context regulates the
// query, so a departed client aborts long queries.
func (s *Server) StatFiles(ctx context.Context, request *StatFilesRequest) (*StatFilesResponse, error) {
	// Validate the request.
	if err := request.ensureValid(); err != nil {
		return nil, status.Error(codes.InvalidArgument, errors.Wrap(err, "invalid stat request").Error())
	}

	// Perform the query.
	s.logger.Debugf("Querying metadata for %d paths", len(request.Paths))
	metadata, err := osutil.StatFiles(ctx, request.Paths)
	if err != nil {
		return nil, statusFromError(err, "unable to query metadata")
	}

	// Success.
	return &StatFilesResponse{Metadata: metadata}, nil
}

// Version returns version information.
func (s *Server) Version(_ context.Context, _ *VersionRequest) (*VersionResponse, error) {
	return &VersionResponse{
		Version: osutil.Version,
		Build:   osutil.BuildVersion,
	}, nil
}
