// Package listing provides a gRPC service exposing directory listings and bulk
// metadata queries over a local IPC endpoint.
package listing

import (
	"context"

	"github.com/pkg/errors"

	"google.golang.org/grpc"

	"github.com/mutagen-io/osutil/pkg/filesystem"
)

// ServiceName is the fully qualified name of the listing service.
const ServiceName = "osutil.listing.Listing"

// ListRequest is a request for a directory listing.
type ListRequest struct {
	// Path is the path of the directory to list.
	Path string `json:"path"`
	// Metadata indicates whether or not metadata should be included.
	Metadata bool `json:"metadata,omitempty"`
	// Skip is the name of a directory whose presence abandons the listing.
	Skip string `json:"skip,omitempty"`
}

// ensureValid ensures that the request is valid.
func (r *ListRequest) ensureValid() error {
	if r == nil {
		return errors.New("nil request")
	} else if r.Path == "" {
		return errors.New("empty path")
	}
	return nil
}

// ListResponse is the response to a ListRequest.
type ListResponse struct {
	// Entries are the directory entries.
	Entries []*filesystem.Entry `json:"entries"`
}

// StatFilesRequest is a request for bulk metadata.
type StatFilesRequest struct {
	// Paths are the paths to query.
	Paths []string `json:"paths"`
}

// ensureValid ensures that the request is valid.
func (r *StatFilesRequest) ensureValid() error {
	if r == nil {
		return errors.New("nil request")
	}
	return nil
}

// StatFilesResponse is the response to a StatFilesRequest. Absent metadata is
// encoded as null.
type StatFilesResponse struct {
	// Metadata are the query results, in the order of the requested paths.
	Metadata []*filesystem.Metadata `json:"metadata"`
}

// VersionRequest is a request for version information.
type VersionRequest struct{}

// VersionResponse is the response to a VersionRequest.
type VersionResponse struct {
	// Version is the interface revision.
	Version int `json:"version"`
	// Build is the build version.
	Build string `json:"build"`
}

// ListingServer is the server API for the listing service.
type ListingServer interface {
	// List lists a directory.
	List(context.Context, *ListRequest) (*ListResponse, error)
	// StatFiles performs a bulk metadata query.
	StatFiles(context.Context, *StatFilesRequest) (*StatFilesResponse, error)
	// Version returns version information.
	Version(context.Context, *VersionRequest) (*VersionResponse, error)
}

// RegisterListingServer registers a listing service implementation.
func RegisterListingServer(registrar grpc.ServiceRegistrar, server ListingServer) {
	registrar.RegisterService(&serviceDescription, server)
}

// fullMethodName computes the full method name for a listing service method.
func fullMethodName(method string) string {
	return "/" + ServiceName + "/" + method
}

func listHandler(server interface{}, ctx context.Context, decode func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	request := new(ListRequest)
	if err := decode(request); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return server.(ListingServer).List(ctx, request)
	}
	info := &grpc.UnaryServerInfo{Server: server, FullMethod: fullMethodName("List")}
	handler := func(ctx context.Context, request interface{}) (interface{}, error) {
		return server.(ListingServer).List(ctx, request.(*ListRequest))
	}
	return interceptor(ctx, request, info, handler)
}

func statFilesHandler(server interface{}, ctx context.Context, decode func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	request := new(StatFilesRequest)
	if err := decode(request); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return server.(ListingServer).StatFiles(ctx, request)
	}
	info := &grpc.UnaryServerInfo{Server: server, FullMethod: fullMethodName("StatFiles")}
	handler := func(ctx context.Context, request interface{}) (interface{}, error) {
		return server.(ListingServer).StatFiles(ctx, request.(*StatFilesRequest))
	}
	return interceptor(ctx, request, info, handler)
}

func versionHandler(server interface{}, ctx context.Context, decode func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	request := new(VersionRequest)
	if err := decode(request); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return server.(ListingServer).Version(ctx, request)
	}
	info := &grpc.UnaryServerInfo{Server: server, FullMethod: fullMethodName("Version")}
	handler := func(ctx context.Context, request interface{}) (interface{}, error) {
		return server.(ListingServer).Version(ctx, request.(*VersionRequest))
	}
	return interceptor(ctx, request, info, handler)
}

// serviceDescription is the gRPC service description for the listing service.
var serviceDescription = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ListingServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: listHandler},
		{MethodName: "StatFiles", Handler: statFilesHandler},
		{MethodName: "Version", Handler: versionHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "listing",
}

// ListingClient is the client API for the listing service.
type ListingClient interface {
	// List lists a directory.
	List(ctx context.Context, request *ListRequest, options ...grpc.CallOption) (*ListResponse, error)
	// StatFiles performs a bulk metadata query.
	StatFiles(ctx context.Context, request *StatFilesRequest, options ...grpc.CallOption) (*StatFilesResponse, error)
	// Version returns version information.
	Version(ctx context.Context, request *VersionRequest, options ...grpc.CallOption) (*VersionResponse, error)
}

// listingClient implements ListingClient.
type listingClient struct {
	// connection is the underlying client connection.
	connection grpc.ClientConnInterface
}

// NewListingClient creates a new listing service client. Calls are encoded
// using the listing service's codec.
func NewListingClient(connection grpc.ClientConnInterface) ListingClient {
	return &listingClient{connection}
}

// invoke performs a unary call using the listing service codec.
func (c *listingClient) invoke(ctx context.Context, method string, request, response interface{}, options []grpc.CallOption) error {
	options = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, options...)
	return c.connection.Invoke(ctx, fullMethodName(method), request, response, options...)
}

// List implements ListingClient.List.
func (c *listingClient) List(ctx context.Context, request *ListRequest, options ...grpc.CallOption) (*ListResponse, error) {
	response := new(ListResponse)
	if err := c.invoke(ctx, "List", request, response, options); err != nil {
		return nil, err
	}
	return response, nil
}

// StatFiles implements ListingClient.StatFiles.
func (c *listingClient) StatFiles(ctx context.Context, request *StatFilesRequest, options ...grpc.CallOption) (*StatFilesResponse, error) {
	response := new(StatFilesResponse)
	if err := c.invoke(ctx, "StatFiles", request, response, options); err != nil {
		return nil, err
	}
	return response, nil
}

// Version implements ListingClient.Version.
func (c *listingClient) Version(ctx context.Context, request *VersionRequest, options ...grpc.CallOption) (*VersionResponse, error) {
	response := new(VersionResponse)
	if err := c.invoke(ctx, "Version", request, response, options); err != nil {
		return nil, err
	}
	return response, nil
}
