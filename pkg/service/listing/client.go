package listing

import (
	"context"

	"github.com/pkg/errors"

	"google.golang.org/grpc"

	"github.com/mutagen-io/osutil/pkg/grpcutil"
	"github.com/mutagen-io/osutil/pkg/ipc"
	"github.com/mutagen-io/osutil/pkg/osutil"
)

// Dial establishes a client connection to a listing service endpoint. The
// context regulates only the dialing operation.
func Dial(ctx context.Context, endpoint string) (*grpc.ClientConn, error) {
	connection, err := grpc.DialContext(
		ctx, endpoint,
		grpc.WithInsecure(),
		grpc.WithContextDialer(ipc.DialContext),
		grpc.WithBlock(),
		grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(grpcutil.MaximumMessageSize)),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(grpcutil.MaximumMessageSize)),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.New("connection timed out (is the listing service running?)")
		}
		return nil, err
	}
	return connection, nil
}

// CheckVersion verifies that the service's interface revision matches the
// local interface revision.
func CheckVersion(ctx context.Context, client ListingClient) error {
	response, err := client.Version(ctx, &VersionRequest{})
	if err != nil {
		return errors.Wrap(grpcutil.PeelAwayRPCErrorLayer(err), "unable to query service version")
	}
	return osutil.CheckVersion(response.Version)
}
