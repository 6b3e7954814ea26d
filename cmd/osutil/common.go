package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"

	"github.com/mutagen-io/osutil/cmd"
	"github.com/mutagen-io/osutil/pkg/ipc"
	"github.com/mutagen-io/osutil/pkg/service/listing"
)

// serviceFlags stores the flags shared by commands that can use the listing
// service instead of performing operations locally.
type serviceFlags struct {
	// remote indicates that the configured service endpoint should be used.
	remote bool
	// endpoint is an explicitly specified service endpoint.
	endpoint string
}

// register registers the service flags into the specified flag set.
func (f *serviceFlags) register(flags *pflag.FlagSet) {
	flags.BoolVarP(&f.remote, "remote", "r", false, "Use the listing service at the configured endpoint")
	flags.StringVar(&f.endpoint, "endpoint", "", "Use the listing service at the specified endpoint")
}

// target returns the endpoint to use and whether or not the service should be
// used at all.
func (f *serviceFlags) target() (string, bool) {
	if f.endpoint != "" {
		return f.endpoint, true
	} else if f.remote {
		return globalConfiguration.Endpoint, true
	}
	return "", false
}

// resolveOutput determines the output format, letting the command line
// override the configuration file.
func resolveOutput(flags *pflag.FlagSet, format cmd.OutputFormat) cmd.OutputFormat {
	if flags.Changed("output") {
		return format
	}
	return cmd.OutputFormat(globalConfiguration.Output)
}

// connect dials the listing service at the specified endpoint and verifies
// that its interface revision matches ours. The caller is responsible for
// closing the returned connection.
func connect(ctx context.Context, endpoint string) (*grpc.ClientConn, listing.ListingClient, error) {
	// Dial the service with a timeout.
	dialCtx, cancel := context.WithTimeout(ctx, ipc.RecommendedDialTimeout)
	defer cancel()
	connection, err := listing.Dial(dialCtx, endpoint)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to connect to listing service")
	}

	// Verify compatibility.
	client := listing.NewListingClient(connection)
	if err := listing.CheckVersion(ctx, client); err != nil {
		connection.Close()
		return nil, nil, err
	}

	// Success.
	return connection, client, nil
}
