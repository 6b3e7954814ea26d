package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mutagen-io/osutil/cmd"
	"github.com/mutagen-io/osutil/pkg/ipc"
	"github.com/mutagen-io/osutil/pkg/logging"
	"github.com/mutagen-io/osutil/pkg/must"
	"github.com/mutagen-io/osutil/pkg/service/listing"
)

// serveMain is the entry point for the serve command.
func serveMain(_ *cobra.Command, _ []string) error {
	// Determine the endpoint.
	endpoint := globalConfiguration.Endpoint
	if serveConfiguration.endpoint != "" {
		endpoint = serveConfiguration.endpoint
	}
	logger := logging.RootLogger.Sublogger("serve")

	// Ensure that the endpoint's parent directory exists.
	if err := os.MkdirAll(filepath.Dir(endpoint), 0700); err != nil {
		return errors.Wrap(err, "unable to create endpoint directory")
	}

	// Attempt to acquire the endpoint lock and defer its release.
	lock, err := listing.AcquireLock(endpoint)
	if err != nil {
		return errors.Wrap(err, "unable to acquire endpoint lock (is another service running?)")
	}
	defer func() {
		must.Succeed(lock.Release(), "endpoint lock release", logger)
	}()

	// Create a context that's cancelled on termination signals. We do this
	// before creating other infrastructure so that things terminate smoothly,
	// not mid-initialization.
	ctx, cancel := signal.NotifyContext(context.Background(), cmd.TerminationSignals...)
	defer cancel()

	// Create the listener. Since we hold the endpoint lock, we preemptively
	// remove any existing socket since it (should) be stale. The listener is
	// closed by the server when it stops.
	os.Remove(endpoint)
	listener, err := ipc.NewListener(endpoint, logger)
	if err != nil {
		return errors.Wrap(err, "unable to create service listener")
	}

	// Create the gRPC server. We use a hard stop rather than a graceful stop so
	// that it doesn't hang on open requests.
	server := listing.NewGRPCServer(logger.Sublogger("listing"))

	// Serve until termination or serving failure.
	logger.Info("Serving on", endpoint)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := server.Serve(listener); err != nil {
			return errors.Wrap(err, "service termination")
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		server.Stop()
		return nil
	})
	err = group.Wait()

	// Treat termination via signal as a non-error.
	if ctx.Err() != nil {
		logger.Info("Terminated by signal")
		return nil
	}
	return err
}

// serveCommand is the serve command.
var serveCommand = &cobra.Command{
	Use:          "serve",
	Short:        "Run the listing service",
	Args:         cmd.DisallowArguments,
	RunE:         serveMain,
	SilenceUsage: true,
}

// serveConfiguration stores configuration for the serve command.
var serveConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// endpoint overrides the configured service endpoint.
	endpoint string
}

func init() {
	// Grab a handle for the command line flags.
	flags := serveCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&serveConfiguration.help, "help", "h", false, "Show help information")

	// Wire up service flags.
	flags.StringVar(&serveConfiguration.endpoint, "endpoint", "", "Serve at the specified endpoint")
}
