package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/osutil/cmd"
	"github.com/mutagen-io/osutil/pkg/configuration"
	"github.com/mutagen-io/osutil/pkg/filesystem"
	"github.com/mutagen-io/osutil/pkg/grpcutil"
	"github.com/mutagen-io/osutil/pkg/osutil"
	"github.com/mutagen-io/osutil/pkg/service/listing"
)

// statResult is a single bulk stat result as emitted in structured output.
type statResult struct {
	// Path is the queried path.
	Path string `json:"path" yaml:"path"`
	// Metadata is the path's metadata, if available.
	Metadata *filesystem.Metadata `json:"metadata" yaml:"metadata"`
}

// statRemote performs a bulk stat using the listing service.
func statRemote(ctx context.Context, endpoint string, paths []string) ([]*filesystem.Metadata, error) {
	// Connect to the service and defer closure of the connection.
	connection, client, err := connect(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer connection.Close()

	// Perform the query.
	response, err := client.StatFiles(ctx, &listing.StatFilesRequest{Paths: paths})
	if err != nil {
		return nil, grpcutil.PeelAwayRPCErrorLayer(err)
	} else if len(response.Metadata) != len(paths) {
		return nil, errors.New("service returned an incorrect number of results")
	}
	return response.Metadata, nil
}

// printStatResults prints bulk stat results in text format.
func printStatResults(writer io.Writer, results []*statResult) error {
	for _, result := range results {
		var err error
		if result.Metadata == nil {
			_, err = fmt.Fprintf(writer, "%s: %s\n", result.Path, color.YellowString("unavailable"))
		} else {
			_, err = fmt.Fprintf(writer, "%s: %s, %04o, %s, modified %s\n",
				result.Path,
				result.Metadata.Kind(),
				uint32(result.Metadata.Mode&filesystem.ModePermissionsMask),
				humanize.Bytes(result.Metadata.Size),
				humanize.Time(result.Metadata.ModificationTime),
			)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// statMain is the entry point for the stat command.
func statMain(command *cobra.Command, arguments []string) error {
	// Create a context that's cancelled on termination signals so that long
	// queries can be interrupted.
	ctx, cancel := signal.NotifyContext(context.Background(), cmd.TerminationSignals...)
	defer cancel()

	// Perform the query.
	var metadata []*filesystem.Metadata
	var err error
	if endpoint, remote := statConfiguration.service.target(); remote {
		metadata, err = statRemote(ctx, endpoint, arguments)
	} else {
		if !filesystem.BulkStatSupported {
			return errors.New("bulk metadata queries are not supported on this platform")
		}
		metadata, err = osutil.StatFiles(ctx, arguments)
	}
	if err != nil {
		return errors.Wrap(err, "unable to query metadata")
	}

	// Pair results with their paths.
	results := make([]*statResult, len(arguments))
	for i, path := range arguments {
		results[i] = &statResult{Path: path, Metadata: metadata[i]}
	}

	// Print the results.
	format := resolveOutput(command.Flags(), statConfiguration.output)
	return format.Emit(color.Output, results, func(writer io.Writer) error {
		return printStatResults(writer, results)
	})
}

// statCommand is the stat command.
var statCommand = &cobra.Command{
	Use:          "stat <path>...",
	Short:        "Query metadata for regular files and symbolic links",
	Args:         cobra.MinimumNArgs(1),
	RunE:         statMain,
	SilenceUsage: true,
}

// statConfiguration stores configuration for the stat command.
var statConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// output is the output format.
	output cmd.OutputFormat
	// service stores the service flags.
	service serviceFlags
}

func init() {
	// Grab a handle for the command line flags.
	flags := statCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&statConfiguration.help, "help", "h", false, "Show help information")

	// Wire up stat flags.
	statConfiguration.output = configuration.OutputText
	flags.VarP(&statConfiguration.output, "output", "o", "Specify the output format (text|json|yaml)")
	statConfiguration.service.register(flags)
}
