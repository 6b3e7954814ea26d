package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/osutil/cmd"
	"github.com/mutagen-io/osutil/pkg/configuration"
	"github.com/mutagen-io/osutil/pkg/filesystem"
	"github.com/mutagen-io/osutil/pkg/filter"
	"github.com/mutagen-io/osutil/pkg/grpcutil"
	"github.com/mutagen-io/osutil/pkg/osutil"
	"github.com/mutagen-io/osutil/pkg/service/listing"
)

// listRemote performs a listing using the listing service.
func listRemote(endpoint, path string, metadata bool, skip string) ([]*filesystem.Entry, error) {
	// Connect to the service and defer closure of the connection.
	ctx := context.Background()
	connection, client, err := connect(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer connection.Close()

	// Perform the listing.
	response, err := client.List(ctx, &listing.ListRequest{
		Path:     path,
		Metadata: metadata,
		Skip:     skip,
	})
	if err != nil {
		return nil, grpcutil.PeelAwayRPCErrorLayer(err)
	}
	return response.Entries, nil
}

// kindIndicator returns the suffix used to indicate an entry's kind in text
// output.
func kindIndicator(kind filesystem.EntryKind) string {
	switch kind {
	case filesystem.EntryKindDirectory:
		return "/"
	case filesystem.EntryKindSymbolicLink:
		return "@"
	case filesystem.EntryKindNamedPipe:
		return "|"
	case filesystem.EntryKindSocket:
		return "="
	default:
		return ""
	}
}

// colorizeName colors an entry name by kind.
func colorizeName(entry *filesystem.Entry) string {
	name := entry.Name + kindIndicator(entry.Kind)
	switch entry.Kind {
	case filesystem.EntryKindDirectory:
		return color.BlueString(name)
	case filesystem.EntryKindSymbolicLink:
		return color.CyanString(name)
	case filesystem.EntryKindBlockDevice, filesystem.EntryKindCharacterDevice:
		return color.YellowString(name)
	case filesystem.EntryKindNamedPipe, filesystem.EntryKindSocket:
		return color.MagentaString(name)
	default:
		return name
	}
}

// printEntries prints entries in text format.
func printEntries(writer io.Writer, entries []*filesystem.Entry) error {
	for _, entry := range entries {
		var err error
		if entry.Metadata == nil {
			_, err = fmt.Fprintln(writer, colorizeName(entry))
		} else {
			_, err = fmt.Fprintf(writer, "%-16s %04o %8s  %-14s  %s\n",
				entry.Kind,
				uint32(entry.Metadata.Mode&filesystem.ModePermissionsMask),
				humanize.Bytes(entry.Metadata.Size),
				humanize.Time(entry.Metadata.ModificationTime),
				colorizeName(entry),
			)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// listMain is the entry point for the list command.
func listMain(command *cobra.Command, arguments []string) error {
	// Resolve options, letting the command line override the configuration
	// file.
	flags := command.Flags()
	path := arguments[0]
	metadata := globalConfiguration.List.Stat
	if flags.Changed("stat") {
		metadata = listConfiguration.stat
	}
	format := resolveOutput(flags, listConfiguration.output)
	patterns := make([]string, 0, len(globalConfiguration.List.Exclude)+len(listConfiguration.exclude))
	patterns = append(patterns, globalConfiguration.List.Exclude...)
	patterns = append(patterns, listConfiguration.exclude...)
	exclusions, err := filter.NewFilter(patterns)
	if err != nil {
		return errors.Wrap(err, "invalid exclusions")
	}

	// Perform the listing.
	var entries []*filesystem.Entry
	if endpoint, remote := listConfiguration.service.target(); remote {
		entries, err = listRemote(endpoint, path, metadata, listConfiguration.skip)
	} else {
		entries, err = osutil.Listdir(path, metadata, listConfiguration.skip)
	}
	if err != nil {
		return errors.Wrap(err, "unable to list directory")
	}

	// Apply exclusions.
	filtered := make([]*filesystem.Entry, 0, len(entries))
	for _, entry := range entries {
		if !exclusions.Excluded(entry.Name, entry.Kind == filesystem.EntryKindDirectory) {
			filtered = append(filtered, entry)
		}
	}

	// Print the results.
	return format.Emit(color.Output, filtered, func(writer io.Writer) error {
		return printEntries(writer, filtered)
	})
}

// listCommand is the list command.
var listCommand = &cobra.Command{
	Use:          "list <directory>",
	Short:        "List the contents of a directory",
	Args:         cobra.ExactArgs(1),
	RunE:         listMain,
	SilenceUsage: true,
}

// listConfiguration stores configuration for the list command.
var listConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// stat indicates whether or not metadata should be included.
	stat bool
	// skip is the name of a directory whose presence abandons the listing.
	skip string
	// exclude are exclusion patterns for printed entries.
	exclude []string
	// output is the output format.
	output cmd.OutputFormat
	// service stores the service flags.
	service serviceFlags
}

func init() {
	// Grab a handle for the command line flags.
	flags := listCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&listConfiguration.help, "help", "h", false, "Show help information")

	// Wire up listing flags.
	flags.BoolVarP(&listConfiguration.stat, "stat", "s", false, "Include entry metadata")
	flags.StringVar(&listConfiguration.skip, "skip", "", "Return an empty listing if a directory with this name is present")
	flags.StringArrayVarP(&listConfiguration.exclude, "exclude", "x", nil, "Exclude entries matching a pattern (may be repeated)")
	listConfiguration.output = configuration.OutputText
	flags.VarP(&listConfiguration.output, "output", "o", "Specify the output format (text|json|yaml)")
	listConfiguration.service.register(flags)
}
