package main

import (
	"fmt"
	"net"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/osutil/pkg/ipc"
	"github.com/mutagen-io/osutil/pkg/logging"
	"github.com/mutagen-io/osutil/pkg/must"
)

// sendFDsMain is the entry point for the send-fds command.
func sendFDsMain(_ *cobra.Command, arguments []string) error {
	// Verify platform support.
	if !ipc.DescriptorPassingSupported {
		return ipc.ErrUnsupported
	}
	logger := logging.RootLogger.Sublogger("send-fds")

	// Open the files and defer their closure.
	descriptors := make([]int, 0, len(arguments)-1)
	for _, path := range arguments[1:] {
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "unable to open file (%s)", path)
		}
		defer must.Close(file, logger)
		descriptors = append(descriptors, int(file.Fd()))
	}

	// Connect to the receiver and defer closure of the connection.
	address := &net.UnixAddr{Name: arguments[0], Net: "unix"}
	connection, err := net.DialUnix("unix", nil, address)
	if err != nil {
		return errors.Wrap(err, "unable to connect to receiver")
	}
	defer must.Close(connection, logger)

	// Send the descriptors.
	if err := ipc.SendDescriptorsOverConnection(connection, descriptors); err != nil {
		return errors.Wrap(err, "unable to send descriptors")
	}
	fmt.Printf("Sent %d descriptor(s)\n", len(descriptors))

	// Success.
	return nil
}

// sendFDsCommand is the send-fds command.
var sendFDsCommand = &cobra.Command{
	Use:          "send-fds <socket-path> <file>...",
	Short:        "Send file descriptors to a listening recv-fds command",
	Args:         cobra.MinimumNArgs(2),
	RunE:         sendFDsMain,
	SilenceUsage: true,
}

// sendFDsConfiguration stores configuration for the send-fds command.
var sendFDsConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := sendFDsCommand.Flags()

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&sendFDsConfiguration.help, "help", "h", false, "Show help information")
}
