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

// recvFDsMain is the entry point for the recv-fds command.
func recvFDsMain(_ *cobra.Command, arguments []string) error {
	// Verify platform support.
	if !ipc.DescriptorPassingSupported {
		return ipc.ErrUnsupported
	}
	logger := logging.RootLogger.Sublogger("recv-fds")

	// Listen on the socket and defer closure of the listener.
	address := &net.UnixAddr{Name: arguments[0], Net: "unix"}
	listener, err := net.ListenUnix("unix", address)
	if err != nil {
		return errors.Wrap(err, "unable to listen on socket")
	}
	defer must.Close(listener, logger)

	// Accept a single connection and defer its closure.
	connection, err := listener.AcceptUnix()
	if err != nil {
		return errors.Wrap(err, "unable to accept connection")
	}
	defer must.Close(connection, logger)

	// Receive descriptors.
	descriptors, err := ipc.ReceiveDescriptorsFromConnection(connection)
	if err != nil {
		return errors.Wrap(err, "unable to receive descriptors")
	}

	// Print and close the descriptors.
	for _, descriptor := range descriptors {
		file := os.NewFile(uintptr(descriptor), fmt.Sprintf("descriptor %d", descriptor))
		if info, err := file.Stat(); err != nil {
			fmt.Printf("%d: %v\n", descriptor, err)
		} else {
			fmt.Printf("%d: %s, %d bytes\n", descriptor, info.Mode(), info.Size())
		}
		must.Close(file, logger)
	}

	// Success.
	return nil
}

// recvFDsCommand is the recv-fds command.
var recvFDsCommand = &cobra.Command{
	Use:          "recv-fds <socket-path>",
	Short:        "Receive descriptors over a UNIX domain socket and print them",
	Args:         cobra.ExactArgs(1),
	RunE:         recvFDsMain,
	SilenceUsage: true,
}

// recvFDsConfiguration stores configuration for the recv-fds command.
var recvFDsConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := recvFDsCommand.Flags()

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&recvFDsConfiguration.help, "help", "h", false, "Show help information")
}
