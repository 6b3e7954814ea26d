package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/osutil/cmd"
	"github.com/mutagen-io/osutil/pkg/configuration"
	"github.com/mutagen-io/osutil/pkg/logging"
	"github.com/mutagen-io/osutil/pkg/osutil"
)

// globalConfiguration is the loaded configuration file. It is populated before
// any command runs.
var globalConfiguration *configuration.Configuration

// rootPersistentPreRun loads the configuration file and applies its global
// settings.
func rootPersistentPreRun(command *cobra.Command, _ []string) error {
	// Load the configuration.
	loaded, err := configuration.Load()
	if err != nil {
		return errors.Wrap(err, "unable to load configuration")
	}
	globalConfiguration = loaded

	// Apply the configured log level unless the environment overrides it.
	if os.Getenv(logging.EnvironmentVariable) == "" {
		logging.RootLogger.SetLevel(globalConfiguration.LogLevel)
	}

	// Apply the color mode, letting the command line override the
	// configuration file.
	mode := cmd.ColorMode(globalConfiguration.Color)
	if command.Flags().Changed("color") {
		mode = rootConfiguration.color
	}
	mode.Apply()

	// Success.
	return nil
}

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail. We don't
	// have to worry about warning about arguments being present here (which
	// would be incorrect usage) because arguments can't even reach this point
	// (they will be mistaken for subcommands and a error will be displayed).
	command.Help()

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:               "osutil",
	Version:           osutil.BuildVersion,
	Short:             "osutil lists directories and queries file metadata using native facilities",
	PersistentPreRunE: rootPersistentPreRun,
	RunE:              rootMain,
	SilenceUsage:      true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// color is the color mode specified on the command line.
	color cmd.ColorMode
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap. The service may be launched outside of
	// a console on Windows.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("osutil version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Register the color flag for all commands.
	rootConfiguration.color = configuration.ColorAuto
	rootCommand.PersistentFlags().Var(&rootConfiguration.color, "color", "Specify when to use color (auto|always|never)")

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		listCommand,
		statCommand,
		serveCommand,
		recvFDsCommand,
		sendFDsCommand,
		configCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
