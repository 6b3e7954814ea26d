package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/osutil/cmd"
	"github.com/mutagen-io/osutil/pkg/configuration"
	"github.com/mutagen-io/osutil/pkg/logging"
)

// configMain is the entry point for the config command.
func configMain(command *cobra.Command, _ []string) error {
	// Save the effective configuration if requested.
	if configConfiguration.save {
		path, err := configuration.Path()
		if err != nil {
			return errors.Wrap(err, "unable to compute configuration path")
		}
		if err := globalConfiguration.Save(path, logging.RootLogger.Sublogger("config")); err != nil {
			return errors.Wrap(err, "unable to save configuration")
		}
		fmt.Println("Configuration saved to", path)
		return nil
	}

	// Print the effective configuration. Text output uses YAML since the
	// configuration file is YAML.
	format := resolveOutput(command.Flags(), configConfiguration.output)
	if format == configuration.OutputText {
		format = configuration.OutputYAML
	}
	return format.Emit(color.Output, globalConfiguration, func(_ io.Writer) error {
		return nil
	})
}

// configCommand is the config command.
var configCommand = &cobra.Command{
	Use:          "config",
	Short:        "Show or save the effective configuration",
	Args:         cmd.DisallowArguments,
	RunE:         configMain,
	SilenceUsage: true,
}

// configConfiguration stores configuration for the config command.
var configConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// save indicates that the effective configuration should be saved.
	save bool
	// output is the output format.
	output cmd.OutputFormat
}

func init() {
	// Grab a handle for the command line flags.
	flags := configCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&configConfiguration.help, "help", "h", false, "Show help information")

	// Wire up config flags.
	flags.BoolVar(&configConfiguration.save, "save", false, "Save the effective configuration to the configuration file")
	configConfiguration.output = configuration.OutputYAML
	flags.VarP(&configConfiguration.output, "output", "o", "Specify the output format (json|yaml)")
}
