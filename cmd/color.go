package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/mutagen-io/osutil/pkg/configuration"
)

// ColorMode is a pflag.Value that selects when color output is used.
type ColorMode string

// String implements pflag.Value.String.
func (m *ColorMode) String() string {
	return string(*m)
}

// Set implements pflag.Value.Set.
func (m *ColorMode) Set(value string) error {
	switch value {
	case configuration.ColorAuto, configuration.ColorAlways, configuration.ColorNever:
		*m = ColorMode(value)
		return nil
	default:
		return errors.Errorf("unknown color mode: %s", value)
	}
}

// Type implements pflag.Value.Type.
func (m *ColorMode) Type() string {
	return "mode"
}

// colorEnabled determines whether color should be enabled for the mode given
// whether or not the output is a terminal.
func (m ColorMode) colorEnabled(terminal bool) bool {
	switch string(m) {
	case configuration.ColorAlways:
		return true
	case configuration.ColorNever:
		return false
	default:
		return terminal
	}
}

// Apply configures the global color state for the mode.
func (m ColorMode) Apply() {
	terminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	color.NoColor = !m.colorEnabled(terminal) || os.Getenv("NO_COLOR") != ""
}
