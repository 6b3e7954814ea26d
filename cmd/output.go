package cmd

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mutagen-io/osutil/pkg/configuration"
)

// OutputFormat is a pflag.Value that selects the output format of a command.
type OutputFormat string

// String implements pflag.Value.String.
func (f *OutputFormat) String() string {
	return string(*f)
}

// Set implements pflag.Value.Set.
func (f *OutputFormat) Set(value string) error {
	switch value {
	case configuration.OutputText, configuration.OutputJSON, configuration.OutputYAML:
		*f = OutputFormat(value)
		return nil
	default:
		return errors.Errorf("unknown output format: %s", value)
	}
}

// Type implements pflag.Value.Type.
func (f *OutputFormat) Type() string {
	return "format"
}

// Emit writes a value to the writer in the selected format. Text output is
// delegated to the provided callback.
func (f OutputFormat) Emit(writer io.Writer, value interface{}, text func(io.Writer) error) error {
	switch string(f) {
	case configuration.OutputJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case configuration.OutputYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()
	case configuration.OutputText, "":
		return text(writer)
	default:
		return errors.Errorf("unknown output format: %s", string(f))
	}
}
