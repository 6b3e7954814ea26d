package configuration

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mutagen-io/osutil/pkg/encoding"
	"github.com/mutagen-io/osutil/pkg/filesystem"
	"github.com/mutagen-io/osutil/pkg/filter"
	"github.com/mutagen-io/osutil/pkg/logging"
)

const (
	// EnvironmentVariable is the environment variable that can be used to
	// override the configuration file path.
	EnvironmentVariable = "OSUTIL_CONFIG"
)

const (
	// OutputText selects human-readable text output.
	OutputText = "text"
	// OutputJSON selects JSON output.
	OutputJSON = "json"
	// OutputYAML selects YAML output.
	OutputYAML = "yaml"
)

const (
	// ColorAuto enables color only when standard output is a terminal.
	ColorAuto = "auto"
	// ColorAlways forces color output.
	ColorAlways = "always"
	// ColorNever disables color output.
	ColorNever = "never"
)

// List holds defaults for the list command.
type List struct {
	// Stat is the default value of the list command's --stat flag.
	Stat bool `json:"stat" yaml:"stat"`
	// Exclude are default exclusion patterns applied to listings.
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// Configuration is the global configuration.
type Configuration struct {
	// Output is the default output format.
	Output string `json:"output" yaml:"output"`
	// Endpoint is the path of the listing service endpoint.
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	// LogLevel is the level of the root logger.
	LogLevel logging.Level `json:"logLevel" yaml:"logLevel"`
	// Color is the color mode.
	Color string `json:"color" yaml:"color"`
	// List holds list command defaults.
	List List `json:"list" yaml:"list"`
}

// Default returns a configuration with default values.
func Default() (*Configuration, error) {
	endpoint, err := DefaultEndpoint()
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute default endpoint")
	}
	return &Configuration{
		Output:   OutputText,
		Endpoint: endpoint,
		LogLevel: logging.LevelWarn,
		Color:    ColorAuto,
	}, nil
}

// DefaultEndpoint computes the default listing service endpoint path.
func DefaultEndpoint() (string, error) {
	return filesystem.DataDirectory(false, endpointName)
}

// Path computes the configuration file path.
func Path() (string, error) {
	if path := os.Getenv(EnvironmentVariable); path != "" {
		return path, nil
	}
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to compute path to home directory")
	}
	return filepath.Join(homeDirectory, filesystem.ConfigurationName), nil
}

// EnsureValid ensures that the configuration is valid.
func (c *Configuration) EnsureValid() error {
	// Verify the output format.
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return errors.Errorf("invalid output format: %s", c.Output)
	}

	// Verify the endpoint.
	if c.Endpoint == "" {
		return errors.New("empty endpoint")
	}

	// Verify the color mode.
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("invalid color mode: %s", c.Color)
	}

	// Verify exclusion patterns.
	for _, pattern := range c.List.Exclude {
		if err := filter.ValidatePattern(pattern); err != nil {
			return errors.Wrapf(err, "invalid exclusion pattern (%s)", pattern)
		}
	}

	// Success.
	return nil
}

// loadFromPath is the internal loading function. We keep it separate from Load
// so that we can get full test coverage using temporary files.
func loadFromPath(path string) (*Configuration, error) {
	// Create a configuration with default values. Fields that are absent from
	// the configuration file keep these values.
	result, err := Default()
	if err != nil {
		return nil, err
	}

	// Attempt to load the configuration from disk.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "unable to load configuration file")
		}
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	// Success.
	return result, nil
}

// Load loads the configuration file from disk and populates a Configuration
// structure. If the configuration file does not exist, this method will return
// a structure with the default configuration values. The returned structure is
// not re-used, so its members can be freely mutated.
func Load() (*Configuration, error) {
	path, err := Path()
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute configuration path")
	}
	return loadFromPath(path)
}

// Save writes the configuration to the specified path.
func (c *Configuration) Save(path string, logger *logging.Logger) error {
	if err := c.EnsureValid(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return encoding.MarshalAndSaveYAML(path, c, logger)
}
