package configuration

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mutagen-io/osutil/pkg/logging"
)

const (
	// testConfigurationValid is a valid configuration file.
	testConfigurationValid = `
output: json
endpoint: /tmp/osutil-test.sock
logLevel: debug
color: never
list:
  stat: true
  exclude:
    - "*.o"
    - "!keep.o"
`
	// testConfigurationPartial sets only some fields.
	testConfigurationPartial = `
list:
  stat: true
`
	// testConfigurationUnknownField contains an unknown field.
	testConfigurationUnknownField = `
output: text
verbosity: 3
`
	// testConfigurationInvalidOutput contains an invalid output format.
	testConfigurationInvalidOutput = `
output: xml
`
	// testConfigurationInvalidLevel contains an invalid log level.
	testConfigurationInvalidLevel = `
logLevel: loud
`
	// testConfigurationInvalidPattern contains an invalid exclusion pattern.
	testConfigurationInvalidPattern = `
list:
  exclude:
    - "["
`
)

// writeConfiguration writes configuration contents to a temporary file and
// returns its path.
func writeConfiguration(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "osutil.yml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal("unable to write configuration file:", err)
	}
	return path
}

func TestLoadNonExistent(t *testing.T) {
	configuration, err := loadFromPath(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatal("unable to load non-existent configuration:", err)
	}
	expected, err := Default()
	if err != nil {
		t.Fatal("unable to compute default configuration:", err)
	}
	if !reflect.DeepEqual(configuration, expected) {
		t.Error("configuration for missing file does not match defaults")
	}
}

func TestLoadValid(t *testing.T) {
	configuration, err := loadFromPath(writeConfiguration(t, testConfigurationValid))
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if configuration.Output != OutputJSON {
		t.Error("output format mismatch:", configuration.Output)
	}
	if configuration.Endpoint != "/tmp/osutil-test.sock" {
		t.Error("endpoint mismatch:", configuration.Endpoint)
	}
	if configuration.LogLevel != logging.LevelDebug {
		t.Error("log level mismatch:", configuration.LogLevel)
	}
	if configuration.Color != ColorNever {
		t.Error("color mode mismatch:", configuration.Color)
	}
	if !configuration.List.Stat {
		t.Error("list stat default not set")
	}
	if !reflect.DeepEqual(configuration.List.Exclude, []string{"*.o", "!keep.o"}) {
		t.Error("exclusion patterns mismatch:", configuration.List.Exclude)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	configuration, err := loadFromPath(writeConfiguration(t, testConfigurationPartial))
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if configuration.Output != OutputText {
		t.Error("default output format not retained:", configuration.Output)
	}
	if configuration.LogLevel != logging.LevelWarn {
		t.Error("default log level not retained:", configuration.LogLevel)
	}
	if configuration.Endpoint == "" {
		t.Error("default endpoint not retained")
	}
	if !configuration.List.Stat {
		t.Error("list stat default not set")
	}
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
	}{
		{"unknown field", testConfigurationUnknownField},
		{"invalid output", testConfigurationInvalidOutput},
		{"invalid level", testConfigurationInvalidLevel},
		{"invalid pattern", testConfigurationInvalidPattern},
	}
	for _, testCase := range testCases {
		if _, err := loadFromPath(writeConfiguration(t, testCase.contents)); err == nil {
			t.Errorf("invalid configuration (%s) loaded successfully", testCase.name)
		}
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvironmentVariable, writeConfiguration(t, testConfigurationValid))
	configuration, err := Load()
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if configuration.Output != OutputJSON {
		t.Error("configuration not loaded from environment-specified path")
	}
}

func TestSaveCycle(t *testing.T) {
	original, err := loadFromPath(writeConfiguration(t, testConfigurationValid))
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	path := filepath.Join(t.TempDir(), "saved.yml")
	if err := original.Save(path, nil); err != nil {
		t.Fatal("unable to save configuration:", err)
	}
	loaded, err := loadFromPath(path)
	if err != nil {
		t.Fatal("unable to reload configuration:", err)
	}
	if !reflect.DeepEqual(loaded, original) {
		t.Error("reloaded configuration does not match saved configuration")
	}
}

func TestSaveInvalid(t *testing.T) {
	configuration := &Configuration{Output: "xml"}
	if configuration.Save(filepath.Join(t.TempDir(), "invalid.yml"), nil) == nil {
		t.Error("invalid configuration saved successfully")
	}
}
