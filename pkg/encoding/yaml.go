package encoding

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mutagen-io/osutil/pkg/logging"
)

// LoadAndUnmarshalYAML loads data from the specified path and decodes it into
// the specified structure. Unknown fields are treated as errors. An empty file
// leaves the structure unmodified.
func LoadAndUnmarshalYAML(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(value); err != nil && err != io.EOF {
			return err
		}
		return nil
	})
}

// MarshalAndSaveYAML marshals the specified value as YAML and saves it to the
// specified path.
func MarshalAndSaveYAML(path string, value interface{}, logger *logging.Logger) error {
	return MarshalAndSave(path, func() ([]byte, error) {
		return yaml.Marshal(value)
	}, logger)
}
