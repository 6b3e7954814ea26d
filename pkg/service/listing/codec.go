package listing

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// codecName is the name of the codec used by the listing service. Clients
// select it using it as the call content subtype.
const codecName = "json"

// codec implements encoding.Codec using JSON encoding.
type codec struct{}

// Marshal implements encoding.Codec.Marshal.
func (codec) Marshal(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}

// Unmarshal implements encoding.Codec.Unmarshal.
func (codec) Unmarshal(data []byte, value interface{}) error {
	return json.Unmarshal(data, value)
}

// Name implements encoding.Codec.Name.
func (codec) Name() string {
	return codecName
}

func init() {
	encoding.RegisterCodec(codec{})
}
