package codec

import (
	"github.com/segmentio/encoding/json"
)

// JSONName is the registry name of the JSON codec.
const JSONName = "json"

// JSON stores documents as JSON text. Decoded numbers are float64.
type JSON struct{}

// Name implements Codec.
func (JSON) Name() string {
	return JSONName
}

// Encode implements Codec.
func (JSON) Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", &EncodeError{Codec: JSONName, Err: err}
	}

	return string(data), nil
}

// Decode implements Codec.
func (JSON) Decode(data string) (any, error) {
	if data == "" {
		return nil, nil
	}

	var v any

	err := json.Unmarshal([]byte(data), &v)
	if err != nil {
		return nil, &DecodeError{Codec: JSONName, Err: err}
	}

	return v, nil
}

func init() {
	Register(JSON{})
}
