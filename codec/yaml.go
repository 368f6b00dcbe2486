package codec

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// YAMLName is the registry name of the YAML codec.
const YAMLName = "yaml"

// YAML stores documents as YAML text. Mappings decode to map[string]any;
// integers keep the integer types produced by goccy/go-yaml.
type YAML struct{}

// Name implements Codec.
func (YAML) Name() string {
	return YAMLName
}

// Encode implements Codec.
func (YAML) Encode(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", &EncodeError{Codec: YAMLName, Err: err}
	}

	return string(data), nil
}

// Decode implements Codec.
func (YAML) Decode(data string) (any, error) {
	if data == "" {
		return nil, nil
	}

	var v any

	err := yaml.Unmarshal([]byte(data), &v)
	if err != nil {
		return nil, &DecodeError{Codec: YAMLName, Err: err}
	}

	return stringKeys(v), nil
}

// stringKeys rewrites map[any]any mappings, which YAML allows for non-string
// keys, into map[string]any.
func stringKeys(v any) any {
	switch typed := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprint(key)] = stringKeys(value)
		}

		return out
	case map[string]any:
		for key, value := range typed {
			typed[key] = stringKeys(value)
		}

		return typed
	case []any:
		for i, value := range typed {
			typed[i] = stringKeys(value)
		}

		return typed
	default:
		return v
	}
}

func init() {
	Register(YAML{})
}
