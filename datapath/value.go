package datapath

import (
	"reflect"
)

// Clone returns a deep copy of the mappings and sequences in v.
// Scalars are returned as they are.
func Clone(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = Clone(value)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, value := range typed {
			out[i] = Clone(value)
		}

		return out
	default:
		return v
	}
}

// Normalize converts typed containers to the generic document shape:
// maps keyed by strings become map[string]any, slices and arrays become
// []any, recursively. Pointers to containers are followed. []byte, structs
// and other values are kept as scalars. The result never shares containers
// with v.
func Normalize(v any) any {
	switch typed := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = Normalize(value)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, value := range typed {
			out[i] = Normalize(value)
		}

		return out
	case string, bool, float64, int, int64:
		return v
	}

	return normalizeReflect(v)
}

func normalizeReflect(v any) any {
	value := reflect.ValueOf(v)

	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			if value.Kind() == reflect.Interface {
				return nil
			}

			return v
		}

		if !isContainer(value.Elem()) {
			return v
		}

		value = value.Elem()
	}

	//nolint:exhaustive // every other kind is a scalar
	switch value.Kind() {
	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			return v
		}

		if value.IsNil() {
			return nil
		}

		out := make(map[string]any, value.Len())

		iter := value.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Normalize(iter.Value().Interface())
		}

		return out
	case reflect.Slice, reflect.Array:
		if isBytes(value) {
			return v
		}

		if value.Kind() == reflect.Slice && value.IsNil() {
			return nil
		}

		out := make([]any, value.Len())
		for i := range value.Len() {
			out[i] = Normalize(value.Index(i).Interface())
		}

		return out
	default:
		return v
	}
}

func isContainer(value reflect.Value) bool {
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return false
		}

		value = value.Elem()
	}

	switch value.Kind() { //nolint:exhaustive // only containers matter
	case reflect.Map:
		return value.Type().Key().Kind() == reflect.String
	case reflect.Slice, reflect.Array:
		return !isBytes(value)
	default:
		return false
	}
}

func isBytes(value reflect.Value) bool {
	return value.Type().Elem().Kind() == reflect.Uint8
}
