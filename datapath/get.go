package datapath

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotFound is returned by Lookup when a path does not resolve to a value.
var ErrNotFound = errors.New("path not found")

// Get returns the value stored at path inside root.
//
// The second result is false when traversal fails: a missing key, a segment
// that is not an in-range index of a sequence, or an attempt to descend into
// a scalar or nil node. A stored nil is reported as found. The empty path
// returns root itself. The returned value is not copied.
func Get(root any, path string) (any, bool) {
	node := root

	for _, segment := range Split(path) {
		next, ok := child(node, segment)
		if !ok {
			return nil, false
		}

		node = next
	}

	return node, true
}

// GetOr returns the value at path, or def when the path does not resolve.
// A stored nil is returned as nil, not replaced by def.
func GetOr(root any, path string, def any) any {
	value, ok := Get(root, path)
	if !ok {
		return def
	}

	return value
}

// Lookup is Get reporting a failed traversal as an error wrapping ErrNotFound.
// The error names the longest prefix of path that did resolve.
func Lookup(root any, path string) (any, error) {
	node := root
	segments := Split(path)

	for i, segment := range segments {
		next, ok := child(node, segment)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no %q", ErrNotFound, Join(segments[:i]...), segment)
		}

		node = next
	}

	return node, nil
}

func child(node any, segment string) (any, bool) {
	switch typed := node.(type) {
	case nil:
		return nil, false
	case map[string]any:
		value, ok := typed[segment]

		return value, ok
	case []any:
		idx, ok := parseIndex(segment, len(typed))
		if !ok {
			return nil, false
		}

		return typed[idx], true
	}

	return reflectChild(reflect.ValueOf(node), segment)
}

// reflectChild handles typed containers such as map[string]int or []string
// that callers may have stored without normalizing.
func reflectChild(value reflect.Value, segment string) (any, bool) {
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil, false
		}

		value = value.Elem()
	}

	//nolint:exhaustive // every other kind is a scalar
	switch value.Kind() {
	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		elem := value.MapIndex(reflect.ValueOf(segment).Convert(value.Type().Key()))
		if !elem.IsValid() {
			return nil, false
		}

		return elem.Interface(), true
	case reflect.Slice, reflect.Array:
		if isBytes(value) {
			return nil, false
		}

		idx, ok := parseIndex(segment, value.Len())
		if !ok {
			return nil, false
		}

		return value.Index(idx).Interface(), true
	default:
		return nil, false
	}
}
