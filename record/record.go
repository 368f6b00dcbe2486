// Package record gives behaviors read and write access to the named
// attributes of a host-owned record without depending on its concrete type.
package record

import (
	"errors"
)

// ErrNotStructPointer is returned by Struct when it is not given a non-nil
// pointer to a struct.
var ErrNotStructPointer = errors.New("record must be a non-nil pointer to a struct")

// ErrUnknownAttribute is returned when a record has no attribute with the
// requested name.
var ErrUnknownAttribute = errors.New("unknown attribute")

// ErrIncompatibleValue is returned when a value cannot be stored in an
// attribute.
var ErrIncompatibleValue = errors.New("incompatible attribute value")

// Record reads and writes attributes by name.
type Record interface {
	Get(name string) (any, error)
	Set(name string, value any) error
}

// Map is a Record backed by a map. Missing attributes read as nil.
type Map map[string]any

// Get implements Record.
func (m Map) Get(name string) (any, error) {
	return m[name], nil
}

// Set implements Record.
func (m Map) Set(name string, value any) error {
	m[name] = value

	return nil
}
