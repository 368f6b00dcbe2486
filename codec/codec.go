// Package codec converts decoded documents to and from the text stored in a
// record attribute. Codecs are registered by name so configuration can pick
// one; "json" and "yaml" are always available.
package codec

import (
	"fmt"
	"slices"
	"sync"
)

// Codec encodes a document into its stored text form and decodes it back.
type Codec interface {
	// Name is the registry key of the codec.
	Name() string
	// Encode returns the text form of v. It fails with *EncodeError only
	// for values the format cannot represent.
	Encode(v any) (string, error)
	// Decode parses data into the generic document shape. Malformed input
	// fails with *DecodeError. The empty string decodes to nil.
	Decode(data string) (any, error)
}

//nolint:gochecknoglobals // process wide codec registry.
var (
	registryMu sync.RWMutex
	registry   = map[string]Codec{}
)

// Register adds c to the registry. It panics if a codec with the same name
// is already registered, so it belongs in init functions.
func Register(c Codec) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := c.Name()
	if _, ok := registry[name]; ok {
		panic(fmt.Errorf("codec %q is already registered", name))
	}

	registry[name] = c
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	return c, nil
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
