package behavior

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-jsondata/codec"
)

// DefaultCodec is the codec used when Config.Codec is empty.
const DefaultCodec = codec.JSONName

// ErrConfiguration is wrapped by every error caused by an invalid Config.
var ErrConfiguration = errors.New("invalid json data behavior configuration")

// ErrMissingAttribute is returned when Config.Attribute is empty.
var ErrMissingAttribute = errors.New("data attribute must be specified")

// ErrEmptyName is returned when the behavior module name is empty.
var ErrEmptyName = errors.New("behavior name must not be empty")

// Config holds the configuration of a JSON data behavior.
type Config struct {
	// Attribute names the record attribute holding the document.
	Attribute string `json:"attribute" yaml:"attribute"`
	// Codec names the registered codec used to store the document.
	Codec string `json:"codec" yaml:"codec"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	if c.Codec == "" {
		c.Codec = DefaultCodec

		return true
	}

	return false
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Attribute == "" {
		return fmt.Errorf("%w: %w", ErrConfiguration, ErrMissingAttribute)
	}

	_, err := codec.Lookup(c.Codec)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return nil
}

// ConfigOption defines a function type for configuring a behavior module.
type ConfigOption func(*Config)

// WithAttribute sets the record attribute holding the document.
func WithAttribute(name string) ConfigOption {
	return func(cfg *Config) {
		cfg.Attribute = name
	}
}

// WithCodec sets the name of the codec used to store the document.
func WithCodec(name string) ConfigOption {
	return func(cfg *Config) {
		cfg.Codec = name
	}
}
