package config

import (
	"fmt"
	"log/slog"
)

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter selects a section of the configuration document using the
// same dotted notation as datapath. For example:
//   - "behaviors.hotel" navigates to config["behaviors"]["hotel"]
//   - "models.hotel.data" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Bytes is a DataFetcher over configuration data already held in memory.
type Bytes []byte

// Fetch returns a copy of the data.
func (b Bytes) Fetch() ([]byte, error) {
	return append([]byte(nil), b...), nil
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
// Defaults are applied before validation so a Validator only sees complete values.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing section %q: %w", path, err)
		}

		if defaulter, ok := any(target).(Defaulter); ok && defaulter.SetDefaults() {
			slog.Info("defaults applied", slog.String("path", path))
		}

		if validator, ok := any(target).(Validator); ok {
			err = validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating section %q: %w", path, err)
			}
		}

		return target, nil
	}
}
