// Package json provides a JSON parser implementation for the config package.
//
// The document is decoded once into the generic document shape, the
// requested section is located with datapath, and only that section is
// unmarshaled into the target with github.com/segmentio/encoding/json.
//
//	parser := json.NewParser()
//	var cfg behavior.Config
//	err := parser.Parse(data, &cfg, "behaviors.hotel")
package json

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-jsondata/codec"
	"github.com/0xalexb/hjarta-jsondata/datapath"

	"github.com/segmentio/encoding/json"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the JSON document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser interface for JSON data.
type Parser struct {
	codec codec.JSON
}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses JSON data and unmarshals the section at path into target.
// The empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := json.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	document, err := p.codec.Decode(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	section, err := datapath.Lookup(document, path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPathNotFound, path, err)
	}

	encoded, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = json.Unmarshal(encoded, target)
	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}
