package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-jsondata/datapath"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser interface for YAML data.
// It uses goccy/go-yaml PathString for path navigation.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data and unmarshals it into the target.
// The path parameter is a dotted section path; the empty path parses the
// entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(yamlPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// yamlPath converts a dotted section path to goccy/go-yaml PathString format.
// Keys holding PathString reserved characters are quoted:
//   - "behaviors.hotel" -> "$.behaviors.hotel"
//   - "models.room[1]"  -> "$.models.'room[1]'"
func yamlPath(path string) string {
	var builder strings.Builder

	builder.WriteString("$")

	for _, segment := range datapath.Split(path) {
		builder.WriteString(".")

		if !strings.ContainsAny(segment, reservedChars) {
			builder.WriteString(segment)

			continue
		}

		builder.WriteString("'" + quoteEscaper.Replace(segment) + "'")
	}

	return builder.String()
}

const reservedChars = "$*[]'\\"

//nolint:gochecknoglobals // immutable replacer.
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
