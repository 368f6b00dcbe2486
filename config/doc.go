// Package config loads configuration sections, such as the settings of a
// JSON data behavior, into typed structs.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into config struct, with path navigation support
//   - DataFetcher: retrieves raw config data (file, memory, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// The Provider function accepts a path parameter that targets a section of
// the configuration document. Paths are dotted, like datapath paths:
//
//	"behaviors.hotel"     -> config["behaviors"]["hotel"]
//	"models.room.data"    -> config["models"]["room"]["data"]
//	""                    -> entire document
//
// Two parsers are available: config/parser/yaml navigates with goccy/go-yaml
// PathString, config/parser/json navigates the decoded document with datapath.
//
// # Example
//
// Loading the configuration of one behavior:
//
//	provider := config.Provider(&behavior.Config{}, "behaviors.hotel")
//	fetcher, err := filefetcher.NewFetcher("config.yaml")()
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
package config
