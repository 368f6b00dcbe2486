// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing and its
// PathString support for section navigation. Dotted section paths
// (e.g., "behaviors.hotel") are converted to YAML path format
// (e.g., "$.behaviors.hotel") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var cfg behavior.Config
//	err := parser.Parse(data, &cfg, "behaviors.hotel")
package yaml
