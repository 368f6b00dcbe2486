package jsondata

import (
	"github.com/0xalexb/hjarta-jsondata/behavior"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogSource bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithBehavior adds a named JSON data behavior module to the application.
// The name is used as both the Fx module name and the DI named tag for
// behavior.Config and *behavior.Behavior.
// When options are provided (e.g., behavior.WithAttribute), Config is supplied
// to DI automatically; otherwise provide a named Config, for example with
// config.Provider.
// Call multiple times with different names to attach several behaviors.
func WithBehavior(name string, opts ...behavior.ConfigOption) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, behavior.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogSource adds the source file and line to every log entry.
func WithLogSource() Option {
	return func(opts *Options) {
		opts.LogSource = true
	}
}
