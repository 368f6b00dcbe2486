package behavior

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-jsondata/lifecycle"
	"github.com/0xalexb/hjarta-jsondata/logging"

	"go.uber.org/fx"
)

// NewModule creates an Fx module for a named JSON data behavior.
// The name is used as both the module name and the DI named tag for Config
// and the provided *Behavior.
// If any options are passed, the module supplies Config to DI from those
// options. Otherwise, Config must be provided externally (e.g., via
// config.Provider).
// The behavior is attached to the *lifecycle.Dispatcher found in the
// container when the graph is built, so a missing attribute fails the app
// before any record is processed.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...ConfigOption) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	nameTag := fmt.Sprintf(`name:"%s"`, name)

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(nameTag)),
		))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(
			fx.Annotate(
				func(behaviorCfg Config, logger *slog.Logger) (*Behavior, error) {
					return New(behaviorCfg, WithLogger(logging.ForBehavior(logger, name)))
				},
				fx.ParamTags(nameTag, ""),
				fx.ResultTags(nameTag),
			),
		),
		fx.Invoke(
			fx.Annotate(
				func(b *Behavior, dispatcher *lifecycle.Dispatcher) error {
					return b.Attach(dispatcher)
				},
				fx.ParamTags(nameTag, ""),
			),
		),
	)

	return fx.Module(name, moduleOpts...)
}
