package jsondata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-jsondata/lifecycle"
	"github.com/0xalexb/hjarta-jsondata/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// ErrAppNotInitialized is returned when an App method is called on a nil or
// zero App.
var ErrAppNotInitialized = errors.New("app not initialized")

// App wires JSON data behaviors into an Fx application. The container holds
// one *lifecycle.Dispatcher that every behavior module attaches its hooks to;
// the host triggers record events through it.
type App struct {
	app        *fx.App
	dispatcher *lifecycle.Dispatcher
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{}
	app.app = configure(&options, &app.dispatcher)

	return app
}

func configure(options *Options, dispatcher **lifecycle.Dispatcher) *fx.App {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Source: options.LogSource}
	logger := logging.NewLogger(loggerConfig, os.Stderr)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Provide(newDispatcher),
		fx.Populate(dispatcher),
		fx.Options(options.Modules...),
	)
}

func newDispatcher(logger *slog.Logger) *lifecycle.Dispatcher {
	return lifecycle.NewDispatcher(lifecycle.WithLogger(logger))
}

// Err returns the error that prevented the application graph from being
// built, such as a behavior configured without a data attribute.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return ErrAppNotInitialized
	}

	return app.app.Err()
}

// Dispatcher returns the dispatcher the behaviors are attached to. It is nil
// when the application graph failed to build.
func (app *App) Dispatcher() *lifecycle.Dispatcher {
	if app == nil {
		return nil
	}

	return app.dispatcher
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return ErrAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return ErrAppNotInitialized
}
