package lifecycle

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/0xalexb/hjarta-jsondata/record"
)

// ErrUnknownEvent is returned when registering a hook for an unknown event.
var ErrUnknownEvent = errors.New("unknown lifecycle event")

// ErrNilHook is returned when registering a nil hook.
var ErrNilHook = errors.New("hook must not be nil")

// HookError reports the hook that failed while an event was dispatched.
type HookError struct {
	Event Event
	Hook  string
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s hook %q: %v", e.Event, e.Hook, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

type namedHook struct {
	name string
	hook Hook
}

// Dispatcher holds the hooks registered per event and runs them in
// registration order. It is safe for concurrent use.
type Dispatcher struct {
	mu        sync.RWMutex
	hooks     map[Event][]namedHook
	logger    *slog.Logger
	validator func(record.Record) error
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithValidator sets the check Validate runs between before-validate and
// after-validate.
func WithValidator(validator func(record.Record) error) DispatcherOption {
	return func(d *Dispatcher) {
		d.validator = validator
	}
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	dispatcher := &Dispatcher{
		hooks:  map[Event][]namedHook{},
		logger: slog.Default(),
	}

	for _, apply := range opts {
		apply(dispatcher)
	}

	return dispatcher
}

// On registers hook under name for event.
func (d *Dispatcher) On(event Event, name string, hook Hook) error {
	if !event.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}

	if hook == nil {
		return fmt.Errorf("%w: %q", ErrNilHook, name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.hooks[event] = append(d.hooks[event], namedHook{name: name, hook: hook})

	return nil
}

// Hooks returns the names of the hooks registered for event, in order.
func (d *Dispatcher) Hooks(event Event) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.hooks[event]))
	for _, registered := range d.hooks[event] {
		names = append(names, registered.name)
	}

	return names
}

// Trigger runs the hooks registered for event against rec. It stops at the
// first failing hook and returns its error as a *HookError.
func (d *Dispatcher) Trigger(event Event, rec record.Record) error {
	d.mu.RLock()
	hooks := d.hooks[event]
	d.mu.RUnlock()

	for _, registered := range hooks {
		err := registered.hook(event, rec)
		if err != nil {
			d.logger.Debug("lifecycle hook failed",
				slog.String("event", string(event)),
				slog.String("hook", registered.name),
				slog.String("error", err.Error()),
			)

			return &HookError{Event: event, Hook: registered.name, Err: err}
		}
	}

	return nil
}
