// Package lifecycle dispatches a record's persistence events to registered
// hooks and fixes the order in which a host runs those events around its
// own validation and storage steps.
package lifecycle

import (
	"slices"

	"github.com/0xalexb/hjarta-jsondata/record"
)

// Event identifies a point in a record's persistence lifecycle.
type Event string

// Lifecycle events, in the vocabulary of active record frameworks.
const (
	BeforeInsert   Event = "before-insert"
	BeforeUpdate   Event = "before-update"
	BeforeValidate Event = "before-validate"
	AfterFind      Event = "after-find"
	AfterInsert    Event = "after-insert"
	AfterRefresh   Event = "after-refresh"
	AfterUpdate    Event = "after-update"
	AfterValidate  Event = "after-validate"
)

// Events returns every known event.
func Events() []Event {
	return []Event{
		BeforeInsert,
		BeforeUpdate,
		BeforeValidate,
		AfterFind,
		AfterInsert,
		AfterRefresh,
		AfterUpdate,
		AfterValidate,
	}
}

// Valid reports whether e is a known event.
func (e Event) Valid() bool {
	return slices.Contains(Events(), e)
}

func (e Event) String() string {
	return string(e)
}

// Hook runs when an event fires for a record. The event is passed as an
// opaque token so one function can serve several events.
type Hook func(event Event, rec record.Record) error
