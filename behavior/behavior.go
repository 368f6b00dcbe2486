// Package behavior attaches a JSON document to one attribute of a record.
//
// While a record is in use the attribute holds the decoded document and can
// be read and written with dotted paths through Data and SetData. Around
// persistence the attribute holds the encoded text: the behavior encodes it
// before validation, insert and update, and decodes it after find, insert,
// refresh, update and validation.
//
//	hotelData, err := behavior.New(behavior.Config{Attribute: "hotel_data"})
//	if err != nil {
//	    return err
//	}
//
//	err = hotelData.Attach(dispatcher)
//
//	price, found, err := hotelData.Data(rec, "rooms.0.price")
//	err = hotelData.SetData(rec, "ratings.3star.count", 20)
package behavior

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-jsondata/codec"
	"github.com/0xalexb/hjarta-jsondata/datapath"
	"github.com/0xalexb/hjarta-jsondata/lifecycle"
	"github.com/0xalexb/hjarta-jsondata/record"
)

// Behavior encodes, decodes and accesses the document stored in one record
// attribute. It holds no per-record state and may be shared between records
// and goroutines.
type Behavior struct {
	attribute string
	codec     codec.Codec
	logger    *slog.Logger
}

// Binding pairs a lifecycle event with the hook the behavior runs for it.
type Binding struct {
	Event lifecycle.Event
	Name  string
	Hook  lifecycle.Hook
}

// Option configures a Behavior.
type Option func(*Behavior)

// WithLogger sets the logger used by the hooks.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Behavior) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithCodecImpl uses c instead of looking up Config.Codec in the registry.
func WithCodecImpl(c codec.Codec) Option {
	return func(b *Behavior) {
		b.codec = c
	}
}

// New creates a Behavior from cfg. Defaults are applied to a copy of cfg
// before it is validated; a missing attribute fails with an error wrapping
// ErrConfiguration and ErrMissingAttribute.
func New(cfg Config, opts ...Option) (*Behavior, error) {
	b := &Behavior{
		attribute: cfg.Attribute,
		logger:    slog.Default(),
	}

	for _, apply := range opts {
		apply(b)
	}

	if b.codec != nil {
		if b.attribute == "" {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrMissingAttribute)
		}

		return b, nil
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	b.codec, err = codec.Lookup(cfg.Codec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return b, nil
}

// Attribute returns the name of the attribute holding the document.
func (b *Behavior) Attribute() string {
	return b.attribute
}

// Codec returns the codec used to store the document.
func (b *Behavior) Codec() codec.Codec {
	return b.codec
}

// Data returns the value at path inside the record's document. found is
// false when the path does not resolve, which keeps a missing value apart
// from a stored null.
func (b *Behavior) Data(rec record.Record, path string) (any, bool, error) {
	document, err := b.document(rec)
	if err != nil {
		return nil, false, err
	}

	value, found := datapath.Get(document, path)

	return value, found, nil
}

// DataOr returns the value at path, or def when the path does not resolve.
func (b *Behavior) DataOr(rec record.Record, path string, def any) (any, error) {
	document, err := b.document(rec)
	if err != nil {
		return nil, err
	}

	return datapath.GetOr(document, path, def), nil
}

// SetData merges value into the record's document at path and stores the
// merged document back in the attribute. Sequences already present at path
// are appended to, mappings are merged key by key.
func (b *Behavior) SetData(rec record.Record, path string, value any) error {
	document, err := b.document(rec)
	if err != nil {
		return err
	}

	err = rec.Set(b.attribute, datapath.Merge(document, path, value))
	if err != nil {
		return fmt.Errorf("storing %q: %w", b.attribute, err)
	}

	return nil
}

// Encode replaces the attribute's document with its encoded text.
func (b *Behavior) Encode(event lifecycle.Event, rec record.Record) error {
	document, err := b.document(rec)
	if err != nil {
		return err
	}

	text, err := b.codec.Encode(document)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", b.attribute, err)
	}

	err = rec.Set(b.attribute, text)
	if err != nil {
		return fmt.Errorf("storing %q: %w", b.attribute, err)
	}

	b.logger.Debug("json data encoded", b.attrs(event)...)

	return nil
}

// Decode replaces the attribute's encoded text with the decoded document.
// Malformed text fails with a *codec.DecodeError and leaves the attribute
// unchanged.
func (b *Behavior) Decode(event lifecycle.Event, rec record.Record) error {
	stored, err := b.document(rec)
	if err != nil {
		return err
	}

	document, err := codec.DecodeText(b.codec, stored)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", b.attribute, err)
	}

	err = rec.Set(b.attribute, document)
	if err != nil {
		return fmt.Errorf("storing %q: %w", b.attribute, err)
	}

	b.logger.Debug("json data decoded", b.attrs(event)...)

	return nil
}

// Bindings returns the hooks the behavior runs and the events they belong to.
func (b *Behavior) Bindings() []Binding {
	encode := "jsondata.encode:" + b.attribute
	decode := "jsondata.decode:" + b.attribute

	return []Binding{
		{Event: lifecycle.BeforeInsert, Name: encode, Hook: b.Encode},
		{Event: lifecycle.BeforeUpdate, Name: encode, Hook: b.Encode},
		{Event: lifecycle.BeforeValidate, Name: encode, Hook: b.Encode},
		{Event: lifecycle.AfterFind, Name: decode, Hook: b.Decode},
		{Event: lifecycle.AfterInsert, Name: decode, Hook: b.Decode},
		{Event: lifecycle.AfterRefresh, Name: decode, Hook: b.Decode},
		{Event: lifecycle.AfterUpdate, Name: decode, Hook: b.Decode},
		{Event: lifecycle.AfterValidate, Name: decode, Hook: b.Decode},
	}
}

// Attach registers every binding with dispatcher.
func (b *Behavior) Attach(dispatcher *lifecycle.Dispatcher) error {
	for _, binding := range b.Bindings() {
		err := dispatcher.On(binding.Event, binding.Name, binding.Hook)
		if err != nil {
			return fmt.Errorf("attaching %q: %w", binding.Name, err)
		}
	}

	return nil
}

func (b *Behavior) document(rec record.Record) (any, error) {
	document, err := rec.Get(b.attribute)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", b.attribute, err)
	}

	return document, nil
}

func (b *Behavior) attrs(event lifecycle.Event) []any {
	return []any{
		slog.String("attribute", b.attribute),
		slog.String("event", string(event)),
		slog.String("codec", b.codec.Name()),
	}
}
