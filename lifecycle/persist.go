package lifecycle

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-jsondata/record"
)

// Store is the host's storage for records. It only moves attribute values
// between the record and the database; hooks run around it.
type Store interface {
	Insert(rec record.Record) error
	Update(rec record.Record) error
	Load(rec record.Record) error
}

// Validate runs before-validate, the configured validator, then
// after-validate. after-validate runs even when the validator fails, so
// hooks can restore the record; both errors are returned joined.
func (d *Dispatcher) Validate(rec record.Record) error {
	err := d.Trigger(BeforeValidate, rec)
	if err != nil {
		return err
	}

	var validationErr error

	if d.validator != nil {
		err = d.validator(rec)
		if err != nil {
			validationErr = fmt.Errorf("validating record: %w", err)
		}
	}

	return errors.Join(validationErr, d.Trigger(AfterValidate, rec))
}

// Insert validates rec, then runs before-insert, store.Insert and
// after-insert.
func (d *Dispatcher) Insert(rec record.Record, store Store) error {
	return d.write(rec, BeforeInsert, AfterInsert, "inserting", store.Insert)
}

// Update validates rec, then runs before-update, store.Update and
// after-update.
func (d *Dispatcher) Update(rec record.Record, store Store) error {
	return d.write(rec, BeforeUpdate, AfterUpdate, "updating", store.Update)
}

// Find loads rec from store and runs after-find.
func (d *Dispatcher) Find(rec record.Record, store Store) error {
	return d.load(rec, AfterFind, store)
}

// Refresh reloads rec from store and runs after-refresh.
func (d *Dispatcher) Refresh(rec record.Record, store Store) error {
	return d.load(rec, AfterRefresh, store)
}

func (d *Dispatcher) write(rec record.Record, before, after Event, action string, op func(record.Record) error) error {
	err := d.Validate(rec)
	if err != nil {
		return err
	}

	err = d.Trigger(before, rec)
	if err != nil {
		return err
	}

	err = op(rec)
	if err != nil {
		return fmt.Errorf("%s record: %w", action, err)
	}

	return d.Trigger(after, rec)
}

func (d *Dispatcher) load(rec record.Record, after Event, store Store) error {
	err := store.Load(rec)
	if err != nil {
		return fmt.Errorf("loading record: %w", err)
	}

	return d.Trigger(after, rec)
}
