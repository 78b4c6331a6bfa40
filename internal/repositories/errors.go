package repositories

import (
	"errors"
	"fmt"
)

// Error kinds returned by the store. Match them with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrSelfFollow = errors.New("self follow")
	ErrValidation = errors.New("validation failed")
)

// StoreError describes a failed store operation.
type StoreError struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// Entity names the record type involved ("user", "post", "comment", "follow", "like").
	Entity string

	// ID identifies the offending record, when there is one.
	ID string

	// Message is a human-readable description.
	Message string
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s (%s %s)", e.Message, e.Entity, e.ID)
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Kind
}

func notFound(entity, id string) error {
	return &StoreError{Kind: ErrNotFound, Entity: entity, ID: id, Message: entity + " not found"}
}

func conflict(entity, id, msg string) error {
	return &StoreError{Kind: ErrConflict, Entity: entity, ID: id, Message: msg}
}

func invalid(entity, msg string) error {
	return &StoreError{Kind: ErrValidation, Entity: entity, Message: msg}
}
