package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrNotCallable is returned by InvokeMethod when an item has no callable
	// member with the requested name.
	ErrNotCallable = errors.New("collections: member is not callable")

	// ErrInvalidArgument is returned when the arguments handed to a callable
	// member do not match its signature.
	ErrInvalidArgument = errors.New("collections: invalid argument")
)
