package collections

// Enumerable is the interface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so that callers can pass either a
// sequence or a mapping without depending on the concrete *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every value in traversal order.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, key) for every item in traversal order.
	Each(fn func(T, Key))

	// Every reports whether fn holds for every item.
	Every(fn func(T, Key) bool) bool

	// Filter returns a new sequence containing only items for which fn
	// returns true.
	Filter(fn func(T, Key) bool) *Collection[T]

	// IsMap reports whether the items are keyed by name.
	IsMap() bool

	// Keys returns the key of every item in traversal order.
	Keys() []Key

	// Reject returns a new sequence with the items for which fn returns
	// true removed.
	Reject(fn func(T, Key) bool) *Collection[T]

	// Some reports whether fn holds for at least one item.
	Some(fn func(T, Key) bool) bool
}

var _ Enumerable[int] = (*Collection[int])(nil)
