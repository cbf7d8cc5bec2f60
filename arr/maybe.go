package arr

import "fmt"

// Maybe marks a value that may be absent. [Zip] uses it to tell a missing
// position apart from a present zero value.
//
// Portability note: this is Option<T> in Rust and `undefined` padding in
// JavaScript's zip helpers.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Some wraps a present value.
func Some[T any](v T) Maybe[T] { return Maybe[T]{Value: v, Present: true} }

// None returns the absent marker for T.
func None[T any]() Maybe[T] { return Maybe[T]{} }

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) { return m.Value, m.Present }

// OrElse returns the value, or def when absent.
func (m Maybe[T]) OrElse(def T) T {
	if !m.Present {
		return def
	}
	return m.Value
}

// String renders present values with %v and absent ones as "<absent>".
func (m Maybe[T]) String() string {
	if !m.Present {
		return "<absent>"
	}
	return fmt.Sprint(m.Value)
}
