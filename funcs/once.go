package funcs

import "sync"

// Once returns a function that calls fn on its first invocation only.
// The first call's argument is passed to fn; every later call, whatever its
// argument, returns the result of that first call. Concurrent callers block
// until the first call has finished.
//
// If fn panics, the panic propagates to the first caller and later calls
// return the zero value of R without calling fn again.
func Once[A, R any](fn func(A) R) func(A) R {
	var (
		once   sync.Once
		result R
	)
	return func(arg A) R {
		once.Do(func() { result = fn(arg) })
		return result
	}
}
