package funcs

import "sync"

// Memo caches the results of a single-argument function by argument value.
//
// The lock guarding the cache is released while fn runs, so fn may call the
// memo recursively. Two goroutines that miss on the same key at the same
// time may both run fn; the first result stored wins and both callers get it.
type Memo[K comparable, R any] struct {
	fn func(K) R

	mu    sync.Mutex
	cache map[K]R
}

// NewMemo returns an empty [Memo] for fn.
func NewMemo[K comparable, R any](fn func(K) R) *Memo[K, R] {
	return &Memo[K, R]{fn: fn, cache: make(map[K]R)}
}

// Memoize returns a function that computes fn(key) once per distinct key and
// serves later calls from a cache. It is shorthand for NewMemo(fn).Call.
//
//	var fib func(int) int
//	fib = funcs.Memoize(func(n int) int {
//	    if n < 2 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
func Memoize[K comparable, R any](fn func(K) R) func(K) R {
	return NewMemo(fn).Call
}

// Call returns the cached result for key, computing it first if needed.
func (m *Memo[K, R]) Call(key K) R {
	m.mu.Lock()
	if v, ok := m.cache[key]; ok {
		m.mu.Unlock()
		return v
	}
	m.mu.Unlock()

	v := m.fn(key)

	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.cache[key]; ok {
		return prev
	}
	m.cache[key] = v
	return v
}

// Len returns the number of cached keys.
func (m *Memo[K, R]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

// Forget drops the cached result for key.
func (m *Memo[K, R]) Forget(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cache, key)
}

// Reset drops every cached result.
func (m *Memo[K, R]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.cache)
}
