package funcs

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Throttler limits calls of fn to at most one per wait window.
//
// A call made when the window since the last run has elapsed, and nothing is
// pending, runs fn at once and starts a new window. A call made inside the
// window schedules a single trailing run for the moment the window ends;
// further calls before then only replace the argument that run will receive.
// There is never more than one trailing run pending.
//
// Every call returns the most recent result of fn synchronously, which stays
// stale until a pending trailing run has happened. When runs overlap, the
// result of the run that started last is kept.
type Throttler[A, R any] struct {
	fn     func(A) R
	wait   time.Duration
	clock  Clock
	logger *zap.Logger

	mu      sync.Mutex
	ran     bool
	last    time.Time // start of the current window
	result  R
	pending Stopper // non-nil while a trailing run is scheduled
	gen     uint64  // identifies the pending trailing run
	nextArg A
	started uint64 // runs started so far
	stored  uint64 // run whose result is held
}

// NewThrottler returns a [Throttler] for fn with the given window.
func NewThrottler[A, R any](fn func(A) R, wait time.Duration, opts ...Option) *Throttler[A, R] {
	cfg := newConfig(opts)
	return &Throttler[A, R]{fn: fn, wait: wait, clock: cfg.clock, logger: cfg.logger}
}

// Throttle returns a rate-limited version of fn. It is shorthand for
// NewThrottler(fn, wait, opts...).Call.
func Throttle[A, R any](fn func(A) R, wait time.Duration, opts ...Option) func(A) R {
	return NewThrottler(fn, wait, opts...).Call
}

// Call runs or schedules fn(arg) according to the throttling policy and
// returns the latest result.
func (t *Throttler[A, R]) Call(arg A) R {
	t.mu.Lock()
	if t.pending != nil {
		t.nextArg = arg
		res := t.result
		t.mu.Unlock()
		return res
	}
	now := t.clock.Now()
	if elapsed := now.Sub(t.last); t.ran && elapsed < t.wait {
		t.nextArg = arg
		t.gen++
		gen, in := t.gen, t.wait-elapsed
		t.pending = t.clock.AfterFunc(in, func() { t.fire(gen) })
		res := t.result
		t.mu.Unlock()
		t.logger.Debug("throttle: trailing call scheduled", zap.Duration("in", in))
		return res
	}
	t.ran, t.last = true, now
	t.started++
	seq := t.started
	t.mu.Unlock()

	return t.run(arg, seq)
}

// Cancel drops the pending trailing run, if any, and reports whether there
// was one.
func (t *Throttler[A, R]) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == nil {
		return false
	}
	t.pending.Stop()
	t.pending = nil
	var zero A
	t.nextArg = zero
	t.logger.Debug("throttle: trailing call cancelled")
	return true
}

// Pending reports whether a trailing run is scheduled.
func (t *Throttler[A, R]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

// Result returns the most recent result of fn without calling it.
func (t *Throttler[A, R]) Result() R {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

func (t *Throttler[A, R]) fire(gen uint64) {
	t.mu.Lock()
	if t.pending == nil || t.gen != gen {
		t.mu.Unlock()
		return
	}
	arg := t.nextArg
	var zero A
	t.pending, t.nextArg = nil, zero
	t.ran, t.last = true, t.clock.Now()
	t.started++
	seq := t.started
	t.mu.Unlock()

	t.logger.Debug("throttle: trailing call fired")
	t.run(arg, seq)
}

func (t *Throttler[A, R]) run(arg A, seq uint64) R {
	res := t.fn(arg)
	t.mu.Lock()
	if seq > t.stored {
		t.result, t.stored = res, seq
	}
	t.mu.Unlock()
	return res
}
