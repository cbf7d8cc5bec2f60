// Package funcs provides function decorators: wrappers that take a function
// and return a new one with different call semantics.
//
//   - [Once] runs the wrapped function on the first call only and replays
//     its result.
//   - [Memoize] / [Memo] cache results per distinct argument.
//   - [Delay] runs a function once after a wait, without blocking.
//   - [Throttle] / [Throttler] run a function at most once per window,
//     collapsing calls made inside the window into one trailing call.
//
// Each decorator owns its state; two wrappers built from the same function
// share nothing.
//
// # Time
//
// [Delay] and [Throttler] read time and schedule calls through a [Clock].
// [SystemClock] is the default; tests substitute their own with [WithClock]
// or [DelayOn]. Scheduled calls run on the clock's goroutine, so all
// decorator state is guarded by a mutex, and the wrapped function is never
// called with that mutex held.
//
// # Logging
//
// Scheduling, firing and cancellation are logged at debug level through a
// [go.uber.org/zap] logger. The package [Logger] is a no-op until replaced
// with [SetLogger]; [WithLogger] overrides it per decorator.
package funcs
