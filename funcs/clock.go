package funcs

import "time"

// Clock is the time source the scheduling decorators run on.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f once, no earlier than d from now, and returns a
	// handle that cancels the call.
	AfterFunc(d time.Duration, f func()) Stopper
}

// Stopper cancels a scheduled call. Stop reports whether the call was
// prevented; it returns false if the call already ran or was stopped.
// *time.Timer satisfies Stopper.
type Stopper interface {
	Stop() bool
}

// SystemClock is the [Clock] backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}
