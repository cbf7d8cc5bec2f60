package funcs

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Timer is the handle returned by [Delay].
type Timer struct {
	stopper Stopper
	fired   atomic.Bool
	logger  *zap.Logger
}

// Delay calls fn(args...) once, no earlier than wait from now, on
// [SystemClock]. It returns immediately.
//
//	funcs.Delay(func(names ...string) { greet(names...) }, 500*time.Millisecond, "a", "b")
func Delay[A any](fn func(...A), wait time.Duration, args ...A) *Timer {
	return DelayOn(SystemClock, fn, wait, args...)
}

// DelayOn is [Delay] scheduling on clock.
func DelayOn[A any](clock Clock, fn func(...A), wait time.Duration, args ...A) *Timer {
	t := &Timer{logger: Logger()}
	t.stopper = clock.AfterFunc(wait, func() {
		t.fired.Store(true)
		t.logger.Debug("delay: firing", zap.Duration("wait", wait))
		fn(args...)
	})
	t.logger.Debug("delay: scheduled", zap.Duration("wait", wait))
	return t
}

// Stop cancels the call. It reports whether the call was prevented; false
// means it already ran (or is running) or was stopped before.
func (t *Timer) Stop() bool {
	stopped := t.stopper.Stop()
	if stopped {
		t.logger.Debug("delay: stopped")
	}
	return stopped
}

// Fired reports whether the scheduled call has started.
func (t *Timer) Fired() bool { return t.fired.Load() }
