package funcs_test

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hasbyte1/go-underbar/funcs"
)

func TestDelayOn(t *testing.T) {
	clock := newFakeClock()
	var got []string
	timer := funcs.DelayOn(clock, func(args ...string) { got = append(got, args...) },
		500*time.Millisecond, "a", "b")

	clock.Advance(499 * time.Millisecond)
	if len(got) != 0 || timer.Fired() {
		t.Fatal("Delay fired before the wait elapsed")
	}
	clock.Advance(time.Millisecond)
	assertSlice(t, got, []string{"a", "b"})
	if !timer.Fired() {
		t.Fatal("Fired should be true after the call")
	}
	if timer.Stop() {
		t.Fatal("Stop after firing should return false")
	}
}

func TestDelayStop(t *testing.T) {
	clock := newFakeClock()
	calls := 0
	timer := funcs.DelayOn(clock, func(...int) { calls++ }, time.Second)
	if !timer.Stop() {
		t.Fatal("Stop before firing should return true")
	}
	clock.Advance(time.Hour)
	if calls != 0 {
		t.Fatal("stopped Delay must not fire")
	}
	if timer.Stop() {
		t.Fatal("second Stop should return false")
	}
}

func TestDelayDoesNotBlock(t *testing.T) {
	done := make(chan []int, 1)
	start := time.Now()
	funcs.Delay(func(args ...int) { done <- args }, 20*time.Millisecond, 1, 2, 3)
	if time.Since(start) >= 20*time.Millisecond {
		t.Fatal("Delay blocked the caller")
	}
	select {
	case args := <-done:
		assertSlice(t, args, []int{1, 2, 3})
		if time.Since(start) < 20*time.Millisecond {
			t.Fatal("Delay fired early")
		}
	case <-time.After(time.Second):
		t.Fatal("Delay never fired")
	}
}

func TestDelayLogsThroughPackageLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	funcs.SetLogger(zap.New(core))
	defer funcs.SetLogger(nil)

	clock := newFakeClock()
	funcs.DelayOn(clock, func(...int) {}, time.Second)
	clock.Advance(time.Second)
	funcs.DelayOn(clock, func(...int) {}, time.Second).Stop()

	for msg, want := range map[string]int{
		"delay: scheduled": 2,
		"delay: firing":    1,
		"delay: stopped":   1,
	} {
		if got := logs.FilterMessage(msg).Len(); got != want {
			t.Errorf("%q logged %d times; want %d", msg, got, want)
		}
	}
}
