// Package animation provides the timing primitives behind animated
// widgets: an injectable clock, a fixed-period interval stepper driven
// by the host frame loop, and easing curves.
//
// A transition registers an [Interval] with a short period; the host
// calls [StepIntervals] once per frame, which fires every callback
// whose period has elapsed. Callbacks return true to keep running or
// false to stop, so a finished transition unregisters itself.
package animation

import (
	"sync"
	"time"
)

var (
	intervalMu      sync.Mutex
	activeIntervals = make(map[*Interval]struct{})
)

// Interval invokes a callback once per fixed period while active.
//
// Interval is the low-level timing primitive used by widget
// transitions. It is cooperatively scheduled: nothing fires until the
// host calls [StepIntervals], and each callback is a bounded,
// non-blocking computation on the caller's execution context.
type Interval struct {
	period   time.Duration
	callback func() bool
	next     time.Time
	active   bool
}

// Every registers and starts an interval firing the callback each time
// the given period elapses. The callback returns true to continue or
// false to stop. The period must be positive.
func Every(period time.Duration, callback func() bool) *Interval {
	i := &Interval{
		period:   period,
		callback: callback,
		next:     Now().Add(period),
		active:   true,
	}
	intervalMu.Lock()
	activeIntervals[i] = struct{}{}
	intervalMu.Unlock()
	return i
}

// Stop deactivates the interval. Safe to call multiple times and from
// within the interval's own callback.
func (i *Interval) Stop() {
	if !i.active {
		return
	}
	i.active = false
	intervalMu.Lock()
	delete(activeIntervals, i)
	intervalMu.Unlock()
}

// IsActive returns whether the interval is currently registered.
func (i *Interval) IsActive() bool {
	return i.active
}

// StepIntervals fires all due interval callbacks. The host calls this
// once per frame. If more than one period elapsed since the last step,
// the callback fires once per elapsed period (catch-up), so slow frames
// do not stretch animations.
func StepIntervals() {
	now := Now()

	intervalMu.Lock()
	if len(activeIntervals) == 0 {
		intervalMu.Unlock()
		return
	}
	// Copy to avoid holding the lock during callbacks.
	intervals := make([]*Interval, 0, len(activeIntervals))
	for i := range activeIntervals {
		intervals = append(intervals, i)
	}
	intervalMu.Unlock()

	for _, i := range intervals {
		for i.active && !now.Before(i.next) {
			i.next = i.next.Add(i.period)
			if !i.callback() {
				i.Stop()
			}
		}
	}
}

// HasActiveIntervals returns true if any intervals are registered.
func HasActiveIntervals() bool {
	intervalMu.Lock()
	defer intervalMu.Unlock()
	return len(activeIntervals) > 0
}
