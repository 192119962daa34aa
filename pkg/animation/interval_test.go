package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/floating/pkg/animation"
	"github.com/go-drift/floating/pkg/floatingtest"
)

func TestInterval_FiresPerElapsedPeriod(t *testing.T) {
	clock := floatingtest.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	count := 0
	interval := animation.Every(10*time.Millisecond, func() bool {
		count++
		return true
	})
	defer interval.Stop()

	animation.StepIntervals()
	if count != 0 {
		t.Fatalf("fired %d times before any time elapsed", count)
	}

	clock.Advance(10 * time.Millisecond)
	animation.StepIntervals()
	if count != 1 {
		t.Fatalf("after one period: fired %d times, want 1", count)
	}

	// A slow frame catches up: one callback per elapsed period.
	clock.Advance(30 * time.Millisecond)
	animation.StepIntervals()
	if count != 4 {
		t.Fatalf("after three more periods: fired %d times, want 4", count)
	}
}

func TestInterval_CallbackStops(t *testing.T) {
	clock := floatingtest.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	count := 0
	interval := animation.Every(10*time.Millisecond, func() bool {
		count++
		return count < 3
	})

	clock.Advance(100 * time.Millisecond)
	animation.StepIntervals()

	if count != 3 {
		t.Errorf("fired %d times, want 3 (callback stopped itself)", count)
	}
	if interval.IsActive() {
		t.Error("interval still active after callback returned false")
	}
	if animation.HasActiveIntervals() {
		t.Error("registry still has active intervals")
	}
}

func TestInterval_Stop(t *testing.T) {
	clock := floatingtest.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	count := 0
	interval := animation.Every(10*time.Millisecond, func() bool {
		count++
		return true
	})

	if !animation.HasActiveIntervals() {
		t.Fatal("expected an active interval after Every")
	}

	interval.Stop()
	interval.Stop() // idempotent

	clock.Advance(50 * time.Millisecond)
	animation.StepIntervals()
	if count != 0 {
		t.Errorf("stopped interval fired %d times", count)
	}
}
