package floating

import (
	"time"

	"github.com/go-drift/floating/pkg/animation"
)

// Scheduler starts periodic callbacks for widget transitions.
//
// The callback returns true to keep firing or false to stop. The
// returned cancel function stops the callback early; calling it after
// the callback has stopped itself is a no-op.
type Scheduler interface {
	Schedule(period time.Duration, tick func() bool) (cancel func())
}

// IntervalScheduler schedules onto the animation package's interval
// registry. The host advances it by calling animation.StepIntervals
// once per frame.
type IntervalScheduler struct{}

// Schedule registers the callback as an animation interval.
func (IntervalScheduler) Schedule(period time.Duration, tick func() bool) func() {
	interval := animation.Every(period, tick)
	return interval.Stop
}
