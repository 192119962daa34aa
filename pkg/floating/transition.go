package floating

import (
	"time"

	"github.com/go-drift/floating/pkg/animation"
	"github.com/go-drift/floating/pkg/style"
)

// Transition timing: ten 10ms steps, one hundred milliseconds total.
const (
	transitionPeriod = 10 * time.Millisecond
	transitionSteps  = 10
)

// SetFloating requests a transition to the given state. Calling it with
// the current state is a no-op, so repeated writes of the same value
// run exactly one transition.
//
// A transition samples the style's resting background color and the
// current configuration once at start; configuration changes made while
// it runs apply to future transitions only. If a transition is already
// in flight when the target flips, it is cancelled before the new one
// is scheduled, so at most one stepper ever mutates the visual state.
func (b *Background) SetFloating(target bool) {
	if b.floating == target {
		return
	}
	b.floating = target

	if b.cancelTransition != nil {
		b.cancelTransition()
		b.cancelTransition = nil
	}

	base := b.styles.BackgroundColor(style.StateNormal)
	baseAlpha := base.AlphaF()
	maxMargin := b.maxMargin
	maxRadius := b.maxRadius
	floatingOpacity := b.floatingOpacity
	b.state.color = base

	step := 0
	b.cancelTransition = b.scheduler.Schedule(transitionPeriod, func() bool {
		step++
		progress := float64(step) / transitionSteps
		if progress > 1 {
			progress = 1
		}

		// Un-floating runs the same curve in reverse.
		p := progress
		if !target {
			p = 1 - progress
		}

		b.state.margin = animation.Ease(p, 0, maxMargin)
		b.state.radius = animation.Ease(p, 0, maxRadius)
		b.state.color = base.WithAlphaF(animation.Ease(p, baseAlpha, floatingOpacity))

		b.requestRedraw()

		if progress >= 1 {
			b.cancelTransition = nil
			return false
		}
		return true
	})
}
