// Package floating provides a single-child container widget that draws
// an animated rounded-rectangle background behind its content.
//
// The widget has two visual states: docked (background flush with the
// widget edges, square corners, fully opaque) and floating (background
// inset from the edges, rounded corners, semi-transparent). Setting the
// floating flag runs a short stepped transition between the two,
// recomputing margin, corner radius, and fill alpha on every tick and
// requesting a redraw from the host.
//
// The host toolkit stays behind narrow interfaces: styles come from an
// injected [style.Provider], periodic stepping from a [Scheduler], and
// repaints from a fire-and-forget callback. All methods must be called
// from the host's single UI execution context.
package floating

import (
	"fmt"

	"github.com/go-drift/floating/pkg/errors"
	"github.com/go-drift/floating/pkg/layout"
	"github.com/go-drift/floating/pkg/rendering"
	"github.com/go-drift/floating/pkg/style"
)

// Default configuration values.
const (
	DefaultMaxMargin       = 7.0
	DefaultMaxRadius       = 5.0
	DefaultFloatingOpacity = 0.8
)

// Configuration bounds. Setters clamp into these ranges.
const (
	maxMarginLimit = 100.0
	maxRadiusLimit = 360.0
)

// Child is the single content widget hosted by a Background.
//
// The Background borrows the reference; the host toolkit owns the
// child's lifetime.
type Child interface {
	// SetInsets positions the child inside the background. Only the
	// left (start), top, and right (end) components are used; the
	// bottom edge is never inset.
	SetInsets(insets layout.EdgeInsets)

	// Paint draws the child onto the canvas. A non-nil error aborts
	// the remainder of the parent's paint pass.
	Paint(canvas rendering.Canvas) error

	// Detach notifies the child that it was removed from the slot.
	Detach()
}

// visualState holds the interpolated visual parameters. It is owned by
// the transition stepper and read (never written) at paint time.
type visualState struct {
	margin float64
	radius float64
	color  rendering.Color
}

// Config carries the host hooks for a Background.
type Config struct {
	// Styles resolves the resting background color and content padding.
	// Nil means style.Default().
	Styles style.Provider

	// Scheduler starts the periodic transition stepper.
	// Nil means IntervalScheduler.
	Scheduler Scheduler

	// RequestRedraw asks the host to repaint the widget. It must be
	// fire-and-forget; the host coalesces repeated requests. Nil means
	// no-op.
	RequestRedraw func()
}

// Background is the animated container widget.
type Background struct {
	styles        style.Provider
	scheduler     Scheduler
	requestRedraw func()

	floating        bool
	maxMargin       float64
	maxRadius       float64
	floatingOpacity float64

	state visualState
	child Child

	cancelTransition func()
}

// New creates a docked Background with default configuration.
func New(cfg Config) *Background {
	b := &Background{
		styles:          cfg.Styles,
		scheduler:       cfg.Scheduler,
		requestRedraw:   cfg.RequestRedraw,
		maxMargin:       DefaultMaxMargin,
		maxRadius:       DefaultMaxRadius,
		floatingOpacity: DefaultFloatingOpacity,
		state:           visualState{color: rendering.ColorWhite},
	}
	if b.styles == nil {
		b.styles = style.Default()
	}
	if b.scheduler == nil {
		b.scheduler = IntervalScheduler{}
	}
	if b.requestRedraw == nil {
		b.requestRedraw = func() {}
	}
	return b
}

// Floating reports the last requested floating state.
func (b *Background) Floating() bool {
	return b.floating
}

// MaxMargin returns the margin the background reaches when floating.
func (b *Background) MaxMargin() float64 {
	return b.maxMargin
}

// SetMaxMargin sets the floating margin, clamped to [0, 100].
// Takes effect on the next transition.
func (b *Background) SetMaxMargin(v float64) {
	b.maxMargin = clamp(v, 0, maxMarginLimit)
}

// MaxRadius returns the corner radius the background reaches when floating.
func (b *Background) MaxRadius() float64 {
	return b.maxRadius
}

// SetMaxRadius sets the floating corner radius, clamped to [0, 360].
// Takes effect on the next transition.
func (b *Background) SetMaxRadius(v float64) {
	b.maxRadius = clamp(v, 0, maxRadiusLimit)
}

// FloatingOpacity returns the fill alpha the background reaches when floating.
func (b *Background) FloatingOpacity() float64 {
	return b.floatingOpacity
}

// SetFloatingOpacity sets the floating fill alpha, clamped to [0, 1].
// Takes effect on the next transition.
func (b *Background) SetFloatingOpacity(v float64) {
	b.floatingOpacity = clamp(v, 0, 1)
}

// Margin returns the current interpolated background inset.
func (b *Background) Margin() float64 {
	return b.state.margin
}

// Radius returns the current interpolated corner radius.
func (b *Background) Radius() float64 {
	return b.state.radius
}

// Color returns the current interpolated fill color.
func (b *Background) Color() rendering.Color {
	return b.state.color
}

// SetChild places a widget in the single-child slot. Adding a child
// while the slot is occupied is a usage error: the stale child is
// detached and the condition reported, then the new child is accepted.
// Assignment never triggers a repaint; it takes effect at the next
// natural paint.
func (b *Background) SetChild(child Child) {
	if b.child != nil {
		errors.Report(&errors.WidgetError{
			Op:   "floating.Background.SetChild",
			Kind: errors.KindUsage,
			Err:  fmt.Errorf("child slot already occupied; evicting previous child"),
		})
		b.child.Detach()
	}
	b.child = child
}

// RemoveChild clears the child slot, detaching the current child if any.
func (b *Background) RemoveChild() {
	if b.child == nil {
		return
	}
	b.child.Detach()
	b.child = nil
}

// Child returns the current child, or nil if the slot is empty.
func (b *Background) Child() Child {
	return b.child
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
