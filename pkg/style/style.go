// Package style supplies resolved visual styles to widgets.
//
// Widgets consume styles through the read-only Provider interface so
// the lookup source stays injectable: a fixed Static value, a widget
// entry from a YAML Sheet, or a host adapter over its own theme engine.
package style

import (
	"fmt"

	"github.com/go-drift/floating/pkg/layout"
	"github.com/go-drift/floating/pkg/rendering"
)

// State identifies the widget state a style value is resolved for.
type State int

const (
	// StateNormal is the resting widget state.
	StateNormal State = iota
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Provider resolves style values for a widget. Implementations must be
// read-only from the widget's point of view: widgets sample values at
// transition start and at paint time and never write back.
type Provider interface {
	// BackgroundColor returns the resolved background color for the state.
	BackgroundColor(state State) rendering.Color

	// Padding returns the resolved content padding for the state.
	Padding(state State) layout.EdgeInsets
}

// Static is a Provider with fixed values for every state.
type Static struct {
	Background rendering.Color
	Insets     layout.EdgeInsets
}

// BackgroundColor returns the fixed background color.
func (s Static) BackgroundColor(State) rendering.Color {
	return s.Background
}

// Padding returns the fixed padding.
func (s Static) Padding(State) layout.EdgeInsets {
	return s.Insets
}

// Default returns the fallback style: opaque white background, zero padding.
func Default() Static {
	return Static{Background: rendering.ColorWhite}
}
