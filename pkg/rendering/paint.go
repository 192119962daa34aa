package rendering

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how a shape is drawn.
type Paint struct {
	// Color is the fill or stroke color.
	Color Color

	// Style selects filling or stroking. Defaults to PaintStyleFill.
	Style PaintStyle

	// StrokeWidth is the stroke thickness in pixels. Only used when
	// Style is PaintStyleStroke.
	StrokeWidth float64
}

// FillPaint returns a fill paint with the given color.
func FillPaint(color Color) Paint {
	return Paint{Color: color, Style: PaintStyleFill}
}
