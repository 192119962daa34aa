package rendering

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo               // Draw line to point (x, y)
	PathOpArc                  // Circular arc around (cx, cy) from start to end angle
	PathOpClose                // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpArc:
		return "arc"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // MoveTo/LineTo=[x,y], Arc=[cx,cy,radius,startRad,endRad]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, Arc, and Close, then draw with
// Canvas.DrawPath.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// Arc adds a circular arc centered at (cx, cy) with the given radius,
// sweeping clockwise from startAngle to endAngle (radians, 0 = positive
// x axis). If the path already has a current point, a straight segment
// connects it to the arc's start point; otherwise the arc begins a new
// subpath.
func (p *Path) Arc(cx, cy, radius, startAngle, endAngle float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpArc,
		Args: []float64{cx, cy, radius, startAngle, endAngle},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Degrees converts an angle in degrees to radians for use with Arc.
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}

// RoundedRect returns a closed path tracing a rounded rectangle: four
// clockwise quarter arcs at the corners, ordered top-left, top-right,
// bottom-right, bottom-left, connected by implicit straight edges.
// Corner radii larger than half the rect's shorter dimension are not
// adjusted and produce overlapping arcs.
func RoundedRect(rect Rect, radius float64) *Path {
	p := NewPath()
	p.Arc(rect.Left+radius, rect.Top+radius, radius, Degrees(180), Degrees(270))
	p.Arc(rect.Right-radius, rect.Top+radius, radius, Degrees(270), Degrees(360))
	p.Arc(rect.Right-radius, rect.Bottom-radius, radius, Degrees(0), Degrees(90))
	p.Arc(rect.Left+radius, rect.Bottom-radius, radius, Degrees(90), Degrees(180))
	p.Close()
	return p
}
