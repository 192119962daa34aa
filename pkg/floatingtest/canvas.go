package floatingtest

import (
	"fmt"
	"strings"

	"github.com/go-drift/floating/pkg/rendering"
)

// RecordingCanvas implements rendering.Canvas and records each draw
// command as a formatted string, so tests can compare whole paint
// passes with a slice equality check.
type RecordingCanvas struct {
	ops  []string
	size rendering.Size
}

// NewRecordingCanvas creates a recording canvas with the given size.
func NewRecordingCanvas(size rendering.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the recorded commands in draw order.
func (c *RecordingCanvas) Ops() []string {
	return c.ops
}

// Reset clears the recorded commands.
func (c *RecordingCanvas) Reset() {
	c.ops = c.ops[:0]
}

func (c *RecordingCanvas) Save() {
	c.ops = append(c.ops, "save")
}

func (c *RecordingCanvas) Restore() {
	c.ops = append(c.ops, "restore")
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, fmt.Sprintf("translate(%.2f, %.2f)", dx, dy))
}

func (c *RecordingCanvas) ResetClip() {
	c.ops = append(c.ops, "reset_clip")
}

func (c *RecordingCanvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.ops = append(c.ops, fmt.Sprintf("draw_rect(%s) %s", formatRect(rect), formatPaint(paint)))
}

func (c *RecordingCanvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	commands := make([]string, 0, len(path.Commands))
	for _, cmd := range path.Commands {
		commands = append(commands, formatCommand(cmd))
	}
	c.ops = append(c.ops, fmt.Sprintf("draw_path[%s] %s", strings.Join(commands, " "), formatPaint(paint)))
}

func (c *RecordingCanvas) Size() rendering.Size {
	return c.size
}

func formatRect(r rendering.Rect) string {
	return fmt.Sprintf("%.2f, %.2f, %.2f, %.2f", r.Left, r.Top, r.Right, r.Bottom)
}

func formatPaint(p rendering.Paint) string {
	return fmt.Sprintf("%s #%08X", p.Style, uint32(p.Color))
}

func formatCommand(cmd rendering.PathCommand) string {
	if len(cmd.Args) == 0 {
		return cmd.Op.String()
	}
	args := make([]string, 0, len(cmd.Args))
	for _, a := range cmd.Args {
		args = append(args, fmt.Sprintf("%.2f", a))
	}
	return fmt.Sprintf("%s(%s)", cmd.Op, strings.Join(args, ", "))
}
