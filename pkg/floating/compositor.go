package floating

import (
	"github.com/go-drift/floating/pkg/errors"
	"github.com/go-drift/floating/pkg/layout"
	"github.com/go-drift/floating/pkg/rendering"
	"github.com/go-drift/floating/pkg/style"
)

// Paint renders the background and delegates to the child, if any.
//
// The background is a rounded rectangle inset by the current margin on
// all sides, traced as four quarter arcs (top-left, top-right,
// bottom-right, bottom-left) and filled with the current color. The
// child is then positioned with top/start/end insets of margin plus the
// style padding (the end inset mirrors the start inset; the bottom edge
// is never inset) and painted onto the same canvas, after which any
// clip the delegation established is reset.
//
// Paint reads the visual state and never mutates it: two consecutive
// calls with no intervening state change produce identical draw
// commands. A child paint error or a panic out of the canvas backend
// aborts the remainder of the pass and is reported through the
// diagnostic handler; the widget keeps its prior visual state and the
// next scheduled frame retries naturally.
//
// No clamping is applied when margin plus radius exceeds half the
// viewport's shorter dimension; the corner arcs degenerate instead.
func (b *Background) Paint(canvas rendering.Canvas, width, height float64) {
	defer errors.Recover("floating.Background.Paint")

	margin := b.state.margin
	radius := b.state.radius
	color := b.state.color
	padding := b.styles.Padding(style.StateNormal)

	canvas.Save()
	rect := rendering.RectFromLTWH(0, 0, width, height).Inset(margin)
	canvas.DrawPath(rendering.RoundedRect(rect, radius), rendering.FillPaint(color))
	canvas.Restore()

	if b.child == nil {
		return
	}

	canvas.Save()
	start := margin + padding.Left
	b.child.SetInsets(layout.EdgeInsets{
		Left:  start,
		Top:   margin + padding.Top,
		Right: start,
	})
	err := b.child.Paint(canvas)
	canvas.ResetClip()
	canvas.Restore()

	if err != nil {
		errors.Report(&errors.WidgetError{
			Op:   "floating.Background.Paint",
			Kind: errors.KindRender,
			Err:  err,
		})
	}
}
