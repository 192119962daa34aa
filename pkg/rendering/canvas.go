// Package rendering provides the drawing surface consumed by widgets:
// a Canvas interface, vector paths, paints, colors, and a display-list
// recorder for replaying or inspecting draw commands.
package rendering

// Canvas records or renders drawing commands.
//
// Implementations are not required to be safe for concurrent use; all
// drawing happens on the host's UI execution context.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ResetClip removes any clip region, restoring drawing to the full
	// surface. Unlike Restore, it does not touch the transform.
	ResetClip()

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
