package rendering_test

import (
	"testing"

	"github.com/go-drift/floating/pkg/rendering"
)

func TestRect_Dimensions(t *testing.T) {
	r := rendering.RectFromLTWH(10, 20, 100, 40)
	if r.Width() != 100 || r.Height() != 40 {
		t.Errorf("dimensions = (%v, %v), want (100, 40)", r.Width(), r.Height())
	}
	if r.Size() != (rendering.Size{Width: 100, Height: 40}) {
		t.Errorf("Size = %+v", r.Size())
	}
	if r.Right != 110 || r.Bottom != 60 {
		t.Errorf("edges = (%v, %v), want (110, 60)", r.Right, r.Bottom)
	}
}

func TestRect_Inset(t *testing.T) {
	r := rendering.RectFromLTWH(0, 0, 100, 40).Inset(7)
	if r != (rendering.Rect{Left: 7, Top: 7, Right: 93, Bottom: 33}) {
		t.Errorf("Inset(7) = %+v", r)
	}
	if got := r.Inset(-7); got != rendering.RectFromLTWH(0, 0, 100, 40) {
		t.Errorf("negative inset does not undo: %+v", got)
	}
}

func TestRect_IsEmpty(t *testing.T) {
	if rendering.RectFromLTWH(0, 0, 100, 40).IsEmpty() {
		t.Error("non-degenerate rect reported empty")
	}
	// Over-inset collapses the rect, as an oversized margin would.
	if !rendering.RectFromLTWH(0, 0, 100, 40).Inset(25).IsEmpty() {
		t.Error("collapsed rect not reported empty")
	}
}
