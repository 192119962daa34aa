package rendering_test

import (
	"math"
	"testing"

	"github.com/go-drift/floating/pkg/rendering"
)

func TestRoundedRect_ArcOrderAndGeometry(t *testing.T) {
	rect := rendering.RectFromLTWH(0, 0, 100, 40).Inset(7)
	path := rendering.RoundedRect(rect, 5)

	if len(path.Commands) != 5 {
		t.Fatalf("command count = %d, want 4 arcs + close", len(path.Commands))
	}

	// Corner centers in order: top-left, top-right, bottom-right, bottom-left.
	wantCenters := [][2]float64{
		{12, 12},
		{88, 12},
		{88, 28},
		{12, 28},
	}
	wantAngles := [][2]float64{
		{rendering.Degrees(180), rendering.Degrees(270)},
		{rendering.Degrees(270), rendering.Degrees(360)},
		{rendering.Degrees(0), rendering.Degrees(90)},
		{rendering.Degrees(90), rendering.Degrees(180)},
	}
	for i := 0; i < 4; i++ {
		cmd := path.Commands[i]
		if cmd.Op != rendering.PathOpArc {
			t.Fatalf("command %d op = %v, want arc", i, cmd.Op)
		}
		if cmd.Args[0] != wantCenters[i][0] || cmd.Args[1] != wantCenters[i][1] {
			t.Errorf("arc %d center = (%v, %v), want (%v, %v)",
				i, cmd.Args[0], cmd.Args[1], wantCenters[i][0], wantCenters[i][1])
		}
		if cmd.Args[2] != 5 {
			t.Errorf("arc %d radius = %v, want 5", i, cmd.Args[2])
		}
		if cmd.Args[3] != wantAngles[i][0] || cmd.Args[4] != wantAngles[i][1] {
			t.Errorf("arc %d angles = (%v, %v), want (%v, %v)",
				i, cmd.Args[3], cmd.Args[4], wantAngles[i][0], wantAngles[i][1])
		}
	}

	if path.Commands[4].Op != rendering.PathOpClose {
		t.Errorf("final op = %v, want close", path.Commands[4].Op)
	}
}

func TestRoundedRect_ZeroRadius(t *testing.T) {
	path := rendering.RoundedRect(rendering.RectFromLTWH(0, 0, 50, 50), 0)
	for i, cmd := range path.Commands[:4] {
		if cmd.Args[2] != 0 {
			t.Errorf("arc %d radius = %v, want 0", i, cmd.Args[2])
		}
	}
}

func TestDegrees(t *testing.T) {
	if got := rendering.Degrees(180); got != math.Pi {
		t.Errorf("Degrees(180) = %v, want pi", got)
	}
	if got := rendering.Degrees(90); got != math.Pi/2 {
		t.Errorf("Degrees(90) = %v, want pi/2", got)
	}
}

func TestPath_Build(t *testing.T) {
	p := rendering.NewPath()
	if !p.IsEmpty() {
		t.Error("new path not empty")
	}
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.Close()
	if p.IsEmpty() || len(p.Commands) != 3 {
		t.Fatalf("command count = %d, want 3", len(p.Commands))
	}
	p.Clear()
	if !p.IsEmpty() {
		t.Error("path not empty after Clear")
	}
}
