package floatingtest

import (
	"testing"
	"time"

	"github.com/go-drift/floating/pkg/rendering"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestManualScheduler_StopsOnFalse(t *testing.T) {
	s := &ManualScheduler{}
	fired := 0
	s.Schedule(10*time.Millisecond, func() bool {
		fired++
		return fired < 3
	})

	s.TickN(5)
	if fired != 3 {
		t.Errorf("expected 3 ticks before self-stop, got %d", fired)
	}
	if s.Active() != 0 {
		t.Errorf("expected no active tasks, got %d", s.Active())
	}
	if s.Started != 1 {
		t.Errorf("expected Started == 1, got %d", s.Started)
	}
}

func TestManualScheduler_Cancel(t *testing.T) {
	s := &ManualScheduler{}
	fired := 0
	cancel := s.Schedule(10*time.Millisecond, func() bool {
		fired++
		return true
	})

	s.Tick()
	cancel()
	s.Tick()

	if fired != 1 {
		t.Errorf("expected cancelled task not to fire, got %d ticks", fired)
	}
	if s.Active() != 0 {
		t.Errorf("expected no active tasks, got %d", s.Active())
	}
}

func TestRecordingCanvas_Ops(t *testing.T) {
	canvas := NewRecordingCanvas(rendering.Size{Width: 100, Height: 40})
	canvas.Save()
	canvas.DrawRect(rendering.RectFromLTWH(0, 0, 10, 20), rendering.FillPaint(rendering.ColorBlack))
	canvas.Restore()

	want := []string{
		"save",
		"draw_rect(0.00, 0.00, 10.00, 20.00) fill #FF000000",
		"restore",
	}
	got := canvas.Ops()
	if len(got) != len(want) {
		t.Fatalf("expected %d ops, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, got[i], want[i])
		}
	}

	canvas.Reset()
	if len(canvas.Ops()) != 0 {
		t.Errorf("expected no ops after Reset, got %v", canvas.Ops())
	}
}
