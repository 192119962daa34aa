package floating_test

import (
	"fmt"

	"github.com/go-drift/floating/pkg/floating"
	"github.com/go-drift/floating/pkg/floatingtest"
)

// This example drives a full transition with a manual scheduler. In a
// real host the default scheduler is used instead and the host calls
// animation.StepIntervals once per frame.
func ExampleBackground() {
	scheduler := &floatingtest.ManualScheduler{}
	background := floating.New(floating.Config{
		Scheduler:     scheduler,
		RequestRedraw: func() {}, // host queues a repaint here
	})

	background.SetFloating(true)
	scheduler.TickN(10)

	fmt.Printf("margin=%.0f radius=%.0f alpha=%.2f\n",
		background.Margin(), background.Radius(), background.Color().AlphaF())

	background.SetFloating(false)
	scheduler.TickN(10)

	fmt.Printf("margin=%.0f radius=%.0f alpha=%.2f\n",
		background.Margin(), background.Radius(), background.Color().AlphaF())

	// Output:
	// margin=7 radius=5 alpha=0.80
	// margin=0 radius=0 alpha=1.00
}
