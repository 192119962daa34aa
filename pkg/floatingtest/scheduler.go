package floatingtest

import "time"

// ManualScheduler implements floating.Scheduler with ticks fired by the
// test instead of by elapsed time.
type ManualScheduler struct {
	// Started counts Schedule calls, including tasks that have since
	// stopped. Tests use it to verify how many transitions were begun.
	Started int

	tasks []*manualTask
}

type manualTask struct {
	period  time.Duration
	tick    func() bool
	stopped bool
}

// Schedule registers a task. The period is recorded but otherwise
// ignored; the task fires when the test calls Tick.
func (s *ManualScheduler) Schedule(period time.Duration, tick func() bool) func() {
	s.Started++
	t := &manualTask{period: period, tick: tick}
	s.tasks = append(s.tasks, t)
	return func() { t.stopped = true }
}

// Tick fires every active task once. Tasks whose callback returns false
// are stopped.
func (s *ManualScheduler) Tick() {
	tasks := make([]*manualTask, len(s.tasks))
	copy(tasks, s.tasks)
	for _, t := range tasks {
		if t.stopped {
			continue
		}
		if !t.tick() {
			t.stopped = true
		}
	}
	s.compact()
}

// TickN fires Tick n times.
func (s *ManualScheduler) TickN(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// Active returns the number of tasks still running.
func (s *ManualScheduler) Active() int {
	s.compact()
	return len(s.tasks)
}

func (s *ManualScheduler) compact() {
	active := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			active = append(active, t)
		}
	}
	s.tasks = active
}
