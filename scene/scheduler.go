package scene

import (
	"time"
)

// Clock provides the current time to the scheduler.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Handle is a scheduled transition. A cancelled handle never steps or
// completes again.
type Handle struct {
	id        uint64
	start     time.Time
	duration  time.Duration
	step      func(t float64)
	done      func()
	cancelled bool
	finished  bool
}

// Cancel invalidates h. Cancelling a nil, finished or already cancelled
// handle is a no-op.
func (h *Handle) Cancel() {
	if h != nil {
		h.cancelled = true
	}
}

// Active reports whether h is still scheduled.
func (h *Handle) Active() bool {
	return h != nil && !h.cancelled && !h.finished
}

// Scheduler runs transitions cooperatively: nothing happens between calls
// to Advance or Flush.
type Scheduler struct {
	clock Clock
	next  uint64
	tasks []*Handle
}

// NewScheduler returns a scheduler reading time from clock. A nil clock
// uses the wall clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = systemClock{}
	}
	return &Scheduler{clock: clock}
}

// Schedule a transition over d starting now. Step is called with the
// eased progress in [0,1]; done once after the final step. With d <= 0
// both run immediately and the returned handle is already finished.
func (s *Scheduler) Schedule(d time.Duration, step func(t float64), done func()) *Handle {
	s.next++
	h := &Handle{
		id:       s.next,
		start:    s.clock.Now(),
		duration: d,
		step:     step,
		done:     done,
	}
	if d <= 0 {
		s.finish(h)
		return h
	}
	s.tasks = append(s.tasks, h)
	return h
}

// Advance steps all transitions to now and completes the ones which ran
// their full duration. It returns the number of transitions still running.
func (s *Scheduler) Advance(now time.Time) int {
	tasks := s.tasks
	s.tasks = nil
	var running []*Handle
	for _, h := range tasks {
		if h.cancelled {
			continue
		}
		t := float64(now.Sub(h.start)) / float64(h.duration)
		if t >= 1 {
			s.finish(h)
			continue
		}
		if t < 0 {
			t = 0
		}
		if h.step != nil {
			h.step(EaseCubicInOut(t))
		}
		running = append(running, h)
	}
	// Done callbacks may have scheduled new work.
	s.tasks = append(running, s.tasks...)
	return s.Pending()
}

// Flush completes every pending transition.
func (s *Scheduler) Flush() {
	for len(s.tasks) > 0 {
		tasks := s.tasks
		s.tasks = nil
		for _, h := range tasks {
			if !h.cancelled {
				s.finish(h)
			}
		}
	}
}

// Pending returns the number of transitions not yet finished or cancelled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, h := range s.tasks {
		if !h.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) finish(h *Handle) {
	if h.cancelled || h.finished {
		return
	}
	h.finished = true
	if h.step != nil {
		h.step(1)
	}
	if h.done != nil {
		h.done()
	}
}

// EaseCubicInOut is the default easing of transitions.
func EaseCubicInOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}
