// Package loop schedules per-frame callbacks the way a display host does and
// drives scenes through a cancellable update/render cycle.
package loop

import (
	"time"

	"superpose/internal/core"
)

// Handle identifies a pending frame request. The zero Handle is never issued.
type Handle uint64

// FrameFunc runs once for a requested frame.
type FrameFunc func(now time.Time) error

type request struct {
	handle Handle
	fn     FrameFunc
	done   bool
}

// Scheduler queues "run before the next frame" callbacks. The host calls Tick
// once per display refresh; callbacks requested during a tick run on the
// following one.
type Scheduler struct {
	clock    core.Clock
	last     Handle
	pending  []*request
	inflight []*request
	frames   uint64
}

// NewScheduler builds a scheduler stamping frames with clock. A nil clock
// uses the wall clock.
func NewScheduler(clock core.Clock) *Scheduler {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Clock returns the time source used to stamp frames.
func (s *Scheduler) Clock() core.Clock { return s.clock }

// Request queues fn for the next tick.
func (s *Scheduler) Request(fn FrameFunc) Handle {
	s.last++
	s.pending = append(s.pending, &request{handle: s.last, fn: fn})
	return s.last
}

// Cancel drops a pending request, including one queued in the batch of a tick
// that is currently running. Unknown or already-run handles are ignored.
func (s *Scheduler) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for i, r := range s.pending {
		if r.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	for _, r := range s.inflight {
		if r.handle == h {
			r.done = true
			return
		}
	}
}

// Pending reports how many callbacks wait for the next tick.
func (s *Scheduler) Pending() int { return len(s.pending) }

// Frames reports how many ticks have run.
func (s *Scheduler) Frames() uint64 { return s.frames }

// Tick runs every callback that was pending when it started. The first error
// is returned after the remaining callbacks have run.
func (s *Scheduler) Tick() error {
	s.frames++
	if len(s.pending) == 0 {
		return nil
	}
	now := s.clock.Now()
	s.inflight = s.pending
	s.pending = nil
	defer func() { s.inflight = nil }()

	var firstErr error
	for _, r := range s.inflight {
		if r.done {
			continue
		}
		r.done = true
		if err := r.fn(now); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
