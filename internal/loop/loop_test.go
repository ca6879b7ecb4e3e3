package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"superpose/internal/core"
)

func TestSchedulerRunsRequestsOnNextTick(t *testing.T) {
	sched := NewScheduler(core.NewManualClock(time.Unix(10, 0)))
	var calls int
	var stamp time.Time
	sched.Request(func(now time.Time) error {
		calls++
		stamp = now
		sched.Request(func(time.Time) error { calls += 10; return nil })
		return nil
	})

	if err := sched.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (nested request must wait a tick)", calls)
	}
	if !stamp.Equal(time.Unix(10, 0)) {
		t.Fatalf("frame stamped %v", stamp)
	}
	if sched.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", sched.Pending())
	}
	if err := sched.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if calls != 11 {
		t.Fatalf("calls = %d, want 11", calls)
	}
	if sched.Frames() != 2 {
		t.Fatalf("frames = %d, want 2", sched.Frames())
	}
}

func TestSchedulerCancel(t *testing.T) {
	sched := NewScheduler(nil)
	ran := false
	h := sched.Request(func(time.Time) error { ran = true; return nil })
	sched.Cancel(h)
	sched.Cancel(h)
	sched.Cancel(0)
	if err := sched.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if ran {
		t.Fatal("cancelled request ran")
	}
}

func TestSchedulerCancelInsideTick(t *testing.T) {
	sched := NewScheduler(nil)
	ran := false
	var victim Handle
	sched.Request(func(time.Time) error { sched.Cancel(victim); return nil })
	victim = sched.Request(func(time.Time) error { ran = true; return nil })
	if err := sched.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if ran {
		t.Fatal("request cancelled mid-tick still ran")
	}
}

func TestDriverStartStop(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	sched := NewScheduler(clock)
	paints := 0
	d := NewDriver(sched, func(time.Time) error { paints++; return nil })

	if d.Running() || d.State() != Stopped {
		t.Fatal("new driver should be stopped")
	}
	d.Start()
	d.Start()
	if sched.Pending() != 1 {
		t.Fatalf("pending = %d, want exactly one outstanding request", sched.Pending())
	}

	for i := 0; i < 5; i++ {
		clock.Advance(16 * time.Millisecond)
		if err := sched.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
		if sched.Pending() != 1 {
			t.Fatalf("pending = %d after frame %d", sched.Pending(), i)
		}
	}
	if paints != 5 {
		t.Fatalf("paints = %d, want 5", paints)
	}

	d.Stop()
	if d.Handle() != 0 || d.State() != Stopped {
		t.Fatalf("stop should clear handle, got %d / %v", d.Handle(), d.State())
	}
	for i := 0; i < 10; i++ {
		clock.Advance(16 * time.Millisecond)
		_ = sched.Tick()
	}
	if paints != 5 {
		t.Fatalf("paints = %d after stop, want 5", paints)
	}
	d.Stop()

	d.Start()
	_ = sched.Tick()
	if paints != 6 {
		t.Fatalf("paints = %d after restart, want 6", paints)
	}
	if d.Frames() != 6 {
		t.Fatalf("driver frames = %d, want 6", d.Frames())
	}
}

func TestDriverStopsOnFrameError(t *testing.T) {
	sched := NewScheduler(nil)
	boom := errors.New("boom")
	calls := 0
	d := NewDriver(sched, func(time.Time) error {
		calls++
		return boom
	})
	d.Start()
	if err := sched.Tick(); !errors.Is(err, boom) {
		t.Fatalf("tick err = %v, want boom", err)
	}
	if d.Running() {
		t.Fatal("driver should stop after a failed frame")
	}
	if sched.Pending() != 0 {
		t.Fatal("failed frame must not reschedule")
	}
	_ = sched.Tick()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestDriverStoppedFromOwnFrame(t *testing.T) {
	sched := NewScheduler(nil)
	var d *Driver
	calls := 0
	d = NewDriver(sched, func(time.Time) error {
		calls++
		d.Stop()
		return nil
	})
	d.Start()
	_ = sched.Tick()
	_ = sched.Tick()
	if calls != 1 || d.Running() {
		t.Fatalf("calls = %d running = %v", calls, d.Running())
	}
}

func TestPumpHonoursContext(t *testing.T) {
	sched := NewScheduler(nil)
	frames := 0
	d := NewDriver(sched, func(time.Time) error { frames++; return nil })
	d.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	err := Pump(ctx, sched, core.NewFixedStep(200, nil))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("pump err = %v, want deadline", err)
	}
	if frames == 0 {
		t.Fatal("pump should have run frames before the deadline")
	}
}

func TestPumpReturnsFrameError(t *testing.T) {
	sched := NewScheduler(nil)
	boom := errors.New("boom")
	NewDriver(sched, func(time.Time) error { return boom }).Start()
	err := Pump(context.Background(), sched, core.NewFixedStep(1000, nil))
	if !errors.Is(err, boom) {
		t.Fatalf("pump err = %v, want boom", err)
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Stopped.String() != "stopped" {
		t.Fatal("unexpected state labels")
	}
}
