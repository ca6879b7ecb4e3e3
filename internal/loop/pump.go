package loop

import (
	"context"
	"time"

	"superpose/internal/core"
)

// Pump ticks sched whenever step says a frame is due, until ctx is done or a
// frame fails. It stands in for a display host in headless runs.
func Pump(ctx context.Context, sched *Scheduler, step *core.FixedStep) error {
	idle := step.Step() / 4
	if idle <= 0 {
		idle = time.Millisecond
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if step.ShouldStep() {
			if err := sched.Tick(); err != nil {
				return err
			}
			continue
		}
		time.Sleep(idle)
	}
}
