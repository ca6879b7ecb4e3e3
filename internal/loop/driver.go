package loop

import "time"

// State is the driver's lifecycle state.
type State uint8

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Driver repeatedly runs a frame function, one scheduled callback at a time.
// It owns the handle of its pending request; the handle is zero whenever no
// request is outstanding.
type Driver struct {
	sched  *Scheduler
	frame  FrameFunc
	state  State
	handle Handle
	frames uint64
}

// NewDriver binds frame to sched. The driver starts out Stopped.
func NewDriver(sched *Scheduler, frame FrameFunc) *Driver {
	return &Driver{sched: sched, frame: frame}
}

// Start requests the next frame. Calling Start while running is a no-op.
func (d *Driver) Start() {
	if d.state == Running {
		return
	}
	d.state = Running
	d.handle = d.sched.Request(d.run)
}

// Stop cancels the pending frame. No frame function call happens after Stop
// returns until Start is called again.
func (d *Driver) Stop() {
	d.sched.Cancel(d.handle)
	d.handle = 0
	d.state = Stopped
}

// State returns the current lifecycle state.
func (d *Driver) State() State { return d.state }

// Running reports whether frames are being scheduled.
func (d *Driver) Running() bool { return d.state == Running }

// Handle returns the pending request handle, or zero.
func (d *Driver) Handle() Handle { return d.handle }

// Frames reports how many frames the driver has run.
func (d *Driver) Frames() uint64 { return d.frames }

func (d *Driver) run(now time.Time) error {
	d.handle = 0
	if d.state != Running {
		return nil
	}
	d.frames++
	if err := d.frame(now); err != nil {
		d.state = Stopped
		return err
	}
	// The frame itself may have stopped (or stopped and restarted) the driver.
	if d.state == Running && d.handle == 0 {
		d.handle = d.sched.Request(d.run)
	}
	return nil
}
