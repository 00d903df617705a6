package core

import "time"

// FixedStep is a frame-polled Timer: the host loop calls Due once per frame
// and runs a tick whenever an interval has elapsed. Due fires at most once per
// frame, so intervals shorter than a frame (about 16ms at 60 TPS) run at the
// frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	token       uint64
	active      bool

	now func() time.Time
}

// NewFixedStep constructs a stopped FixedStep.
func NewFixedStep() *FixedStep {
	return &FixedStep{now: time.Now}
}

// Start arms the timer. Any previous run is replaced.
func (f *FixedStep) Start(interval time.Duration, token uint64) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
	f.accumulator = 0
	f.last = f.now()
	f.token = token
	f.active = true
}

// Stop disarms the timer; Due reports nothing until the next Start.
func (f *FixedStep) Stop() {
	f.active = false
	f.accumulator = 0
}

// Active reports whether the timer is armed.
func (f *FixedStep) Active() bool { return f.active }

// Due reports whether a tick should run now and the token it belongs to. At
// most one tick is reported per call, so a long frame never bursts.
func (f *FixedStep) Due() (uint64, bool) {
	if !f.active {
		return 0, false
	}
	now := f.now()
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return 0, false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return f.token, true
}
