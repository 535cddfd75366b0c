package core

import "time"

// FixedStep converts an uneven render loop into steady simulation ticks.
// The renderer calls Due once per frame and advances the simulation by the
// returned number of generations.
type FixedStep struct {
	step time.Duration
	acc  time.Duration
	last time.Time
	now  func() time.Time
}

// NewFixedStep constructs a controller targeting the given ticks per second.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(tps)
	fs.acc = fs.step
	return fs
}

// SetRate changes the tick rate. It is safe to call between frames.
func (f *FixedStep) SetRate(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// Due returns how many ticks have accumulated since the last call. The
// backlog is capped at one second of ticks so a stalled frame does not
// trigger a catch-up stampede.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.acc += now.Sub(f.last)
	f.last = now
	if f.acc > time.Second+f.step {
		f.acc = time.Second + f.step
	}
	n := 0
	for f.acc >= f.step {
		f.acc -= f.step
		n++
	}
	return n
}
