package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	cur := time.Unix(1000, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return cur }

	// The accumulator is primed so the first frame steps immediately.
	if got := fs.Due(); got != 1 {
		t.Fatalf("initial Due = %d, want 1", got)
	}
	if got := fs.Due(); got != 0 {
		t.Fatalf("Due without elapsed time = %d, want 0", got)
	}
	cur = cur.Add(250 * time.Millisecond)
	if got := fs.Due(); got != 2 {
		t.Fatalf("Due after 250ms at 10tps = %d, want 2", got)
	}
	cur = cur.Add(60 * time.Millisecond)
	if got := fs.Due(); got != 1 {
		t.Fatalf("Due with carried remainder = %d, want 1", got)
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	cur := time.Unix(1000, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return cur }
	fs.Due()

	cur = cur.Add(30 * time.Second)
	if got := fs.Due(); got > 11 {
		t.Fatalf("stalled frame produced %d catch-up ticks", got)
	}
}

func TestFixedStepRateFallback(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/10 {
		t.Fatalf("zero rate fell back to step %v", fs.step)
	}
}
