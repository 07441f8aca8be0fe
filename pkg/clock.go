package pkg

import (
	"fmt"
	"sync"
	"time"
)

// Clock is one side's game clock. It only runs when Advance is called, so
// the owner decides how time passes.
type Clock struct {
	Duration  time.Duration
	Remaining time.Duration
	Increment time.Duration
	Paused    bool
	mu        sync.Mutex
}

func (cl *Clock) String() string {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	remaining := cl.Remaining
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)
}

func NewClock(duration, increment time.Duration) *Clock {
	return &Clock{
		Duration:  duration,
		Remaining: duration,
		Increment: increment,
		Paused:    true,
	}
}

// Advance takes d off a running clock and reports whether it ran out.
func (cl *Clock) Advance(d time.Duration) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if cl.Paused {
		return false
	}
	cl.Remaining -= d
	return cl.Remaining <= 0
}

func (cl *Clock) Start() {
	cl.mu.Lock()
	cl.Paused = false
	cl.mu.Unlock()
}

// Press stops the clock after a move and adds the increment.
func (cl *Clock) Press() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if !cl.Paused {
		cl.Remaining += cl.Increment
	}
	cl.Paused = true
}

func (cl *Clock) Pause() {
	cl.mu.Lock()
	cl.Paused = true
	cl.mu.Unlock()
}

func (cl *Clock) Reset() {
	cl.mu.Lock()
	cl.Remaining = cl.Duration
	cl.Paused = true
	cl.mu.Unlock()
}
