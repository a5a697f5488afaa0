package core

import "time"

// Limiter caps a loop at a fixed number of ticks per second.
type Limiter struct {
	step  time.Duration
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter constructs a Limiter targeting the given TPS.
func NewLimiter(tps int) *Limiter {
	if tps <= 0 {
		tps = 60
	}
	return &Limiter{
		step:  time.Second / time.Duration(tps),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Interval returns the target time between ticks.
func (l *Limiter) Interval() time.Duration { return l.step }

// Wait blocks until one interval has passed since the previous Wait returned.
// A tick that overran its budget does not sleep, and the schedule restarts
// from the current time instead of trying to catch up.
func (l *Limiter) Wait() {
	now := l.now()
	if !l.last.IsZero() {
		if remaining := l.step - now.Sub(l.last); remaining > 0 {
			l.sleep(remaining)
			now = now.Add(remaining)
		}
	}
	l.last = now
}
