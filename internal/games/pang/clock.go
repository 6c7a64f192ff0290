package pang

import "time"

// Clock supplies the current time in milliseconds to the level timer.
type Clock interface {
	NowMS() int64
}

// SystemClock reads wall-clock time.
type SystemClock struct{}

// NowMS returns the Unix time in milliseconds.
func (SystemClock) NowMS() int64 {
	return time.Now().UnixMilli()
}

// ManualClock only moves when advanced. Hosts advance it once per tick so
// pausing stops the countdown and replays stay deterministic.
type ManualClock struct {
	ms int64
}

// NowMS returns the current manual time.
func (c *ManualClock) NowMS() int64 {
	return c.ms
}

// Advance moves the clock forward by d milliseconds.
func (c *ManualClock) Advance(d int64) {
	c.ms += d
}

// Set moves the clock to an absolute time.
func (c *ManualClock) Set(ms int64) {
	c.ms = ms
}

// TickPacer converts ticks into clock steps at a fixed rate. Steps round so
// that n ticks always add up to n*1000/rate milliseconds.
type TickPacer struct {
	rate int64
	n    int64
}

// NewTickPacer creates a pacer for rate ticks per second. Non-positive rates
// use 60.
func NewTickPacer(rate int) *TickPacer {
	if rate <= 0 {
		rate = 60
	}
	return &TickPacer{rate: int64(rate)}
}

// Next returns the milliseconds covered by the next tick.
func (p *TickPacer) Next() int64 {
	p.n++
	return p.n*1000/p.rate - (p.n-1)*1000/p.rate
}

// Timer is the per-level countdown.
type Timer struct {
	clock     Clock
	limit     int64
	start     int64
	adjusted  int64 // Accumulated penalty
	elapsed   int64
	remaining int64
}

func newTimer(clock Clock, limit int64) *Timer {
	t := &Timer{clock: clock, limit: limit}
	t.reset()
	return t
}

func (t *Timer) reset() {
	t.start = t.clock.NowMS()
	t.adjusted = 0
	t.elapsed = 0
	t.remaining = t.limit
}

// recompute refreshes elapsed and remaining time from the clock and returns
// the remaining milliseconds.
func (t *Timer) recompute() int64 {
	t.elapsed = t.clock.NowMS() - t.start
	t.remaining = t.limit - t.elapsed - t.adjusted
	return t.remaining
}

func (t *Timer) penalize(ms int64) {
	t.adjusted += ms
}

// Limit returns the fixed time limit.
func (t *Timer) Limit() int64 { return t.limit }

// Remaining returns the value computed by the last recompute.
func (t *Timer) Remaining() int64 { return t.remaining }

// Adjusted returns the accumulated penalty.
func (t *Timer) Adjusted() int64 { return t.adjusted }
