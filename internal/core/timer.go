package core

import "time"

// Pacer schedules generation starts at a steady cadence. Unlike a plain
// accumulator it never banks more than one pending start, so a generation
// that spans many frames does not trigger a catch-up burst when it
// completes.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given generation starts per second.
func NewPacer(sps int) *Pacer {
	if sps <= 0 {
		sps = 20
	}
	p := &Pacer{}
	p.SetRate(sps)
	p.accumulator = p.step
	return p
}

// SetRate changes the start cadence. It is safe to call from the main loop.
func (p *Pacer) SetRate(sps int) {
	if sps <= 0 {
		sps = 20
	}
	p.step = time.Second / time.Duration(sps)
}

// ShouldStart reports whether a new generation is due.
func (p *Pacer) ShouldStart() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator > p.step {
		p.accumulator = p.step
	}
	if p.accumulator >= p.step {
		p.accumulator = 0
		return true
	}
	return false
}
