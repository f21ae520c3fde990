package app

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Pacer caps the frame rate with a fixed time step.
type Pacer struct {
	step time.Duration
	dt   float32
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer creates a pacer for fps frames per second. Non-positive values
// fall back to 60.
func NewPacer(fps int) *Pacer {
	if fps <= 0 {
		fps = 60
	}
	seconds := harmonica.FPS(fps)
	return &Pacer{
		step:  time.Duration(seconds * float64(time.Second)),
		dt:    float32(seconds),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// DT returns the fixed time step in seconds.
func (p *Pacer) DT() float32 { return p.dt }

// Step returns the frame duration.
func (p *Pacer) Step() time.Duration { return p.step }

// Wait blocks until the next frame is due. A loop that falls more than one
// frame behind resynchronizes instead of rushing to catch up.
func (p *Pacer) Wait() {
	now := p.now()
	if p.next.IsZero() {
		p.next = now
	}
	p.next = p.next.Add(p.step)

	if d := p.next.Sub(now); d > 0 {
		p.sleep(d)
		return
	}
	if now.Sub(p.next) > p.step {
		p.next = now
	}
}
