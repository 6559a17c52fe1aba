package network

import (
	"time"

	"github.com/automoto/voidrift/config"
)

// InterpolationClock estimates the spacing between snapshot arrivals and
// turns wall-clock time into an interpolation factor.
type InterpolationClock struct {
	interval  float64 // smoothed, milliseconds
	last      time.Time
	minSample time.Duration
	maxSample time.Duration
	weight    float64
}

func NewInterpolationClock(cfg config.InterpConfig) *InterpolationClock {
	return &InterpolationClock{
		interval:  durationMillis(cfg.DefaultInterval),
		minSample: cfg.MinSample,
		maxSample: cfg.MaxSample,
		weight:    cfg.SampleWeight,
	}
}

// Observe records a snapshot arrival. Gaps outside the sample window, such
// as a suspended tab or a stalled network, do not move the estimate.
func (c *InterpolationClock) Observe(now time.Time) {
	if !c.last.IsZero() {
		elapsed := now.Sub(c.last)
		if elapsed >= c.minSample && elapsed <= c.maxSample {
			c.interval = (1-c.weight)*c.interval + c.weight*durationMillis(elapsed)
		}
	}
	c.last = now
}

// Factor returns how far now is between the last two arrivals, in [0, 1].
func (c *InterpolationClock) Factor(now time.Time) float64 {
	if c.last.IsZero() || c.interval <= 0 {
		return 0
	}
	t := durationMillis(now.Sub(c.last)) / c.interval
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Interval returns the smoothed tick spacing.
func (c *InterpolationClock) Interval() time.Duration {
	return time.Duration(c.interval * float64(time.Millisecond))
}

func (c *InterpolationClock) LastUpdate() time.Time { return c.last }

// Reset forgets the last arrival but keeps the learned interval.
func (c *InterpolationClock) Reset() {
	c.last = time.Time{}
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
