package network

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/voidrift/config"
)

func testClock() *InterpolationClock {
	return NewInterpolationClock(config.InterpConfig{
		DefaultInterval: 50 * time.Millisecond,
		MinSample:       10 * time.Millisecond,
		MaxSample:       200 * time.Millisecond,
		SampleWeight:    0.2,
	})
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestClockSmoothsInRangeSamples(t *testing.T) {
	c := testClock()
	base := time.Unix(0, 0)
	c.Observe(base)
	c.Observe(base.Add(100 * time.Millisecond))

	// 0.8*50 + 0.2*100
	if got := durationMillis(c.Interval()); !approx(got, 60) {
		t.Fatalf("interval = %vms, want 60ms", got)
	}
}

func TestClockDiscardsOutOfRangeSamples(t *testing.T) {
	c := testClock()
	base := time.Unix(0, 0)
	c.Observe(base)
	c.Observe(base.Add(5 * time.Millisecond))
	c.Observe(base.Add(5*time.Millisecond + 3*time.Second))

	if got := durationMillis(c.Interval()); !approx(got, 50) {
		t.Fatalf("interval = %vms, want unchanged 50ms", got)
	}
	if !c.LastUpdate().Equal(base.Add(5*time.Millisecond + 3*time.Second)) {
		t.Fatalf("last update not advanced on a discarded sample")
	}
}

func TestClockFactorClamps(t *testing.T) {
	c := testClock()
	base := time.Unix(0, 0)
	if f := c.Factor(base); f != 0 {
		t.Fatalf("factor before any arrival = %v, want 0", f)
	}
	c.Observe(base)

	if f := c.Factor(base.Add(-time.Millisecond)); f != 0 {
		t.Fatalf("factor before arrival = %v, want 0", f)
	}
	if f := c.Factor(base.Add(25 * time.Millisecond)); !approx(f, 0.5) {
		t.Fatalf("factor at half interval = %v, want 0.5", f)
	}
	if f := c.Factor(base.Add(time.Second)); f != 1 {
		t.Fatalf("factor past interval = %v, want 1", f)
	}
}
