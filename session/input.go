package session

import (
	"math"
	"time"

	"github.com/automoto/voidrift/config"
	nc "github.com/automoto/voidrift/shared/netcomponents"
	"github.com/automoto/voidrift/shared/messages"
	dmath "github.com/yohamta/donburi/features/math"
)

// Controls is the raw local intent for one sample. Pointer coordinates are
// screen pixels; the joystick is a deflection in screen pixels from its
// resting point.
type Controls struct {
	PointerX, PointerY float64
	Joystick           bool
	JoyX, JoyY         float64
	Fire               bool
	Boost              bool
	Ability            bool
}

// View is the slice of session state a sample depends on.
type View struct {
	Phase              Phase
	ControllerAttached bool
	Self               nc.PlayerState
	HasSelf            bool
	Camera             dmath.Vec2
	Zoom               float64
	ScreenW, ScreenH   float64
	Candidates         []Candidate
}

// rateGate emulates a fixed-rate timer from a variable-rate loop.
type rateGate struct {
	interval time.Duration
	next     time.Time
}

func newRateGate(hz float64) rateGate {
	if hz <= 0 {
		hz = 20
	}
	return rateGate{interval: time.Duration(float64(time.Second) / hz)}
}

// Due reports whether a tick fires at now. A loop that fell far behind
// fires once and resynchronizes instead of bursting.
func (g *rateGate) Due(now time.Time) bool {
	if g.next.IsZero() {
		g.next = now.Add(g.interval)
		return true
	}
	if now.Before(g.next) {
		return false
	}
	g.next = g.next.Add(g.interval)
	if now.After(g.next) {
		g.next = now.Add(g.interval)
	}
	return true
}

// InputSampler turns controls into input frames at a fixed rate.
type InputSampler struct {
	cfg  config.InputConfig
	lock *TargetLock
	gate rateGate

	boostHeld     bool
	headingLocked bool
	heading       float64

	target    Candidate
	hasTarget bool
}

func NewInputSampler(cfg config.InputConfig, lock *TargetLock) *InputSampler {
	return &InputSampler{cfg: cfg, lock: lock, gate: newRateGate(cfg.Rate)}
}

// Due gates Sample to the configured rate.
func (s *InputSampler) Due(now time.Time) bool { return s.gate.Due(now) }

// Target returns the aim-assist target of the last sample, if any.
func (s *InputSampler) Target() (Candidate, bool) { return s.target, s.hasTarget }

// Threshold is the dead-zone radius, in world units, sent with every frame.
func Threshold(screenW, screenH, zoom, divisor float64) float64 {
	if zoom <= 0 {
		zoom = 1
	}
	return math.Min(screenW, screenH) / (divisor * zoom)
}

// Sample builds one input frame. It reports false when sending is
// suppressed: outside active match phases, while a remote controller drives
// the ship, or before the local player is known.
func (s *InputSampler) Sample(v View, c Controls) (messages.Input, bool) {
	if c.Boost && !s.boostHeld && v.HasSelf {
		s.heading = v.Self.R
		s.headingLocked = true
	}
	if !c.Boost {
		s.headingLocked = false
	}
	s.boostHeld = c.Boost
	s.hasTarget = false

	if !v.Phase.AllowsInput() || v.ControllerAttached || !v.HasSelf {
		return messages.Input{}, false
	}

	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	self := dmath.Vec2{X: v.Self.X, Y: v.Self.Y}
	aim := s.aimPoint(v, c, self, zoom)

	return messages.Input{
		MX:        aim.X,
		MY:        aim.Y,
		Fire:      c.Fire,
		Boost:     c.Boost,
		Ability:   c.Ability,
		Threshold: Threshold(v.ScreenW, v.ScreenH, zoom, s.cfg.ThresholdDivisor),
	}, true
}

func (s *InputSampler) aimPoint(v View, c Controls, self dmath.Vec2, zoom float64) dmath.Vec2 {
	if s.headingLocked {
		s.lock.Clear()
		return dmath.Vec2{
			X: self.X + math.Cos(s.heading)*s.cfg.HeadingLockReach,
			Y: self.Y + math.Sin(s.heading)*s.cfg.HeadingLockReach,
		}
	}

	if !c.Joystick {
		s.lock.Clear()
		return dmath.Vec2{
			X: (c.PointerX-v.ScreenW/2)/zoom + v.Camera.X,
			Y: (c.PointerY-v.ScreenH/2)/zoom + v.Camera.Y,
		}
	}

	// The stick stands in for a pointer at screen center + deflection*scale,
	// so it projects through the camera like the mouse does.
	sx, sy := c.JoyX*s.cfg.JoystickScale, c.JoyY*s.cfg.JoystickScale
	raw := dmath.Vec2{X: sx/zoom + v.Camera.X, Y: sy/zoom + v.Camera.Y}
	if math.Hypot(sx, sy) <= s.cfg.JoystickActive {
		s.lock.Clear()
		return raw
	}
	orbit := s.lock.OrbitPoint(self, math.Atan2(sy, sx))
	if t, ok := s.lock.Update(orbit, v.Candidates); ok {
		s.target, s.hasTarget = t, true
		return t.Pos
	}
	return raw
}
