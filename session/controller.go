package session

import (
	"log"
	"math"
	"time"

	"github.com/automoto/voidrift/config"
	"github.com/automoto/voidrift/network"
	"github.com/automoto/voidrift/shared/messages"
	"github.com/automoto/voidrift/shared/protocol"
	dmath "github.com/yohamta/donburi/features/math"
)

// Controller drives another client's ship from a second device. It attaches
// to a player over its own connection and sends input frames on that
// player's behalf while the primary client stays quiet.
type Controller struct {
	sender    Sender
	cfg       config.ControllerConfig
	sessionID string
	playerID  string

	connected bool
	attached  bool
	channel   uint64
	closed    bool

	store *network.SnapshotStore
	lock  *TargetLock
	gate  rateGate

	controls Controls
}

func NewController(sender Sender, sessionID, playerID string) *Controller {
	return &Controller{
		sender:    sender,
		cfg:       config.Controller,
		sessionID: sessionID,
		playerID:  playerID,
		store:     network.NewSnapshotStore(),
		lock:      NewTargetLock(config.Aim),
		gate:      newRateGate(config.Input.Rate),
	}
}

func (c *Controller) HandleEvent(ev network.Event, now time.Time) {
	switch ev.Kind {
	case network.EventOpen:
		c.channel = ev.Channel
		c.closed = false
		c.connected = true
		data, err := protocol.EncodeMessage(messages.ControlRequest{SessionID: c.sessionID, PlayerID: c.playerID})
		if err == nil {
			c.sender.SendText(data)
		}
	case network.EventClose:
		if ev.Channel != c.channel {
			return
		}
		c.closed = true
		c.connected = false
		c.attached = false
		c.store.Reset()
		c.lock.Clear()
	case network.EventMessage:
		if ev.Channel != c.channel || c.closed {
			return
		}
		msg, err := protocol.DecodeFrame(ev.Binary, ev.Data)
		if err != nil {
			log.Printf("[controller] dropping frame: %v", err)
			return
		}
		switch m := msg.(type) {
		case messages.ControlOK:
			c.attached = true
			log.Printf("[controller] attached to %s", c.playerID)
		case messages.Snapshot:
			c.store.Apply(m.State, now)
		case messages.Error:
			log.Printf("[controller] server error: %s", m.Msg)
		}
	}
}

func (c *Controller) SetControls(ctl Controls) { c.controls = ctl }

func (c *Controller) Attached() bool { return c.attached }

// Self returns the driven player's latest record.
func (c *Controller) Self() (pos dmath.Vec2, ok bool) {
	p, ok := c.store.Player(c.playerID)
	return dmath.Vec2{X: p.X, Y: p.Y}, ok
}

// Locked returns the current aim-assist target id, if any.
func (c *Controller) Locked() string { return c.lock.Locked() }

func (c *Controller) Tick(now time.Time) {
	if !c.gate.Due(now) {
		return
	}
	if in, ok := c.Sample(); ok {
		c.sender.SendBinary(protocol.EncodeInput(in))
	}
}

// Sample builds one input frame for the driven player. The lock always runs
// against an orbit point, aimed by the joystick when it is deflected past
// the dead zone and by the ship's heading otherwise.
func (c *Controller) Sample() (messages.Input, bool) {
	if !c.connected || !c.attached {
		return messages.Input{}, false
	}
	self, ok := c.store.Player(c.playerID)
	if !ok {
		return messages.Input{}, false
	}
	me := dmath.Vec2{X: self.X, Y: self.Y}
	jx, jy := c.controls.JoyX, c.controls.JoyY
	deflected := math.Hypot(jx, jy) > c.cfg.DeadZone

	angle := self.R
	if deflected {
		angle = math.Atan2(jy, jx)
	}
	orbit := c.lock.OrbitPoint(me, angle)

	aim := me
	if t, locked := c.lock.Update(orbit, Candidates(c.store, c.playerID)); locked {
		aim = t.Pos
	} else if deflected {
		aim = dmath.Vec2{X: me.X + jx*c.cfg.JoystickScale, Y: me.Y + jy*c.cfg.JoystickScale}
	}

	return messages.Input{
		MX:        aim.X,
		MY:        aim.Y,
		Fire:      c.controls.Fire,
		Boost:     c.controls.Boost,
		Ability:   c.controls.Ability,
		Threshold: c.cfg.Threshold,
	}, true
}
