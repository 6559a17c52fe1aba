package session

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/voidrift/network"
	"github.com/automoto/voidrift/shared/messages"
	nc "github.com/automoto/voidrift/shared/netcomponents"
	"github.com/automoto/voidrift/shared/protocol"
)

func attachedController(t *testing.T, players ...nc.PlayerState) (*Controller, *recorder) {
	t.Helper()
	r := &recorder{}
	c := NewController(r, testSID, "me")
	now := time.Now()
	c.HandleEvent(network.Event{Kind: network.EventOpen}, now)
	c.HandleEvent(textEvent(t, messages.TagControlOK, messages.ControlOK{PlayerID: "me"}), now)
	c.HandleEvent(stateEvent(t, 1, players...), now)
	if !c.Attached() {
		t.Fatalf("controller not attached")
	}
	return c, r
}

func TestControllerSendsControlOnOpen(t *testing.T) {
	_, r := attachedController(t)
	got := r.sent()
	if len(got) != 1 || got[0] != messages.TagControl {
		t.Fatalf("sent %v, want [control]", got)
	}
}

func TestControllerSilentUntilAttached(t *testing.T) {
	r := &recorder{}
	c := NewController(r, testSID, "me")
	c.HandleEvent(network.Event{Kind: network.EventOpen}, time.Now())
	c.HandleEvent(stateEvent(t, 1, nc.PlayerState{ID: "me", Alive: true}), time.Now())
	if _, ok := c.Sample(); ok {
		t.Fatalf("sampled before control_ok")
	}
}

func TestControllerJoystickWithoutTarget(t *testing.T) {
	c, _ := attachedController(t, nc.PlayerState{ID: "me", X: 100, Y: 100, Alive: true})
	c.SetControls(Controls{Joystick: true, JoyX: 20, JoyY: 0, Fire: true})

	in, ok := c.Sample()
	if !ok {
		t.Fatalf("sample suppressed")
	}
	if in.MX != 160 || in.MY != 100 {
		t.Fatalf("aim = (%v, %v), want (160, 100)", in.MX, in.MY)
	}
	if in.Threshold != 50 || !in.Fire {
		t.Fatalf("input = %+v", in)
	}
}

func TestControllerDeadZoneAimsAtSelf(t *testing.T) {
	c, _ := attachedController(t, nc.PlayerState{ID: "me", X: 100, Y: 100, Alive: true})
	c.SetControls(Controls{Joystick: true, JoyX: 3, JoyY: 4})

	in, _ := c.Sample()
	if in.MX != 100 || in.MY != 100 {
		t.Fatalf("aim = (%v, %v), want self", in.MX, in.MY)
	}
}

func TestControllerLocksAlongHeadingInDeadZone(t *testing.T) {
	c, _ := attachedController(t,
		nc.PlayerState{ID: "me", X: 0, Y: 0, R: math.Pi / 2, Alive: true},
		nc.PlayerState{ID: "foe", X: 10, Y: 370, Alive: true},
	)

	in, _ := c.Sample()
	if in.MX != 10 || in.MY != 370 {
		t.Fatalf("aim = (%v, %v), want locked foe (10, 370)", in.MX, in.MY)
	}
	if c.Locked() != "p_foe" {
		t.Fatalf("locked = %q", c.Locked())
	}
}

func TestControllerCloseDetaches(t *testing.T) {
	c, _ := attachedController(t, nc.PlayerState{ID: "me", Alive: true})
	c.HandleEvent(network.Event{Kind: network.EventClose}, time.Now())
	if c.Attached() {
		t.Fatalf("still attached after close")
	}
	if _, ok := c.Sample(); ok {
		t.Fatalf("sampled after close")
	}
}

func TestControllerIgnoresClosedChannel(t *testing.T) {
	c, _ := attachedController(t, nc.PlayerState{ID: "me", Alive: true})
	c.HandleEvent(network.Event{Kind: network.EventClose}, time.Now())
	if _, ok := c.Self(); ok {
		t.Fatalf("driven player kept after close")
	}
	c.HandleEvent(stateEvent(t, 2, nc.PlayerState{ID: "me", Alive: true}), time.Now())
	if _, ok := c.Self(); ok {
		t.Fatalf("frame from a closed channel applied")
	}

	c.HandleEvent(network.Event{Kind: network.EventOpen, Channel: 1}, time.Now())
	c.HandleEvent(onChannel(stateEvent(t, 1, nc.PlayerState{ID: "me", X: 7, Alive: true}), 1), time.Now())
	if pos, ok := c.Self(); !ok || pos.X != 7 {
		t.Fatalf("self = %+v, %v after reopening", pos, ok)
	}
}

func TestControllerTickSendsFrames(t *testing.T) {
	c, r := attachedController(t, nc.PlayerState{ID: "me", X: 1, Y: 2, Alive: true})
	now := time.Now()
	c.Tick(now)
	c.Tick(now.Add(10 * time.Millisecond))
	if len(r.binaries) != 1 {
		t.Fatalf("frames = %d, want 1", len(r.binaries))
	}
	in, err := protocol.DecodeInput(r.binaries[0])
	if err != nil || in.MX != 1 || in.MY != 2 {
		t.Fatalf("frame = %+v, %v", in, err)
	}
}
