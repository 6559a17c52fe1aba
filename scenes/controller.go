package scenes

import (
	"fmt"
	"math"
	"time"

	cfg "github.com/automoto/voidrift/config"
	"github.com/automoto/voidrift/fonts"
	"github.com/automoto/voidrift/network"
	"github.com/automoto/voidrift/session"
	"github.com/automoto/voidrift/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const padRadius = 120

// ControllerScene turns this window into a gamepad for a ship flown in
// another client. The mouse, touch or stick offset from the pad center is
// the joystick.
type ControllerScene struct {
	sceneChanger SceneChanger
	netClient    *network.Client
	ctrl         *session.Controller
	controls     session.Controls
	started      bool
}

func NewControllerScene(sc SceneChanger, client *network.Client, sessionID, playerID string) *ControllerScene {
	return &ControllerScene{
		sceneChanger: sc,
		netClient:    client,
		ctrl:         session.NewController(client, sessionID, playerID),
	}
}

func (cs *ControllerScene) Update() {
	if !cs.started {
		cs.netClient.Connect()
		cs.started = true
	}

	now := time.Now()
	for _, ev := range cs.netClient.Events() {
		cs.ctrl.HandleEvent(ev, now)
	}

	c := systems.ReadControls()
	if !c.Joystick {
		c.Joystick = true
		c.JoyX = c.PointerX - float64(cfg.C.Width)/2
		c.JoyY = c.PointerY - float64(cfg.C.Height)/2
	}
	if d := math.Hypot(c.JoyX, c.JoyY); d > padRadius {
		c.JoyX *= padRadius / d
		c.JoyY *= padRadius / d
	}
	cs.controls = c
	cs.ctrl.SetControls(c)
	cs.ctrl.Tick(now)
}

func (cs *ControllerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Space)

	cx, cy := float32(cfg.C.Width)/2, float32(cfg.C.Height)/2
	vector.StrokeCircle(screen, cx, cy, padRadius, 2, cfg.Gray, true)
	vector.DrawFilledCircle(screen, cx+float32(cs.controls.JoyX), cy+float32(cs.controls.JoyY), 18, cfg.LightBlue, true)

	status := "Connecting..."
	switch {
	case cs.ctrl.Attached():
		status = "Attached"
	case cs.netClient.Connected():
		status = "Attaching..."
	}
	if id := cs.ctrl.Locked(); id != "" {
		status += fmt.Sprintf("  lock %s", id)
	}
	text.Draw(screen, status, fonts.Regular.Get(), 10, 26, cfg.White)

	if cs.controls.Fire {
		vector.DrawFilledCircle(screen, float32(cfg.C.Width)-60, float32(cfg.C.Height)-60, 24, cfg.Orange, true)
	}
	if cs.controls.Boost {
		vector.DrawFilledCircle(screen, 60, float32(cfg.C.Height)-60, 24, cfg.Purple, true)
	}
}
