package systems

import (
	"math"
	"time"

	"github.com/automoto/voidrift/components"
	cfg "github.com/automoto/voidrift/config"
	"github.com/automoto/voidrift/config/keymap"
	"github.com/automoto/voidrift/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var touchIDs []ebiten.TouchID

// UpdateNetView refreshes the per-frame session view. It runs first so
// every later system shares one clock reading.
func UpdateNetView(e *ecs.ECS) {
	entry, ok := components.NetView.First(e.World)
	if !ok {
		return
	}
	view := components.NetView.Get(entry)
	view.Now = time.Now()
	view.Factor = view.Session.Interpolator().Factor(view.Now)
	if actionJustPressed(keymap.ActionToggleDebug) {
		view.Debug = !view.Debug
	}
}

// UpdateNetInput polls keyboard, mouse, gamepad and touch into session
// controls, then runs the session's fixed-rate input tick.
func UpdateNetInput(e *ecs.ECS) {
	entry, ok := components.NetView.First(e.World)
	if !ok {
		return
	}
	view := components.NetView.Get(entry)
	s := view.Session

	_, wy := ebiten.Wheel()
	s.StepZoom(wy, view.Now)
	if zoom, ok := s.ZoomToSave(view.Now); ok {
		cfg.Camera.Zoom = zoom
		_ = SavePrefs(CurrentPrefs(s.Name(), zoom, ebiten.IsFullscreen()))
	}
	s.SetViewport(float64(cfg.C.Width), float64(cfg.C.Height), s.Zoom())
	s.SetControls(ReadControls())

	if actionJustPressed(keymap.ActionLeave) && s.SessionID() != "" {
		s.LeaveSession()
	}
	if actionJustPressed(keymap.ActionReady) {
		switch s.Phase() {
		case session.PhaseMatchLobby:
			s.SendReady()
		case session.PhaseResult:
			s.SendRematch()
		}
	}

	s.Tick(view.Now)
	s.UpdateReticle(float32(1.0 / float64(ebiten.TPS())))
}

// ReadControls samples every input device into one Controls value. A
// deflected gamepad stick or an active touch switches aiming to joystick
// mode; otherwise the mouse cursor aims.
func ReadControls() session.Controls {
	x, y := ebiten.CursorPosition()
	c := session.Controls{
		PointerX: float64(x),
		PointerY: float64(y),
		Fire:     actionPressed(keymap.ActionFire),
		Boost:    actionPressed(keymap.ActionBoost),
		Ability:  actionPressed(keymap.ActionAbility),
	}

	if jx, jy, ok := readStick(); ok {
		c.Joystick = true
		c.JoyX, c.JoyY = jx, jy
		return c
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		c.Joystick = true
		c.JoyX = float64(tx) - float64(cfg.C.Width)/2
		c.JoyY = float64(ty) - float64(cfg.C.Height)/2
		c.Fire = c.Fire || len(touchIDs) > 1
	}
	return c
}

func readStick() (float64, float64, bool) {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		ax := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ay := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(ax, ay) < keymap.Input.AnalogDeadzone {
			ax = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			ay = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		}
		if math.Hypot(ax, ay) < keymap.Input.AnalogDeadzone {
			continue
		}
		return ax * keymap.Input.StickReach, ay * keymap.Input.StickReach, true
	}
	return 0, 0, false
}

func actionPressed(action keymap.ActionID) bool {
	b := keymap.Input.Bindings[action]
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, m := range b.MouseButtons {
		if ebiten.IsMouseButtonPressed(m) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func actionJustPressed(action keymap.ActionID) bool {
	b := keymap.Input.Bindings[action]
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, m := range b.MouseButtons {
		if inpututil.IsMouseButtonJustPressed(m) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}
