// Package keymap binds ship actions to keys, mouse buttons and gamepad
// buttons. It is kept apart from config so the sync core never links ebiten.
package keymap

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical ship action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFire
	ActionBoost
	ActionAbility
	ActionReady
	ActionLeave
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// Binding represents the keys and buttons that trigger one action
type Binding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Config holds all input mappings
type Config struct {
	Bindings map[ActionID]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Screen pixels per unit of full stick deflection
	StickReach float64
}

// Input is the global input configuration
var Input Config

func init() {
	Input = Config{
		AnalogDeadzone: 0.2,
		StickReach:     120,
		Bindings: map[ActionID]Binding{
			ActionFire: {
				Keys:         []ebiten.Key{ebiten.KeySpace},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// Right trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionBoost: {
				Keys:         []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
				// Left trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomLeft,
				},
			},
			ActionAbility: {
				Keys: []ebiten.Key{ebiten.KeyE, ebiten.KeyQ},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionReady: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionLeave: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
