package messages

import "github.com/automoto/voidrift/shared/netconfig"

// Input is one sample of local intent, sent 20 times per second as a fixed
// 8-byte binary frame. MX and MY are the world-space aim point.
type Input struct {
	MX, MY    float64
	Fire      bool
	Boost     bool
	Ability   bool
	Threshold float64 // dead-zone radius in world units
}

// Flags packs the action booleans into the frame's flag byte.
func (in Input) Flags() byte {
	var f byte
	if in.Fire {
		f |= netconfig.FlagFire
	}
	if in.Boost {
		f |= netconfig.FlagBoost
	}
	if in.Ability {
		f |= netconfig.FlagAbility
	}
	return f
}

// SetFlags unpacks a flag byte.
func (in *Input) SetFlags(f byte) {
	in.Fire = f&netconfig.FlagFire != 0
	in.Boost = f&netconfig.FlagBoost != 0
	in.Ability = f&netconfig.FlagAbility != 0
}
