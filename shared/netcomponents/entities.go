package netcomponents

import "github.com/automoto/voidrift/shared/netconfig"

// ProjectileState carries no velocity; projectiles are repositioned by the
// server every tick.
type ProjectileState struct {
	ID    string  `msgpack:"id" json:"id"`
	X     float64 `msgpack:"x" json:"x"`
	Y     float64 `msgpack:"y" json:"y"`
	R     float64 `msgpack:"r" json:"r"`
	Owner string  `msgpack:"o" json:"o"`
}

func (p ProjectileState) Pose() Pose {
	return Pose{X: p.X, Y: p.Y, R: p.R}
}

type AsteroidState struct {
	ID     string  `msgpack:"id" json:"id"`
	X      float64 `msgpack:"x" json:"x"`
	Y      float64 `msgpack:"y" json:"y"`
	R      float64 `msgpack:"r" json:"r"`
	Radius float64 `msgpack:"rad,omitempty" json:"rad,omitempty"`
}

func (a AsteroidState) Pose() Pose {
	return Pose{X: a.X, Y: a.Y, R: a.R}
}

type PickupState struct {
	ID   string  `msgpack:"id" json:"id"`
	X    float64 `msgpack:"x" json:"x"`
	Y    float64 `msgpack:"y" json:"y"`
	Kind int     `msgpack:"k,omitempty" json:"k,omitempty"`
}

// HealZoneState is an area heal placed by a support ship ability.
type HealZoneState struct {
	ID     string         `msgpack:"id" json:"id"`
	X      float64        `msgpack:"x" json:"x"`
	Y      float64        `msgpack:"y" json:"y"`
	Radius float64        `msgpack:"rad" json:"rad"`
	Team   netconfig.Team `msgpack:"tm,omitempty" json:"tm,omitempty"`
}
