package netcomponents

import "github.com/automoto/voidrift/shared/netconfig"

// MobState is one AI-controlled ship of a snapshot.
type MobState struct {
	ID    string              `msgpack:"id" json:"id"`
	X     float64             `msgpack:"x" json:"x"`
	Y     float64             `msgpack:"y" json:"y"`
	R     float64             `msgpack:"r" json:"r"`
	VX    *float64            `msgpack:"vx,omitempty" json:"vx,omitempty"`
	VY    *float64            `msgpack:"vy,omitempty" json:"vy,omitempty"`
	HP    int                 `msgpack:"hp" json:"hp"`
	MaxHP int                 `msgpack:"mhp" json:"mhp"`
	Ship  *netconfig.ShipType `msgpack:"s,omitempty" json:"s,omitempty"`
	Alive bool                `msgpack:"a" json:"a"`
}

// DefaultMobShip is assumed when a mob record carries no ship type.
const DefaultMobShip = netconfig.ShipHeavy

// ShipType returns the ship type, defaulting omitted values.
func (m MobState) ShipType() netconfig.ShipType {
	if m.Ship == nil {
		return DefaultMobShip
	}
	return *m.Ship
}

func (m MobState) Velocity() (vx, vy float64) {
	return valueOf(m.VX), valueOf(m.VY)
}

func (m MobState) Pose() Pose {
	return Pose{X: m.X, Y: m.Y, R: m.R}
}
