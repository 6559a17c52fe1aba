package netcomponents

import "github.com/automoto/voidrift/shared/netconfig"

// PlayerState is one player record of a snapshot.
type PlayerState struct {
	ID    string             `msgpack:"id" json:"id"`
	Name  string             `msgpack:"n" json:"n"`
	X     float64            `msgpack:"x" json:"x"`
	Y     float64            `msgpack:"y" json:"y"`
	R     float64            `msgpack:"r" json:"r"`
	VX    *float64           `msgpack:"vx,omitempty" json:"vx,omitempty"`
	VY    *float64           `msgpack:"vy,omitempty" json:"vy,omitempty"`
	HP    int                `msgpack:"hp" json:"hp"`
	MaxHP int                `msgpack:"mhp" json:"mhp"`
	Ship  netconfig.ShipType `msgpack:"s" json:"s"`
	Score int                `msgpack:"sc" json:"sc"`
	Alive bool               `msgpack:"a" json:"a"`
	Boost bool               `msgpack:"b,omitempty" json:"b,omitempty"`
	Team  netconfig.Team     `msgpack:"tm,omitempty" json:"tm,omitempty"`

	AbilityCooldown float64 `msgpack:"acd,omitempty" json:"acd,omitempty"` // seconds until ready
	AbilityActive   bool    `msgpack:"aa,omitempty" json:"aa,omitempty"`
	Kills           int     `msgpack:"k,omitempty" json:"k,omitempty"`
	Deaths          int     `msgpack:"d,omitempty" json:"d,omitempty"`
}

// Velocity returns the velocity, treating omitted components as zero.
func (p PlayerState) Velocity() (vx, vy float64) {
	return valueOf(p.VX), valueOf(p.VY)
}

func (p PlayerState) Pose() Pose {
	return Pose{X: p.X, Y: p.Y, R: p.R}
}
