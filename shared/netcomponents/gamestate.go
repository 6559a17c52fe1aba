package netcomponents

import "github.com/automoto/voidrift/shared/netconfig"

// GameState is the full state broadcast for one server tick. Every entity
// collection is a complete replacement of the previous tick's collection.
type GameState struct {
	Players     []PlayerState     `msgpack:"p" json:"p"`
	Projectiles []ProjectileState `msgpack:"pr" json:"pr"`
	Mobs        []MobState        `msgpack:"m,omitempty" json:"m,omitempty"`
	Asteroids   []AsteroidState   `msgpack:"a,omitempty" json:"a,omitempty"`
	Pickups     []PickupState     `msgpack:"pk,omitempty" json:"pk,omitempty"`
	HealZones   []HealZoneState   `msgpack:"hz,omitempty" json:"hz,omitempty"`
	Tick        uint64            `msgpack:"tick" json:"tick"`

	MatchPhase    netconfig.MatchPhase `msgpack:"mp,omitempty" json:"mp,omitempty"`
	TimeLeft      float64              `msgpack:"tl,omitempty" json:"tl,omitempty"`
	TeamRedScore  int                  `msgpack:"rs,omitempty" json:"rs,omitempty"`
	TeamBlueScore int                  `msgpack:"bs,omitempty" json:"bs,omitempty"`
}

// MatchScalars are the non-entity fields of a snapshot.
type MatchScalars struct {
	Phase         netconfig.MatchPhase
	TimeLeft      float64
	TeamRedScore  int
	TeamBlueScore int
}

func (g *GameState) Scalars() MatchScalars {
	return MatchScalars{
		Phase:         g.MatchPhase,
		TimeLeft:      g.TimeLeft,
		TeamRedScore:  g.TeamRedScore,
		TeamBlueScore: g.TeamBlueScore,
	}
}
