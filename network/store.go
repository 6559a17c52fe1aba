package network

import (
	"log"
	"sort"
	"time"

	"github.com/automoto/voidrift/shared/netcomponents"
)

// SnapshotStore holds the current and previous authoritative entity
// collections. Every Apply replaces both generations wholesale.
type SnapshotStore struct {
	players     map[string]netcomponents.PlayerState
	prevPlayers map[string]netcomponents.PlayerState

	mobs     map[string]netcomponents.MobState
	prevMobs map[string]netcomponents.MobState

	projectiles     map[string]netcomponents.ProjectileState
	prevProjectiles map[string]netcomponents.ProjectileState

	asteroids     map[string]netcomponents.AsteroidState
	prevAsteroids map[string]netcomponents.AsteroidState

	pickups   map[string]netcomponents.PickupState
	healZones map[string]netcomponents.HealZoneState

	tick      uint64
	applied   int
	match     netcomponents.MatchScalars
	arrivedAt time.Time
}

func NewSnapshotStore() *SnapshotStore {
	s := &SnapshotStore{}
	s.Reset()
	return s
}

// Reset forgets everything, as after leaving a session.
func (s *SnapshotStore) Reset() {
	s.players = map[string]netcomponents.PlayerState{}
	s.prevPlayers = map[string]netcomponents.PlayerState{}
	s.mobs = map[string]netcomponents.MobState{}
	s.prevMobs = map[string]netcomponents.MobState{}
	s.projectiles = map[string]netcomponents.ProjectileState{}
	s.prevProjectiles = map[string]netcomponents.ProjectileState{}
	s.asteroids = map[string]netcomponents.AsteroidState{}
	s.prevAsteroids = map[string]netcomponents.AsteroidState{}
	s.pickups = map[string]netcomponents.PickupState{}
	s.healZones = map[string]netcomponents.HealZoneState{}
	s.tick = 0
	s.applied = 0
	s.match = netcomponents.MatchScalars{}
	s.arrivedAt = time.Time{}
}

// Apply installs a snapshot as current. The old current generation becomes
// previous, and omitted velocity components are backfilled from it.
func (s *SnapshotStore) Apply(gs *netcomponents.GameState, now time.Time) {
	if gs == nil {
		return
	}
	if s.applied > 0 && gs.Tick <= s.tick {
		log.Printf("[store] tick %d arrived after tick %d; applying in arrival order", gs.Tick, s.tick)
	}

	s.prevPlayers = s.players
	s.players = make(map[string]netcomponents.PlayerState, len(gs.Players))
	for _, p := range gs.Players {
		prev := s.prevPlayers[p.ID]
		p.VX = netcomponents.BackfillVelocity(p.VX, prev.VX)
		p.VY = netcomponents.BackfillVelocity(p.VY, prev.VY)
		s.players[p.ID] = p
	}

	s.prevMobs = s.mobs
	s.mobs = make(map[string]netcomponents.MobState, len(gs.Mobs))
	for _, m := range gs.Mobs {
		prev := s.prevMobs[m.ID]
		m.VX = netcomponents.BackfillVelocity(m.VX, prev.VX)
		m.VY = netcomponents.BackfillVelocity(m.VY, prev.VY)
		if m.Ship == nil {
			ship := netcomponents.DefaultMobShip
			m.Ship = &ship
		}
		s.mobs[m.ID] = m
	}

	s.prevProjectiles = s.projectiles
	s.projectiles = indexByID(gs.Projectiles, func(p netcomponents.ProjectileState) string { return p.ID })

	s.prevAsteroids = s.asteroids
	s.asteroids = indexByID(gs.Asteroids, func(a netcomponents.AsteroidState) string { return a.ID })

	s.pickups = indexByID(gs.Pickups, func(p netcomponents.PickupState) string { return p.ID })
	s.healZones = indexByID(gs.HealZones, func(h netcomponents.HealZoneState) string { return h.ID })

	s.tick = gs.Tick
	s.match = gs.Scalars()
	s.arrivedAt = now
	s.applied++
}

func indexByID[T any](items []T, id func(T) string) map[string]T {
	out := make(map[string]T, len(items))
	for _, it := range items {
		out[id(it)] = it
	}
	return out
}

func sortedValues[T any](m map[string]T) []T {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func (s *SnapshotStore) Tick() uint64 { return s.tick }

// Applied returns how many snapshots have been installed since the last Reset.
func (s *SnapshotStore) Applied() int { return s.applied }

func (s *SnapshotStore) Match() netcomponents.MatchScalars { return s.match }

func (s *SnapshotStore) ArrivedAt() time.Time { return s.arrivedAt }

func (s *SnapshotStore) Player(id string) (netcomponents.PlayerState, bool) {
	p, ok := s.players[id]
	return p, ok
}

func (s *SnapshotStore) PrevPlayer(id string) (netcomponents.PlayerState, bool) {
	p, ok := s.prevPlayers[id]
	return p, ok
}

func (s *SnapshotStore) Mob(id string) (netcomponents.MobState, bool) {
	m, ok := s.mobs[id]
	return m, ok
}

func (s *SnapshotStore) PrevMob(id string) (netcomponents.MobState, bool) {
	m, ok := s.prevMobs[id]
	return m, ok
}

func (s *SnapshotStore) Projectile(id string) (netcomponents.ProjectileState, bool) {
	p, ok := s.projectiles[id]
	return p, ok
}

func (s *SnapshotStore) PrevProjectile(id string) (netcomponents.ProjectileState, bool) {
	p, ok := s.prevProjectiles[id]
	return p, ok
}

func (s *SnapshotStore) Asteroid(id string) (netcomponents.AsteroidState, bool) {
	a, ok := s.asteroids[id]
	return a, ok
}

func (s *SnapshotStore) PrevAsteroid(id string) (netcomponents.AsteroidState, bool) {
	a, ok := s.prevAsteroids[id]
	return a, ok
}

// Players returns the current players ordered by id.
func (s *SnapshotStore) Players() []netcomponents.PlayerState { return sortedValues(s.players) }

func (s *SnapshotStore) Mobs() []netcomponents.MobState { return sortedValues(s.mobs) }

func (s *SnapshotStore) Projectiles() []netcomponents.ProjectileState {
	return sortedValues(s.projectiles)
}

func (s *SnapshotStore) Asteroids() []netcomponents.AsteroidState { return sortedValues(s.asteroids) }

func (s *SnapshotStore) Pickups() []netcomponents.PickupState { return sortedValues(s.pickups) }

func (s *SnapshotStore) HealZones() []netcomponents.HealZoneState { return sortedValues(s.healZones) }
