package session

import (
	"math"

	"github.com/automoto/voidrift/config"
	"github.com/automoto/voidrift/network"
	nc "github.com/automoto/voidrift/shared/netcomponents"
	dmath "github.com/yohamta/donburi/features/math"
)

// Candidate is a lockable target reduced to identity and position. Player
// and mob ids are prefixed so they cannot collide.
type Candidate struct {
	ID  string
	Pos dmath.Vec2
}

// TargetLock is a sticky nearest-enemy lock. Once a target is held it is kept
// for as long as it stays in range, even if something closer shows up.
type TargetLock struct {
	orbitRadius  float64
	detectRadius float64
	locked       string
}

func NewTargetLock(cfg config.AimConfig) *TargetLock {
	return &TargetLock{
		orbitRadius:  cfg.OrbitRadius,
		detectRadius: cfg.DetectRadius,
	}
}

// OrbitPoint is the reference point ahead of origin along angle.
func (l *TargetLock) OrbitPoint(origin dmath.Vec2, angle float64) dmath.Vec2 {
	return dmath.Vec2{
		X: origin.X + math.Cos(angle)*l.orbitRadius,
		Y: origin.Y + math.Sin(angle)*l.orbitRadius,
	}
}

// Update re-evaluates the lock against this tick's candidates. Equal
// distances resolve to the lowest id.
func (l *TargetLock) Update(orbit dmath.Vec2, candidates []Candidate) (Candidate, bool) {
	r2 := l.detectRadius * l.detectRadius

	if l.locked != "" {
		for _, c := range candidates {
			if c.ID == l.locked && dist2(orbit, c.Pos) <= r2 {
				return c, true
			}
		}
	}

	var best Candidate
	bestD2 := math.Inf(1)
	found := false
	for _, c := range candidates {
		d2 := dist2(orbit, c.Pos)
		if d2 > r2 {
			continue
		}
		if d2 < bestD2 || (d2 == bestD2 && c.ID < best.ID) {
			best, bestD2, found = c, d2, true
		}
	}
	if !found {
		l.locked = ""
		return Candidate{}, false
	}
	l.locked = best.ID
	return best, true
}

func (l *TargetLock) Locked() string { return l.locked }

func (l *TargetLock) Clear() { l.locked = "" }

func dist2(a, b dmath.Vec2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

const (
	playerPrefix = "p_"
	mobPrefix    = "m_"
)

// Candidates lists every active player other than self and every active mob.
func Candidates(store *network.SnapshotStore, selfID string) []Candidate {
	return candidatesFrom(store.Players(), store.Mobs(), selfID)
}

func candidatesFrom(players []nc.PlayerState, mobs []nc.MobState, selfID string) []Candidate {
	out := make([]Candidate, 0, len(players)+len(mobs))
	for _, p := range players {
		if p.ID == selfID || !p.Alive {
			continue
		}
		out = append(out, Candidate{ID: playerPrefix + p.ID, Pos: dmath.Vec2{X: p.X, Y: p.Y}})
	}
	for _, m := range mobs {
		if !m.Alive {
			continue
		}
		out = append(out, Candidate{ID: mobPrefix + m.ID, Pos: dmath.Vec2{X: m.X, Y: m.Y}})
	}
	return out
}
