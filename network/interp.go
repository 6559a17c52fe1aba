package network

import (
	"time"

	nc "github.com/automoto/voidrift/shared/netcomponents"
)

// EntityKind selects which snapshot collection a pose is read from.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindMob
	KindProjectile
	KindAsteroid
)

// Interpolator blends the previous and current snapshot generations into
// render poses.
type Interpolator struct {
	store *SnapshotStore
	clock *InterpolationClock

	camera    nc.Pose
	hasCamera bool
}

func NewInterpolator(store *SnapshotStore, clock *InterpolationClock) *Interpolator {
	return &Interpolator{store: store, clock: clock}
}

// Pose returns the blended pose of an entity at factor t. An entity with no
// previous record is placed at its current pose regardless of t.
func (i *Interpolator) Pose(kind EntityKind, id string, t float64) (nc.Pose, bool) {
	cur, prev, hasPrev, ok := i.lookup(kind, id)
	if !ok {
		return nc.Pose{}, false
	}
	if !hasPrev {
		return cur, true
	}
	return nc.LerpPose(prev, cur, t), true
}

// PoseAt is Pose with the factor taken from the clock.
func (i *Interpolator) PoseAt(kind EntityKind, id string, now time.Time) (nc.Pose, bool) {
	return i.Pose(kind, id, i.clock.Factor(now))
}

func (i *Interpolator) Factor(now time.Time) float64 {
	return i.clock.Factor(now)
}

// Camera follows the local player as a pseudo-entity. While that player is
// absent the camera holds its last position.
func (i *Interpolator) Camera(localID string, t float64) nc.Pose {
	if localID != "" {
		if p, ok := i.Pose(KindPlayer, localID, t); ok {
			i.camera = p
			i.hasCamera = true
		}
	}
	return i.camera
}

// HasCamera reports whether the camera has ever been bound to a player.
func (i *Interpolator) HasCamera() bool { return i.hasCamera }

// ResetCamera drops the held camera position.
func (i *Interpolator) ResetCamera() {
	i.camera = nc.Pose{}
	i.hasCamera = false
}

func (i *Interpolator) lookup(kind EntityKind, id string) (cur, prev nc.Pose, hasPrev, ok bool) {
	s := i.store
	switch kind {
	case KindPlayer:
		c, found := s.Player(id)
		if !found {
			return
		}
		p, had := s.PrevPlayer(id)
		return c.Pose(), p.Pose(), had, true
	case KindMob:
		c, found := s.Mob(id)
		if !found {
			return
		}
		p, had := s.PrevMob(id)
		return c.Pose(), p.Pose(), had, true
	case KindProjectile:
		c, found := s.Projectile(id)
		if !found {
			return
		}
		p, had := s.PrevProjectile(id)
		return c.Pose(), p.Pose(), had, true
	case KindAsteroid:
		c, found := s.Asteroid(id)
		if !found {
			return
		}
		p, had := s.PrevAsteroid(id)
		return c.Pose(), p.Pose(), had, true
	}
	return
}
