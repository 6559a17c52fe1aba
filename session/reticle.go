package session

import (
	"github.com/automoto/voidrift/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Reticle animates the aim-assist ring between its free and locked sizes.
type Reticle struct {
	cfg      config.AimConfig
	target   string
	tween    *gween.Tween
	progress float32
	spin     float64
}

func NewReticle(cfg config.AimConfig) *Reticle {
	return &Reticle{cfg: cfg}
}

// Update advances the animation by dt seconds toward the lock state of
// lockedID. An empty id animates back to the free ring.
func (r *Reticle) Update(lockedID string, dt float32) {
	if lockedID != r.target {
		r.target = lockedID
		if lockedID != "" {
			r.tween = gween.New(r.progress, 1, r.cfg.AnimSeconds, ease.OutQuad)
		} else {
			r.tween = gween.New(r.progress, 0, r.cfg.AnimSeconds, ease.InQuad)
		}
	}
	if r.tween != nil {
		v, done := r.tween.Update(dt)
		r.progress = v
		if done {
			r.tween = nil
		}
	}
	r.spin += r.cfg.SpinMax * float64(r.progress) * float64(dt)
}

// Progress is 0 when free and 1 when fully locked.
func (r *Reticle) Progress() float32 { return r.progress }

func (r *Reticle) Target() string { return r.target }

// Radius interpolates the ring radius by lock progress.
func (r *Reticle) Radius() float64 {
	p := float64(r.progress)
	return r.cfg.FreeRadius + (r.cfg.LockRadius-r.cfg.FreeRadius)*p
}

// Spin is the accumulated ring rotation in radians.
func (r *Reticle) Spin() float64 { return r.spin }
