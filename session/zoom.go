package session

import (
	"math"
	"time"
)

// StepZoom moves the zoom one step in the direction of dir, clamped to the
// camera limits. The change is marked for saving.
func (s *Session) StepZoom(dir float64, now time.Time) {
	if dir == 0 {
		return
	}
	cfg := s.camera
	z := s.zoom + math.Copysign(cfg.ZoomStep, dir)
	z = math.Max(cfg.MinZoom, math.Min(cfg.MaxZoom, z))
	if z == s.zoom {
		return
	}
	s.zoom = z
	s.zoomDirty = true
	s.zoomChangedAt = now
}

// ZoomToSave reports a zoom level once it has been left alone for the save
// delay. It returns true at most once per burst of changes.
func (s *Session) ZoomToSave(now time.Time) (float64, bool) {
	if !s.zoomDirty || now.Sub(s.zoomChangedAt) < s.camera.ZoomSaveDelay {
		return 0, false
	}
	s.zoomDirty = false
	return s.zoom, true
}
