package systems

import (
	"github.com/automoto/voidrift/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNetCamera follows the local player's interpolated pose. The session
// interpolator holds the last position while the player is absent, so the
// camera never snaps to the origin between lives.
func UpdateNetCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	viewEntry, ok := components.NetView.First(e.World)
	if !ok {
		return
	}
	view := components.NetView.Get(viewEntry)
	s := view.Session

	camera.Zoom = s.Zoom()
	if camera.Zoom == 0 {
		camera.Zoom = 1.0
	}

	interp := s.Interpolator()
	pose := interp.Camera(s.MyID(), view.Factor)
	if !interp.HasCamera() {
		return
	}
	camera.Position.X = pose.X
	camera.Position.Y = pose.Y
	camera.Bound = true
}
