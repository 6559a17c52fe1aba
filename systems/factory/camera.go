package factory

import (
	"time"

	"github.com/automoto/voidrift/archetypes"
	"github.com/automoto/voidrift/components"
	cfg "github.com/automoto/voidrift/config"
	"github.com/automoto/voidrift/session"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Zoom: cfg.Camera.Zoom})
}

// CreateNetView spawns the singleton every networked system reads the
// session through.
func CreateNetView(ecs *ecs.ECS, s *session.Session) {
	view := archetypes.NetView.Spawn(ecs)
	components.NetView.Set(view, &components.NetViewData{Session: s, Now: time.Now()})
}
