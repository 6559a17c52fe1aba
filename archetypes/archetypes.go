package archetypes

import (
	"github.com/automoto/voidrift/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Draw layers, back to front.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

var (
	Camera = newArchetype(
		components.Camera,
	)
	NetView = newArchetype(
		components.NetView,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
