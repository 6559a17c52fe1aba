package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Zoom     float64
	Bound    bool // false until the local player has been seen
}

var Camera = donburi.NewComponentType[CameraData]()
