package components

import (
	"time"

	"github.com/automoto/voidrift/session"
	"github.com/yohamta/donburi"
)

// NetViewData is the per-frame window onto the session. It is a singleton
// refreshed at the start of every update so systems and renderers agree on
// one interpolation factor.
type NetViewData struct {
	Session *session.Session
	Now     time.Time
	Factor  float64
	Debug   bool
}

var NetView = donburi.NewComponentType[NetViewData]()
