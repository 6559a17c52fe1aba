package scenes

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/voidrift/archetypes"
	cfg "github.com/automoto/voidrift/config"
	"github.com/automoto/voidrift/network"
	"github.com/automoto/voidrift/session"
	"github.com/automoto/voidrift/shared/netconfig"
	"github.com/automoto/voidrift/systems"
	"github.com/automoto/voidrift/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var joinKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// NetworkedScene is the game client proper. It pumps transport events into
// the session once per frame, then lets the ECS systems sample input and
// draw.
type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	session      *session.Session
	once         sync.Once
}

func NewNetworkedScene(sc SceneChanger, client *network.Client, s *session.Session) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		session:      s,
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	now := time.Now()
	for _, ev := range ns.netClient.Events() {
		ns.session.HandleEvent(ev, now)
		if ev.Kind == network.EventOpen && ns.session.Phase() == session.PhaseLobby {
			ns.session.ListSessions()
		}
	}

	if ns.session.Phase() == session.PhaseLobby {
		ns.updateLobby()
	}

	ns.ecsWorld.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Space)

	if ns.ecsWorld == nil {
		return
	}

	ns.ecsWorld.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())

	factory.CreateCamera(ns.ecsWorld)
	factory.CreateNetView(ns.ecsWorld, ns.session)

	ns.ecsWorld.AddSystem(systems.UpdateNetView)
	ns.ecsWorld.AddSystem(systems.UpdateNetInput)
	ns.ecsWorld.AddSystem(systems.UpdateNetCamera)
	ns.ecsWorld.AddRenderer(archetypes.LayerWorld, systems.DrawNetWorld)
	ns.ecsWorld.AddRenderer(archetypes.LayerHUD, systems.DrawNetHUD)

	ns.netClient.Connect()
}

// updateLobby handles the session browser keys.
func (ns *NetworkedScene) updateLobby() {
	s := ns.session
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		s.ListSessions()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		s.CreateSession(fmt.Sprintf("%s's arena", s.Name()), netconfig.ModeFFA)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		s.CreateSession(fmt.Sprintf("%s's squad", s.Name()), netconfig.ModeTDM)
	case inpututil.IsKeyJustPressed(ebiten.KeyJ):
		if c := s.Lobby().Checked; c != nil && c.Exists {
			s.JoinSession(c.SessionID, netconfig.ModeFFA)
		}
	}

	sessions := s.Lobby().Sessions
	for i, k := range joinKeys {
		if i < len(sessions) && inpututil.IsKeyJustPressed(k) {
			info := sessions[i]
			log.Printf("[networked] joining %s (%s)", info.Name, info.ID)
			s.JoinSession(info.ID, info.Mode)
			return
		}
	}
}
