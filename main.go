package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/voidrift/config"
	"github.com/automoto/voidrift/fonts"
	"github.com/automoto/voidrift/network"
	"github.com/automoto/voidrift/scenes"
	"github.com/automoto/voidrift/session"
	"github.com/automoto/voidrift/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// windowEffects is the desktop host for session effects. There is no
// address bar, so the current location lives in the window title.
type windowEffects struct {
	location string
}

func (w *windowEffects) Navigate(path string) {
	w.location = path
	log.Printf("[main] location %s", path)
	ebiten.SetWindowTitle(config.C.Title + " " + path)
}

func (w *windowEffects) AuthInvalid(reason string) {
	log.Printf("[main] login no longer valid: %s", reason)
}

func main() {
	envFile := flag.String("env", ".env", "dotenv file with VOIDRIFT_ overrides")
	serverURL := flag.String("url", "", "game server websocket URL")
	location := flag.String("path", "", "launch location, e.g. /play/<session id> or /play/<session id>/control/<player id>")
	name := flag.String("name", "", "pilot name")
	autoJoin := flag.Bool("join", true, "join the session in -path once the server confirms it")
	flag.Parse()

	if err := config.Load(*envFile); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadPrefs(); err == nil && saved != nil {
		systems.ApplyPrefs(saved)
		ebiten.SetFullscreen(saved.Fullscreen)
	}
	if *name != "" {
		config.App.PlayerName = *name
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("fonts: %v", err)
	}

	client := network.NewClient(network.ClientOptions{URL: *serverURL})
	defer client.Close()

	g := &Game{}
	if sid, pid, ok := session.ParseControllerPath(*location); ok {
		g.scene = scenes.NewControllerScene(g, client, sid, pid)
	} else {
		creds, err := session.OpenGDataCredentials(config.App.Name)
		var store session.CredentialStore = &session.MemoryCredentials{}
		if err != nil {
			log.Printf("Warning: credentials will not persist: %v", err)
		} else {
			store = creds
		}

		pending, _ := session.ParseSessionPath(*location)
		s := session.New(session.Options{
			Sender:           client,
			Effects:          &windowEffects{location: *location},
			Credentials:      store,
			Name:             config.App.PlayerName,
			PendingSessionID: pending,
			AutoJoin:         *autoJoin,
		})
		g.scene = scenes.NewNetworkedScene(g, client, s)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
