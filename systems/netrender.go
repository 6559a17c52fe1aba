package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/voidrift/components"
	cfg "github.com/automoto/voidrift/config"
	"github.com/automoto/voidrift/fonts"
	"github.com/automoto/voidrift/network"
	"github.com/automoto/voidrift/session"
	nc "github.com/automoto/voidrift/shared/netcomponents"
	"github.com/automoto/voidrift/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	shipNose      = 14
	shipWing      = 10
	projectileR   = 3
	pickupR       = 6
	hpBarWidth    = 28
	hpBarHeight   = 3
	hitMarkerSize = 6
)

// viewport maps world coordinates onto the screen around the camera.
type viewport struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func newViewport(camera *components.CameraData) viewport {
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	return viewport{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		zoom:  zoom,
		halfW: float64(cfg.C.Width) / 2,
		halfH: float64(cfg.C.Height) / 2,
	}
}

func (v viewport) point(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + v.halfW), float32((y-v.camY)*v.zoom + v.halfH)
}

func (v viewport) length(d float64) float32 { return float32(d * v.zoom) }

// DrawNetWorld renders every snapshot entity at its interpolated pose.
func DrawNetWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	viewEntry, ok := components.NetView.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	view := components.NetView.Get(viewEntry)
	if !camera.Bound {
		return
	}

	s := view.Session
	store := s.Store()
	interp := s.Interpolator()
	vp := newViewport(camera)
	t := view.Factor

	for _, hz := range store.HealZones() {
		x, y := vp.point(hz.X, hz.Y)
		vector.StrokeCircle(screen, x, y, vp.length(hz.Radius), 2, cfg.LightGreen, true)
	}

	for _, a := range store.Asteroids() {
		pose, _ := interp.Pose(network.KindAsteroid, a.ID, t)
		x, y := vp.point(pose.X, pose.Y)
		vector.StrokeCircle(screen, x, y, vp.length(a.Radius), 2, cfg.Gray, true)
	}

	for _, pk := range store.Pickups() {
		x, y := vp.point(pk.X, pk.Y)
		vector.DrawFilledCircle(screen, x, y, vp.length(pickupR), cfg.Yellow, true)
	}

	for _, p := range store.Projectiles() {
		pose, _ := interp.Pose(network.KindProjectile, p.ID, t)
		x, y := vp.point(pose.X, pose.Y)
		clr := cfg.Orange
		if p.Owner == s.MyID() {
			clr = cfg.Yellow
		}
		vector.DrawFilledCircle(screen, x, y, vp.length(projectileR), clr, true)
	}

	for _, m := range store.Mobs() {
		if !m.Alive {
			continue
		}
		pose, _ := interp.Pose(network.KindMob, m.ID, t)
		drawShip(screen, vp, pose, cfg.LightRed)
		drawHPBar(screen, vp, pose, m.HP, m.MaxHP)
	}

	small := fonts.Small.Get()
	for _, p := range store.Players() {
		if !p.Alive {
			continue
		}
		pose, _ := interp.Pose(network.KindPlayer, p.ID, t)
		drawShip(screen, vp, pose, playerColor(p, s.MyID()))
		drawHPBar(screen, vp, pose, p.HP, p.MaxHP)
		x, y := vp.point(pose.X, pose.Y)
		text.Draw(screen, p.Name, small, int(x)-len(p.Name)*3, int(y)-shipNose-8, cfg.White)
	}

	drawReticle(screen, vp, s)
	drawHitMarker(screen, vp, s, view)
}

func playerColor(p nc.PlayerState, myID string) color.RGBA {
	if p.ID == myID {
		return cfg.BrightGreen
	}
	switch p.Team {
	case netconfig.TeamRed:
		return cfg.Red
	case netconfig.TeamBlue:
		return cfg.LightBlue
	}
	return cfg.White
}

func drawShip(screen *ebiten.Image, vp viewport, pose nc.Pose, clr color.RGBA) {
	noseX, noseY := vp.point(pose.X+math.Cos(pose.R)*shipNose, pose.Y+math.Sin(pose.R)*shipNose)
	lx, ly := vp.point(pose.X+math.Cos(pose.R+2.5)*shipWing, pose.Y+math.Sin(pose.R+2.5)*shipWing)
	rx, ry := vp.point(pose.X+math.Cos(pose.R-2.5)*shipWing, pose.Y+math.Sin(pose.R-2.5)*shipWing)
	vector.StrokeLine(screen, noseX, noseY, lx, ly, 2, clr, true)
	vector.StrokeLine(screen, lx, ly, rx, ry, 2, clr, true)
	vector.StrokeLine(screen, rx, ry, noseX, noseY, 2, clr, true)
}

func drawHPBar(screen *ebiten.Image, vp viewport, pose nc.Pose, hp, maxHP int) {
	if maxHP <= 0 {
		return
	}
	x, y := vp.point(pose.X, pose.Y)
	x -= hpBarWidth / 2
	y += shipNose + 4
	ratio := float32(math.Max(0, math.Min(1, float64(hp)/float64(maxHP))))
	vector.DrawFilledRect(screen, x, y, hpBarWidth, hpBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, x, y, hpBarWidth*ratio, hpBarHeight, cfg.LightGreen, false)
}

// drawReticle rings the aim-assist target, shrinking as the lock settles.
func drawReticle(screen *ebiten.Image, vp viewport, s *session.Session) {
	r := s.Reticle()
	if r.Progress() <= 0 {
		return
	}
	target, ok := s.AimTarget()
	if !ok {
		return
	}
	x, y := vp.point(target.Pos.X, target.Pos.Y)
	radius := vp.length(r.Radius())
	alpha := uint8(80 + 175*r.Progress())
	clr := color.RGBA{R: 255, G: 60, B: 60, A: alpha}
	vector.StrokeCircle(screen, x, y, radius, 2, clr, true)
	for i := 0; i < 4; i++ {
		a := r.Spin() + float64(i)*math.Pi/2
		x0 := x + float32(math.Cos(a))*radius
		y0 := y + float32(math.Sin(a))*radius
		x1 := x + float32(math.Cos(a))*(radius+6)
		y1 := y + float32(math.Sin(a))*(radius+6)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
	}
}

func drawHitMarker(screen *ebiten.Image, vp viewport, s *session.Session, view *components.NetViewData) {
	h, ok := s.HitMarker(view.Now)
	if !ok {
		return
	}
	x, y := vp.point(h.X, h.Y)
	vector.StrokeLine(screen, x-hitMarkerSize, y-hitMarkerSize, x+hitMarkerSize, y+hitMarkerSize, 2, cfg.White, true)
	vector.StrokeLine(screen, x-hitMarkerSize, y+hitMarkerSize, x+hitMarkerSize, y-hitMarkerSize, 2, cfg.White, true)
	text.Draw(screen, fmt.Sprint(h.Damage), fonts.Small.Get(), int(x)+hitMarkerSize+2, int(y)-hitMarkerSize, cfg.Yellow)
}
