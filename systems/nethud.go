package systems

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/automoto/voidrift/components"
	cfg "github.com/automoto/voidrift/config"
	"github.com/automoto/voidrift/fonts"
	"github.com/automoto/voidrift/session"
	"github.com/automoto/voidrift/shared/messages"
	"github.com/automoto/voidrift/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	chatLines     = 5
)

// DrawNetHUD renders the overlay for whatever phase the session is in.
func DrawNetHUD(e *ecs.ECS, screen *ebiten.Image) {
	viewEntry, ok := components.NetView.First(e.World)
	if !ok {
		return
	}
	view := components.NetView.Get(viewEntry)
	s := view.Session

	drawStatusLine(screen, s)

	switch s.Phase() {
	case session.PhaseLobby:
		drawLobby(screen, s)
	case session.PhaseMatchLobby:
		drawMatchLobby(screen, s)
	case session.PhaseCountdown:
		drawCentered(screen, fmt.Sprintf("%d", int(math.Ceil(s.Match().Countdown))), fonts.Title.Get(), cfg.Yellow)
	case session.PhaseDead:
		msg := "Destroyed"
		if cause := s.DeathCause(); cause != "" {
			msg = "Destroyed by " + cause
		}
		drawCentered(screen, msg, fonts.Bold.Get(), cfg.LightRed)
	case session.PhaseResult:
		drawResult(screen, s)
	}

	if s.SessionID() != "" {
		drawMatchBar(screen, s)
		drawKillFeed(screen, s, view)
		drawChat(screen, s)
	}
	if view.Debug {
		drawDebug(screen, s, view)
	}
}

func drawStatusLine(screen *ebiten.Image, s *session.Session) {
	small := fonts.Small.Get()
	status := "offline"
	clr := cfg.LightRed
	if s.Connected() {
		status = "online"
		clr = cfg.LightGreen
	}
	if s.ControllerAttached() {
		status += " - controller attached"
	}
	line := fmt.Sprintf("%s | %s | %s", status, s.Phase(), s.Mode())
	if a := s.Auth(); a.LoggedIn {
		line += " | " + a.Username
	}
	text.Draw(screen, line, small, hudMargin, hudMargin+hudLineHeight, clr)
}

func drawLobby(screen *ebiten.Image, s *session.Session) {
	face := fonts.Regular.Get()
	x, y := hudMargin, hudMargin+3*hudLineHeight
	text.Draw(screen, "Sessions  [L] refresh  [N] new FFA  [T] new TDM  [1-9] join", face, x, y, cfg.White)
	y += hudLineHeight
	lobby := s.Lobby()
	for i, info := range lobby.Sessions {
		if i >= 9 {
			break
		}
		y += hudLineHeight
		line := fmt.Sprintf("%d. %s  (%s, %d players)", i+1, info.Name, info.Mode, info.Players)
		text.Draw(screen, line, face, x, y, cfg.LightBlue)
	}
	if c := lobby.Checked; c != nil && c.Exists {
		y += 2 * hudLineHeight
		text.Draw(screen, fmt.Sprintf("Invited to %s (%d players) - press [J] to join", c.Name, c.Players), face, x, y, cfg.Yellow)
	}
	if lobby.LastError != "" {
		y += 2 * hudLineHeight
		text.Draw(screen, lobby.LastError, face, x, y, cfg.LightRed)
	}
}

func drawMatchLobby(screen *ebiten.Image, s *session.Session) {
	face := fonts.Regular.Get()
	teams := s.Match().Teams
	y := hudMargin + 3*hudLineHeight
	text.Draw(screen, "Match lobby - [Enter] ready", face, hudMargin, y, cfg.White)
	drawRoster(screen, "Red", teams.Red, hudMargin, y+2*hudLineHeight, cfg.Red)
	drawRoster(screen, "Blue", teams.Blue, hudMargin+240, y+2*hudLineHeight, cfg.LightBlue)
}

func drawRoster(screen *ebiten.Image, title string, members []messages.TeamMember, x, y int, clr color.RGBA) {
	face := fonts.Regular.Get()
	text.Draw(screen, title, face, x, y, clr)
	for i, m := range members {
		mark := " "
		if m.Ready {
			mark = "*"
		}
		text.Draw(screen, mark+" "+m.Name, face, x, y+(i+1)*hudLineHeight, cfg.White)
	}
}

func drawResult(screen *ebiten.Image, s *session.Session) {
	res := s.Match().Result
	if res == nil {
		drawCentered(screen, "Match over", fonts.Bold.Get(), cfg.White)
		return
	}
	face := fonts.Regular.Get()
	title := "Match over"
	switch res.WinnerTeam {
	case netconfig.TeamRed:
		title = "Red team wins"
	case netconfig.TeamBlue:
		title = "Blue team wins"
	}
	drawCentered(screen, title, fonts.Bold.Get(), cfg.Yellow)
	y := cfg.C.Height/2 + 2*hudLineHeight
	x := cfg.C.Width/2 - 160
	for _, p := range res.Players {
		line := fmt.Sprintf("%-16s %3d K %3d D %3d A %5d", p.Name, p.Kills, p.Deaths, p.Assists, p.Score)
		if p.MVP {
			line += "  MVP"
		}
		text.Draw(screen, line, face, x, y, cfg.White)
		y += hudLineHeight
	}
	text.Draw(screen, "[Enter] rematch  [Esc] leave", face, x, y+hudLineHeight, cfg.Gray)
}

func drawMatchBar(screen *ebiten.Image, s *session.Session) {
	face := fonts.Regular.Get()
	m := s.Match()
	var parts []string
	if m.TimeLeft > 0 {
		secs := int(m.TimeLeft)
		parts = append(parts, fmt.Sprintf("%d:%02d", secs/60, secs%60))
	}
	if s.Mode().IsTeamMode() {
		parts = append(parts, fmt.Sprintf("Red %d - %d Blue", m.RedScore, m.BlueScore))
	}
	if me, ok := s.Self(); ok {
		parts = append(parts, fmt.Sprintf("HP %d/%d  Score %d", me.HP, me.MaxHP, me.Score))
		if me.AbilityCooldown > 0 {
			parts = append(parts, fmt.Sprintf("Ability %.1fs", me.AbilityCooldown))
		} else {
			parts = append(parts, "Ability ready")
		}
	}
	if len(parts) == 0 {
		return
	}
	text.Draw(screen, strings.Join(parts, "   "), face, hudMargin, cfg.C.Height-hudMargin, cfg.White)
}

func drawKillFeed(screen *ebiten.Image, s *session.Session, view *components.NetViewData) {
	small := fonts.Small.Get()
	y := hudMargin + hudLineHeight
	for _, k := range s.KillFeed(view.Now) {
		line := k.Killer + " > " + k.Victim
		text.Draw(screen, line, small, cfg.C.Width-hudMargin-len(line)*7, y, cfg.Orange)
		y += hudLineHeight
	}
}

func drawChat(screen *ebiten.Image, s *session.Session) {
	small := fonts.Small.Get()
	lines := s.Chat()
	if len(lines) > chatLines {
		lines = lines[len(lines)-chatLines:]
	}
	y := cfg.C.Height - hudMargin - (len(lines)+1)*hudLineHeight
	for _, l := range lines {
		clr := cfg.White
		if l.Team {
			clr = cfg.LightBlue
		}
		text.Draw(screen, l.From+": "+l.Msg, small, hudMargin, y, clr)
		y += hudLineHeight
	}
}

func drawDebug(screen *ebiten.Image, s *session.Session, view *components.NetViewData) {
	small := fonts.Small.Get()
	store := s.Store()
	lines := []string{
		fmt.Sprintf("tick %d  snapshots %d", store.Tick(), store.Applied()),
		fmt.Sprintf("t %.2f", view.Factor),
		fmt.Sprintf("players %d  mobs %d  shots %d", len(store.Players()), len(store.Mobs()), len(store.Projectiles())),
	}
	if target, ok := s.AimTarget(); ok {
		lines = append(lines, "lock "+target.ID)
	}
	y := hudMargin + 2*hudLineHeight
	for _, l := range lines {
		text.Draw(screen, l, small, cfg.C.Width-220, cfg.C.Height/2+y, cfg.Gray)
		y += hudLineHeight
	}
}

func drawCentered(screen *ebiten.Image, msg string, face font.Face, clr color.RGBA) {
	b := text.BoundString(face, msg)
	x := (cfg.C.Width - b.Dx()) / 2
	y := cfg.C.Height / 2
	text.Draw(screen, msg, face, x, y, clr)
}
