package messages

import (
	"github.com/automoto/voidrift/shared/netcomponents"
	"github.com/automoto/voidrift/shared/netconfig"
)

// Snapshot wraps one authoritative tick, whether it arrived as a binary
// frame or as a legacy "state" envelope.
type Snapshot struct {
	State *netcomponents.GameState
}

func (Snapshot) Tag() string { return TagState }

// Hit is sent to the shooter when a projectile connects.
type Hit struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Damage   int     `json:"dmg"`
	TargetID string  `json:"tid"`
}

func (Hit) Tag() string { return TagHit }

// Kill is broadcast to the whole session for the kill feed.
type Kill struct {
	KillerID   string `json:"kid"`
	KillerName string `json:"kn"`
	VictimID   string `json:"vid"`
	VictimName string `json:"vn"`
}

func (Kill) Tag() string { return TagKill }

// Death is sent to the victim only.
type Death struct {
	KillerID   string `json:"kid"`
	KillerName string `json:"kn"`
}

func (Death) Tag() string { return TagDeath }

type MatchPhase struct {
	Phase     netconfig.MatchPhase `json:"phase"`
	Mode      netconfig.GameMode   `json:"mode"`
	Countdown float64              `json:"countdown"`
	TimeLeft  float64              `json:"time_left"`
}

func (MatchPhase) Tag() string { return TagMatchPhase }

type PlayerMatchResult struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Team    netconfig.Team `json:"team"`
	Kills   int            `json:"kills"`
	Deaths  int            `json:"deaths"`
	Assists int            `json:"assists"`
	Score   int            `json:"score"`
	MVP     bool           `json:"mvp"`
}

type MatchResult struct {
	WinnerTeam netconfig.Team      `json:"winner_team"`
	Players    []PlayerMatchResult `json:"players"`
	Duration   float64             `json:"duration"`
}

func (MatchResult) Tag() string { return TagMatchResult }

type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// TeamUpdate is the match lobby roster.
type TeamUpdate struct {
	Red  []TeamMember `json:"red"`
	Blue []TeamMember `json:"blue"`
}

func (TeamUpdate) Tag() string { return TagTeamUpdate }

type ChatRequest struct {
	Msg  string `json:"msg"`
	Team bool   `json:"team,omitempty"`
}

func (ChatRequest) Tag() string { return TagChat }

type ChatMsg struct {
	From string `json:"from"`
	Msg  string `json:"msg"`
	Team bool   `json:"team,omitempty"`
}

func (ChatMsg) Tag() string { return TagChatMsg }
