// Package netconfig defines lightweight enums shared by every layer that
// touches the wire. It must have zero dependencies on ebiten or any graphics
// library so the sync core and its tests stay headless.
package netconfig

// MatchPhase is the server-side match lifecycle carried in match_phase
// messages and in the snapshot scalar fields.
type MatchPhase int

const (
	MatchPhaseLobby     MatchPhase = iota // Waiting for ready-up
	MatchPhaseCountdown                   // Pre-match countdown (3, 2, 1)
	MatchPhasePlaying                     // Active gameplay
	MatchPhaseResult                      // Match over, showing results
)

var matchPhaseNames = map[MatchPhase]string{
	MatchPhaseLobby:     "lobby",
	MatchPhaseCountdown: "countdown",
	MatchPhasePlaying:   "playing",
	MatchPhaseResult:    "result",
}

func (p MatchPhase) String() string {
	if name, ok := matchPhaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// GameMode identifies the rule set of a session.
type GameMode int

const (
	ModeFFA GameMode = iota
	ModeTDM
	ModeCTF
	ModeWaveSurvival
)

var gameModeNames = map[GameMode]string{
	ModeFFA:          "ffa",
	ModeTDM:          "tdm",
	ModeCTF:          "ctf",
	ModeWaveSurvival: "waves",
}

func (m GameMode) String() string {
	if name, ok := gameModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// IsTeamMode reports whether players are split into red and blue.
func (m GameMode) IsTeamMode() bool {
	return m == ModeTDM || m == ModeCTF
}

// Team identifies a side in team modes.
type Team int

const (
	TeamNone Team = iota
	TeamRed
	TeamBlue
)

// ShipType is the ship class of a player or mob.
type ShipType int

const (
	ShipFighter ShipType = iota
	ShipHeavy
	ShipScout
	ShipSupport
)

// Input flag bits carried in the sixth byte of an input frame.
const (
	FlagFire    byte = 0x01
	FlagBoost   byte = 0x02
	FlagAbility byte = 0x04
)

// OpInput is the leading opcode of a client input frame.
const OpInput byte = 0x01

// InputFrameSize is the fixed length of an encoded input frame.
const InputFrameSize = 8
