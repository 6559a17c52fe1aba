package session

import "github.com/automoto/voidrift/shared/netconfig"

// Phase is the client-side lifecycle of a session and its matches.
type Phase int

const (
	PhaseLobby Phase = iota
	PhaseMatchLobby
	PhaseCountdown
	PhasePlaying
	PhaseDead
	PhaseResult
)

var phaseNames = map[Phase]string{
	PhaseLobby:      "lobby",
	PhaseMatchLobby: "match_lobby",
	PhaseCountdown:  "countdown",
	PhasePlaying:    "playing",
	PhaseDead:       "dead",
	PhaseResult:     "result",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// AllowsInput reports whether input frames are sent in this phase.
func (p Phase) AllowsInput() bool {
	return p == PhasePlaying || p == PhaseDead || p == PhaseCountdown
}

// Effect is an outward action requested by a transition. Effects are run by
// the owner after the transition has been applied.
type Effect int

const (
	EffectLeave Effect = iota + 1 // send a leave command
)

// Transition describes the outcome of one event.
type Transition struct {
	From, To      Phase
	ClearIdentity bool // forget session and player ids
	Effects       []Effect
}

func (t Transition) Changed() bool { return t.From != t.To }

// PhaseMachine owns session and match phase transitions.
type PhaseMachine struct {
	phase      Phase
	mode       netconfig.GameMode
	deathCause string
}

func NewPhaseMachine() *PhaseMachine {
	return &PhaseMachine{phase: PhaseLobby}
}

func (m *PhaseMachine) Phase() Phase             { return m.phase }
func (m *PhaseMachine) Mode() netconfig.GameMode { return m.mode }
func (m *PhaseMachine) DeathCause() string       { return m.deathCause }

func (m *PhaseMachine) to(next Phase) Transition {
	t := Transition{From: m.phase, To: next}
	m.phase = next
	return t
}

// SessionEntered handles created/joined. Team modes wait in place for the
// server's match phase.
func (m *PhaseMachine) SessionEntered(mode netconfig.GameMode) Transition {
	m.mode = mode
	if mode.IsTeamMode() {
		return m.to(m.phase)
	}
	return m.to(PhasePlaying)
}

func (m *PhaseMachine) Welcome() Transition {
	return m.to(PhasePlaying)
}

func (m *PhaseMachine) MatchPhase(phase netconfig.MatchPhase, mode netconfig.GameMode) Transition {
	m.mode = mode
	switch phase {
	case netconfig.MatchPhaseCountdown:
		return m.to(PhaseCountdown)
	case netconfig.MatchPhasePlaying:
		return m.to(PhasePlaying)
	case netconfig.MatchPhaseResult:
		return m.to(PhaseResult)
	case netconfig.MatchPhaseLobby:
		if mode.IsTeamMode() {
			return m.to(PhaseMatchLobby)
		}
		return m.leave()
	}
	return m.to(m.phase)
}

func (m *PhaseMachine) MatchResult() Transition {
	return m.to(PhaseResult)
}

// LocalActive reacts to the local player's active flag in a snapshot.
func (m *PhaseMachine) LocalActive(active bool) Transition {
	switch {
	case m.phase == PhasePlaying && !active:
		return m.to(PhaseDead)
	case m.phase == PhaseDead && active:
		m.deathCause = ""
		return m.to(PhasePlaying)
	}
	return m.to(m.phase)
}

// Death records who killed the local player.
func (m *PhaseMachine) Death(killerName string) Transition {
	m.deathCause = killerName
	if m.phase == PhasePlaying {
		return m.to(PhaseDead)
	}
	return m.to(m.phase)
}

// Leave returns to the lobby at the user's request.
func (m *PhaseMachine) Leave() Transition {
	return m.leave()
}

func (m *PhaseMachine) leave() Transition {
	m.deathCause = ""
	t := m.to(PhaseLobby)
	t.ClearIdentity = true
	t.Effects = []Effect{EffectLeave}
	return t
}
