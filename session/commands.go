package session

import (
	"github.com/automoto/voidrift/shared/messages"
	"github.com/automoto/voidrift/shared/netconfig"
	"github.com/automoto/voidrift/shared/protocol"
)

// CreateSession asks the server for a new session. The mode is remembered
// so the created reply knows whether to wait for a match lobby.
func (s *Session) CreateSession(sessionName string, mode netconfig.GameMode) bool {
	s.pendingMode = mode
	return s.send(messages.CreateRequest{Name: s.name, SessionName: sessionName, Mode: mode})
}

func (s *Session) JoinSession(sessionID string, mode netconfig.GameMode) bool {
	s.pendingMode = mode
	return s.send(messages.JoinRequest{Name: s.name, SessionID: sessionID})
}

func (s *Session) ListSessions() bool { return s.sendTag(messages.TagList) }

func (s *Session) CheckSession(sessionID string) bool {
	s.pendingSessionID = sessionID
	return s.send(messages.CheckRequest{SessionID: sessionID})
}

// LeaveSession returns to the lobby at the user's request.
func (s *Session) LeaveSession() {
	s.apply(s.phase.Leave())
	s.flush()
}

func (s *Session) SendReady() bool   { return s.sendTag(messages.TagReady) }
func (s *Session) SendRematch() bool { return s.sendTag(messages.TagRematch) }

func (s *Session) SendTeamPick(team netconfig.Team) bool {
	return s.send(messages.TeamPickRequest{Team: team})
}

func (s *Session) SendChat(text string, team bool) bool {
	if text == "" {
		return false
	}
	return s.send(messages.ChatRequest{Msg: text, Team: team})
}

func (s *Session) Login(username, password string) bool {
	return s.sendCredentials(messages.TagLogin, username, password)
}

func (s *Session) Register(username, password string) bool {
	return s.sendCredentials(messages.TagRegister, username, password)
}

func (s *Session) sendCredentials(tag, username, password string) bool {
	data, err := protocol.EncodeEnvelope(tag, messages.Credentials{Username: username, Password: password})
	if err != nil {
		return false
	}
	return s.sendRaw(data)
}

// Logout forgets the stored login without telling the server.
func (s *Session) Logout() {
	s.forgetAuth()
}

func (s *Session) RequestProfile() bool { return s.sendTag(messages.TagProfile) }
func (s *Session) RequestFriends() bool { return s.sendTag(messages.TagFriendList) }
func (s *Session) RequestStore() bool   { return s.sendTag(messages.TagStore) }

func (s *Session) Buy(itemID string) bool {
	return s.send(messages.BuyRequest{Item: itemID})
}

// SetName changes the pilot name used by later create and join commands.
func (s *Session) SetName(name string) {
	if name != "" {
		s.name = name
	}
}
