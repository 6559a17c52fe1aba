package session

import (
	"log"
	"strings"
	"time"

	"github.com/automoto/voidrift/shared/messages"
	"github.com/automoto/voidrift/shared/protocol"
)

func (s *Session) handle(msg protocol.Message, now time.Time) {
	switch m := msg.(type) {
	case messages.Snapshot:
		s.onSnapshot(m, now)
	case messages.Welcome:
		s.myID = m.ID
		s.ship = m.Ship
		s.apply(s.phase.Welcome())
	case messages.Created:
		s.send(messages.JoinRequest{Name: s.name, SessionID: m.SessionID})
	case messages.Joined:
		s.onEntered(m.SessionID)
	case messages.SessionList:
		s.lobby.Sessions = m
	case messages.Checked:
		s.onChecked(m)
	case messages.Hit:
		s.hit = HitMarker{X: m.X, Y: m.Y, Damage: m.Damage, At: now}
	case messages.Kill:
		s.kills.Push(m, now)
	case messages.Death:
		s.apply(s.phase.Death(m.KillerName))
	case messages.MatchPhase:
		s.match.Phase = m.Phase
		s.match.Mode = m.Mode
		s.match.Countdown = m.Countdown
		s.match.TimeLeft = m.TimeLeft
		s.apply(s.phase.MatchPhase(m.Phase, m.Mode))
	case messages.MatchResult:
		res := m
		s.match.Result = &res
		s.apply(s.phase.MatchResult())
	case messages.TeamUpdate:
		s.match.Teams = m
	case messages.ControllerOn:
		s.controllerAttached = true
	case messages.ControllerOff:
		s.controllerAttached = false
	case messages.AuthOK:
		s.onAuthOK(m)
	case messages.ProfileData:
		p := m
		s.lobby.Profile = &p
	case messages.XPUpdate:
		s.lobby.XP = m
	case messages.Achievement:
		s.lobby.Achievements = append(s.lobby.Achievements, m)
	case messages.FriendList:
		s.lobby.Friends = m.Friends
	case messages.FriendNotify:
		s.onFriendNotify(m)
	case messages.StoreList:
		s.lobby.StoreItems = m.Items
	case messages.BuyResult:
		res := m
		s.lobby.LastPurchase = &res
		if m.OK {
			for i := range s.lobby.StoreItems {
				if s.lobby.StoreItems[i].ID == m.Item {
					s.lobby.StoreItems[i].Owned = true
				}
			}
		}
	case messages.CreditsUpdate:
		s.lobby.Credits = m.Credits
	case messages.ChatMsg:
		s.chat.Push(m)
	case messages.Error:
		s.onError(m)
	default:
		log.Printf("[session] unhandled message %q", msg.Tag())
	}
}

func (s *Session) onSnapshot(m messages.Snapshot, now time.Time) {
	if m.State == nil {
		return
	}
	s.clock.Observe(now)
	s.store.Apply(m.State, now)

	sc := s.store.Match()
	s.match.TimeLeft = sc.TimeLeft
	s.match.RedScore = sc.TeamRedScore
	s.match.BlueScore = sc.TeamBlueScore

	if self, ok := s.Self(); ok {
		s.apply(s.phase.LocalActive(self.Alive))
	}
}

// onEntered makes a joined session current and moves the location to it.
func (s *Session) onEntered(sessionID string) {
	s.sessionID = sessionID
	s.pendingSessionID = ""
	s.lobby.Checked = nil
	s.apply(s.phase.SessionEntered(s.pendingMode))
	s.later(func() { s.effects.Navigate(SessionPath(sessionID)) })
}

func (s *Session) onChecked(m messages.Checked) {
	c := m
	s.lobby.Checked = &c
	if m.SessionID != s.pendingSessionID {
		return
	}
	if !m.Exists {
		log.Printf("[session] session %s no longer exists", m.SessionID)
		s.pendingSessionID = ""
		s.later(func() { s.effects.Navigate(LobbyPath()) })
		return
	}
	if s.autoJoin {
		s.send(messages.JoinRequest{Name: s.name, SessionID: m.SessionID})
	}
}

func (s *Session) onAuthOK(m messages.AuthOK) {
	s.auth = AuthState{LoggedIn: true, Username: m.Username, PlayerID: m.PlayerID, Token: m.Token}
	if m.Username != "" {
		s.name = m.Username
	}
	if s.credentials == nil {
		return
	}
	err := s.credentials.Save(Credential{Token: m.Token, Username: m.Username, PlayerID: m.PlayerID})
	if err != nil {
		log.Printf("[auth] %v", err)
	}
}

func (s *Session) onFriendNotify(m messages.FriendNotify) {
	for i := range s.lobby.Friends {
		if s.lobby.Friends[i].Username == m.Username {
			s.lobby.Friends[i].Online = m.Online
			return
		}
	}
	s.lobby.Friends = append(s.lobby.Friends, messages.Friend{Username: m.Username, Online: m.Online})
}

func (s *Session) onError(m messages.Error) {
	log.Printf("[session] server error: %s", m.Msg)
	s.lobby.LastError = m.Msg
	if isAuthError(m.Msg) {
		s.clearAuth(m.Msg)
	}
}

func isAuthError(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "token") || strings.Contains(lower, "auth")
}

// clearAuth forgets the login and tells the host it is no longer valid.
func (s *Session) clearAuth(reason string) {
	s.forgetAuth()
	s.later(func() { s.effects.AuthInvalid(reason) })
}

// forgetAuth drops the login both in memory and on disk.
func (s *Session) forgetAuth() {
	s.auth = AuthState{}
	if s.credentials != nil {
		if err := s.credentials.Clear(); err != nil {
			log.Printf("[auth] %v", err)
		}
	}
}
