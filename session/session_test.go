package session

import (
	"strings"
	"testing"
	"time"

	"github.com/automoto/voidrift/network"
	"github.com/automoto/voidrift/shared/messages"
	nc "github.com/automoto/voidrift/shared/netcomponents"
	"github.com/automoto/voidrift/shared/netconfig"
	"github.com/automoto/voidrift/shared/protocol"
)

// recorder stands in for both the transport and the host.
type recorder struct {
	log         []string
	binaries    [][]byte
	navigated   []string
	authInvalid []string
	onNavigate  func(path string)
}

func (r *recorder) SendText(data []byte) bool {
	env, err := protocol.DecodeEnvelope(data)
	if err != nil {
		r.log = append(r.log, "send:?")
		return true
	}
	r.log = append(r.log, "send:"+env.T)
	return true
}

func (r *recorder) SendBinary(data []byte) bool {
	r.binaries = append(r.binaries, data)
	r.log = append(r.log, "input")
	return true
}

func (r *recorder) Navigate(path string) {
	r.navigated = append(r.navigated, path)
	r.log = append(r.log, "navigate:"+path)
	if r.onNavigate != nil {
		r.onNavigate(path)
	}
}

func (r *recorder) AuthInvalid(reason string) {
	r.authInvalid = append(r.authInvalid, reason)
	r.log = append(r.log, "auth_invalid")
}

func (r *recorder) sent() []string {
	var out []string
	for _, l := range r.log {
		if tag, ok := strings.CutPrefix(l, "send:"); ok {
			out = append(out, tag)
		}
	}
	return out
}

func newTestSession(opts Options) (*Session, *recorder) {
	r := &recorder{}
	opts.Sender = r
	opts.Effects = r
	if opts.Name == "" {
		opts.Name = "tester"
	}
	return New(opts), r
}

func textEvent(t *testing.T, tag string, payload any) network.Event {
	t.Helper()
	data, err := protocol.EncodeEnvelope(tag, payload)
	if err != nil {
		t.Fatalf("encode %s: %v", tag, err)
	}
	return network.Event{Kind: network.EventMessage, Data: data}
}

func stateEvent(t *testing.T, tick uint64, players ...nc.PlayerState) network.Event {
	t.Helper()
	data, err := protocol.EncodeSnapshot(&nc.GameState{Tick: tick, Players: players})
	if err != nil {
		t.Fatalf("encode snapshot: %v", err)
	}
	return network.Event{Kind: network.EventMessage, Binary: true, Data: data}
}

func f64(v float64) *float64 { return &v }

// joinAs walks a session through welcome so it has a local player.
func joinAs(t *testing.T, s *Session, id string, now time.Time) {
	t.Helper()
	s.HandleEvent(textEvent(t, messages.TagWelcome, messages.Welcome{ID: id, Ship: netconfig.ShipScout}), now)
	if s.Phase() != PhasePlaying || s.MyID() != id {
		t.Fatalf("after welcome phase=%v id=%q", s.Phase(), s.MyID())
	}
}

func TestOpenSendsAuthThenCheck(t *testing.T) {
	creds := &MemoryCredentials{}
	_ = creds.Save(Credential{Token: signedToken(t, time.Now().Add(time.Hour)), Username: "ace"})

	s, r := newTestSession(Options{Credentials: creds, PendingSessionID: testSID})
	if !s.Auth().LoggedIn {
		t.Fatalf("stored credential not loaded")
	}
	s.HandleEvent(network.Event{Kind: network.EventOpen}, time.Now())

	got := r.sent()
	if len(got) != 2 || got[0] != messages.TagAuth || got[1] != messages.TagCheck {
		t.Fatalf("sent %v, want [auth check]", got)
	}
	if !s.Connected() {
		t.Fatalf("not connected after open")
	}

	s.HandleEvent(network.Event{Kind: network.EventClose}, time.Now())
	if s.Connected() {
		t.Fatalf("still connected after close")
	}
}

func TestOpenSkipsExpiredToken(t *testing.T) {
	creds := &MemoryCredentials{}
	_ = creds.Save(Credential{Token: signedToken(t, time.Now().Add(-time.Hour)), Username: "ace"})

	s, r := newTestSession(Options{Credentials: creds})
	s.HandleEvent(network.Event{Kind: network.EventOpen}, time.Now())
	if len(r.sent()) != 0 {
		t.Fatalf("sent %v with an expired token", r.sent())
	}
	if s.Auth().LoggedIn {
		t.Fatalf("expired login kept")
	}
}

func TestSnapshotFramesBackfillVelocityAndTrackDeath(t *testing.T) {
	s, _ := newTestSession(Options{})
	now := time.Now()
	joinAs(t, s, "me", now)

	s.HandleEvent(stateEvent(t, 1, nc.PlayerState{ID: "me", X: 10, Alive: true, VX: f64(4), VY: f64(-1)}), now)
	s.HandleEvent(stateEvent(t, 2, nc.PlayerState{ID: "me", X: 12, Alive: true}), now.Add(33*time.Millisecond))

	me, ok := s.Self()
	if !ok {
		t.Fatalf("local player missing")
	}
	if vx, vy := me.Velocity(); vx != 4 || vy != -1 {
		t.Fatalf("velocity = (%v, %v), want backfilled (4, -1)", vx, vy)
	}

	s.HandleEvent(stateEvent(t, 3, nc.PlayerState{ID: "me", X: 12}), now.Add(66*time.Millisecond))
	if s.Phase() != PhaseDead {
		t.Fatalf("phase = %v, want dead", s.Phase())
	}
	s.HandleEvent(stateEvent(t, 4, nc.PlayerState{ID: "me", X: 0, Alive: true}), now.Add(99*time.Millisecond))
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing after respawn", s.Phase())
	}
}

func onChannel(ev network.Event, ch uint64) network.Event {
	ev.Channel = ch
	return ev
}

func TestReconnectStartsFreshStream(t *testing.T) {
	s, _ := newTestSession(Options{})
	now := time.Now()
	s.HandleEvent(network.Event{Kind: network.EventOpen, Channel: 1}, now)
	s.HandleEvent(onChannel(textEvent(t, messages.TagWelcome, messages.Welcome{ID: "me"}), 1), now)
	s.HandleEvent(onChannel(stateEvent(t, 99, nc.PlayerState{ID: "a", X: 0, Alive: true, VX: f64(5)}), 1), now)
	s.HandleEvent(onChannel(stateEvent(t, 100, nc.PlayerState{ID: "a", X: 10, Alive: true, VX: f64(5)}), 1), now.Add(33*time.Millisecond))
	s.Interpolator().Camera("a", 1)
	if !s.Interpolator().HasCamera() {
		t.Fatalf("camera not bound before the drop")
	}

	s.HandleEvent(network.Event{Kind: network.EventClose, Channel: 1}, now)
	if len(s.Store().Players()) != 0 {
		t.Fatalf("players kept after close")
	}
	// The old read loop can still deliver a frame after its close event.
	s.HandleEvent(onChannel(stateEvent(t, 101, nc.PlayerState{ID: "a", X: 20, Alive: true}), 1), now)
	if len(s.Store().Players()) != 0 {
		t.Fatalf("frame from a closed channel applied")
	}

	s.HandleEvent(network.Event{Kind: network.EventOpen, Channel: 2}, now)
	s.HandleEvent(onChannel(stateEvent(t, 1, nc.PlayerState{ID: "a", X: 900, Alive: true}), 2), now.Add(time.Second))

	a, ok := s.Store().Player("a")
	if !ok {
		t.Fatalf("player missing on the new stream")
	}
	if vx, _ := a.Velocity(); vx != 0 {
		t.Fatalf("vx = %v, want 0 with no prior record on this stream", vx)
	}
	if _, ok := s.Store().PrevPlayer("a"); ok {
		t.Fatalf("previous record carried across the reconnect")
	}
	if pose, _ := s.Interpolator().Pose(network.KindPlayer, "a", 0.5); pose.X != 900 {
		t.Fatalf("pose.X = %v, want 900", pose.X)
	}
	if s.Interpolator().HasCamera() {
		t.Fatalf("camera hold survived the reconnect")
	}
}

func TestStaleChannelFramesIgnored(t *testing.T) {
	s, _ := newTestSession(Options{})
	now := time.Now()
	s.HandleEvent(network.Event{Kind: network.EventOpen, Channel: 3}, now)
	s.HandleEvent(onChannel(stateEvent(t, 1, nc.PlayerState{ID: "a", Alive: true}), 2), now)
	if len(s.Store().Players()) != 0 {
		t.Fatalf("frame from channel 2 applied while channel 3 is open")
	}
	// A late close for an older channel leaves the current one alone.
	s.HandleEvent(network.Event{Kind: network.EventClose, Channel: 2}, now)
	if !s.Connected() {
		t.Fatalf("disconnected by a stale close")
	}
}

func TestDeathMessageRecordsCause(t *testing.T) {
	s, _ := newTestSession(Options{})
	now := time.Now()
	joinAs(t, s, "me", now)

	s.HandleEvent(textEvent(t, messages.TagDeath, messages.Death{KillerID: "p2", KillerName: "Raider"}), now)
	if s.Phase() != PhaseDead || s.DeathCause() != "Raider" {
		t.Fatalf("phase=%v cause=%q", s.Phase(), s.DeathCause())
	}
}

func TestCreateJoinNavigates(t *testing.T) {
	s, r := newTestSession(Options{})
	now := time.Now()

	if !s.CreateSession("arena", netconfig.ModeFFA) {
		t.Fatalf("create not sent")
	}
	s.HandleEvent(textEvent(t, messages.TagCreated, messages.Created{SessionID: testSID}), now)
	s.HandleEvent(textEvent(t, messages.TagJoined, messages.Joined{SessionID: testSID}), now)

	got := r.sent()
	if len(got) != 2 || got[0] != messages.TagCreate || got[1] != messages.TagJoin {
		t.Fatalf("sent %v, want [create join]", got)
	}
	if s.SessionID() != testSID {
		t.Fatalf("session id = %q", s.SessionID())
	}
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing", s.Phase())
	}
	if len(r.navigated) != 1 || r.navigated[0] != SessionPath(testSID) {
		t.Fatalf("navigated %v", r.navigated)
	}
}

func TestTeamModeJoinWaitsForMatchLobby(t *testing.T) {
	s, _ := newTestSession(Options{})
	now := time.Now()

	s.JoinSession(testSID, netconfig.ModeTDM)
	s.HandleEvent(textEvent(t, messages.TagJoined, messages.Joined{SessionID: testSID}), now)
	if s.Phase() != PhaseLobby {
		t.Fatalf("phase = %v, want lobby until match phase", s.Phase())
	}
	s.HandleEvent(textEvent(t, messages.TagMatchPhase, messages.MatchPhase{
		Phase: netconfig.MatchPhaseLobby,
		Mode:  netconfig.ModeTDM,
	}), now)
	if s.Phase() != PhaseMatchLobby {
		t.Fatalf("phase = %v, want match_lobby", s.Phase())
	}
	s.HandleEvent(textEvent(t, messages.TagMatchPhase, messages.MatchPhase{
		Phase:     netconfig.MatchPhaseCountdown,
		Mode:      netconfig.ModeTDM,
		Countdown: 3,
	}), now)
	if s.Phase() != PhaseCountdown || s.Match().Countdown != 3 {
		t.Fatalf("phase=%v countdown=%v", s.Phase(), s.Match().Countdown)
	}
}

func TestLobbyPhaseInFFAClearsIdentityBeforeEffects(t *testing.T) {
	s, r := newTestSession(Options{})
	now := time.Now()
	s.JoinSession(testSID, netconfig.ModeFFA)
	s.HandleEvent(textEvent(t, messages.TagJoined, messages.Joined{SessionID: testSID}), now)
	joinAs(t, s, "me", now)
	s.HandleEvent(stateEvent(t, 1, nc.PlayerState{ID: "me", Alive: true}), now)

	var idAtNavigate, sidAtNavigate string
	r.onNavigate = func(string) {
		idAtNavigate, sidAtNavigate = s.MyID(), s.SessionID()
	}
	r.log = nil

	s.HandleEvent(textEvent(t, messages.TagMatchPhase, messages.MatchPhase{
		Phase: netconfig.MatchPhaseLobby,
		Mode:  netconfig.ModeFFA,
	}), now)

	if s.Phase() != PhaseLobby {
		t.Fatalf("phase = %v, want lobby", s.Phase())
	}
	if s.MyID() != "" || s.SessionID() != "" {
		t.Fatalf("identity kept: id=%q sid=%q", s.MyID(), s.SessionID())
	}
	if s.Store().Applied() != 0 || len(s.Store().Players()) != 0 {
		t.Fatalf("store not reset")
	}
	want := []string{"send:" + messages.TagLeave, "navigate:" + LobbyPath()}
	if len(r.log) != len(want) || r.log[0] != want[0] || r.log[1] != want[1] {
		t.Fatalf("effects = %v, want %v", r.log, want)
	}
	if idAtNavigate != "" || sidAtNavigate != "" {
		t.Fatalf("effect ran before identity was cleared")
	}
}

func TestUserLeave(t *testing.T) {
	s, r := newTestSession(Options{})
	now := time.Now()
	joinAs(t, s, "me", now)

	s.LeaveSession()
	if s.Phase() != PhaseLobby || s.MyID() != "" {
		t.Fatalf("phase=%v id=%q", s.Phase(), s.MyID())
	}
	got := r.sent()
	if len(got) != 1 || got[0] != messages.TagLeave {
		t.Fatalf("sent %v, want [leave]", got)
	}
}

func TestTickSendsInputOnlyWhenAllowed(t *testing.T) {
	s, r := newTestSession(Options{})
	now := time.Now()

	s.Tick(now)
	if len(r.binaries) != 0 {
		t.Fatalf("input sent before welcome")
	}

	joinAs(t, s, "me", now)
	s.HandleEvent(stateEvent(t, 1, nc.PlayerState{ID: "me", X: 100, Y: 50, Alive: true}), now)
	s.SetControls(Controls{PointerX: 640, PointerY: 360, Fire: true})

	now = now.Add(time.Second)
	s.Tick(now)
	if len(r.binaries) != 1 {
		t.Fatalf("frames = %d, want 1", len(r.binaries))
	}
	in, err := protocol.DecodeInput(r.binaries[0])
	if err != nil {
		t.Fatalf("decode input: %v", err)
	}
	if !in.Fire || in.MX != 100 || in.MY != 50 {
		t.Fatalf("input = %+v, want fire at (100, 50)", in)
	}

	s.HandleEvent(textEvent(t, messages.TagCtrlOn, nil), now)
	now = now.Add(time.Second)
	s.Tick(now)
	if len(r.binaries) != 1 {
		t.Fatalf("input sent while controller attached")
	}

	s.HandleEvent(textEvent(t, messages.TagCtrlOff, nil), now)
	now = now.Add(time.Second)
	s.Tick(now)
	if len(r.binaries) != 2 {
		t.Fatalf("input not resumed after controller detached")
	}
}

func TestTickRespectsRate(t *testing.T) {
	s, r := newTestSession(Options{})
	now := time.Now()
	joinAs(t, s, "me", now)
	s.HandleEvent(stateEvent(t, 1, nc.PlayerState{ID: "me", Alive: true}), now)

	for i := 0; i < 10; i++ {
		s.Tick(now.Add(time.Duration(i) * 10 * time.Millisecond))
	}
	if len(r.binaries) != 2 {
		t.Fatalf("frames in 90ms = %d, want 2 at 20 Hz", len(r.binaries))
	}
}

func TestAuthErrorClearsLogin(t *testing.T) {
	creds := &MemoryCredentials{}
	_ = creds.Save(Credential{Token: signedToken(t, time.Now().Add(time.Hour)), Username: "ace"})
	s, r := newTestSession(Options{Credentials: creds})

	s.HandleEvent(textEvent(t, messages.TagError, messages.Error{Msg: "session not found"}), time.Now())
	if !s.Auth().LoggedIn || len(r.authInvalid) != 0 {
		t.Fatalf("unrelated error cleared login")
	}

	s.HandleEvent(textEvent(t, messages.TagError, messages.Error{Msg: "Invalid Token"}), time.Now())
	if s.Auth().LoggedIn {
		t.Fatalf("login kept after auth error")
	}
	if _, ok, _ := creds.Load(); ok {
		t.Fatalf("persisted credential kept after auth error")
	}
	if len(r.authInvalid) != 1 || r.authInvalid[0] != "Invalid Token" {
		t.Fatalf("AuthInvalid calls = %v", r.authInvalid)
	}
}

func TestAuthOKPersistsCredential(t *testing.T) {
	creds := &MemoryCredentials{}
	s, _ := newTestSession(Options{Credentials: creds})

	s.HandleEvent(textEvent(t, messages.TagAuthOK, messages.AuthOK{Token: "tok", Username: "ace", PlayerID: 3}), time.Now())
	c, ok, _ := creds.Load()
	if !ok || c.Username != "ace" || c.PlayerID != 3 {
		t.Fatalf("stored = %+v, %v", c, ok)
	}
	if s.Name() != "ace" {
		t.Fatalf("name = %q, want ace", s.Name())
	}
}

func TestCheckedAutoJoins(t *testing.T) {
	s, r := newTestSession(Options{PendingSessionID: testSID, AutoJoin: true})
	s.HandleEvent(textEvent(t, messages.TagChecked, messages.Checked{SessionID: testSID, Exists: true}), time.Now())
	got := r.sent()
	if len(got) != 1 || got[0] != messages.TagJoin {
		t.Fatalf("sent %v, want [join]", got)
	}
}

func TestCheckedMissingReturnsToLobby(t *testing.T) {
	s, r := newTestSession(Options{PendingSessionID: testSID, AutoJoin: true})
	s.HandleEvent(textEvent(t, messages.TagChecked, messages.Checked{SessionID: testSID}), time.Now())
	if len(r.sent()) != 0 {
		t.Fatalf("joined a missing session")
	}
	if s.PendingSessionID() != "" {
		t.Fatalf("pending id kept")
	}
	if len(r.navigated) != 1 || r.navigated[0] != LobbyPath() {
		t.Fatalf("navigated %v", r.navigated)
	}
}

func TestMalformedFramesAreDropped(t *testing.T) {
	s, _ := newTestSession(Options{})
	now := time.Now()
	joinAs(t, s, "me", now)

	s.HandleEvent(network.Event{Kind: network.EventMessage, Data: []byte("{not json")}, now)
	s.HandleEvent(network.Event{Kind: network.EventMessage, Binary: true, Data: []byte{0xc1}}, now)
	s.HandleEvent(textEvent(t, "mystery", nil), now)

	if s.Phase() != PhasePlaying || s.MyID() != "me" {
		t.Fatalf("bad frames changed state: phase=%v id=%q", s.Phase(), s.MyID())
	}
}

func TestHUDMessages(t *testing.T) {
	s, _ := newTestSession(Options{})
	now := time.Now()

	s.HandleEvent(textEvent(t, messages.TagKill, messages.Kill{KillerName: "a", VictimName: "b"}), now)
	s.HandleEvent(textEvent(t, messages.TagHit, messages.Hit{X: 5, Y: 6, Damage: 12}), now)
	s.HandleEvent(textEvent(t, messages.TagChatMsg, messages.ChatMsg{From: "a", Msg: "gg"}), now)
	s.HandleEvent(textEvent(t, messages.TagCreditsUpdate, messages.CreditsUpdate{Credits: 250}), now)

	if feed := s.KillFeed(now); len(feed) != 1 || feed[0].Victim != "b" {
		t.Fatalf("kill feed = %+v", feed)
	}
	if h, ok := s.HitMarker(now); !ok || h.Damage != 12 {
		t.Fatalf("hit marker = %+v, %v", h, ok)
	}
	if chat := s.Chat(); len(chat) != 1 || chat[0].Msg != "gg" {
		t.Fatalf("chat = %+v", chat)
	}
	if s.Lobby().Credits != 250 {
		t.Fatalf("credits = %d", s.Lobby().Credits)
	}
}
