package session

import (
	"log"
	"time"

	"github.com/automoto/voidrift/config"
	"github.com/automoto/voidrift/network"
	"github.com/automoto/voidrift/shared/messages"
	nc "github.com/automoto/voidrift/shared/netcomponents"
	"github.com/automoto/voidrift/shared/netconfig"
	"github.com/automoto/voidrift/shared/protocol"
	dmath "github.com/yohamta/donburi/features/math"
)

// Sender is the outbound half of the transport.
type Sender interface {
	SendText(data []byte) bool
	SendBinary(data []byte) bool
}

// Effects are the outward actions a session asks its host to perform.
type Effects interface {
	Navigate(path string)
	AuthInvalid(reason string)
}

type nopEffects struct{}

func (nopEffects) Navigate(string)    {}
func (nopEffects) AuthInvalid(string) {}

type Options struct {
	Sender      Sender
	Effects     Effects
	Credentials CredentialStore

	// Name is the pilot name sent with create and join.
	Name string
	// PendingSessionID is a session id taken from the launch location. It is
	// checked on every open and joined once the server confirms it.
	PendingSessionID string
	AutoJoin         bool
}

// MatchInfo is the latest match-level state from snapshots and match
// messages.
type MatchInfo struct {
	Phase     netconfig.MatchPhase
	Mode      netconfig.GameMode
	Countdown float64
	TimeLeft  float64
	RedScore  int
	BlueScore int
	Teams     messages.TeamUpdate
	Result    *messages.MatchResult
}

// LobbyData holds replies that feed the lobby screens.
type LobbyData struct {
	Sessions     messages.SessionList
	Checked      *messages.Checked
	Profile      *messages.ProfileData
	XP           messages.XPUpdate
	Achievements []messages.Achievement
	Friends      []messages.Friend
	StoreItems   []messages.StoreItem
	LastPurchase *messages.BuyResult
	Credits      int
	LastError    string
}

type AuthState struct {
	LoggedIn bool
	Username string
	PlayerID int64
	Token    string
}

// Session is the single owner of client state. It is advanced by one loop
// that feeds it transport events and ticks it; nothing in it is safe for
// concurrent use.
type Session struct {
	sender      Sender
	effects     Effects
	credentials CredentialStore
	name        string
	autoJoin    bool

	store   *network.SnapshotStore
	clock   *network.InterpolationClock
	interp  *network.Interpolator
	phase   *PhaseMachine
	lock    *TargetLock
	sampler *InputSampler
	reticle *Reticle

	connected          bool
	channel            uint64 // transport channel the current stream belongs to
	channelClosed      bool
	myID               string
	ship               netconfig.ShipType
	sessionID          string
	pendingSessionID   string
	pendingMode        netconfig.GameMode
	controllerAttached bool

	match MatchInfo
	lobby LobbyData
	auth  AuthState

	kills *KillFeed
	chat  *ChatLog
	hit   HitMarker

	controls Controls
	screenW  float64
	screenH  float64
	zoom     float64

	camera        config.CameraConfig
	zoomDirty     bool
	zoomChangedAt time.Time

	queued []func()
}

func New(opts Options) *Session {
	if opts.Effects == nil {
		opts.Effects = nopEffects{}
	}
	if opts.Name == "" {
		opts.Name = config.App.PlayerName
	}
	store := network.NewSnapshotStore()
	clock := network.NewInterpolationClock(config.Interp)
	lock := NewTargetLock(config.Aim)
	s := &Session{
		sender:           opts.Sender,
		effects:          opts.Effects,
		credentials:      opts.Credentials,
		name:             opts.Name,
		autoJoin:         opts.AutoJoin,
		store:            store,
		clock:            clock,
		interp:           network.NewInterpolator(store, clock),
		phase:            NewPhaseMachine(),
		lock:             lock,
		sampler:          NewInputSampler(config.Input, lock),
		reticle:          NewReticle(config.Aim),
		pendingSessionID: opts.PendingSessionID,
		kills:            NewKillFeed(config.HUD.KillFeedSize, config.HUD.KillFeedTTL),
		chat:             NewChatLog(config.HUD.ChatLogSize),
		screenW:          float64(config.C.Width),
		screenH:          float64(config.C.Height),
		zoom:             config.Camera.Zoom,
		camera:           config.Camera,
	}
	if c, err := loadValid(opts.Credentials, time.Now()); err == nil {
		s.auth = AuthState{LoggedIn: true, Username: c.Username, PlayerID: c.PlayerID, Token: c.Token}
	}
	return s
}

// HandleEvent applies one transport event. Queued effects run after the
// event has been fully applied.
func (s *Session) HandleEvent(ev network.Event, now time.Time) {
	switch ev.Kind {
	case network.EventOpen:
		s.channel = ev.Channel
		s.channelClosed = false
		s.onOpen()
	case network.EventClose:
		if ev.Channel != s.channel {
			break
		}
		s.connected = false
		s.channelClosed = true
		s.resetStream()
	case network.EventMessage:
		if ev.Channel != s.channel || s.channelClosed {
			log.Printf("[session] dropping frame from stale channel %d", ev.Channel)
			break
		}
		msg, err := protocol.DecodeFrame(ev.Binary, ev.Data)
		if err != nil {
			log.Printf("[session] dropping frame: %v", err)
			break
		}
		s.handle(msg, now)
	}
	s.flush()
}

func (s *Session) onOpen() {
	s.connected = true
	if s.auth.Token != "" {
		if TokenExpired(s.auth.Token, time.Now()) {
			s.clearAuth("token expired")
		} else {
			s.send(messages.AuthRequest{Token: s.auth.Token})
		}
	}
	if s.pendingSessionID != "" {
		s.send(messages.CheckRequest{SessionID: s.pendingSessionID})
	}
}

// Tick runs the fixed-rate input gate.
func (s *Session) Tick(now time.Time) {
	if !s.sampler.Due(now) {
		return
	}
	in, ok := s.sampler.Sample(s.inputView(now), s.controls)
	if !ok {
		return
	}
	if s.sender != nil {
		s.sender.SendBinary(protocol.EncodeInput(in))
	}
}

// UpdateReticle advances the lock animation by dt seconds.
func (s *Session) UpdateReticle(dt float32) {
	s.reticle.Update(s.lock.Locked(), dt)
}

func (s *Session) inputView(now time.Time) View {
	v := View{
		Phase:              s.phase.Phase(),
		ControllerAttached: s.controllerAttached,
		Zoom:               s.zoom,
		ScreenW:            s.screenW,
		ScreenH:            s.screenH,
	}
	if s.myID == "" {
		return v
	}
	v.Self, v.HasSelf = s.store.Player(s.myID)
	cam := s.interp.Camera(s.myID, s.clock.Factor(now))
	v.Camera = dmath.Vec2{X: cam.X, Y: cam.Y}
	v.Candidates = Candidates(s.store, s.myID)
	return v
}

func (s *Session) SetControls(c Controls) { s.controls = c }

// SetViewport records the screen size and zoom used for aim projection.
func (s *Session) SetViewport(w, h, zoom float64) {
	s.screenW, s.screenH = w, h
	if zoom > 0 {
		s.zoom = zoom
	}
}

// apply folds a phase transition into session state and queues its effects.
func (s *Session) apply(t Transition) {
	if t.Changed() {
		log.Printf("[session] phase %s -> %s", t.From, t.To)
	}
	if t.ClearIdentity {
		s.myID = ""
		s.sessionID = ""
		s.controllerAttached = false
		s.match = MatchInfo{}
		s.resetStream()
		s.kills.Reset()
		s.hit = HitMarker{}
	}
	for _, e := range t.Effects {
		switch e {
		case EffectLeave:
			s.later(func() {
				s.sendTag(messages.TagLeave)
				s.effects.Navigate(LobbyPath())
			})
		}
	}
}

// resetStream forgets every snapshot-derived value so the next stream
// starts without a previous generation.
func (s *Session) resetStream() {
	s.store.Reset()
	s.clock.Reset()
	s.interp.ResetCamera()
	s.lock.Clear()
}

func (s *Session) later(fn func()) { s.queued = append(s.queued, fn) }

func (s *Session) flush() {
	for len(s.queued) > 0 {
		fn := s.queued[0]
		s.queued = s.queued[1:]
		fn()
	}
}

func (s *Session) send(m protocol.Message) bool {
	data, err := protocol.EncodeMessage(m)
	if err != nil {
		log.Printf("[session] encode %s: %v", m.Tag(), err)
		return false
	}
	return s.sendRaw(data)
}

// sendTag sends a command that carries no payload.
func (s *Session) sendTag(tag string) bool {
	data, err := protocol.EncodeEnvelope(tag, nil)
	if err != nil {
		log.Printf("[session] encode %s: %v", tag, err)
		return false
	}
	return s.sendRaw(data)
}

func (s *Session) sendRaw(data []byte) bool {
	if s.sender == nil {
		return false
	}
	return s.sender.SendText(data)
}

func (s *Session) Store() *network.SnapshotStore      { return s.store }
func (s *Session) Interpolator() *network.Interpolator { return s.interp }
func (s *Session) Phase() Phase                        { return s.phase.Phase() }
func (s *Session) Mode() netconfig.GameMode            { return s.phase.Mode() }
func (s *Session) DeathCause() string                  { return s.phase.DeathCause() }
func (s *Session) Connected() bool                     { return s.connected }
func (s *Session) MyID() string                        { return s.myID }
func (s *Session) Ship() netconfig.ShipType            { return s.ship }
func (s *Session) SessionID() string                   { return s.sessionID }
func (s *Session) PendingSessionID() string            { return s.pendingSessionID }
func (s *Session) ControllerAttached() bool            { return s.controllerAttached }
func (s *Session) Match() MatchInfo                    { return s.match }
func (s *Session) Lobby() LobbyData                    { return s.lobby }
func (s *Session) Auth() AuthState                     { return s.auth }
func (s *Session) Name() string                        { return s.name }
func (s *Session) Reticle() *Reticle                   { return s.reticle }
func (s *Session) Zoom() float64                       { return s.zoom }

func (s *Session) KillFeed(now time.Time) []KillEntry { return s.kills.Active(now) }
func (s *Session) Chat() []messages.ChatMsg           { return s.chat.Lines() }

// HitMarker returns the last hit while it is still visible.
func (s *Session) HitMarker(now time.Time) (HitMarker, bool) {
	return s.hit, s.hit.Visible(now, config.HUD.HitMarkerTTL)
}

// Self returns the local player's current record.
func (s *Session) Self() (nc.PlayerState, bool) {
	if s.myID == "" {
		return nc.PlayerState{}, false
	}
	return s.store.Player(s.myID)
}

// AimTarget is the aim-assist target of the last input sample.
func (s *Session) AimTarget() (Candidate, bool) {
	if s.lock.Locked() == "" {
		return Candidate{}, false
	}
	return s.sampler.Target()
}
