package messages

import "github.com/automoto/voidrift/shared/netconfig"

// JoinRequest asks the server to join an existing session.
type JoinRequest struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
}

func (JoinRequest) Tag() string { return TagJoin }

// CreateRequest asks the server to open a new session.
type CreateRequest struct {
	Name        string             `json:"name"`
	SessionName string             `json:"sname"`
	Mode        netconfig.GameMode `json:"mode"`
}

func (CreateRequest) Tag() string { return TagCreate }

// CheckRequest asks whether a session id from a shared URL still exists.
type CheckRequest struct {
	SessionID string `json:"sid"`
}

func (CheckRequest) Tag() string { return TagCheck }

// ControlRequest attaches a remote controller to a player in a session.
type ControlRequest struct {
	SessionID string `json:"sid"`
	PlayerID  string `json:"pid"`
}

func (ControlRequest) Tag() string { return TagControl }

type TeamPickRequest struct {
	Team netconfig.Team `json:"team"`
}

func (TeamPickRequest) Tag() string { return TagTeamPick }

// Welcome assigns the local player id and ship after joining.
type Welcome struct {
	ID   string             `json:"id"`
	Ship netconfig.ShipType `json:"s"`
}

func (Welcome) Tag() string { return TagWelcome }

type Joined struct {
	SessionID string `json:"sid"`
}

func (Joined) Tag() string { return TagJoined }

type Created struct {
	SessionID string `json:"sid"`
}

func (Created) Tag() string { return TagCreated }

// SessionInfo is one row of the session browser.
type SessionInfo struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Players int                `json:"players"`
	Mode    netconfig.GameMode `json:"mode"`
}

// SessionList is the reply to a list request. On the wire it is a bare array.
type SessionList []SessionInfo

func (SessionList) Tag() string { return TagSessions }

type Checked struct {
	SessionID string `json:"sid"`
	Exists    bool   `json:"exists"`
	Name      string `json:"name"`
	Players   int    `json:"players"`
}

func (Checked) Tag() string { return TagChecked }

// ControlOK confirms a remote controller attachment.
type ControlOK struct {
	PlayerID string `json:"pid"`
}

func (ControlOK) Tag() string { return TagControlOK }

// ControllerOn and ControllerOff tell the primary client that a remote
// controller became, or stopped being, the input source for its player.
type ControllerOn struct{}

func (ControllerOn) Tag() string { return TagCtrlOn }

type ControllerOff struct{}

func (ControllerOff) Tag() string { return TagCtrlOff }

type Error struct {
	Msg string `json:"msg"`
}

func (Error) Tag() string { return TagError }
