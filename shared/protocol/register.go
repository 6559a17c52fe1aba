package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/voidrift/shared/messages"
	"github.com/automoto/voidrift/shared/netcomponents"
)

// ErrUnknownTag is returned for envelopes whose tag has no registered decoder.
var ErrUnknownTag = errors.New("unknown message tag")

// Message is implemented by one type per wire tag, so a decoded frame can be
// dispatched with a type switch.
type Message interface {
	Tag() string
}

type decodeFn func(raw json.RawMessage) (Message, error)

var decoders = map[string]decodeFn{}

// register binds the zero value's tag to a JSON decoder for T.
func register[T Message]() {
	var zero T
	tag := zero.Tag()
	if _, dup := decoders[tag]; dup {
		panic(fmt.Sprintf("protocol: tag %q registered twice", tag))
	}
	decoders[tag] = func(raw json.RawMessage) (Message, error) {
		var out T
		if len(raw) == 0 {
			return out, nil
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func init() {
	register[messages.Welcome]()
	register[messages.Joined]()
	register[messages.Created]()
	register[messages.SessionList]()
	register[messages.Checked]()
	register[messages.Hit]()
	register[messages.Kill]()
	register[messages.Death]()
	register[messages.MatchPhase]()
	register[messages.MatchResult]()
	register[messages.TeamUpdate]()
	register[messages.ControllerOn]()
	register[messages.ControllerOff]()
	register[messages.ControlOK]()
	register[messages.AuthOK]()
	register[messages.ProfileData]()
	register[messages.XPUpdate]()
	register[messages.Achievement]()
	register[messages.FriendList]()
	register[messages.FriendNotify]()
	register[messages.StoreList]()
	register[messages.BuyResult]()
	register[messages.CreditsUpdate]()
	register[messages.ChatMsg]()
	register[messages.Error]()

	decoders[messages.TagState] = func(raw json.RawMessage) (Message, error) {
		gs := &netcomponents.GameState{}
		if err := json.Unmarshal(raw, gs); err != nil {
			return nil, err
		}
		return messages.Snapshot{State: gs}, nil
	}
}

// Decode turns an envelope into its typed message.
func Decode(env Envelope) (Message, error) {
	dec, ok := decoders[env.T]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, env.T)
	}
	var raw json.RawMessage
	if env.hasPayload() {
		raw = env.D
	}
	msg, err := dec(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", env.T, err)
	}
	return msg, nil
}

// DecodeFrame decodes one inbound transport frame. Binary frames are state
// snapshots; text frames are envelopes.
func DecodeFrame(binary bool, data []byte) (Message, error) {
	if binary {
		gs, err := DecodeSnapshot(data)
		if err != nil {
			return nil, err
		}
		return messages.Snapshot{State: gs}, nil
	}
	env, err := DecodeEnvelope(data)
	if err != nil {
		return nil, err
	}
	return Decode(env)
}
