package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrEmptyFrame = errors.New("empty frame")

// Envelope wraps every text control message as {"t": tag, "d": payload}.
type Envelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// EncodeEnvelope serializes a tagged payload. A nil payload omits "d".
func EncodeEnvelope(tag string, payload any) ([]byte, error) {
	if tag == "" {
		return nil, fmt.Errorf("encode envelope: empty tag")
	}
	env := Envelope{T: tag}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %q payload: %w", tag, err)
		}
		env.D = raw
	}
	return json.Marshal(env)
}

// EncodeMessage serializes a message under its own tag.
func EncodeMessage(m Message) ([]byte, error) {
	return EncodeEnvelope(m.Tag(), m)
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyFrame
	}
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if env.T == "" {
		return Envelope{}, fmt.Errorf("decode envelope: missing tag")
	}
	return env, nil
}

// hasPayload reports whether d carries anything beyond an explicit null.
func (e Envelope) hasPayload() bool {
	return len(e.D) > 0 && string(e.D) != "null"
}
