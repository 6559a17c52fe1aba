package protocol

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/automoto/voidrift/shared/messages"
	"github.com/automoto/voidrift/shared/netconfig"
)

func TestEncodeEnvelopeShape(t *testing.T) {
	b, err := EncodeEnvelope(messages.TagJoin, messages.JoinRequest{Name: "ace", SessionID: "s1"})
	if err != nil {
		t.Fatalf("EncodeEnvelope: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["t"]) != `"join"` {
		t.Fatalf("t = %s, want \"join\"", raw["t"])
	}
	if string(raw["d"]) != `{"name":"ace","sid":"s1"}` {
		t.Fatalf("d = %s", raw["d"])
	}
}

func TestEncodeEnvelopeWithoutPayload(t *testing.T) {
	b, err := EncodeEnvelope(messages.TagReady, nil)
	if err != nil {
		t.Fatalf("EncodeEnvelope: %v", err)
	}
	if string(b) != `{"t":"ready"}` {
		t.Fatalf("got %s", b)
	}
}

func TestEncodeEnvelopeRejectsEmptyTag(t *testing.T) {
	if _, err := EncodeEnvelope("", nil); err == nil {
		t.Fatalf("expected error for empty tag")
	}
}

func TestDecodeTypedMessages(t *testing.T) {
	tests := []struct {
		frame string
		check func(t *testing.T, m Message)
	}{
		{`{"t":"welcome","d":{"id":"p7","s":2}}`, func(t *testing.T, m Message) {
			w, ok := m.(messages.Welcome)
			if !ok || w.ID != "p7" || w.Ship != netconfig.ShipScout {
				t.Fatalf("got %#v", m)
			}
		}},
		{`{"t":"match_phase","d":{"phase":1,"mode":2,"countdown":3,"time_left":0}}`, func(t *testing.T, m Message) {
			mp, ok := m.(messages.MatchPhase)
			if !ok || mp.Phase != netconfig.MatchPhaseCountdown || mp.Mode != netconfig.ModeCTF || mp.Countdown != 3 {
				t.Fatalf("got %#v", m)
			}
		}},
		{`{"t":"sessions","d":[{"id":"a","name":"one","players":3}]}`, func(t *testing.T, m Message) {
			s, ok := m.(messages.SessionList)
			if !ok || len(s) != 1 || s[0].Players != 3 {
				t.Fatalf("got %#v", m)
			}
		}},
		{`{"t":"ctrl_on"}`, func(t *testing.T, m Message) {
			if _, ok := m.(messages.ControllerOn); !ok {
				t.Fatalf("got %#v", m)
			}
		}},
		{`{"t":"ctrl_off","d":null}`, func(t *testing.T, m Message) {
			if _, ok := m.(messages.ControllerOff); !ok {
				t.Fatalf("got %#v", m)
			}
		}},
		{`{"t":"kill","d":{"kid":"a","kn":"Ace","vid":"b","vn":"Bo"}}`, func(t *testing.T, m Message) {
			k, ok := m.(messages.Kill)
			if !ok || k.KillerName != "Ace" || k.VictimID != "b" {
				t.Fatalf("got %#v", m)
			}
		}},
		{`{"t":"state","d":{"p":[{"id":"a","x":1,"y":2}],"pr":[],"tick":9}}`, func(t *testing.T, m Message) {
			s, ok := m.(messages.Snapshot)
			if !ok || s.State.Tick != 9 || len(s.State.Players) != 1 || s.State.Players[0].VX != nil {
				t.Fatalf("got %#v", m)
			}
		}},
	}

	for _, tt := range tests {
		m, err := DecodeFrame(false, []byte(tt.frame))
		if err != nil {
			t.Fatalf("DecodeFrame(%s): %v", tt.frame, err)
		}
		tt.check(t, m)
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	_, err := DecodeFrame(false, []byte(`{"t":"teleport","d":{}}`))
	if !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("err = %v, want ErrUnknownTag", err)
	}
}

func TestDecodeMalformedFrames(t *testing.T) {
	frames := []string{
		``,
		`not json`,
		`{"d":{}}`,
		`{"t":"welcome","d":"oops"}`,
		`{"t":"match_phase","d":{"phase":"late"}}`,
	}
	for _, f := range frames {
		if _, err := DecodeFrame(false, []byte(f)); err == nil {
			t.Fatalf("DecodeFrame(%q) succeeded, want error", f)
		}
	}
}

func TestEncodeMessageUsesOwnTag(t *testing.T) {
	b, err := EncodeMessage(messages.TeamPickRequest{Team: netconfig.TeamBlue})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if env.T != messages.TagTeamPick || string(env.D) != `{"team":2}` {
		t.Fatalf("got %+v", env)
	}
}
