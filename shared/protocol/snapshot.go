package protocol

import (
	"fmt"

	"github.com/automoto/voidrift/shared/netcomponents"
	"github.com/vmihailenco/msgpack/v5"
)

// DecodeSnapshot decodes a msgpack-encoded state frame.
func DecodeSnapshot(data []byte) (*netcomponents.GameState, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFrame
	}
	gs := &netcomponents.GameState{}
	if err := msgpack.Unmarshal(data, gs); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return gs, nil
}

// EncodeSnapshot is the server-side counterpart, used by tools and tests.
func EncodeSnapshot(gs *netcomponents.GameState) ([]byte, error) {
	b, err := msgpack.Marshal(gs)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}
