package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/automoto/voidrift/shared/messages"
	"github.com/automoto/voidrift/shared/netconfig"
)

var ErrBadInputFrame = errors.New("bad input frame")

// EncodeInput packs an input sample as
// [0x01, mx_hi, mx_lo, my_hi, my_lo, flags, thresh_hi, thresh_lo].
func EncodeInput(in messages.Input) []byte {
	b := make([]byte, netconfig.InputFrameSize)
	b[0] = netconfig.OpInput
	binary.BigEndian.PutUint16(b[1:3], uint16(clampInt16(in.MX)))
	binary.BigEndian.PutUint16(b[3:5], uint16(clampInt16(in.MY)))
	b[5] = in.Flags()
	binary.BigEndian.PutUint16(b[6:8], clampUint16(in.Threshold))
	return b
}

func DecodeInput(b []byte) (messages.Input, error) {
	var in messages.Input
	if len(b) != netconfig.InputFrameSize {
		return in, fmt.Errorf("%w: length %d", ErrBadInputFrame, len(b))
	}
	if b[0] != netconfig.OpInput {
		return in, fmt.Errorf("%w: opcode 0x%02x", ErrBadInputFrame, b[0])
	}
	in.MX = float64(int16(binary.BigEndian.Uint16(b[1:3])))
	in.MY = float64(int16(binary.BigEndian.Uint16(b[3:5])))
	in.SetFlags(b[5])
	in.Threshold = float64(binary.BigEndian.Uint16(b[6:8]))
	return in, nil
}

func clampInt16(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

func clampUint16(v float64) uint16 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	v = math.Round(v)
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}
