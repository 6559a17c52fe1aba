package session

import (
	"time"

	"github.com/automoto/voidrift/shared/messages"
)

type KillEntry struct {
	Killer string
	Victim string
	At     time.Time
}

// KillFeed keeps the most recent kills for a short while.
type KillFeed struct {
	max     int
	ttl     time.Duration
	entries []KillEntry
}

func NewKillFeed(max int, ttl time.Duration) *KillFeed {
	return &KillFeed{max: max, ttl: ttl}
}

func (f *KillFeed) Push(k messages.Kill, now time.Time) {
	f.entries = append(f.entries, KillEntry{Killer: k.KillerName, Victim: k.VictimName, At: now})
	if over := len(f.entries) - f.max; over > 0 {
		f.entries = append(f.entries[:0], f.entries[over:]...)
	}
}

// Active returns the entries younger than the feed's ttl, oldest first.
func (f *KillFeed) Active(now time.Time) []KillEntry {
	out := make([]KillEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if f.ttl <= 0 || now.Sub(e.At) < f.ttl {
			out = append(out, e)
		}
	}
	return out
}

func (f *KillFeed) Reset() { f.entries = nil }

// ChatLog is a bounded history of chat lines.
type ChatLog struct {
	max   int
	lines []messages.ChatMsg
}

func NewChatLog(max int) *ChatLog {
	return &ChatLog{max: max}
}

func (c *ChatLog) Push(m messages.ChatMsg) {
	c.lines = append(c.lines, m)
	if over := len(c.lines) - c.max; over > 0 {
		c.lines = append(c.lines[:0], c.lines[over:]...)
	}
}

func (c *ChatLog) Lines() []messages.ChatMsg {
	return append([]messages.ChatMsg(nil), c.lines...)
}

// HitMarker is the last confirmed hit by the local player.
type HitMarker struct {
	X, Y   float64
	Damage int
	At     time.Time
}

// Visible reports whether the marker should still be drawn.
func (h HitMarker) Visible(now time.Time, ttl time.Duration) bool {
	return !h.At.IsZero() && now.Sub(h.At) < ttl
}
