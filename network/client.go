package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/voidrift/config"
	"github.com/coder/websocket"
	"golang.org/x/time/rate"
)

var ErrNotConnected = errors.New("not connected")

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateClosed // Close was called; no further reconnects
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

type EventKind int

const (
	EventOpen EventKind = iota
	EventMessage
	EventClose
)

// Event is one transport occurrence, delivered to the game loop in order.
type Event struct {
	Kind    EventKind
	Binary  bool
	Data    []byte
	Channel uint64 // id of the channel that produced the event
	Err     error  // set on EventClose when the channel failed
}

// channel is one connection attempt. Once closed it never produces another
// event and a later attempt gets a fresh channel.
type channel struct {
	id     uint64
	conn   *websocket.Conn
	cancel context.CancelFunc
	closed bool
}

// ClientOptions configures a Client. Zero values fall back to config.Net.
type ClientOptions struct {
	URL            string
	ReconnectDelay time.Duration
	DialTimeout    time.Duration
	WriteTimeout   time.Duration
	SendRate       float64
	SendBurst      int
	InboundBuffer  int
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.URL == "" {
		o.URL = config.Net.ServerURL
	}
	if o.ReconnectDelay <= 0 {
		o.ReconnectDelay = config.Net.ReconnectDelay
	}
	if o.DialTimeout <= 0 {
		o.DialTimeout = config.Net.DialTimeout
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = config.Net.WriteTimeout
	}
	if o.SendRate <= 0 {
		o.SendRate = config.Net.SendRate
	}
	if o.SendBurst <= 0 {
		o.SendBurst = config.Net.SendBurst
	}
	if o.InboundBuffer <= 0 {
		o.InboundBuffer = config.Net.InboundBuffer
	}
	return o
}

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (reads run on per-channel goroutines).
type Client struct {
	mu sync.Mutex

	opts    ClientOptions
	state   ClientState
	current *channel
	nextID  uint64
	retry   *time.Timer
	limiter *rate.Limiter
	dropped int

	events chan Event
	done   chan struct{}
}

func NewClient(opts ClientOptions) *Client {
	opts = opts.withDefaults()
	return &Client{
		opts:    opts,
		state:   StateDisconnected,
		limiter: rate.NewLimiter(rate.Limit(opts.SendRate), opts.SendBurst),
		events:  make(chan Event, opts.InboundBuffer),
		done:    make(chan struct{}),
	}
}

// Connect starts a connection attempt in a background goroutine. A failed or
// lost connection schedules exactly one reconnect after ReconnectDelay.
func (c *Client) Connect() {
	c.mu.Lock()
	if c.state == StateClosed || c.state == StateConnecting || c.state == StateConnected {
		c.mu.Unlock()
		return
	}
	c.nextID++
	ctx, cancel := context.WithCancel(context.Background())
	ch := &channel{id: c.nextID, cancel: cancel}
	c.current = ch
	c.state = StateConnecting
	c.retry = nil
	c.mu.Unlock()

	go c.run(ctx, ch)
}

func (c *Client) run(ctx context.Context, ch *channel) {
	dialCtx, cancelDial := context.WithTimeout(ctx, c.opts.DialTimeout)
	conn, _, err := websocket.Dial(dialCtx, c.opts.URL, nil)
	cancelDial()
	if err != nil {
		c.handleClose(ch, fmt.Errorf("dial %s: %w", c.opts.URL, err))
		return
	}
	conn.SetReadLimit(1 << 20)

	c.mu.Lock()
	if ch.closed {
		c.mu.Unlock()
		_ = conn.CloseNow()
		return
	}
	ch.conn = conn
	c.state = StateConnected
	c.mu.Unlock()

	log.Printf("[client] connected to %s (channel %d)", c.opts.URL, ch.id)
	c.push(Event{Kind: EventOpen, Channel: ch.id})

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			c.handleClose(ch, err)
			return
		}
		c.push(Event{
			Kind:    EventMessage,
			Binary:  typ == websocket.MessageBinary,
			Data:    data,
			Channel: ch.id,
		})
	}
}

// handleClose retires a channel. Only the first call per channel has any
// effect, and only the current channel changes client state.
func (c *Client) handleClose(ch *channel, cause error) {
	c.mu.Lock()
	if ch.closed {
		c.mu.Unlock()
		return
	}
	ch.closed = true
	isCurrent := c.current == ch
	if isCurrent && c.state != StateClosed {
		c.state = StateDisconnected
		c.retry = time.AfterFunc(c.opts.ReconnectDelay, c.Connect)
	}
	conn := ch.conn
	c.mu.Unlock()

	ch.cancel()
	if conn != nil {
		_ = conn.CloseNow()
	}
	if !isCurrent {
		return
	}
	if cause != nil {
		log.Printf("[client] channel %d closed: %v", ch.id, cause)
	}
	ev := Event{Kind: EventClose, Channel: ch.id, Err: cause}
	// The caller may be the loop that drains events, so never wait on a
	// full buffer here.
	select {
	case c.events <- ev:
	default:
		go c.push(ev)
	}
}

// ForceClose drops the current channel as if the server had closed it.
// State reads disconnected as soon as it returns.
func (c *Client) ForceClose() {
	c.mu.Lock()
	ch := c.current
	c.mu.Unlock()
	if ch != nil {
		c.handleClose(ch, nil)
	}
}

// Close shuts the connection down for good.
func (c *Client) Close() {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return
	}
	c.state = StateClosed
	if c.retry != nil {
		c.retry.Stop()
	}
	ch := c.current
	c.mu.Unlock()

	close(c.done)
	if ch != nil {
		c.handleClose(ch, nil)
	}
}

func (c *Client) push(ev Event) {
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

func (c *Client) State() ClientState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connected reports whether the current channel is open.
func (c *Client) Connected() bool {
	return c.State() == StateConnected
}

// ChannelID returns the id of the most recent connection attempt.
func (c *Client) ChannelID() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return 0
	}
	return c.current.id
}

// Dropped returns how many outbound messages were discarded.
func (c *Client) Dropped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// SendText writes a text frame. It reports false when the frame was dropped
// because the channel is not open or the send rate is exhausted.
func (c *Client) SendText(data []byte) bool {
	return c.send(websocket.MessageText, data)
}

// SendBinary writes a binary frame with the same drop rules as SendText.
func (c *Client) SendBinary(data []byte) bool {
	return c.send(websocket.MessageBinary, data)
}

func (c *Client) send(typ websocket.MessageType, data []byte) bool {
	c.mu.Lock()
	var conn *websocket.Conn
	if c.state == StateConnected && c.current != nil {
		conn = c.current.conn
	}
	if conn == nil || !c.limiter.Allow() {
		c.dropped++
		c.mu.Unlock()
		return false
	}
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), c.opts.WriteTimeout)
	defer cancel()
	if err := conn.Write(ctx, typ, data); err != nil {
		log.Printf("[client] write error: %v", err)
		return false
	}
	return true
}

// Events returns all pending transport events, non-blocking.
func (c *Client) Events() []Event {
	return drainChan(c.events)
}

// Wait blocks until an event arrives or ctx ends.
func (c *Client) Wait(ctx context.Context) (Event, error) {
	select {
	case ev := <-c.events:
		return ev, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
