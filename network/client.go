package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	networkID  esync.NetworkId
	serverName string
	tickRate   int
	arena      string
	conn       *websocket.Conn

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	// Datablocks, updates and despawns are queued without a bound. A missed
	// initial update leaves the replica unable to decode later deltas.
	datablocks []messages.LaserDataBlock
	updates    []messages.LaserUpdate
	despawns   []messages.LaserDespawnEvent

	hitCh       chan messages.LaserHitEvent
	destroyedCh chan messages.TurretDestroyedEvent
}

func NewClient() *Client {
	buf := cfg.Net.EventBuffer
	return &Client{
		state:       StateDisconnected,
		snapshotCh:  make(chan esync.WorldSnapshot, 1),
		hitCh:       make(chan messages.LaserHitEvent, buf),
		destroyedCh: make(chan messages.TurretDestroyedEvent, buf),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.datablocks = nil
	c.updates = nil
	c.despawns = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
		}); err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] join accepted: server=%s arena=%s tickRate=%d datablocks=%d",
			msg.ServerName, msg.Arena, msg.TickRate, msg.Datablocks)
		c.mu.Lock()
		c.networkID = msg.NetworkID
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.arena = msg.Arena
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, msg messages.LaserDataBlock) {
		c.mu.Lock()
		if len(c.datablocks) < cfg.Net.DatablockLimit {
			c.datablocks = append(c.datablocks, msg)
		} else {
			log.Printf("[client] dropping datablock %q: limit %d reached", msg.Name, cfg.Net.DatablockLimit)
		}
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.LaserUpdate) {
		c.mu.Lock()
		c.updates = append(c.updates, msg)
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, evt messages.LaserHitEvent) {
		select {
		case c.hitCh <- evt:
		default:
		}
	})

	router.On(func(_ *router.NetworkClient, evt messages.LaserDespawnEvent) {
		c.mu.Lock()
		c.despawns = append(c.despawns, evt)
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, evt messages.TurretDestroyedEvent) {
		select {
		case c.destroyedCh <- evt:
		default:
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) Arena() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.arena
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainDatablocks returns all datablocks received since the last call.
func (c *Client) DrainDatablocks() []messages.LaserDataBlock {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.datablocks
	c.datablocks = nil
	return out
}

// DrainUpdates returns all laser updates received since the last call, in
// arrival order.
func (c *Client) DrainUpdates() []messages.LaserUpdate {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.updates
	c.updates = nil
	return out
}

// DrainHitEvents returns all pending hit events, non-blocking.
func (c *Client) DrainHitEvents() []messages.LaserHitEvent {
	return drainChan(c.hitCh)
}

// DrainDespawnEvents returns all despawn events received since the last call.
func (c *Client) DrainDespawnEvents() []messages.LaserDespawnEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.despawns
	c.despawns = nil
	return out
}

// DrainTurretDestroyedEvents returns all pending turret destruction events.
func (c *Client) DrainTurretDestroyedEvents() []messages.TurretDestroyedEvent {
	return drainChan(c.destroyedCh)
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
