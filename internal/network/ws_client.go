package network

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"winject/internal/event"
	"winject/internal/protocol"

	"github.com/gorilla/websocket"
)

// WSClient maintains the WebSocket control channel to the capture host. It
// serves as the event transport when the UDP path is blocked, and reconnects
// on its own until closed.
type WSClient struct {
	hostAddr string
	token    string
	name     string
	version  string
	send     chan protocol.Message
	done     chan struct{}
	log      *slog.Logger

	// OnEvent is called for each input event received from the host.
	OnEvent func(ev event.Event)

	mu          sync.Mutex
	conn        *websocket.Conn
	isConnected bool
}

// NewWSClient creates a new WebSocket client for the agent.
func NewWSClient(hostAddr, token, name, version string, logger *slog.Logger) *WSClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &WSClient{
		hostAddr: hostAddr,
		token:    token,
		name:     name,
		version:  version,
		send:     make(chan protocol.Message, 100),
		done:     make(chan struct{}),
		log:      logger,
	}
}

// Start begins the client loop (connect & process).
func (c *WSClient) Start() {
	go c.loop()
}

// Close terminates the client and its connection.
func (c *WSClient) Close() {
	close(c.done)
	c.mu.Lock()
	if c.conn != nil {
		c.conn.Close()
	}
	c.mu.Unlock()
}

// IsConnected reports whether the control channel is currently up.
func (c *WSClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isConnected
}

func (c *WSClient) loop() {
	for {
		c.connect()

		// If connect returns, we disconnected. Wait a bit and retry.
		select {
		case <-c.done:
			return
		case <-time.After(5 * time.Second):
			c.log.Info("ws client: attempting reconnection")
			continue
		}
	}
}

func (c *WSClient) connect() {
	u := url.URL{Scheme: "ws", Host: c.hostAddr, Path: "/ws"}
	c.log.Info("ws client: connecting", "url", u.String())

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		c.log.Warn("ws client: connection failed", "err", err)
		return
	}
	defer conn.Close()

	c.mu.Lock()
	c.conn = conn
	c.isConnected = true
	c.mu.Unlock()

	c.log.Info("ws client: connected to host")

	// Identify immediately so the host starts streaming.
	c.sendAuth()

	connDone := make(chan struct{})
	go func() {
		defer close(connDone)
		c.writePump(conn)
	}()

	c.readPump(conn)

	c.mu.Lock()
	c.isConnected = false
	c.conn = nil
	c.mu.Unlock()

	<-connDone
}

func (c *WSClient) readPump(conn *websocket.Conn) {
	conn.SetReadLimit(4096)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error { conn.SetReadDeadline(time.Now().Add(60 * time.Second)); return nil })

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn("ws client: read error", "err", err)
			}
			break
		}

		var msg protocol.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.Warn("ws client: invalid message", "err", err)
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *WSClient) writePump(conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second) // ping ticker
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.send:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			jsonMsg, err := json.Marshal(msg)
			if err != nil {
				c.log.Warn("ws client: marshal error", "err", err)
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, jsonMsg); err != nil {
				c.log.Warn("ws client: write error", "err", err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}

func (c *WSClient) handleMessage(msg protocol.Message) {
	switch msg.Type {
	case protocol.TypeInput:
		if msg.Input == nil {
			c.log.Warn("ws client: input message without payload")
			return
		}
		if c.OnEvent != nil {
			c.OnEvent(*msg.Input)
		}

	case protocol.TypePing:
		// Application-level ping, nothing to do.
	}
}

func (c *WSClient) sendAuth() {
	c.send <- protocol.Message{
		Type: protocol.TypeAuth,
		Auth: &protocol.AuthPayload{
			Token:        c.token,
			AgentName:    c.name,
			AgentVersion: c.version,
		},
	}
}
