package collab

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
	maxInputSize = 16 * 1024 // one input envelope, far above any real event
	sendBuffer   = 256
)

// Conn is the part of a WebSocket connection a client needs.
// *websocket.Conn satisfies it.
type Conn interface {
	Read(ctx context.Context) (websocket.MessageType, []byte, error)
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Ping(ctx context.Context) error
	Close(code websocket.StatusCode, reason string) error
	SetReadLimit(n int64)
}

// Client is one participant in a session. Its send queue is written only by
// the hub goroutine, which also closes it on leave.
type Client struct {
	hub  *Hub
	conn Conn
	send chan []byte

	DisplayName string
	SessionID   string
	ClientID    string
}

func NewClient(hub *Hub, conn Conn, displayName, sessionID, clientID string) *Client {
	return &Client{
		hub:         hub,
		conn:        conn,
		send:        make(chan []byte, sendBuffer),
		DisplayName: displayName,
		SessionID:   sessionID,
		ClientID:    clientID,
	}
}

// Serve joins the client's session and pumps messages until the peer goes
// away or ctx is cancelled.
func (c *Client) Serve(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.hub.Register(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writeLoop(ctx)
	}()

	c.readLoop(ctx)
	c.hub.Unregister(c)
	cancel()

	<-done
	c.conn.Close(websocket.StatusNormalClosure, "")
}

// readLoop forwards input envelopes to the hub in arrival order.
func (c *Client) readLoop(ctx context.Context) {
	c.conn.SetReadLimit(maxInputSize)

	for {
		typ, data, err := c.conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				slog.Debug("client closed", "client", c.ClientID)
			default:
				slog.Debug("read failed", "error", err, "client", c.ClientID)
			}
			return
		}
		if typ != websocket.MessageText {
			slog.Warn("binary message ignored", "client", c.ClientID, "size", len(data))
			continue
		}

		msg := &Message{}
		if err := json.Unmarshal(data, msg); err != nil {
			slog.Warn("invalid envelope", "error", err, "client", c.ClientID)
			continue
		}
		// Identity comes from the connection, never from the payload.
		msg.ClientID = c.ClientID
		msg.SessionID = c.SessionID

		if err := c.hub.Submit(ctx, c, msg); err != nil {
			slog.Debug("submit failed", "error", err, "client", c.ClientID)
			return
		}
	}
}

// writeLoop drains the send queue and keeps the connection alive with pings.
func (c *Client) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				// The hub dropped us: refused join, leave or shutdown.
				c.conn.Close(websocket.StatusNormalClosure, "session closed")
				return
			}
			if err := c.write(ctx, data); err != nil {
				slog.Debug("write failed", "error", err, "client", c.ClientID)
				// Stop reading too so the hub learns about the dead peer.
				c.conn.Close(websocket.StatusInternalError, "write failed")
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				c.conn.Close(websocket.StatusGoingAway, "ping timeout")
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) write(ctx context.Context, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, data)
}

// Send queues msg for the write loop, dropping it if the client is too far
// behind. Only the hub goroutine calls it.
func (c *Client) Send(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err, "type", msg.Type)
		return
	}

	select {
	case c.send <- data:
	default:
		slog.Warn("send buffer full, dropping message", "client", c.ClientID, "type", msg.Type)
	}
}
