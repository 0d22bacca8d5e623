package collab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/grafkom/editor/internal/engine"
	"github.com/grafkom/editor/internal/typeid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrHubStopped      = errors.New("hub stopped")
)

// Room is one editing session and the clients attached to it.
type Room struct {
	sessionID string
	editor    *engine.Editor
	clients   map[string]*Client // clientID -> client
	presence  *Presence
	seq       int64 // frames broadcast so far
}

func NewRoom(sessionID string, editor *engine.Editor) *Room {
	return &Room{
		sessionID: sessionID,
		editor:    editor,
		clients:   make(map[string]*Client),
		presence:  NewPresence(),
	}
}

type inbound struct {
	client *Client
	msg    *Message
}

type frameRequest struct {
	sessionID string
	reply     chan frameReply
}

type frameReply struct {
	frame engine.Frame
	err   error
}

// Hub owns every session. All editor state is touched only from Run, so
// events for a session are applied strictly in arrival order.
type Hub struct {
	rooms     map[string]*Room // sessionID -> room
	newEditor func() *engine.Editor

	register   chan *Client
	unregister chan *Client
	inbound    chan inbound
	creates    chan chan string
	frames     chan frameRequest
	done       chan struct{}
}

func NewHub(newEditor func() *engine.Editor) *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		newEditor:  newEditor,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inbound, 64),
		creates:    make(chan chan string),
		frames:     make(chan frameRequest),
		done:       make(chan struct{}),
	}
}

// Run processes hub traffic until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case in := <-h.inbound:
			h.handleMessage(in.client, in.msg)
		case reply := <-h.creates:
			reply <- h.createRoom(typeid.NewSessionID()).sessionID
		case req := <-h.frames:
			h.handleFrameRequest(req)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Submit queues a client message for the hub goroutine.
func (h *Hub) Submit(ctx context.Context, client *Client, msg *Message) error {
	select {
	case <-h.done:
		return ErrHubStopped
	default:
	}

	select {
	case h.inbound <- inbound{client: client, msg: msg}:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CreateSession starts a new empty session and returns its ID.
func (h *Hub) CreateSession(ctx context.Context) (string, error) {
	reply := make(chan string, 1)
	select {
	case h.creates <- reply:
	case <-h.done:
		return "", ErrHubStopped
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return <-reply, nil
}

// Frame returns the current frame of a session.
func (h *Hub) Frame(ctx context.Context, sessionID string) (engine.Frame, error) {
	req := frameRequest{sessionID: sessionID, reply: make(chan frameReply, 1)}
	select {
	case h.frames <- req:
	case <-h.done:
		return engine.Frame{}, ErrHubStopped
	case <-ctx.Done():
		return engine.Frame{}, ctx.Err()
	}
	r := <-req.reply
	return r.frame, r.err
}

func (h *Hub) createRoom(sessionID string) *Room {
	room := NewRoom(sessionID, h.newEditor())
	h.rooms[sessionID] = room
	slog.Info("session created", "session", sessionID)
	return room
}

func (h *Hub) handleFrameRequest(req frameRequest) {
	room, ok := h.rooms[req.sessionID]
	if !ok {
		req.reply <- frameReply{err: fmt.Errorf("%w: %s", ErrSessionNotFound, req.sessionID)}
		return
	}
	req.reply <- frameReply{frame: room.editor.Frame()}
}

// addClient joins client to an existing session. Sessions are only made by
// CreateSession, so a join to an unknown ID is refused and the client's queue
// closed after the error.
func (h *Hub) addClient(client *Client) {
	room, ok := h.rooms[client.SessionID]
	if !ok {
		slog.Warn("join to unknown session", "client", client.ClientID, "session", client.SessionID)
		client.Send(newMessage(TypeError, ErrorPayload{Message: ErrSessionNotFound.Error()}))
		close(client.send)
		return
	}
	room.clients[client.ClientID] = client

	client.Send(newMessage(TypeWelcome, WelcomePayload{
		ClientID:    client.ClientID,
		SessionID:   client.SessionID,
		DisplayName: client.DisplayName,
	}))

	// Send current presence state and the scene to the new client
	client.Send(room.presence.StateMessage())
	client.Send(h.frameMessage(room))

	// Broadcast join to other clients
	joinMsg := newMessage(TypePresenceJoin, PresenceJoinPayload{
		ClientID:    client.ClientID,
		DisplayName: client.DisplayName,
	})
	h.broadcastToRoom(room, joinMsg, client.ClientID)

	slog.Info("client joined", "client", client.ClientID, "session", client.SessionID)
}

func (h *Hub) removeClient(client *Client) {
	room, ok := h.rooms[client.SessionID]
	if !ok {
		return
	}
	if _, ok := room.clients[client.ClientID]; !ok {
		return
	}

	delete(room.clients, client.ClientID)
	close(client.send)
	room.presence.Leave(client.ClientID)

	// Broadcast leave to remaining clients
	leaveMsg := newMessage(TypePresenceLeave, PresenceLeavePayload{ClientID: client.ClientID})
	h.broadcastToRoom(room, leaveMsg, "")

	slog.Info("client left", "client", client.ClientID, "session", client.SessionID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	room, ok := h.rooms[sender.SessionID]
	if !ok {
		return
	}
	// Input queued before a leave can arrive after it; the send queue is closed by then.
	if room.clients[sender.ClientID] != sender {
		slog.Debug("input from departed client dropped", "client", sender.ClientID)
		return
	}

	switch msg.Type {
	case TypeInput:
		h.handleInput(room, sender, msg)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", sender.ClientID)
		sender.Send(newMessage(TypeError, ErrorPayload{Message: "unknown message type: " + msg.Type}))
	}
}

func (h *Hub) handleInput(room *Room, sender *Client, msg *Message) {
	ev, err := engine.ParseEvent(msg.Payload)
	if err != nil {
		slog.Warn("invalid input", "error", err, "client", sender.ClientID)
		sender.Send(newMessage(TypeError, ErrorPayload{Message: err.Error()}))
		return
	}

	if err := room.editor.HandleEvent(ev); err != nil {
		slog.Warn("input rejected", "error", err, "client", sender.ClientID)
		sender.Send(newMessage(TypeError, ErrorPayload{Message: err.Error()}))
		return
	}

	// Only positioned events move the shared cursor.
	if ev.Type == engine.EventPointerDown || ev.Type == engine.EventPointerMove {
		h.updatePresence(room, sender, ev)
	}

	if room.editor.Changed() {
		h.broadcastToRoom(room, h.frameMessage(room), "")
	}
}

func (h *Hub) updatePresence(room *Room, sender *Client, ev engine.Event) {
	presence := room.presence.Move(sender.ClientID, sender.DisplayName, ev.X, ev.Y)

	outPayload, _ := json.Marshal(presence)
	h.broadcastToRoom(room, &Message{
		Type:     TypePresenceUpdate,
		ClientID: sender.ClientID,
		Payload:  outPayload,
	}, sender.ClientID)
}

// frameMessage renders the room's editor into a sequenced frame message.
func (h *Hub) frameMessage(room *Room) *Message {
	room.seq++
	msg := newMessage(TypeFrame, room.editor.Frame())
	msg.SessionID = room.sessionID
	msg.Seq = room.seq
	return msg
}

func (h *Hub) broadcastToRoom(room *Room, msg *Message, excludeClientID string) {
	for _, c := range room.clients {
		if c.ClientID != excludeClientID {
			c.Send(msg)
		}
	}
}

func (h *Hub) closeAll() {
	for _, room := range h.rooms {
		for id, c := range room.clients {
			delete(room.clients, id)
			close(c.send)
		}
	}
	slog.Info("hub stopped", "sessions", len(h.rooms))
}
