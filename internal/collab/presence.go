package collab

// Presence remembers the last pointer position of each participant in a room.
// Only the hub goroutine touches it.
type Presence struct {
	cursors map[string]PresencePayload // clientID -> last known pointer
}

func NewPresence() *Presence {
	return &Presence{cursors: make(map[string]PresencePayload)}
}

// Move records a pointer position in window coordinates and returns the
// payload to broadcast.
func (p *Presence) Move(clientID, displayName string, x, y float64) PresencePayload {
	entry := PresencePayload{
		Cursor:      &CursorPos{X: x, Y: y},
		DisplayName: displayName,
	}
	p.cursors[clientID] = entry
	return entry
}

func (p *Presence) Leave(clientID string) {
	delete(p.cursors, clientID)
}

// StateMessage snapshots every known cursor for a newly joined client.
func (p *Presence) StateMessage() *Message {
	state := PresenceStatePayload{Presences: make(map[string]*PresencePayload, len(p.cursors))}
	for id, entry := range p.cursors {
		state.Presences[id] = &entry
	}
	return newMessage(TypePresenceState, state)
}
