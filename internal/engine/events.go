package engine

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEvent is returned for events the editor cannot interpret.
var ErrUnknownEvent = errors.New("unknown event type")

// EventType names an input event.
type EventType string

const (
	EventPointerDown EventType = "pointer.down"
	EventPointerMove EventType = "pointer.move"
	EventPointerUp   EventType = "pointer.up"
	EventKeyDown     EventType = "key.down"
)

// ButtonPrimary is the left mouse button / primary touch.
const ButtonPrimary = 1

// Event is a discrete input event in window coordinates (Y down).
type Event struct {
	Type   EventType `json:"type"`
	X      float64   `json:"x,omitempty"`
	Y      float64   `json:"y,omitempty"`
	Button int       `json:"button,omitempty"`
	Key    Key       `json:"key,omitempty"`
}

// ParseEvent decodes an event from JSON.
func ParseEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	switch ev.Type {
	case EventPointerDown, EventPointerMove, EventPointerUp, EventKeyDown:
		return ev, nil
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// Key is a key name as sent by front ends.
type Key string

const (
	KeyPoint     Key = "p"
	KeyLine      Key = "l"
	KeyRectangle Key = "r"
	KeyEllipse   Key = "e"
	KeySelect    Key = "s"
	KeyClear     Key = "c"

	KeyThicker   Key = "+"
	KeyEquals    Key = "="
	KeyThinner   Key = "-"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyRotateCCW Key = "q"
	KeyRotateCW  Key = "w"
	KeyScaleUp   Key = "a"
	KeyScaleDown Key = "z"
)

// paletteIndex maps "1".."8" to 0..7.
func (k Key) paletteIndex() (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '8' {
		return 0, false
	}
	return int(k[0] - '1'), true
}
