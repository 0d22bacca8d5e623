package engine

import (
	"encoding/json"
)

// Draw operations understood by front ends.
const (
	OpPoint   = "point"   // one dot per point, diameter 2*thickness
	OpLine    = "line"    // segments between consecutive point pairs
	OpLoop    = "loop"    // closed polyline
	OpHandles = "handles" // selection handles: centroid, bbox min, bbox max
	OpPending = "pending" // creation points not yet forming a shape
)

// Handle and pending-point styling.
const (
	handleColor  = "#ffff00"
	handleSize   = 8.0
	pendingColor = "#ff0000"
	pendingSize  = 5.0
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// Points are in the editor's Y-up space; front ends flip once when drawing.
type DrawCommand struct {
	Op        string  `json:"op"`
	ObjectID  string  `json:"objectId,omitempty"` // For hit correlation
	Points    []Vec2  `json:"points"`
	Color     string  `json:"color"`
	Thickness float64 `json:"thickness"`
	Selected  bool    `json:"selected,omitempty"`
}

// Frame is everything a renderer needs for one redraw.
type Frame struct {
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	Tool      Tool          `json:"tool"`
	Color     string        `json:"color"`
	Thickness float64       `json:"thickness"`
	Selected  Kind          `json:"selected,omitempty"`
	Commands  []DrawCommand `json:"commands"`
}

// Status is the HUD line describing the selection.
func (f Frame) Status() string {
	if f.Selected == "" {
		return "Selected: None"
	}
	return "Selected: " + string(f.Selected)
}

// CompileDrawCommands generates a draw command buffer from a scene.
// Commands are in painter's order (back to front); handles follow their shape.
func CompileDrawCommands(sc *Scene) []DrawCommand {
	if sc == nil {
		return nil
	}

	commands := make([]DrawCommand, 0, len(sc.shapes)+2)
	for _, s := range sc.shapes {
		commands = append(commands, DrawCommand{
			Op:        opForKind(s.Kind),
			ObjectID:  s.ID,
			Points:    s.TransformedPoints(),
			Color:     s.Color.Hex(),
			Thickness: s.Thickness,
			Selected:  s.Selected,
		})

		if s.Selected {
			bounds := s.BoundingBox()
			commands = append(commands, DrawCommand{
				Op:        OpHandles,
				ObjectID:  s.ID,
				Points:    []Vec2{s.TransformedCentroid(), bounds.Min(), bounds.Max()},
				Color:     handleColor,
				Thickness: handleSize,
			})
		}
	}

	if len(sc.pending) > 0 {
		commands = append(commands, DrawCommand{
			Op:        OpPending,
			Points:    sc.Pending(),
			Color:     pendingColor,
			Thickness: pendingSize,
		})
	}

	return commands
}

func opForKind(k Kind) string {
	switch k {
	case KindPoint:
		return OpPoint
	case KindLine:
		return OpLine
	default:
		return OpLoop
	}
}

// FrameToJSON serializes a frame to JSON.
func FrameToJSON(f Frame) (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "{}", err
	}
	return string(data), nil
}
