package engine

import (
	"fmt"
)

// Thickness bounds for the +/- keys.
const (
	MinThickness = 1.0
	MaxThickness = 10.0
)

// Palette is the color set bound to keys 1-8.
var Palette = [8]Color{
	{1, 1, 1},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
	{0.5, 0.5, 0.5},
}

// Editor is one editing session: it owns the scene, the gesture state and the
// current tool/color/thickness, and is mutated only by HandleEvent.
type Editor struct {
	scene   *Scene
	gesture GestureController

	tool      Tool
	color     Color
	thickness float64

	// Viewport size, used to flip window Y into the Y-up editor space.
	width  float64
	height float64

	// Dirty flag - something visible changed since the last frame
	dirty bool
}

// NewEditor creates an editor with an empty scene for a width x height viewport.
func NewEditor(width, height float64) *Editor {
	return &Editor{
		scene:     NewScene(),
		tool:      ToolSelect,
		color:     Palette[0],
		thickness: MinThickness,
		width:     width,
		height:    height,
		dirty:     true,
	}
}

// --- Commands (front end → editor) ---

// HandleEvent applies one input event.
func (e *Editor) HandleEvent(ev Event) error {
	switch ev.Type {
	case EventPointerDown:
		if ev.Button == ButtonPrimary {
			e.pointerDown(e.toScene(ev.X, ev.Y))
		}
	case EventPointerMove:
		if e.gesture.PointerMove(e.scene.Selected(), e.toScene(ev.X, ev.Y)) {
			e.dirty = true
		}
	case EventPointerUp:
		if ev.Button == ButtonPrimary {
			e.gesture.PointerUp()
		}
	case EventKeyDown:
		e.keyDown(ev.Key)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return nil
}

// toScene flips window coordinates (Y down) into editor space (Y up).
func (e *Editor) toScene(x, y float64) Vec2 {
	return Vec2{X: x, Y: e.height - y}
}

func (e *Editor) pointerDown(p Vec2) {
	if e.tool == ToolSelect {
		e.scene.Select(p)
		e.gesture.PointerDown(e.tool, e.scene.Selected(), p)
		e.dirty = true
		return
	}

	e.scene.BeginOrCompletePrimitive(e.tool, p, e.color, e.thickness)
	e.dirty = true
}

func (e *Editor) keyDown(k Key) {
	if idx, ok := k.paletteIndex(); ok {
		e.color = Palette[idx]
		e.dirty = true
		return
	}

	sel := e.scene.Selected()
	switch k {
	case KeyPoint:
		e.SetTool(ToolPoint)
	case KeyLine:
		e.SetTool(ToolLine)
	case KeyRectangle:
		e.SetTool(ToolRectangle)
	case KeyEllipse:
		e.SetTool(ToolEllipse)
	case KeySelect:
		e.SetTool(ToolSelect)
	case KeyThicker, KeyEquals:
		e.thickness = min(MaxThickness, e.thickness+1)
	case KeyThinner:
		e.thickness = max(MinThickness, e.thickness-1)
	case KeyLeft:
		ApplyMove(sel, Vec2{X: -NudgeDistance})
	case KeyRight:
		ApplyMove(sel, Vec2{X: NudgeDistance})
	case KeyUp:
		ApplyMove(sel, Vec2{Y: NudgeDistance})
	case KeyDown:
		ApplyMove(sel, Vec2{Y: -NudgeDistance})
	case KeyRotateCCW:
		RotateBy(sel, NudgeDegrees)
	case KeyRotateCW:
		RotateBy(sel, -NudgeDegrees)
	case KeyScaleUp:
		ScaleBy(sel, NudgeGrow)
	case KeyScaleDown:
		ScaleBy(sel, NudgeShrink)
	case KeyClear:
		e.Clear()
	default:
		return
	}
	e.dirty = true
}

// SetTool switches tools, dropping any half-authored primitive.
func (e *Editor) SetTool(t Tool) {
	if e.tool != t {
		e.scene.ClearPending()
	}
	e.tool = t
	e.dirty = true
}

// Clear empties the scene. There is no undo.
func (e *Editor) Clear() {
	e.scene.Clear()
	e.gesture.PointerUp()
	e.dirty = true
}

// --- Queries (front end ← editor) ---

// Frame compiles the current state for a renderer and clears the dirty flag.
func (e *Editor) Frame() Frame {
	f := Frame{
		Width:     e.width,
		Height:    e.height,
		Tool:      e.tool,
		Color:     e.color.Hex(),
		Thickness: e.thickness,
		Commands:  CompileDrawCommands(e.scene),
	}
	if sel := e.scene.Selected(); sel != nil {
		f.Selected = sel.Kind
	}
	e.dirty = false
	return f
}

// Render returns the current frame as JSON.
func (e *Editor) Render() string {
	result, _ := FrameToJSON(e.Frame())
	return result
}

// Changed reports whether anything visible changed since the last frame.
func (e *Editor) Changed() bool {
	return e.dirty
}

// Scene returns the editor's scene.
func (e *Editor) Scene() *Scene {
	return e.scene
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool {
	return e.tool
}

// Color returns the color new shapes are created with.
func (e *Editor) Color() Color {
	return e.color
}

// Thickness returns the thickness new shapes are created with.
func (e *Editor) Thickness() float64 {
	return e.thickness
}

// Gesture returns the drag in progress, if any.
func (e *Editor) Gesture() (Gesture, bool) {
	return e.gesture.Dragging()
}
