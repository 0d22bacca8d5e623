package engine

// Gesture is an in-progress drag. The mode and anchor only exist together.
type Gesture struct {
	Mode GestureMode
	// Anchor is the last pointer position seen by the drag.
	Anchor Vec2
}

// GestureController turns pointer events into incremental transforms on the
// selected shape. It is idle while active is nil.
type GestureController struct {
	active *Gesture
}

// Dragging reports the current drag, if any.
func (g *GestureController) Dragging() (Gesture, bool) {
	if g.active == nil {
		return Gesture{}, false
	}
	return *g.active, true
}

// PointerDown starts a drag when the select tool is active and a shape is
// selected. Otherwise the controller stays idle.
func (g *GestureController) PointerDown(tool Tool, selected *Shape, p Vec2) {
	if tool != ToolSelect || selected == nil {
		g.active = nil
		return
	}
	g.active = &Gesture{
		Mode:   ClassifyGestureAnchor(selected, p),
		Anchor: p,
	}
}

// PointerMove applies the delta since the previous pointer position.
// It reports whether the shape changed.
func (g *GestureController) PointerMove(selected *Shape, p Vec2) bool {
	if g.active == nil {
		return false
	}

	prev := g.active.Anchor
	g.active.Anchor = p
	if selected == nil {
		return false
	}

	switch g.active.Mode {
	case ModeMove:
		ApplyMove(selected, p.Sub(prev))
	case ModeRotate:
		ApplyRotate(selected, prev, p)
	case ModeScale:
		ApplyScale(selected, p.X-prev.X)
	}
	return true
}

// PointerUp ends any drag.
func (g *GestureController) PointerUp() {
	g.active = nil
}
