package engine

import "math"

// Tool is the active editor tool.
type Tool string

const (
	ToolSelect    Tool = "select"
	ToolPoint     Tool = "point"
	ToolLine      Tool = "line"
	ToolRectangle Tool = "rectangle"
	ToolEllipse   Tool = "ellipse"
)

// pointsNeeded returns how many clicks complete a primitive for the tool.
func (t Tool) pointsNeeded() int {
	switch t {
	case ToolPoint:
		return 1
	case ToolLine, ToolRectangle, ToolEllipse:
		return 2
	default:
		return 0
	}
}

// ellipseSegments is the vertex count of the polygon approximating an ellipse.
const ellipseSegments = 32

// Scene is the ordered shape collection plus selection and in-progress
// creation points. Draw order is creation order.
type Scene struct {
	shapes   []*Shape
	selected *Shape
	pending  []Vec2
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Shapes returns the shapes in draw order.
func (sc *Scene) Shapes() []*Shape {
	return sc.shapes
}

// Selected returns the selected shape or nil.
func (sc *Scene) Selected() *Shape {
	return sc.selected
}

// Pending returns a copy of the creation points collected so far.
func (sc *Scene) Pending() []Vec2 {
	out := make([]Vec2, len(sc.pending))
	copy(out, sc.pending)
	return out
}

// BeginOrCompletePrimitive records a creation click for tool. When the tool has
// enough points the shape is built, appended and returned; otherwise nil.
func (sc *Scene) BeginOrCompletePrimitive(tool Tool, p Vec2, color Color, thickness float64) *Shape {
	need := tool.pointsNeeded()
	if need == 0 {
		return nil
	}

	sc.pending = append(sc.pending, p)
	if len(sc.pending) < need {
		return nil
	}

	shape := buildShape(tool, sc.pending, color, thickness)
	sc.shapes = append(sc.shapes, shape)
	sc.pending = nil
	return shape
}

// Add appends an already built shape.
func (sc *Scene) Add(s *Shape) {
	sc.shapes = append(sc.shapes, s)
}

// ClearPending drops any half-authored primitive.
func (sc *Scene) ClearPending() {
	sc.pending = nil
}

// Select clears the current selection and selects the topmost shape under p.
// It reports whether a shape was hit.
func (sc *Scene) Select(p Vec2) bool {
	sc.Deselect()

	hit := PickTopmost(sc.shapes, p)
	if hit == nil {
		return false
	}
	hit.Selected = true
	sc.selected = hit
	return true
}

// Deselect clears the selection.
func (sc *Scene) Deselect() {
	if sc.selected != nil {
		sc.selected.Selected = false
		sc.selected = nil
	}
}

// Clear removes every shape and the selection.
func (sc *Scene) Clear() {
	sc.shapes = nil
	sc.selected = nil
	sc.pending = nil
}

// buildShape expands the clicked points into the primitive's geometry.
func buildShape(tool Tool, pts []Vec2, color Color, thickness float64) *Shape {
	switch tool {
	case ToolPoint:
		return NewShape(KindPoint, pts[:1], color, thickness)
	case ToolLine:
		return NewShape(KindLine, pts[:2], color, thickness)
	case ToolRectangle:
		return NewShape(KindRectangle, RectangleCorners(pts[0], pts[1]), color, thickness)
	default:
		return NewShape(KindEllipse, EllipsePolygon(pts[0], pts[1]), color, thickness)
	}
}

// RectangleCorners expands two opposite corners into four, counter-clockwise
// from a.
func RectangleCorners(a, b Vec2) []Vec2 {
	return []Vec2{
		{X: a.X, Y: a.Y},
		{X: b.X, Y: a.Y},
		{X: b.X, Y: b.Y},
		{X: a.X, Y: b.Y},
	}
}

// EllipsePolygon samples the ellipse inscribed in the box spanned by a and b.
func EllipsePolygon(a, b Vec2) []Vec2 {
	cx := (a.X + b.X) / 2
	cy := (a.Y + b.Y) / 2
	rx := math.Abs(b.X-a.X) / 2
	ry := math.Abs(b.Y-a.Y) / 2

	pts := make([]Vec2, ellipseSegments)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = Vec2{X: cx + rx*math.Cos(angle), Y: cy + ry*math.Sin(angle)}
	}
	return pts
}
