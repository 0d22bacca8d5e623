package engine

import (
	"fmt"

	"github.com/grafkom/editor/internal/typeid"
)

// Kind identifies the primitive a shape was authored as.
type Kind string

const (
	KindPoint     Kind = "point"
	KindLine      Kind = "line"
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
)

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// Transform is a shape's accumulated transform state.
// Rotation is in degrees and is never normalized.
type Transform struct {
	Offset   Vec2    `json:"offset"`
	Rotation float64 `json:"rotation"`
	Scale    Vec2    `json:"scale"`
}

// IdentityTransform is the state of a freshly created shape.
func IdentityTransform() Transform {
	return Transform{Scale: Vec2{X: 1, Y: 1}}
}

// Shape is an authored primitive plus its transform state.
// Transformed points are always derived from the original points.
type Shape struct {
	ID        string
	Kind      Kind
	Color     Color
	Thickness float64
	Selected  bool
	Transform Transform

	original    []Vec2
	transformed []Vec2
}

// NewShape creates a shape from its authored geometry. The points are copied.
func NewShape(kind Kind, points []Vec2, color Color, thickness float64) *Shape {
	original := make([]Vec2, len(points))
	copy(original, points)

	s := &Shape{
		ID:          typeid.NewShapeID(),
		Kind:        kind,
		Color:       color,
		Thickness:   thickness,
		Transform:   IdentityTransform(),
		original:    original,
		transformed: make([]Vec2, len(points)),
	}
	s.Recompute()
	return s
}

// OriginalPoints returns a copy of the authored geometry.
func (s *Shape) OriginalPoints() []Vec2 {
	out := make([]Vec2, len(s.original))
	copy(out, s.original)
	return out
}

// TransformedPoints returns a copy of the derived geometry.
func (s *Shape) TransformedPoints() []Vec2 {
	out := make([]Vec2, len(s.transformed))
	copy(out, s.transformed)
	return out
}

// Matrix composes Translate(offset) * RotateAbout(rotation, centroid) * Scale.
// Scale is about the origin and the rotation pivot is the centroid of the
// original (unscaled) points.
func (s *Shape) Matrix() Matrix2D {
	c := s.Centroid()
	t := s.Transform
	return Translate(t.Offset.X, t.Offset.Y).
		Multiply(RotateAbout(t.Rotation, c.X, c.Y)).
		Multiply(Scale(t.Scale.X, t.Scale.Y))
}

// Recompute rebuilds the transformed points from the original points.
func (s *Shape) Recompute() {
	m := s.Matrix()
	if m.IsIdentity() {
		copy(s.transformed, s.original)
		return
	}
	for i, p := range s.original {
		s.transformed[i] = m.TransformPoint(p)
	}
}

// Centroid is the mean of the original points.
func (s *Shape) Centroid() Vec2 {
	return centroid(s.original)
}

// TransformedCentroid is the mean of the transformed points.
func (s *Shape) TransformedCentroid() Vec2 {
	return centroid(s.transformed)
}

// BoundingBox is the axis-aligned box around the transformed points.
func (s *Shape) BoundingBox() Rect {
	return RectFromPoints(s.transformed)
}

// ContainsPoint is a coarse bounding-box test, edges included.
func (s *Shape) ContainsPoint(p Vec2) bool {
	return s.BoundingBox().Contains(p.X, p.Y)
}
