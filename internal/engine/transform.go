package engine

import "math"

// Keyboard nudge increments.
const (
	NudgeDistance = 10.0
	NudgeDegrees  = 15.0
	NudgeGrow     = 1.1
	NudgeShrink   = 0.9
)

// scaleSensitivity converts horizontal drag distance to a scale factor.
const scaleSensitivity = 0.01

// ApplyMove adds delta to the shape's translation offset.
func ApplyMove(s *Shape, delta Vec2) {
	if s == nil {
		return
	}
	s.Transform.Offset = s.Transform.Offset.Add(delta)
	s.Recompute()
}

// ApplyRotate rotates the shape by the angle swept from prev to cur as seen
// from the shape's transformed centroid. Counter-clockwise is positive.
func ApplyRotate(s *Shape, prev, cur Vec2) {
	if s == nil {
		return
	}
	c := s.TransformedCentroid()
	swept := math.Atan2(cur.Y-c.Y, cur.X-c.X) - math.Atan2(prev.Y-c.Y, prev.X-c.X)
	RotateBy(s, swept*180/math.Pi)
}

// ApplyScale scales the shape uniformly by 1 + dx*0.01. The factor is not
// clamped, so a large negative dx mirrors the shape.
func ApplyScale(s *Shape, dx float64) {
	ScaleBy(s, 1+dx*scaleSensitivity)
}

// RotateBy adds degrees to the shape's rotation.
func RotateBy(s *Shape, degrees float64) {
	if s == nil {
		return
	}
	s.Transform.Rotation += degrees
	s.Recompute()
}

// ScaleBy multiplies both scale components by f.
func ScaleBy(s *Shape, f float64) {
	if s == nil {
		return
	}
	s.Transform.Scale.X *= f
	s.Transform.Scale.Y *= f
	s.Recompute()
}
