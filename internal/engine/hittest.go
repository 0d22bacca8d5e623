package engine

// GestureMode is the transform a drag applies to the selected shape.
type GestureMode int

const (
	ModeMove GestureMode = iota
	ModeScale
	ModeRotate
)

func (m GestureMode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeScale:
		return "scale"
	case ModeRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// handleRadius is how close a pointer must be to a handle to grab it.
const handleRadius = 10.0

// PickTopmost returns the most recently created shape whose bounding box
// contains p, or nil.
func PickTopmost(shapes []*Shape, p Vec2) *Shape {
	// Traverse in reverse order (front to back) to get topmost hit
	for i := len(shapes) - 1; i >= 0; i-- {
		if shapes[i].ContainsPoint(p) {
			return shapes[i]
		}
	}
	return nil
}

// ClassifyGestureAnchor decides what a drag starting at p does to s:
// near the transformed centroid moves, near either diagonal corner of the
// bounding box scales, anywhere else rotates.
func ClassifyGestureAnchor(s *Shape, p Vec2) GestureMode {
	if p.Dist(s.TransformedCentroid()) < handleRadius {
		return ModeMove
	}

	bounds := s.BoundingBox()
	if p.Dist(bounds.Min()) < handleRadius || p.Dist(bounds.Max()) < handleRadius {
		return ModeScale
	}

	return ModeRotate
}
