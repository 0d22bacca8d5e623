package engine

import "testing"

func Test_PickTopmost(t *testing.T) {
	a := NewShape(KindRectangle, RectangleCorners(Vec2{0, 0}, Vec2{100, 100}), Palette[0], 1)
	b := NewShape(KindRectangle, RectangleCorners(Vec2{50, 50}, Vec2{150, 150}), Palette[1], 1)
	shapes := []*Shape{a, b}

	testCases := map[string]struct {
		p    Vec2
		want *Shape
	}{
		"overlap picks newest": {p: Vec2{75, 75}, want: b},
		"only first":           {p: Vec2{10, 10}, want: a},
		"only second":          {p: Vec2{140, 140}, want: b},
		"shared edge":          {p: Vec2{50, 100}, want: b},
		"miss":                 {p: Vec2{-1, 200}, want: nil},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := PickTopmost(shapes, tc.p); got != tc.want {
				t.Errorf("PickTopmost(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}

	if got := PickTopmost(nil, Vec2{}); got != nil {
		t.Errorf("PickTopmost on empty scene = %v, want nil", got)
	}
}

func Test_ClassifyGestureAnchor(t *testing.T) {
	s := testRect()

	testCases := map[string]struct {
		p    Vec2
		want GestureMode
	}{
		"centroid":         {p: Vec2{50, 25}, want: ModeMove},
		"near centroid":    {p: Vec2{55, 25}, want: ModeMove},
		"near min corner":  {p: Vec2{3, 4}, want: ModeScale},
		"near max corner":  {p: Vec2{97, 46}, want: ModeScale},
		"radius boundary":  {p: Vec2{60, 25}, want: ModeRotate},
		"interior":         {p: Vec2{20, 40}, want: ModeRotate},
		"off diagonal":     {p: Vec2{100, 0}, want: ModeRotate},
		"outside the box":  {p: Vec2{300, 300}, want: ModeRotate},
		"exact max corner": {p: Vec2{100, 50}, want: ModeScale},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := ClassifyGestureAnchor(s, tc.p); got != tc.want {
				t.Errorf("ClassifyGestureAnchor(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func Test_ClassifyGestureAnchor_FollowsTransform(t *testing.T) {
	s := testRect()
	ApplyMove(s, Vec2{200, 100})

	if got := ClassifyGestureAnchor(s, Vec2{250, 125}); got != ModeMove {
		t.Errorf("moved centroid classified as %v, want move", got)
	}
	if got := ClassifyGestureAnchor(s, Vec2{50, 25}); got != ModeRotate {
		t.Errorf("stale centroid classified as %v, want rotate", got)
	}
	if got := ClassifyGestureAnchor(s, Vec2{200, 100}); got != ModeScale {
		t.Errorf("moved min corner classified as %v, want scale", got)
	}
}
