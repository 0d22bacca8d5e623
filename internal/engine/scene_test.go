package engine

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_Scene_PrimitiveClickCounts(t *testing.T) {
	testCases := map[Tool]struct {
		clicks []Vec2
		kind   Kind
		points int
	}{
		ToolPoint:     {clicks: []Vec2{{5, 5}}, kind: KindPoint, points: 1},
		ToolLine:      {clicks: []Vec2{{0, 0}, {10, 10}}, kind: KindLine, points: 2},
		ToolRectangle: {clicks: []Vec2{{0, 0}, {10, 10}}, kind: KindRectangle, points: 4},
		ToolEllipse:   {clicks: []Vec2{{0, 0}, {10, 10}}, kind: KindEllipse, points: ellipseSegments},
	}

	for tool, tc := range testCases {
		t.Run(string(tool), func(t *testing.T) {
			sc := NewScene()

			var got *Shape
			for i, p := range tc.clicks {
				got = sc.BeginOrCompletePrimitive(tool, p, Palette[1], 3)
				last := i == len(tc.clicks)-1
				if !last && got != nil {
					t.Fatalf("click %d completed a shape early", i)
				}
				if !last && len(sc.Pending()) != i+1 {
					t.Fatalf("pending = %v after click %d", sc.Pending(), i)
				}
			}

			if got == nil {
				t.Fatal("final click did not complete a shape")
			}
			if got.Kind != tc.kind || len(got.OriginalPoints()) != tc.points {
				t.Errorf("got %s with %d points, want %s with %d", got.Kind, len(got.OriginalPoints()), tc.kind, tc.points)
			}
			if got.Color != Palette[1] || got.Thickness != 3 {
				t.Errorf("style = %v/%v, want %v/3", got.Color, got.Thickness, Palette[1])
			}
			if len(sc.Pending()) != 0 {
				t.Errorf("pending = %v, want empty", sc.Pending())
			}
			if len(sc.Shapes()) != 1 || sc.Shapes()[0] != got {
				t.Errorf("shapes = %v, want [%v]", sc.Shapes(), got)
			}
		})
	}
}

func Test_Scene_SelectToolDoesNotCreate(t *testing.T) {
	sc := NewScene()
	if got := sc.BeginOrCompletePrimitive(ToolSelect, Vec2{1, 1}, Palette[0], 1); got != nil {
		t.Errorf("select tool created %v", got)
	}
	if len(sc.Pending()) != 0 {
		t.Errorf("pending = %v, want empty", sc.Pending())
	}
}

func Test_Scene_DegenerateRectangle(t *testing.T) {
	sc := NewScene()
	sc.BeginOrCompletePrimitive(ToolRectangle, Vec2{7, 7}, Palette[0], 1)
	s := sc.BeginOrCompletePrimitive(ToolRectangle, Vec2{7, 7}, Palette[0], 1)

	if s == nil {
		t.Fatal("zero-area rectangle was rejected")
	}
	if got := s.BoundingBox(); got != (Rect{X: 7, Y: 7}) {
		t.Errorf("BoundingBox() = %v, want zero-size rect at (7,7)", got)
	}
}

func Test_EllipsePolygon(t *testing.T) {
	pts := EllipsePolygon(Vec2{100, 100}, Vec2{300, 200})

	if len(pts) != 32 {
		t.Fatalf("len = %d, want 32", len(pts))
	}
	if diff := cmp.Diff(Vec2{300, 150}, pts[0], approx); diff != "" {
		t.Error("first vertex did not match:", diff)
	}
	if diff := cmp.Diff(Vec2{200, 200}, pts[8], approx); diff != "" {
		t.Error("quarter vertex did not match:", diff)
	}
	for i, p := range pts {
		dx := (p.X - 200) / 100
		dy := (p.Y - 150) / 50
		if math.Abs(dx*dx+dy*dy-1) > 1e-9 {
			t.Errorf("vertex %d %v is off the ellipse", i, p)
		}
	}
}

func Test_Scene_Selection(t *testing.T) {
	sc := NewScene()
	a := NewShape(KindRectangle, RectangleCorners(Vec2{0, 0}, Vec2{100, 100}), Palette[0], 1)
	b := NewShape(KindRectangle, RectangleCorners(Vec2{50, 50}, Vec2{150, 150}), Palette[1], 1)
	sc.Add(a)
	sc.Add(b)

	if !sc.Select(Vec2{75, 75}) || sc.Selected() != b {
		t.Fatalf("Select overlap picked %v, want b", sc.Selected())
	}
	if !b.Selected || a.Selected {
		t.Errorf("flags a=%v b=%v, want only b", a.Selected, b.Selected)
	}

	if !sc.Select(Vec2{10, 10}) || sc.Selected() != a {
		t.Fatalf("Select picked %v, want a", sc.Selected())
	}
	if b.Selected {
		t.Error("previous selection kept its flag")
	}

	if sc.Select(Vec2{500, 500}) {
		t.Error("Select on empty space reported a hit")
	}
	if sc.Selected() != nil || a.Selected {
		t.Errorf("miss left selection %v", sc.Selected())
	}
}

func Test_Scene_Clear(t *testing.T) {
	sc := NewSampleScene()
	sc.Select(sc.Shapes()[0].TransformedCentroid())
	sc.BeginOrCompletePrimitive(ToolLine, Vec2{1, 1}, Palette[0], 1)

	sc.Clear()

	if len(sc.Shapes()) != 0 || sc.Selected() != nil || len(sc.Pending()) != 0 {
		t.Errorf("Clear left shapes=%d selected=%v pending=%v", len(sc.Shapes()), sc.Selected(), sc.Pending())
	}
}

func Test_NewSampleScene(t *testing.T) {
	sc := NewSampleScene()

	var kinds []Kind
	for _, s := range sc.Shapes() {
		kinds = append(kinds, s.Kind)
	}
	want := []Kind{KindRectangle, KindEllipse, KindLine, KindPoint, KindRectangle}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Error("sample kinds did not match:", diff)
	}
	if got := sc.Shapes()[4].Transform.Rotation; got != 30 {
		t.Errorf("tilted rotation = %v, want 30", got)
	}
}
