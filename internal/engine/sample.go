package engine

// NewSampleScene builds a demo scene with one of each primitive.
func NewSampleScene() *Scene {
	sc := NewScene()

	sc.Add(NewShape(KindRectangle,
		RectangleCorners(Vec2{X: 200, Y: 450}, Vec2{X: 400, Y: 600}),
		Palette[1], 2))

	sc.Add(NewShape(KindEllipse,
		EllipsePolygon(Vec2{X: 520, Y: 280}, Vec2{X: 760, Y: 440}),
		Palette[6], 2))

	sc.Add(NewShape(KindLine, []Vec2{{X: 850, Y: 200}, {X: 1050, Y: 350}}, Palette[4], 3))

	sc.Add(NewShape(KindPoint, []Vec2{{X: 600, Y: 650}}, Palette[0], 4))

	tilted := NewShape(KindRectangle,
		RectangleCorners(Vec2{X: 150, Y: 150}, Vec2{X: 330, Y: 250}),
		Palette[2], 1)
	RotateBy(tilted, 30)
	sc.Add(tilted)

	return sc
}

// LoadSampleScene replaces the editor's scene with the demo scene.
func (e *Editor) LoadSampleScene() {
	e.scene = NewSampleScene()
	e.gesture.PointerUp()
	e.dirty = true
}
