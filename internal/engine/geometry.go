package engine

import "math"

// Vec2 is a point or displacement in the editor's Y-up coordinate space.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromPoints returns the smallest rect enclosing pts.
// An empty slice yields the zero rect.
func RectFromPoints(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Contains checks if a point is inside the rect, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Min returns the (minX, minY) corner.
func (r Rect) Min() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Max returns the (maxX, maxY) corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Center returns the center point of the rect.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// centroid is the arithmetic mean of pts, or the origin for none.
func centroid(pts []Vec2) Vec2 {
	if len(pts) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range pts {
		sum = sum.Add(p)
	}
	n := float64(len(pts))
	return Vec2{X: sum.X / n, Y: sum.Y / n}
}
