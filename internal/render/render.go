// Package render rasterizes editor frames with gogpu/gg.
package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/grafkom/editor/internal/engine"
)

// Background is the editor canvas color.
var Background = gg.RGB(0.1, 0.1, 0.15)

// Rasterize draws f onto a new context sized to the frame. The caller owns
// the returned context and must Close it.
func Rasterize(f engine.Frame) *gg.Context {
	dc := gg.NewContext(int(f.Width), int(f.Height))
	dc.ClearWithColor(Background)

	// Frame points are Y-up.
	dc.InvertY()

	for _, cmd := range f.Commands {
		drawCommand(dc, cmd)
	}
	return dc
}

// PNG writes f as a PNG image.
func PNG(w io.Writer, f engine.Frame) error {
	dc := Rasterize(f)
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawCommand(dc *gg.Context, cmd engine.DrawCommand) {
	dc.SetHexColor(cmd.Color)
	dc.SetLineWidth(cmd.Thickness)

	switch cmd.Op {
	case engine.OpPoint:
		// Point thickness is a radius, matching a point size of 2*thickness.
		dots(dc, cmd.Points, cmd.Thickness)

	case engine.OpHandles, engine.OpPending:
		dots(dc, cmd.Points, cmd.Thickness/2)

	case engine.OpLine:
		for i := 0; i+1 < len(cmd.Points); i += 2 {
			a, b := cmd.Points[i], cmd.Points[i+1]
			dc.DrawLine(a.X, a.Y, b.X, b.Y)
		}
		_ = dc.Stroke()

	case engine.OpLoop:
		if len(cmd.Points) == 0 {
			return
		}
		dc.MoveTo(cmd.Points[0].X, cmd.Points[0].Y)
		for _, p := range cmd.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		_ = dc.Stroke()
	}
}

func dots(dc *gg.Context, pts []engine.Vec2, r float64) {
	for _, p := range pts {
		dc.DrawPoint(p.X, p.Y, r)
		_ = dc.Fill()
	}
}
