package main

import (
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/grafkom/editor/internal/engine"
)

var background = color.RGBA{R: 26, G: 26, B: 38, A: 255}

// game adapts the editor to ebiten's Update/Draw loop. Input is polled in
// Update and the frame is compiled once per Draw.
type game struct {
	ed     *engine.Editor
	width  int
	height int

	lastX, lastY int
	frame        engine.Frame
}

func newGame(ed *engine.Editor, width, height int) *game {
	return &game{ed: ed, width: width, height: height, frame: ed.Frame()}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, k := range pressedKeys() {
		g.dispatch(engine.Event{Type: engine.EventKeyDown, Key: k})
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dispatch(engine.Event{Type: engine.EventPointerDown, X: x, Y: y, Button: engine.ButtonPrimary})
	}
	if mx != g.lastX || my != g.lastY {
		g.dispatch(engine.Event{Type: engine.EventPointerMove, X: x, Y: y})
		g.lastX, g.lastY = mx, my
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dispatch(engine.Event{Type: engine.EventPointerUp, X: x, Y: y, Button: engine.ButtonPrimary})
	}

	if g.ed.Changed() {
		g.frame = g.ed.Frame()
	}
	return nil
}

func (g *game) dispatch(ev engine.Event) {
	if err := g.ed.HandleEvent(ev); err != nil {
		slog.Warn("event rejected", "error", err, "type", ev.Type)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, cmd := range g.frame.Commands {
		g.drawCommand(screen, cmd)
	}

	ebitenutil.DebugPrintAt(screen, "Tools: P(Point) L(Line) R(Rect) E(Ellipse) S(Select)", 10, 10)
	ebitenutil.DebugPrintAt(screen, "Transform: Drag center(move) corner(scale) elsewhere(rotate)", 10, 30)
	ebitenutil.DebugPrintAt(screen, g.frame.Status()+"  Tool: "+string(g.frame.Tool), 10, 50)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// screenPoint flips an editor point (Y up) into window space (Y down).
func (g *game) screenPoint(p engine.Vec2) (float32, float32) {
	return float32(p.X), float32(float64(g.height) - p.Y)
}

func (g *game) drawCommand(dst *ebiten.Image, cmd engine.DrawCommand) {
	clr := gg.Hex(cmd.Color).Color()
	width := float32(cmd.Thickness)

	switch cmd.Op {
	case engine.OpPoint:
		for _, p := range cmd.Points {
			x, y := g.screenPoint(p)
			vector.DrawFilledCircle(dst, x, y, width, clr, true)
		}

	case engine.OpHandles, engine.OpPending:
		for _, p := range cmd.Points {
			x, y := g.screenPoint(p)
			vector.DrawFilledCircle(dst, x, y, width/2, clr, true)
		}

	case engine.OpLine:
		for i := 0; i+1 < len(cmd.Points); i += 2 {
			x0, y0 := g.screenPoint(cmd.Points[i])
			x1, y1 := g.screenPoint(cmd.Points[i+1])
			vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
		}

	case engine.OpLoop:
		n := len(cmd.Points)
		for i := 0; i < n; i++ {
			x0, y0 := g.screenPoint(cmd.Points[i])
			x1, y1 := g.screenPoint(cmd.Points[(i+1)%n])
			vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
		}
	}
}
