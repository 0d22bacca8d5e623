package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/grafkom/editor/internal/engine"
)

var keyBindings = []struct {
	key ebiten.Key
	to  engine.Key
}{
	{ebiten.KeyP, engine.KeyPoint},
	{ebiten.KeyL, engine.KeyLine},
	{ebiten.KeyR, engine.KeyRectangle},
	{ebiten.KeyE, engine.KeyEllipse},
	{ebiten.KeyS, engine.KeySelect},
	{ebiten.KeyC, engine.KeyClear},

	{ebiten.KeyDigit1, "1"},
	{ebiten.KeyDigit2, "2"},
	{ebiten.KeyDigit3, "3"},
	{ebiten.KeyDigit4, "4"},
	{ebiten.KeyDigit5, "5"},
	{ebiten.KeyDigit6, "6"},
	{ebiten.KeyDigit7, "7"},
	{ebiten.KeyDigit8, "8"},

	{ebiten.KeyEqual, engine.KeyEquals},
	{ebiten.KeyNumpadAdd, engine.KeyThicker},
	{ebiten.KeyMinus, engine.KeyThinner},
	{ebiten.KeyNumpadSubtract, engine.KeyThinner},

	{ebiten.KeyArrowLeft, engine.KeyLeft},
	{ebiten.KeyArrowRight, engine.KeyRight},
	{ebiten.KeyArrowUp, engine.KeyUp},
	{ebiten.KeyArrowDown, engine.KeyDown},
	{ebiten.KeyQ, engine.KeyRotateCCW},
	{ebiten.KeyW, engine.KeyRotateCW},
	{ebiten.KeyA, engine.KeyScaleUp},
	{ebiten.KeyZ, engine.KeyScaleDown},
}

// pressedKeys returns the editor keys pressed since the last tick.
func pressedKeys() []engine.Key {
	var out []engine.Key
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			out = append(out, b.to)
		}
	}
	return out
}
