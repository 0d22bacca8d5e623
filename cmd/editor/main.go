// Command editor runs the 2D shape editor in a desktop window.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/grafkom/editor/internal/config"
	"github.com/grafkom/editor/internal/engine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()})))

	ed := engine.NewEditor(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))
	if cfg.SeedSample {
		ed.LoadSampleScene()
	}

	printInstructions()

	g := newGame(ed, cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("2D Editor with Transformations")
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("run editor", "error", err)
		os.Exit(1)
	}
}

func printInstructions() {
	fmt.Println("=== INSTRUCTIONS ===")
	fmt.Println("DRAWING: P(Point) L(Line) R(Rectangle) E(Ellipse)")
	fmt.Println("SELECT: S | CLEAR: C")
	fmt.Println("COLORS: 1-8 | THICKNESS: +/-")
	fmt.Println("MOUSE DRAG:")
	fmt.Println("  - Drag center: Move")
	fmt.Println("  - Drag corner: Scale")
	fmt.Println("  - Drag elsewhere: Rotate")
	fmt.Println("KEYBOARD:")
	fmt.Println("  Arrows: Move | Q/W: Rotate | A/Z: Scale")
}
