//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/grafkom/editor/internal/engine"
)

var ed *engine.Editor

func main() {
	width, height := 1200.0, 800.0
	if canvas := js.Global().Get("grafkomCanvasSize"); canvas.Type() == js.TypeObject {
		width = canvas.Get("width").Float()
		height = canvas.Get("height").Float()
	}
	ed = engine.NewEditor(width, height)

	// Create the editor API object
	api := js.Global().Get("Object").New()

	// --- Commands (frontend → editor) ---
	api.Set("handleEvent", js.FuncOf(handleEvent))
	api.Set("pointerDown", js.FuncOf(pointerDown))
	api.Set("pointerMove", js.FuncOf(pointerMove))
	api.Set("pointerUp", js.FuncOf(pointerUp))
	api.Set("keyDown", js.FuncOf(keyDown))
	api.Set("loadSampleScene", js.FuncOf(loadSampleScene))
	api.Set("clear", js.FuncOf(clearScene))

	// --- Queries (frontend ← editor) ---
	api.Set("render", js.FuncOf(render))
	api.Set("changed", js.FuncOf(changed))
	api.Set("getTool", js.FuncOf(getTool))

	// Register on global scope
	js.Global().Set("grafkomEditor", api)

	// Signal that WASM is ready
	js.Global().Set("grafkomWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

func handleEvent(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing event JSON"})
	}

	ev, err := engine.ParseEvent([]byte(args[0].String()))
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return apply(ev)
}

func pointerDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	button := engine.ButtonPrimary
	if len(args) > 2 {
		button = args[2].Int()
	}
	return apply(engine.Event{Type: engine.EventPointerDown, X: args[0].Float(), Y: args[1].Float(), Button: button})
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	return apply(engine.Event{Type: engine.EventPointerMove, X: args[0].Float(), Y: args[1].Float()})
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	button := engine.ButtonPrimary
	if len(args) > 0 {
		button = args[0].Int()
	}
	return apply(engine.Event{Type: engine.EventPointerUp, Button: button})
}

func keyDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	return apply(engine.Event{Type: engine.EventKeyDown, Key: engine.Key(args[0].String())})
}

func loadSampleScene(this js.Value, args []js.Value) interface{} {
	ed.LoadSampleScene()
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func clearScene(this js.Value, args []js.Value) interface{} {
	ed.Clear()
	return nil
}

func apply(ev engine.Event) interface{} {
	if err := ed.HandleEvent(ev); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Render())
}

func changed(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Changed())
}

func getTool(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(string(ed.Tool()))
}
