package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func Test_CompileDrawCommands(t *testing.T) {
	sc := NewScene()
	rect := testRect()
	line := NewShape(KindLine, []Vec2{{0, 0}, {10, 10}}, Palette[1], 2)
	sc.Add(rect)
	sc.Add(line)
	sc.Select(Vec2{50, 25})
	sc.BeginOrCompletePrimitive(ToolEllipse, Vec2{300, 300}, Palette[0], 1)

	want := []DrawCommand{
		{Op: OpLoop, ObjectID: rect.ID, Points: rect.TransformedPoints(), Color: "#ffffff", Thickness: 1, Selected: true},
		{Op: OpHandles, ObjectID: rect.ID, Points: []Vec2{{50, 25}, {0, 0}, {100, 50}}, Color: "#ffff00", Thickness: 8},
		{Op: OpLine, ObjectID: line.ID, Points: line.TransformedPoints(), Color: "#ff0000", Thickness: 2},
		{Op: OpPending, Points: []Vec2{{300, 300}}, Color: "#ff0000", Thickness: 5},
	}

	if diff := cmp.Diff(want, CompileDrawCommands(sc), approx); diff != "" {
		t.Error("draw commands did not match:", diff)
	}
}

func Test_CompileDrawCommands_Empty(t *testing.T) {
	if got := CompileDrawCommands(nil); got != nil {
		t.Errorf("nil scene = %v", got)
	}
	if diff := cmp.Diff([]DrawCommand{}, CompileDrawCommands(NewScene()), cmpopts.EquateEmpty()); diff != "" {
		t.Error("empty scene produced commands:", diff)
	}
}

func Test_FrameToJSON(t *testing.T) {
	e := NewEditor(200, 100)
	press(t, e, KeyPoint)
	click(t, e, 10, 90)

	var got Frame
	if err := json.Unmarshal([]byte(e.Render()), &got); err != nil {
		t.Fatal(err)
	}
	if got.Tool != ToolPoint || len(got.Commands) != 1 || got.Commands[0].Op != OpPoint {
		t.Errorf("decoded frame = %+v", got)
	}
	if diff := cmp.Diff([]Vec2{{10, 10}}, got.Commands[0].Points); diff != "" {
		t.Error("point did not match:", diff)
	}
}

func Test_ParseEvent(t *testing.T) {
	testCases := map[string]struct {
		in      string
		want    Event
		wantErr error
	}{
		"pointer down": {
			in:   `{"type":"pointer.down","x":10,"y":20,"button":1}`,
			want: Event{Type: EventPointerDown, X: 10, Y: 20, Button: ButtonPrimary},
		},
		"key": {
			in:   `{"type":"key.down","key":"q"}`,
			want: Event{Type: EventKeyDown, Key: KeyRotateCCW},
		},
		"unknown type": {
			in:      `{"type":"wheel"}`,
			wantErr: ErrUnknownEvent,
		},
		"missing type": {
			in:      `{}`,
			wantErr: ErrUnknownEvent,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseEvent([]byte(tc.in))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Error("event did not match:", diff)
			}
		})
	}

	if _, err := ParseEvent([]byte("not json")); err == nil {
		t.Error("malformed JSON parsed")
	}
}
