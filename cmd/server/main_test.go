package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/grafkom/editor/internal/collab"
	"github.com/grafkom/editor/internal/engine"
	"github.com/grafkom/editor/internal/typeid"
)

func Test_HandleWebSocket_RefusesBeforeUpgrade(t *testing.T) {
	hub := collab.NewHub(func() *engine.Editor { return engine.NewEditor(1200, 800) })
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.Done()
	})

	testCases := map[string]struct {
		sessionID string
		want      int
	}{
		"malformed id":    {sessionID: "sess_123", want: http.StatusBadRequest},
		"unknown session": {sessionID: typeid.NewSessionID(), want: http.StatusNotFound},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws/session/"+tc.sessionID, nil)
			req = mux.SetURLVars(req, map[string]string{"sessionId": tc.sessionID})
			rec := httptest.NewRecorder()

			handleWebSocket(rec, req, hub, []string{"localhost:5173"})

			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
