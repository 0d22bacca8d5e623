package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/grafkom/editor/internal/collab"
	"github.com/grafkom/editor/internal/engine"
	"github.com/grafkom/editor/internal/render"
	"github.com/grafkom/editor/internal/typeid"
)

// Sessions is the session store the handlers read from.
type Sessions interface {
	CreateSession(ctx context.Context) (string, error)
	Frame(ctx context.Context, sessionID string) (engine.Frame, error)
}

type Handler struct {
	sessions Sessions
}

func NewHandler(sessions Sessions) *Handler {
	return &Handler{sessions: sessions}
}

// Create handles POST /sessions.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := h.sessions.CreateSession(r.Context())
	if err != nil {
		slog.Error("create session failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Frame handles GET /sessions/{sessionId}/frame.
func (h *Handler) Frame(w http.ResponseWriter, r *http.Request) {
	frame, ok := h.loadFrame(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

// Snapshot handles GET /sessions/{sessionId}/snapshot.png.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	frame, ok := h.loadFrame(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, frame); err != nil {
		slog.Error("render snapshot", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("write snapshot", "error", err)
		return
	}

	slog.Info("snapshot rendered", "shapes", len(frame.Commands), "size", buf.Len())
}

func (h *Handler) loadFrame(w http.ResponseWriter, r *http.Request) (engine.Frame, bool) {
	sessionID := mux.Vars(r)["sessionId"]
	if err := typeid.ValidateSession(sessionID); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return engine.Frame{}, false
	}

	frame, err := h.sessions.Frame(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, collab.ErrSessionNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
			return engine.Frame{}, false
		}
		slog.Error("load frame", "error", err, "session", sessionID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("load frame: %v", err)})
		return engine.Frame{}, false
	}
	return frame, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
