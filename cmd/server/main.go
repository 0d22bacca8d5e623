package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/grafkom/editor/internal/collab"
	"github.com/grafkom/editor/internal/config"
	"github.com/grafkom/editor/internal/engine"
	"github.com/grafkom/editor/internal/export"
	mw "github.com/grafkom/editor/internal/middleware"
	"github.com/grafkom/editor/internal/typeid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Every session gets its own editor sized to the configured viewport
	newEditor := func() *engine.Editor {
		ed := engine.NewEditor(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))
		if cfg.SeedSample {
			ed.LoadSampleScene()
		}
		return ed
	}

	hub := collab.NewHub(newEditor)
	go hub.Run(ctx)

	sessionHandler := export.NewHandler(hub)

	origins := cfg.Origins()
	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(origins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/sessions/{sessionId}/frame", sessionHandler.Frame).Methods("GET")
	r.HandleFunc("/sessions/{sessionId}/snapshot.png", sessionHandler.Snapshot).Methods("GET")

	// WebSocket endpoint
	r.HandleFunc("/ws/session/{sessionId}", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, origins)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Stop the hub first so client pumps unwind
		cancel()
		<-hub.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "viewport", fmt.Sprintf("%dx%d", cfg.ScreenWidth, cfg.ScreenHeight))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *collab.Hub, origins []string) {
	sessionID := mux.Vars(r)["sessionId"]
	if err := typeid.ValidateSession(sessionID); err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}
	// Sessions come from POST /sessions; refuse before upgrading.
	if _, err := hub.Frame(r.Context(), sessionID); err != nil {
		if errors.Is(err, collab.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}

	displayName := r.URL.Query().Get("name")
	if displayName == "" {
		displayName = "anon-" + uuid.New().String()[:8]
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: origins,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	client := collab.NewClient(hub, conn, displayName, sessionID, typeid.NewClientID())
	client.Serve(r.Context())
}
