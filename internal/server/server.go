// Package server exposes a generated theme over HTTP: the stylesheet
// itself, a JSON view of the scheme, and a WebSocket channel that tells
// connected pages to re-fetch when the theme changes.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/seedtheme/seedtheme/internal/emitter"
	"github.com/seedtheme/seedtheme/internal/logger"
	"github.com/seedtheme/seedtheme/internal/scheme"
)

// Server holds the current theme state and its HTTP surface.
type Server struct {
	mu       sync.RWMutex
	seed     string
	contrast float64
	current  scheme.Scheme

	generator *scheme.Generator
	emit      *emitter.Emitter
	hub       *Hub
	log       *logger.Logger
	upgrader  websocket.Upgrader
}

// New builds a Server and derives the initial scheme for the given seed
// and contrast.
func New(ctx context.Context, seed string, contrast float64, log *logger.Logger) (*Server, error) {
	generator := scheme.NewGenerator(nil)
	initial, err := generator.Generate(ctx, seed, contrast)
	if err != nil {
		return nil, err
	}

	return &Server{
		seed:      seed,
		contrast:  contrast,
		current:   initial,
		generator: generator,
		emit:      emitter.New(),
		hub:       NewHub(),
		log:       log,
	}, nil
}

// Routes returns the server's HTTP mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/theme.css", s.handleThemeCSS)
	mux.HandleFunc("/api/scheme", s.handleScheme)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

// Update regenerates the scheme for new parameters, swaps it in, and
// notifies connected clients.
func (s *Server) Update(ctx context.Context, seed string, contrast float64) error {
	next, err := s.generator.Generate(ctx, seed, contrast)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.seed = seed
	s.contrast = contrast
	s.current = next
	s.mu.Unlock()

	s.log.WithFields(map[string]any{"seed": seed, "contrast": contrast}).Info("theme updated")
	s.hub.Broadcast(map[string]any{"event": "theme-updated", "seed": seed, "contrast": contrast})
	return nil
}

func (s *Server) snapshot() (string, float64, scheme.Scheme) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seed, s.contrast, s.current
}

func (s *Server) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	seed, contrast, current := s.snapshot()

	css, err := s.emit.ThemeCSS(current, seed, contrast)
	if err != nil {
		http.Error(w, "theme generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(css))
}

type schemeResponse struct {
	Seed     string          `json:"seed"`
	Contrast float64         `json:"contrast"`
	Themes   []themeResponse `json:"themes"`
}

type themeResponse struct {
	Brightness string         `json:"brightness"`
	Colors     []tokenPayload `json:"colors"`
}

type tokenPayload struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type updateRequest struct {
	Seed     string  `json:"seed"`
	Contrast float64 `json:"contrast"`
}

func (s *Server) handleScheme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		seed, contrast, current := s.snapshot()

		resp := schemeResponse{Seed: seed, Contrast: contrast}
		for _, theme := range current {
			tr := themeResponse{Brightness: string(theme.Brightness)}
			for _, pair := range theme.Colors {
				tr.Colors = append(tr.Colors, tokenPayload{Name: pair.Name, Hex: pair.Hex})
			}
			resp.Themes = append(resp.Themes, tr)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, "failed to encode scheme", http.StatusInternalServerError)
		}

	case http.MethodPost:
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := s.Update(r.Context(), req.Seed, req.Contrast); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error(err, "websocket upgrade failed")
		return
	}

	s.hub.Add(conn)
	go func() {
		defer func() {
			s.hub.Remove(conn)
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
