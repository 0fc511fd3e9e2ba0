// Package preview serves the most recent export artifact over HTTP so it
// can be reviewed before saving. The served bytes are exactly the artifact
// bytes; the preview never re-renders.
package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"github.com/scrapdiary/scrapdiary/internal/export"
	"github.com/scrapdiary/scrapdiary/internal/summary"
)

// Config holds preview server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server hosts the current artifact, the review panel and a reload socket.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server

	mu       sync.RWMutex
	artifact *export.Artifact
	prompts  map[string]string // session-local prompt edits, keyed by day

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]struct{}
}

// New creates a preview server with no artifact loaded yet.
func New(cfg Config) *Server {
	s := &Server{
		cfg:     cfg,
		prompts: map[string]string{},
		clients: map[*websocket.Conn]struct{}{},
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleArtifact)
	r.Get("/review", s.handleReviewPanel)
	r.Get("/api/summary", s.handleSummary)
	r.Post("/api/prompt", s.handlePrompt)
	r.Get("/ws", s.handleWebSocket)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// SetArtifact swaps in a new artifact and tells connected review panels
// to reload. Prompt edits from the current session are kept.
func (s *Server) SetArtifact(a *export.Artifact) {
	s.mu.Lock()
	s.artifact = a
	s.mu.Unlock()
	s.broadcast("reload")
}

// Artifact returns the currently served artifact, or nil.
func (s *Server) Artifact() *export.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.artifact
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	a := s.artifact
	s.mu.RUnlock()

	if a == nil {
		http.Error(w, "no export loaded yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(a.HTML))
}

// handleSummary serves the artifact summary with any session-local prompt
// edits applied. Edits live only in this server; the artifact itself and
// anything persisted from it keep the synthesized prompts.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	a := s.artifact
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if a == nil {
		http.Error(w, `{"error":"no export loaded yet"}`, http.StatusServiceUnavailable)
		return
	}

	out := summary.Summary{Title: a.Summary.Title, Days: make([]summary.DaySummary, len(a.Summary.Days))}
	copy(out.Days, a.Summary.Days)
	s.mu.RLock()
	for i, day := range out.Days {
		if edited, ok := s.prompts[day.Day]; ok {
			out.Days[i].Prompt = edited
		}
	}
	s.mu.RUnlock()

	json.NewEncoder(w).Encode(out)
}

// promptRequest is the JSON body for the /api/prompt endpoint.
type promptRequest struct {
	Day    string `json:"day"`
	Prompt string `json:"prompt"`
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Day) == "" {
		http.Error(w, `{"error":"day is required"}`, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	known := false
	if s.artifact != nil {
		for _, d := range s.artifact.Summary.Days {
			if d.Day == req.Day {
				known = true
				break
			}
		}
	}
	if known {
		s.prompts[req.Day] = req.Prompt
	}
	s.mu.Unlock()

	if !known {
		http.Error(w, `{"error":"unknown day"}`, http.StatusNotFound)
		return
	}
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleReviewPanel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(reviewPanelHTML))
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("preview: websocket upgrade: %v", err)
		return
	}

	s.clientsMu.Lock()
	s.clients[conn] = struct{}{}
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
		conn.Close()
	}()

	// The socket is push-only; we only read to notice the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("preview: websocket read: %v", err)
			}
			return
		}
	}
}

func (s *Server) broadcast(message string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
			log.Printf("preview: websocket write: %v", err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("scrapdiary preview listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
