package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/sprig/internal/logging"
	"github.com/aretw0/sprig/pkg/codec"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/aretw0/sprig/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// StreamBuffer is the number of states queued per SSE client before updates are dropped.
const StreamBuffer = 64

// Server exposes a TodoStore over HTTP.
type Server struct {
	Store   ports.TodoStore
	Logger  *slog.Logger
	Metrics http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures a logger for request errors and stream lifecycle.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts a Prometheus handler at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// StateResponse is the body returned by GET /state.
type StateResponse struct {
	Todos  []string      `json:"todos"`
	Change domain.Change `json:"change"`
}

// DispatchResponse is the body returned by POST /actions.
type DispatchResponse struct {
	Action codec.Envelope `json:"action"`
	State  StateResponse  `json:"state"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a new HTTP handler for the store.
func NewHandler(store ports.TodoStore, opts ...Option) http.Handler {
	s := &Server{
		Store:  store,
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/state", s.GetState)
	r.Post("/actions", s.PostAction)
	r.Get("/events", s.SubscribeEvents)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetState handles GET /state.
func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toResponse(s.Store.GetState()))
}

// PostAction handles POST /actions.
func (s *Server) PostAction(w http.ResponseWriter, r *http.Request) {
	var env codec.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		s.Logger.Warn("PostAction: Invalid request body", "err", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	action, err := codec.Decode(env)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := ports.DispatchState(s.Store, action)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			status = http.StatusUnprocessableEntity
		} else {
			s.Logger.Error("PostAction: Dispatch failed", "err", err)
		}
		writeJSON(w, status, ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, DispatchResponse{
		Action: codec.Encode(action),
		State:  toResponse(state),
	})
}

// SubscribeEvents handles the GET /events request (SSE).
// The connection holds one store subscription, disposed when the client goes away.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan []byte, StreamBuffer)
	sub := s.Store.Subscribe(func(state domain.State) {
		data, err := json.Marshal(toResponse(state))
		if err != nil {
			return
		}
		// Never block the dispatcher on a slow client.
		select {
		case ch <- data:
		default:
			s.Logger.Warn("SSE: Client too slow, dropping update")
		}
	})
	defer sub.Dispose()

	s.Logger.Info("SSE: Client subscribed")

	snapshot, _ := json.Marshal(toResponse(s.Store.GetState()))
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", snapshot)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE: Client disconnected")
			return
		case msg := <-ch:
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func toResponse(state domain.State) StateResponse {
	todos := state.Todos
	if todos == nil {
		todos = []string{}
	}
	return StateResponse{Todos: todos, Change: state.Change}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
