package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"toolbridge/internal/store"
)

// DefaultPrompt is substituted when a request carries no prompt.
const DefaultPrompt = "Hello!"

// Invoker runs one agent invocation. Satisfied by *agent.Agent.
type Invoker interface {
	Invoke(ctx context.Context, sessionID, prompt string) (string, error)
}

// Server exposes the agent over HTTP.
type Server struct {
	agent  Invoker
	store  store.Store // nil disables /invocations/recent
	server *http.Server
}

// New creates a Server listening on host:port.
func New(host string, port int, agent Invoker, st store.Store) *Server {
	mux := http.NewServeMux()
	s := &Server{
		agent: agent,
		store: st,
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", host, port),
			Handler: mux,
		},
	}

	mux.HandleFunc("/invocations", s.handleInvocation)
	mux.HandleFunc("/invocations/recent", s.handleRecent)
	mux.HandleFunc("/ping", s.handlePing)
	return s
}

// Start runs the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		slog.Info("invocation server listening", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
		}
	}()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

type invocationRequest struct {
	Prompt string `json:"prompt"`
}

type invocationResponse struct {
	Result string `json:"result"`
}

// handleInvocation is the entire wire contract: {"prompt"} in, {"result"} out.
// Callers always receive a well-formed payload; failures anywhere inside the
// invocation are folded into an "Error: ..." result, never a transport error.
func (s *Server) handleInvocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// An empty body is fine: the prompt just falls back to the default greeting.
	var req invocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		// Malformed JSON still produces a result payload.
		writeResult(w, "Error: invalid request body: "+err.Error())
		return
	}
	if req.Prompt == "" {
		req.Prompt = DefaultPrompt
	}

	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	slog.Info("invocation received", "session_id", sessionID, "prompt", truncate(req.Prompt, 100))

	started := time.Now()
	result, err := s.agent.Invoke(r.Context(), sessionID, req.Prompt)
	if err != nil {
		slog.Error("invocation failed", "session_id", sessionID, "error", err)
		result = "Error: " + err.Error()
	}

	slog.Info("invocation complete", "session_id", sessionID, "duration", time.Since(started))
	writeResult(w, result)
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.store == nil {
		http.Error(w, "Invocation log disabled", http.StatusNotFound)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	records, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to read invocation log", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(records)
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func writeResult(w http.ResponseWriter, result string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(invocationResponse{Result: result})
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
