// internal/monitor/server.go
package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/drafel/battmon/internal/status"
)

// StatusServer exposes the watch-mode monitor's own view over HTTP.
// It reports; it never remediates.
type StatusServer struct {
	mon *Monitor
	srv *http.Server
}

// NewStatusServer builds the server on addr. Start must be called to serve.
func NewStatusServer(addr string, mon *Monitor) *StatusServer {
	s := &StatusServer{mon: mon}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Get("/status", s.handleStatus)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler returns the route tree, exposed for tests.
func (s *StatusServer) Handler() http.Handler {
	return s.srv.Handler
}

// Start serves until Shutdown. A closed server is not an error.
func (s *StatusServer) Start() error {
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *StatusServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// handleHealthz is the monitor's own liveness: reachable means alive.
func (s *StatusServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleStatus reports the target's last observed state as JSON.
// The target being in error maps to 503, same as a readiness probe.
func (s *StatusServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.mon.Current()

	w.Header().Set("Content-Type", "application/json")

	if snap.State == status.StateError {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	_ = json.NewEncoder(w).Encode(snap)
}
