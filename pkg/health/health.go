// Package health serves the liveness HTTP endpoints used by deployment
// platforms to keep the bot process alive.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Server exposes "/" and "/health" next to the bot.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// New creates a health server listening on addr.
func New(addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           newHandler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func newHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "Finance Tracker Bot is running!")
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	return mux
}

// Start serves in the background.
func (s *Server) Start() {
	go func() {
		s.logger.Info("health server started", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("health server error", "error", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
