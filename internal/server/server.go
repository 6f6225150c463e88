// Package server exposes the solver over HTTP.
//
// The solver core in pkg/match stays transport-free; this package is the
// JSON boundary around it. Three endpoints mirror the three public
// operations:
//
//	POST /v1/check   {participants: [...]} → {possible, reason}
//	POST /v1/assign  {participants: [...]} → {assignments: [...]}
//	POST /v1/stats   {participants: [...]} → constraint statistics
//
// Nothing is persisted and there is no authentication: the server is
// meant to sit behind whatever front end hosts the group data.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	shutdownGrace       = 5 * time.Second
)

// Server is the giftmatch HTTP API server.
type Server struct {
	addr   string
	logger *log.Logger
	http   *http.Server
}

// New creates a server listening on addr. The logger must not be nil.
func New(addr string, logger *log.Logger) *Server {
	s := &Server{addr: addr, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/check", s.handleCheck)
		r.Post("/assign", s.handleAssign)
		r.Post("/stats", s.handleStats)
	})
	r.Get("/healthz", s.handleHealth)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Infof("Listening on %s", s.addr)
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info("Server stopped")
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// requestLogger logs one line per request with method, path, status, and
// elapsed time at debug level.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debugf("%s %s → %d (%s)",
				r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
		})
	}
}
