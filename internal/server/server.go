// Package server exposes the growth calculator over a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
)

const maxBodyBytes = 1 << 20

// Server holds the dependencies shared by the HTTP handlers.
type Server struct {
	engine  *calculation.CalculationEngine
	display domain.DisplaySettings
	logger  *slog.Logger
}

// New creates a server. A nil logger discards log output.
func New(engine *calculation.CalculationEngine, display domain.DisplaySettings, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{engine: engine, display: display, logger: logger}
}

// Routes returns the router wrapped in the request-id/logging middleware.
func (s *Server) Routes() http.Handler {
	router := httprouter.New()
	router.GET("/healthz", s.healthHandler)
	router.GET("/api/calculate", s.calculateQueryHandler)
	router.POST("/api/calculate", s.calculateBodyHandler)
	router.GET("/api/summarize/:amount", s.summarizeHandler)
	router.NotFound = http.HandlerFunc(s.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(s.methodNotAllowedResponse)
	return s.withRequestID(router)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr, "locale", s.display.Locale)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		s.logger.Info("server stopped")
		return nil
	}
}
