package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driving"
	"github.com/custodia-labs/rna-msa/internal/logger"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 10 * time.Second

// Server exposes a FamilyService over HTTP.
type Server struct {
	svc      driving.FamilyService
	defaults domain.ParseOptions
	origins  []string
	handler  http.Handler
}

// NewServer creates a server. defaults are the parse options used when a
// request does not override them.
func NewServer(svc driving.FamilyService, defaults domain.ParseOptions, allowedOrigins []string) *Server {
	s := &Server{
		svc:      svc,
		defaults: defaults,
		origins:  allowedOrigins,
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /families", s.handleFamilies)
	mux.HandleFunc("GET /family/{identifier}", s.handleFamily)
	mux.HandleFunc("GET /family/{identifier}/raw", s.handleFamilyRaw)
	mux.HandleFunc("POST /parse", s.handleParse)
	mux.HandleFunc("/", s.handleNotFound)

	var h http.Handler = mux
	h = withRecover(h)
	h = withCORS(s.origins, h)
	h = withAccessLog(h)
	h = withRequestID(h)
	return h
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on an existing listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("listening on %s", listener.Addr())
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return err
	}
}
