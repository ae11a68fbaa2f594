// Package server exposes the generation pipeline over HTTP: a generate
// endpoint for free-text requests, an upload endpoint that learns a pattern
// profile from a CSV sample before generating, and download/preview
// endpoints for the produced datasets.
//
// The server is a thin I/O shim: all generation semantics live in the
// engine, and component errors are translated here into JSON error payloads
// with non-success status codes.
package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tabsynth/tabsynth/pkg/config"
	"github.com/tabsynth/tabsynth/pkg/engine"
)

// Server hosts the HTTP boundary around the generation engine.
type Server struct {
	cfg    *config.ServiceConfig
	engine *engine.Engine
	logger *zap.Logger
	http   *http.Server
}

// New creates a server around the given engine.
func New(cfg *config.ServiceConfig, eng *engine.Engine, logger *zap.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		engine: eng,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /download/{filename}", s.handleDownload)
	mux.HandleFunc("GET /preview/{filename}", s.handlePreview)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if cfg.Observability.EnableMetrics {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	s.http = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// ListenAndServe runs the server until the context is canceled or the
// listener fails, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.http.Addr))
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
