// Package tracker hosts the training tracker HTTP service.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/trainingtracker/internal/platform/timeouts"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/app"
	module "github.com/louisbranch/trainingtracker/internal/services/tracker/module"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/modules"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/platform/httpx"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/platform/observability"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/routepath"
	trackerstatic "github.com/louisbranch/trainingtracker/internal/services/tracker/static"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/training"
	"go.opentelemetry.io/otel/trace"
)

// Config defines startup inputs for the tracker service.
type Config struct {
	HTTPAddr       string
	Training       *training.Service
	Logger         *log.Logger
	TracerProvider trace.TracerProvider
}

// Server hosts the tracker HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	h, err := app.Composer{}.Compose(app.ComposeInput{
		Dependencies: module.Dependencies{
			Training: cfg.Training,
			Logger:   logger,
		},
		Modules: modules.Default(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(trackerstatic.FS))))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.Tracing(cfg.TracerProvider),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a tracker server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose tracker handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("tracker server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown tracker http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve tracker http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
