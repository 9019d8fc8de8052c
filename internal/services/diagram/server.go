// Package diagram hosts the browser-facing neural network diagram service.
package diagram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/synapse.space/internal/network"
	"github.com/louisbranch/synapse.space/internal/platform/timeouts"
	"github.com/louisbranch/synapse.space/internal/services/diagram/platform/httpx"
	"github.com/louisbranch/synapse.space/internal/services/diagram/platform/observability"
	"github.com/louisbranch/synapse.space/internal/services/diagram/platform/requestmeta"
	"github.com/louisbranch/synapse.space/internal/services/diagram/session"
	"go.opentelemetry.io/otel/trace"
)

const sessionSweepInterval = time.Minute

// Config defines startup inputs for the diagram service.
type Config struct {
	HTTPAddr string
	// Catalog defaults to the built-in four-example catalog.
	Catalog *network.Catalog
	// Sessions defaults to an in-memory store with the shared idle timeout.
	Sessions            *session.Store
	TrustForwardedProto bool
	DisableLive         bool
	Logger              *log.Logger
	Tracer              trace.Tracer
}

// Server hosts the diagram HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	sessions   *session.Store
}

func (cfg Config) withDefaults() Config {
	if cfg.Catalog == nil {
		cfg.Catalog = network.DefaultCatalog()
	}
	if cfg.Sessions == nil {
		cfg.Sessions = session.NewStore(session.WithIdleTTL(timeouts.SessionIdle))
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return cfg
}

// NewHandler builds the root handler with routes and middleware.
func NewHandler(cfg Config) (http.Handler, error) {
	cfg = cfg.withDefaults()
	h := &handler{
		catalog:  cfg.Catalog,
		sessions: cfg.Sessions,
		policy:   requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		live:     !cfg.DisableLive,
		logger:   cfg.Logger,
	}
	mux := http.NewServeMux()
	if err := registerRoutes(mux, h); err != nil {
		return nil, err
	}
	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Trace(cfg.Tracer),
		observability.RequestLogger(cfg.Logger),
	), nil
}

// NewServer validates config and constructs a diagram server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	cfg = cfg.withDefaults()
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose diagram handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		sessions: cfg.Sessions,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("diagram server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sweepSessions(sweepCtx)

	log.Printf("diagram listening addr=%s", s.httpAddr)
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
			return fmt.Errorf("shutdown diagram http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve diagram http: %w", err)
	}
}

func (s *Server) sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sessions.Sweep(); removed > 0 {
				log.Printf("diagram sessions swept removed=%d remaining=%d", removed, s.sessions.Len())
			}
		}
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
