// Package diagram parses diagram command flags and starts the web service.
package diagram

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/synapse.space/internal/platform/cmd"
	"github.com/louisbranch/synapse.space/internal/platform/otel"
	"github.com/louisbranch/synapse.space/internal/platform/timeouts"
	diagramservice "github.com/louisbranch/synapse.space/internal/services/diagram"
	"github.com/louisbranch/synapse.space/internal/services/diagram/session"
)

// Config holds diagram command configuration.
type Config struct {
	HTTPAddr            string        `env:"SYNAPSE_SPACE_DIAGRAM_HTTP_ADDR"             envDefault:":8080"`
	TrustForwardedProto bool          `env:"SYNAPSE_SPACE_DIAGRAM_TRUST_FORWARDED_PROTO"`
	DisableLive         bool          `env:"SYNAPSE_SPACE_DIAGRAM_DISABLE_LIVE"`
	SessionIdle         time.Duration `env:"SYNAPSE_SPACE_DIAGRAM_SESSION_IDLE"          envDefault:"30m"`
	MaxSessions         int           `env:"SYNAPSE_SPACE_DIAGRAM_MAX_SESSIONS"          envDefault:"10000"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return bindFlags(cfg, fs, args)
}

func bindFlags(cfg Config, fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, fmt.Errorf("flag parser is required")
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "diagram HTTP listen address")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto when deciding cookie security")
	fs.BoolVar(&cfg.DisableLive, "disable-live", cfg.DisableLive, "disable the websocket live channel")
	fs.DurationVar(&cfg.SessionIdle, "session-idle", cfg.SessionIdle, "evict viewer sessions idle for this long")
	fs.IntVar(&cfg.MaxSessions, "max-sessions", cfg.MaxSessions, "maximum viewer sessions kept in memory")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.SessionIdle <= 0 {
		return Config{}, fmt.Errorf("session idle must be positive, got %s", cfg.SessionIdle)
	}
	if cfg.MaxSessions <= 0 {
		return Config{}, fmt.Errorf("max sessions must be positive, got %d", cfg.MaxSessions)
	}
	return cfg, nil
}

func (cfg Config) serviceConfig() diagramservice.Config {
	return diagramservice.Config{
		HTTPAddr:            cfg.HTTPAddr,
		Sessions:            session.NewStore(
			session.WithIdleTTL(cfg.SessionIdle),
			session.WithMaxSessions(cfg.MaxSessions),
		),
		TrustForwardedProto: cfg.TrustForwardedProto,
		DisableLive:         cfg.DisableLive,
		Tracer:              otel.Tracer(entrypoint.ServiceDiagram),
	}
}

// Run builds the diagram server and serves until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	options := entrypoint.RunOptions{ShutdownTimeout: timeouts.Shutdown}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceDiagram, options, func(ctx context.Context) error {
		server, err := diagramservice.NewServer(ctx, cfg.serviceConfig())
		if err != nil {
			return fmt.Errorf("build diagram server: %w", err)
		}
		defer server.Close()
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve diagram: %w", err)
		}
		return nil
	})
}
