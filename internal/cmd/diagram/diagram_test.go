package diagram

import (
	"flag"
	"testing"
	"time"

	entrypoint "github.com/louisbranch/synapse.space/internal/platform/cmd"
)

func TestParseConfigDefaults(t *testing.T) {
	var cfg Config
	if err := entrypoint.ParseConfigFrom(&cfg, map[string]string{}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	cfg, err := bindFlags(cfg, flag.NewFlagSet("diagram", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.SessionIdle != 30*time.Minute {
		t.Fatalf("expected default session idle, got %s", cfg.SessionIdle)
	}
	if cfg.MaxSessions != 10000 {
		t.Fatalf("expected default max sessions, got %d", cfg.MaxSessions)
	}
	if cfg.DisableLive || cfg.TrustForwardedProto {
		t.Fatalf("expected boolean defaults to be false, got %+v", cfg)
	}
}

func TestParseConfigEnvAndFlagOverrides(t *testing.T) {
	t.Setenv("SYNAPSE_SPACE_DIAGRAM_HTTP_ADDR", "env-addr")
	t.Setenv("SYNAPSE_SPACE_DIAGRAM_DISABLE_LIVE", "true")
	t.Setenv("SYNAPSE_SPACE_DIAGRAM_SESSION_IDLE", "5m")

	fs := flag.NewFlagSet("diagram", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "flag-addr", "-trust-forwarded-proto", "-max-sessions", "50"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-addr" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if !cfg.DisableLive {
		t.Fatal("expected env to disable live channel")
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("expected flag to trust forwarded proto")
	}
	if cfg.SessionIdle != 5*time.Minute {
		t.Fatalf("expected env session idle, got %s", cfg.SessionIdle)
	}
	if cfg.MaxSessions != 50 {
		t.Fatalf("expected flag max sessions, got %d", cfg.MaxSessions)
	}
}

func TestParseConfigRejectsNonPositiveIdle(t *testing.T) {
	fs := flag.NewFlagSet("diagram", flag.ContinueOnError)
	if _, err := bindFlags(Config{HTTPAddr: ":0"}, fs, []string{"-session-idle", "0s"}); err == nil {
		t.Fatal("expected error for zero session idle")
	}
	fs = flag.NewFlagSet("diagram", flag.ContinueOnError)
	cfg := Config{HTTPAddr: ":0", SessionIdle: time.Minute}
	if _, err := bindFlags(cfg, fs, []string{"-max-sessions", "0"}); err == nil {
		t.Fatal("expected error for zero max sessions")
	}
}

func TestServiceConfigCarriesSettings(t *testing.T) {
	cfg := Config{HTTPAddr: ":9000", DisableLive: true, TrustForwardedProto: true, SessionIdle: time.Minute, MaxSessions: 1}
	got := cfg.serviceConfig()
	if got.HTTPAddr != ":9000" || !got.DisableLive || !got.TrustForwardedProto {
		t.Fatalf("unexpected service config %+v", got)
	}
	if got.Sessions == nil || got.Tracer == nil {
		t.Fatal("expected session store and tracer")
	}
	first, _ := got.Sessions.Acquire("")
	got.Sessions.Acquire("")
	if got.Sessions.Len() != 1 || got.Sessions.With(first, nil) {
		t.Fatal("expected max sessions to bound the store")
	}
}
