package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"SYNAPSE_SPACE_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SYNAPSE_SPACE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromUsesExplicitEnvironment(t *testing.T) {
	t.Setenv("SYNAPSE_SPACE_TEST_PORT", "999")

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, map[string]string{"SYNAPSE_SPACE_TEST_PORT": "456"}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 456 {
		t.Fatalf("expected port 456, got %d", cfg.Port)
	}

	cfg = envTestConfig{}
	if err := ParseEnvFrom(&cfg, nil); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestEnvironSnapshotsProcessEnvironment(t *testing.T) {
	t.Setenv("SYNAPSE_SPACE_TEST_PORT", "789")
	t.Setenv("SYNAPSE_SPACE_TEST_EQUALS", "a=b")

	environment := Environ()
	if got := environment["SYNAPSE_SPACE_TEST_PORT"]; got != "789" {
		t.Fatalf("expected port 789, got %q", got)
	}
	if got := environment["SYNAPSE_SPACE_TEST_EQUALS"]; got != "a=b" {
		t.Fatalf("expected value to keep '=', got %q", got)
	}

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 789 {
		t.Fatalf("expected process port 789, got %d", cfg.Port)
	}
}
