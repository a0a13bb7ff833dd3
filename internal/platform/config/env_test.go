package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port  int    `env:"DICEBOT_TEST_PORT" envDefault:"123"`
	Token string `env:"DICEBOT_TEST_TOKEN"`
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

func TestParseEnvReadsValues(t *testing.T) {
	t.Setenv("DICEBOT_TEST_PORT", "9000")
	t.Setenv("DICEBOT_TEST_TOKEN", "secret")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9000 || cfg.Token != "secret" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("DICEBOT_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestRequireString(t *testing.T) {
	if err := RequireString("token", "DISCORD_TOKEN"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := RequireString("  ", "DISCORD_TOKEN")
	if err == nil {
		t.Fatal("expected error for blank value")
	}
	if !strings.Contains(err.Error(), "DICEBOT_DISCORD_TOKEN") {
		t.Fatalf("expected env name in error, got %v", err)
	}
}
