package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Chat.StreamDelayMS != 30 {
		t.Errorf("expected default stream delay 30, got %d", cfg.Chat.StreamDelayMS)
	}
	if cfg.Chat.LLMTimeoutSec != 10 {
		t.Errorf("expected default LLM timeout 10, got %d", cfg.Chat.LLMTimeoutSec)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".auralis.yml")
	content := []byte("provider: openai\nmodel: gpt-4o\nserver:\n  port: 9000\nchat:\n  stream_delay_ms: 50\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected provider openai, got %q", cfg.Provider)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %q", cfg.Model)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Chat.StreamDelayMS != 50 {
		t.Errorf("expected stream delay 50, got %d", cfg.Chat.StreamDelayMS)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("AURALIS_SERVER_PORT", "7070")
	t.Setenv("AURALIS_PROVIDER", "ollama")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected port 7070 from env, got %d", cfg.Server.Port)
	}
	if cfg.Provider != ProviderOllama {
		t.Errorf("expected provider ollama from env, got %q", cfg.Provider)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad provider", func(c *Config) { c.Provider = "anthropic-turbo" }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"negative port", func(c *Config) { c.Server.Port = -1 }},
		{"negative delay", func(c *Config) { c.Chat.StreamDelayMS = -5 }},
		{"negative timeout", func(c *Config) { c.Chat.LLMTimeoutSec = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".auralis.yml")

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenAI
	cfg.Model = "gpt-4o-mini"
	cfg.Server.Port = 9999
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Provider != cfg.Provider || loaded.Model != cfg.Model || loaded.Server.Port != cfg.Server.Port {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}
