package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	loader := &Loader{
		filePath: filepath.Join(t.TempDir(), "config.json"),
	}

	cfg, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LLM.Provider != "anthropic" {
		t.Fatalf("expected anthropic, got %s", cfg.LLM.Provider)
	}
	if cfg.Agent.MaxTokens != 4096 {
		t.Fatalf("expected 4096, got %d", cfg.Agent.MaxTokens)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	loader := &Loader{filePath: path}

	cfg := Defaults()
	cfg.LLM.Provider = "openai"
	cfg.LLM.APIKey = "test-key"
	cfg.Server.Port = 9090

	if err := loader.Save(cfg); err != nil {
		t.Fatal(err)
	}

	// Verify file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	// Load back
	loaded, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.LLM.Provider != "openai" {
		t.Fatalf("expected openai, got %s", loaded.LLM.Provider)
	}
	if loaded.LLM.APIKey != "test-key" {
		t.Fatalf("expected test-key, got %s", loaded.LLM.APIKey)
	}
	if loaded.Server.Port != 9090 {
		t.Fatalf("expected 9090, got %d", loaded.Server.Port)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"llm":{"provider":"openai"}}`), 0600); err != nil {
		t.Fatal(err)
	}

	loader := &Loader{filePath: path}
	cfg, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LLM.Provider != "openai" {
		t.Fatalf("expected openai, got %s", cfg.LLM.Provider)
	}
	if cfg.Agent.SystemPrompt == "" {
		t.Fatal("expected default system prompt to survive partial config")
	}
}
