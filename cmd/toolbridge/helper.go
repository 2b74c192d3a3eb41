package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"toolbridge/internal/agent"
	"toolbridge/internal/config"
	"toolbridge/internal/eventbus"
	"toolbridge/internal/llm"
	"toolbridge/internal/security"
	"toolbridge/internal/store"
	"toolbridge/internal/tool"
)

const (
	keyringPlaceholder      = "[keyring]"
	secretNameLLMKey        = "llm_api_key"
	secretNameFallbackKey   = "fallback_llm_api_key"
	secretNameTelegramToken = "telegram_token"
)

// resolveSecrets replaces keyring placeholders in the config with the actual
// secret values. The config file on disk never holds plaintext keys when the
// placeholder convention is used.
func resolveSecrets(cfg *config.Config) error {
	ks, err := security.NewKeyStore(nil)
	if err != nil {
		return fmt.Errorf("key store: %w", err)
	}

	if cfg.LLM.APIKey == keyringPlaceholder {
		key, err := ks.Get(secretNameLLMKey)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", secretNameLLMKey, err)
		}
		cfg.LLM.APIKey = key
	}
	if cfg.FallbackLLM != nil && cfg.FallbackLLM.APIKey == keyringPlaceholder {
		key, err := ks.Get(secretNameFallbackKey)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", secretNameFallbackKey, err)
		}
		cfg.FallbackLLM.APIKey = key
	}
	if cfg.Channels.Telegram != nil && cfg.Channels.Telegram.Token == keyringPlaceholder {
		token, err := ks.Get(secretNameTelegramToken)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", secretNameTelegramToken, err)
		}
		cfg.Channels.Telegram.Token = token
	}
	return nil
}

// openStore opens the invocation log at the configured path, defaulting to
// the config directory.
func openStore() (store.Store, error) {
	path := cfg.Store.Path
	if path == "" {
		path = filepath.Join(cfgLoader.Dir(), "invocations.db")
	}
	return store.NewSQLiteStore(path)
}

// buildAgent wires the provider chain, tool registry, and event bus into a
// ready Agent.
func buildAgent(st store.Store) (*agent.Agent, *eventbus.Bus, error) {
	provider, err := llm.NewProviderChain(cfg.LLM, cfg.FallbackLLM)
	if err != nil {
		return nil, nil, err
	}

	registry := tool.NewBuiltinRegistry()
	bus := eventbus.New()
	subscribeLogging(bus)

	slog.Info("agent ready",
		"provider", provider.Name(),
		"model", provider.DefaultModel(),
		"tools", len(registry.List()),
	)
	return agent.New(cfg.Agent, provider, registry, bus, st), bus, nil
}

// subscribeLogging attaches debug-level observers for the invocation lifecycle.
func subscribeLogging(bus *eventbus.Bus) {
	bus.Subscribe(eventbus.TopicToolCall, func(e eventbus.Event) {
		if tc, ok := e.Payload.(llm.ToolCall); ok {
			slog.Debug("tool call requested", "tool", tc.Name, "id", tc.ID)
		}
	})
	bus.Subscribe(eventbus.TopicToolResult, func(e eventbus.Event) {
		if m, ok := e.Payload.(map[string]string); ok {
			slog.Debug("tool result", "id", m["id"], "result", m["result"])
		}
	})
	bus.Subscribe(eventbus.TopicError, func(e eventbus.Event) {
		if err, ok := e.Payload.(error); ok {
			slog.Error("invocation error", "error", err)
		}
	})
}
