package agent

import (
	"context"
	"log/slog"
	"time"

	"toolbridge/internal/config"
	"toolbridge/internal/eventbus"
	"toolbridge/internal/llm"
	"toolbridge/internal/store"
	"toolbridge/internal/tool"
)

// Agent runs a single-round tool dispatch loop: one model call, tool
// execution if requested, then one final model call. Each invocation is
// stateless; the transient message sequence lives and dies inside Invoke.
type Agent struct {
	cfg      config.AgentConfig
	provider llm.Provider
	tools    *tool.Registry
	bus      *eventbus.Bus
	store    store.Store // nil disables invocation logging
}

// New creates an Agent. store may be nil.
func New(cfg config.AgentConfig, provider llm.Provider, tools *tool.Registry, bus *eventbus.Bus, st store.Store) *Agent {
	return &Agent{
		cfg:      cfg,
		provider: provider,
		tools:    tools,
		bus:      bus,
		store:    st,
	}
}

// Invoke processes one prompt and returns the model's final text.
// Transport and provider failures are returned as errors; the surface that
// called Invoke is responsible for folding them into an error-text result.
func (a *Agent) Invoke(ctx context.Context, sessionID, prompt string) (string, error) {
	started := time.Now()
	a.bus.Publish(eventbus.TopicInvocationStart, prompt)

	result, toolsUsed, err := a.run(ctx, prompt)
	if err != nil {
		a.bus.Publish(eventbus.TopicError, err)
		return "", err
	}

	a.bus.Publish(eventbus.TopicInvocationDone, result)

	if a.store != nil {
		rec := store.Record{
			SessionID: sessionID,
			Prompt:    prompt,
			Result:    result,
			ToolsUsed: toolsUsed,
			Duration:  time.Since(started),
		}
		if err := a.store.Save(ctx, rec); err != nil {
			slog.Warn("failed to record invocation", "session_id", sessionID, "error", err)
		}
	}

	return result, nil
}

// TestConnection sends a simple message to verify the LLM provider works.
func (a *Agent) TestConnection(ctx context.Context) error {
	req := &llm.ChatRequest{
		Messages:  []llm.Message{{Role: "user", Content: "Say 'OK' if you can hear me."}},
		MaxTokens: 32,
	}
	_, err := a.provider.Chat(ctx, req)
	return err
}
