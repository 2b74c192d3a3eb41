package agent

import (
	"context"
	"fmt"
	"log/slog"

	"toolbridge/internal/eventbus"
	"toolbridge/internal/llm"
)

// run executes the dispatch sequence for one prompt:
// first model call → tool execution (if any requested) → one final model call.
// A single round of tools is a deliberate ceiling: if the second reply asks
// for more tools, its text is returned anyway.
func (a *Agent) run(ctx context.Context, prompt string) (string, []string, error) {
	messages := []llm.Message{
		{Role: "user", Content: prompt},
	}

	req := &llm.ChatRequest{
		Messages:     messages,
		Tools:        a.tools.Definitions(),
		MaxTokens:    a.cfg.MaxTokens,
		Temperature:  a.cfg.Temperature,
		SystemPrompt: a.cfg.SystemPrompt,
	}

	a.bus.Publish(eventbus.TopicLLMRequest, req)
	resp, err := a.provider.Chat(ctx, req)
	if err != nil {
		return "", nil, fmt.Errorf("LLM error: %w", err)
	}
	a.bus.Publish(eventbus.TopicLLMResponse, resp)

	// No tool calls: the first reply is the final answer.
	if len(resp.ToolCalls) == 0 {
		return resp.Content, nil, nil
	}

	messages = append(messages, llm.Message{
		Role:      "assistant",
		Content:   resp.Content,
		ToolCalls: resp.ToolCalls,
	})

	toolsUsed := make([]string, 0, len(resp.ToolCalls))
	for _, tc := range resp.ToolCalls {
		toolsUsed = append(toolsUsed, tc.Name)
		messages = append(messages, llm.Message{
			Role:       "tool",
			Content:    a.executeCall(ctx, tc),
			ToolCallID: tc.ID,
		})
	}

	finalReq := &llm.ChatRequest{
		Messages:     messages,
		Tools:        a.tools.Definitions(),
		MaxTokens:    a.cfg.MaxTokens,
		Temperature:  a.cfg.Temperature,
		SystemPrompt: a.cfg.SystemPrompt,
	}

	a.bus.Publish(eventbus.TopicLLMRequest, finalReq)
	final, err := a.provider.Chat(ctx, finalReq)
	if err != nil {
		return "", toolsUsed, fmt.Errorf("LLM error: %w", err)
	}
	a.bus.Publish(eventbus.TopicLLMResponse, final)

	return final.Content, toolsUsed, nil
}

// executeCall resolves and runs one requested tool call, flattening every
// failure mode into the string relayed to the model. Soft errors never abort
// the surrounding sweep.
func (a *Agent) executeCall(ctx context.Context, tc llm.ToolCall) string {
	a.bus.Publish(eventbus.TopicToolCall, tc)

	var result string
	t, err := a.tools.Get(tc.Name)
	switch {
	case err != nil:
		result = fmt.Sprintf("Error: tool '%s' not found", tc.Name)
		slog.Warn("requested tool not registered", "tool", tc.Name)
	default:
		res, err := t.Execute(ctx, tc.Arguments)
		switch {
		case err != nil:
			result = "Error executing tool: " + err.Error()
		case res.IsError:
			result = "Error: " + res.Error
		default:
			result = res.Output
		}
		slog.Debug("tool executed", "tool", tc.Name, "result", result)
	}

	a.bus.Publish(eventbus.TopicToolResult, map[string]string{"id": tc.ID, "result": result})
	return result
}
