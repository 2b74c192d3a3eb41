package llm

import (
	"context"
	"testing"
)

type stubProvider struct {
	name  string
	resp  *LLMResponse
	err   error
	calls int
}

func (s *stubProvider) Chat(context.Context, *ChatRequest) (*LLMResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubProvider) Name() string         { return s.name }
func (s *stubProvider) DefaultModel() string { return s.name + "-default" }

func TestFallbackTriesNextOnRetryableError(t *testing.T) {
	primary := &stubProvider{name: "primary", err: &LLMError{Type: ErrorServerError, Message: "overloaded"}}
	secondary := &stubProvider{name: "secondary", resp: &LLMResponse{Content: "ok"}}

	f := NewFallbackProvider(primary, secondary)
	resp, err := f.Chat(context.Background(), &ChatRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Content != "ok" {
		t.Fatalf("expected fallback response, got %q", resp.Content)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Fatalf("unexpected call counts: primary=%d secondary=%d", primary.calls, secondary.calls)
	}
}

func TestFallbackStopsOnAuthError(t *testing.T) {
	primary := &stubProvider{name: "primary", err: &LLMError{Type: ErrorAuth, Message: "bad key"}}
	secondary := &stubProvider{name: "secondary", resp: &LLMResponse{Content: "ok"}}

	f := NewFallbackProvider(primary, secondary)
	if _, err := f.Chat(context.Background(), &ChatRequest{}); err == nil {
		t.Fatal("expected auth error to propagate")
	}
	if secondary.calls != 0 {
		t.Fatal("auth errors must not trigger fallback")
	}
}

func TestFallbackName(t *testing.T) {
	f := NewFallbackProvider(&stubProvider{name: "primary"})
	if f.Name() != "primary+fallback" {
		t.Fatalf("unexpected name %s", f.Name())
	}
}
