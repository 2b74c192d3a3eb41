package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"toolbridge/internal/store"
)

// fakeInvoker echoes the prompt or fails on demand.
type fakeInvoker struct {
	err        error
	lastPrompt string
	lastSessID string
}

func (f *fakeInvoker) Invoke(_ context.Context, sessionID, prompt string) (string, error) {
	f.lastPrompt = prompt
	f.lastSessID = sessionID
	if f.err != nil {
		return "", f.err
	}
	return "echo: " + prompt, nil
}

func postInvocation(t *testing.T, s *Server, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/invocations", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)
	return rr
}

func decodeResult(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp invocationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not a result payload: %v", err)
	}
	return resp.Result
}

func TestInvocationRoundTrip(t *testing.T) {
	inv := &fakeInvoker{}
	s := New("127.0.0.1", 0, inv, nil)

	rr := postInvocation(t, s, `{"prompt":"What time is it?"}`, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := decodeResult(t, rr); got != "echo: What time is it?" {
		t.Fatalf("unexpected result %q", got)
	}
	if inv.lastSessID == "" {
		t.Fatal("expected a minted session id")
	}
}

func TestInvocationDefaultGreeting(t *testing.T) {
	for _, body := range []string{"", "{}", `{"prompt":""}`} {
		inv := &fakeInvoker{}
		s := New("127.0.0.1", 0, inv, nil)

		rr := postInvocation(t, s, body, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("body %q: expected 200, got %d", body, rr.Code)
		}
		if inv.lastPrompt != DefaultPrompt {
			t.Fatalf("body %q: expected default greeting, got %q", body, inv.lastPrompt)
		}
	}
}

func TestInvocationSessionHeader(t *testing.T) {
	inv := &fakeInvoker{}
	s := New("127.0.0.1", 0, inv, nil)

	postInvocation(t, s, `{"prompt":"hi"}`, map[string]string{"X-Session-ID": "session-7"})
	if inv.lastSessID != "session-7" {
		t.Fatalf("session header ignored: %q", inv.lastSessID)
	}
}

func TestInvocationErrorBecomesResultPayload(t *testing.T) {
	inv := &fakeInvoker{err: errors.New("model unavailable")}
	s := New("127.0.0.1", 0, inv, nil)

	rr := postInvocation(t, s, `{"prompt":"hi"}`, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("errors must still be well-formed responses, got %d", rr.Code)
	}
	if got := decodeResult(t, rr); got != "Error: model unavailable" {
		t.Fatalf("unexpected error result %q", got)
	}
}

func TestInvocationMalformedBody(t *testing.T) {
	s := New("127.0.0.1", 0, &fakeInvoker{}, nil)

	rr := postInvocation(t, s, `{"prompt":`, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := decodeResult(t, rr); !strings.HasPrefix(got, "Error: invalid request body") {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestInvocationMethodNotAllowed(t *testing.T) {
	s := New("127.0.0.1", 0, &fakeInvoker{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/invocations", nil)
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestPing(t *testing.T) {
	s := New("127.0.0.1", 0, &fakeInvoker{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

type fakeStore struct {
	records []store.Record
}

func (f *fakeStore) Save(_ context.Context, rec store.Record) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeStore) Recent(_ context.Context, limit int) ([]store.Record, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	return f.records[:limit], nil
}

func (f *fakeStore) Close() error { return nil }

func TestRecentInvocations(t *testing.T) {
	st := &fakeStore{records: []store.Record{
		{SessionID: "s1", Prompt: "p", Result: "r", CreatedAt: time.Now()},
	}}
	s := New("127.0.0.1", 0, &fakeInvoker{}, st)

	req := httptest.NewRequest(http.MethodGet, "/invocations/recent?limit=5", nil)
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var records []store.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].SessionID != "s1" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestRecentWithoutStore(t *testing.T) {
	s := New("127.0.0.1", 0, &fakeInvoker{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/invocations/recent", nil)
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
