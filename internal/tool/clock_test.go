package tool

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampFormat(t *testing.T) {
	res, err := NewTimestampTool().Execute(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected error: %s", res.Error)
	}
	if _, err := time.Parse(time.RFC3339Nano, res.Output); err != nil {
		t.Fatalf("output %q is not RFC 3339: %v", res.Output, err)
	}
}

func TestTimestampAdvances(t *testing.T) {
	clock := NewTimestampTool()
	base := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	ticks := 0
	clock.now = func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * 3 * time.Second)
	}

	first, _ := clock.Execute(context.Background(), nil)
	second, _ := clock.Execute(context.Background(), nil)

	if first.Output == second.Output {
		t.Fatalf("sequential reads returned identical timestamps: %s", first.Output)
	}

	t1, _ := time.Parse(time.RFC3339Nano, first.Output)
	t2, _ := time.Parse(time.RFC3339Nano, second.Output)
	if !t2.After(t1) {
		t.Fatalf("timestamps not strictly increasing: %s then %s", first.Output, second.Output)
	}
}
