package tool

import (
	"context"
	"encoding/json"
	"time"
)

// TimestampTool reports the current wall-clock time.
// Models cannot know the current time; this is the canonical proof a tool ran.
type TimestampTool struct {
	now func() time.Time
}

func NewTimestampTool() *TimestampTool {
	return &TimestampTool{now: time.Now}
}

func (t *TimestampTool) Name() string { return "get_current_timestamp" }
func (t *TimestampTool) Description() string {
	return "Get the current exact timestamp in RFC 3339 format. LLMs cannot know the current time."
}

func (t *TimestampTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {}
	}`)
}

func (t *TimestampTool) Execute(_ context.Context, _ json.RawMessage) (*Result, error) {
	return &Result{Output: t.now().Format(time.RFC3339Nano)}, nil
}
