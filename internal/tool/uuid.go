package tool

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// UUIDTool generates fresh version-4 identifiers.
type UUIDTool struct{}

func NewUUIDTool() *UUIDTool {
	return &UUIDTool{}
}

func (t *UUIDTool) Name() string { return "generate_uuid" }
func (t *UUIDTool) Description() string {
	return "Generate a unique UUID (version 4). LLMs cannot create valid random UUIDs."
}

func (t *UUIDTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {}
	}`)
}

func (t *UUIDTool) Execute(_ context.Context, _ json.RawMessage) (*Result, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Errorf("uuid generation failed: %v", err), nil
	}
	return &Result{Output: id.String()}, nil
}
