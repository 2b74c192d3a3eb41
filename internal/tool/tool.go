package tool

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool is the interface for agent tools.
type Tool interface {
	Name() string
	Description() string
	Parameters() json.RawMessage // JSON Schema
	Execute(ctx context.Context, args json.RawMessage) (*Result, error)
}

// Result is the output of a tool execution. Invalid input is reported through
// Error/IsError rather than a Go error: the dispatch loop relays it to the
// model as an ordinary string, and the call itself is considered successful.
type Result struct {
	Output  string `json:"output"`
	Error   string `json:"error,omitempty"`
	IsError bool   `json:"is_error"`
}

// Errorf builds a soft-error Result.
func Errorf(format string, args ...any) *Result {
	return &Result{Error: fmt.Sprintf(format, args...), IsError: true}
}
