package store

import (
	"context"
	"time"
)

// Record captures one completed agent invocation.
type Record struct {
	ID        int64         `json:"id"`
	SessionID string        `json:"session_id"`
	Prompt    string        `json:"prompt"`
	Result    string        `json:"result"`
	ToolsUsed []string      `json:"tools_used,omitempty"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store is the interface for persistent invocation logging.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
	Close() error
}
