package tool

import (
	"context"
	"encoding/json"
	"fmt"
)

var byteUnits = []string{"bytes", "KB", "MB", "GB", "TB", "PB"}

// ByteSizeTool converts raw byte counts to a human-readable size.
type ByteSizeTool struct{}

func NewByteSizeTool() *ByteSizeTool {
	return &ByteSizeTool{}
}

func (t *ByteSizeTool) Name() string { return "calculate_file_size" }
func (t *ByteSizeTool) Description() string {
	return "Convert bytes to human-readable format (KB, MB, GB, TB). Returns exact conversions that require precise computation."
}

func (t *ByteSizeTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"size_bytes": {
				"type": "integer",
				"description": "Size in bytes"
			}
		},
		"required": ["size_bytes"]
	}`)
}

func (t *ByteSizeTool) Execute(_ context.Context, args json.RawMessage) (*Result, error) {
	var params struct {
		SizeBytes int64 `json:"size_bytes"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Errorf("invalid arguments: %v", err), nil
	}

	return &Result{Output: FormatByteSize(params.SizeBytes)}, nil
}

// FormatByteSize scales a byte count into the largest unit that keeps the
// value under 1024 (PB values may exceed it), rounded to two decimals.
func FormatByteSize(sizeBytes int64) string {
	size := float64(sizeBytes)
	unit := 0
	for size >= 1024.0 && unit < len(byteUnits)-1 {
		size /= 1024.0
		unit++
	}
	return fmt.Sprintf("%.2f %s", size, byteUnits[unit])
}
