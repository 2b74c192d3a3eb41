package tool

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"math/big"
)

// RandomNumberTool generates a uniform random integer in an inclusive range.
type RandomNumberTool struct{}

func NewRandomNumberTool() *RandomNumberTool {
	return &RandomNumberTool{}
}

func (t *RandomNumberTool) Name() string { return "generate_random_number" }
func (t *RandomNumberTool) Description() string {
	return "Generate a truly random number between min_val and max_val (inclusive). LLMs cannot generate true randomness."
}

func (t *RandomNumberTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"min_val": {
				"type": "integer",
				"description": "Lower bound (inclusive)"
			},
			"max_val": {
				"type": "integer",
				"description": "Upper bound (inclusive)"
			}
		},
		"required": ["min_val", "max_val"]
	}`)
}

func (t *RandomNumberTool) Execute(_ context.Context, args json.RawMessage) (*Result, error) {
	var params struct {
		Min int64 `json:"min_val"`
		Max int64 `json:"max_val"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Errorf("invalid arguments: %v", err), nil
	}

	if params.Min > params.Max {
		return Errorf("invalid range: min_val (%d) is greater than max_val (%d)", params.Min, params.Max), nil
	}

	// The span max-min+1 can exceed int64 for wide ranges, so the whole
	// computation stays in big.Int. rand.Int is uniform over [0, span);
	// adding min shifts the draw into [min, max].
	min := new(big.Int).SetInt64(params.Min)
	span := new(big.Int).SetInt64(params.Max)
	span.Sub(span, min)
	span.Add(span, big.NewInt(1))

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return Errorf("random source failure: %v", err), nil
	}

	return &Result{Output: n.Add(n, min).String()}, nil
}
