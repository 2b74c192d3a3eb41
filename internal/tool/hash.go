package tool

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashTool computes cryptographic digests of text.
type HashTool struct{}

func NewHashTool() *HashTool {
	return &HashTool{}
}

func (t *HashTool) Name() string { return "hash_string" }
func (t *HashTool) Description() string {
	return "Hash a string using the specified algorithm (md5, sha1, sha256, sha512). Defaults to sha256. LLMs cannot compute actual cryptographic hashes."
}

func (t *HashTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"text": {
				"type": "string",
				"description": "The text to hash"
			},
			"algorithm": {
				"type": "string",
				"enum": ["md5", "sha1", "sha256", "sha512"],
				"description": "Hash algorithm (default sha256)"
			}
		},
		"required": ["text"]
	}`)
}

func (t *HashTool) Execute(_ context.Context, args json.RawMessage) (*Result, error) {
	var params struct {
		Text      string `json:"text"`
		Algorithm string `json:"algorithm"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Errorf("invalid arguments: %v", err), nil
	}

	if params.Algorithm == "" {
		params.Algorithm = "sha256"
	}

	data := []byte(params.Text)
	var sum []byte
	switch params.Algorithm {
	case "md5":
		h := md5.Sum(data)
		sum = h[:]
	case "sha1":
		h := sha1.Sum(data)
		sum = h[:]
	case "sha256":
		h := sha256.Sum256(data)
		sum = h[:]
	case "sha512":
		h := sha512.Sum512(data)
		sum = h[:]
	default:
		// Relayed to the model verbatim, so phrased for it rather than failing the call.
		return &Result{
			Output: fmt.Sprintf("Unsupported algorithm: %s. Use md5, sha1, sha256, or sha512.", params.Algorithm),
		}, nil
	}

	return &Result{Output: hex.EncodeToString(sum)}, nil
}
