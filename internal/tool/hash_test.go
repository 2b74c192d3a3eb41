package tool

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func execHash(t *testing.T, args string) *Result {
	t.Helper()
	res, err := NewHashTool().Execute(context.Background(), json.RawMessage(args))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestHashKnownDigests(t *testing.T) {
	cases := []struct {
		algorithm string
		want      string
	}{
		{"md5", "5d41402abc4b2a76b9719d911017c592"},
		{"sha1", "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{"sha256", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{"sha512", "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca72323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043"},
	}

	for _, tc := range cases {
		res := execHash(t, `{"text":"hello","algorithm":"`+tc.algorithm+`"}`)
		if res.IsError {
			t.Fatalf("%s: unexpected error: %s", tc.algorithm, res.Error)
		}
		if res.Output != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.algorithm, tc.want, res.Output)
		}
	}
}

func TestHashDeterminism(t *testing.T) {
	first := execHash(t, `{"text":"determinism check"}`)
	second := execHash(t, `{"text":"determinism check"}`)
	if first.Output != second.Output {
		t.Fatalf("same input hashed differently: %s vs %s", first.Output, second.Output)
	}
}

func TestHashDefaultsToSHA256(t *testing.T) {
	implicit := execHash(t, `{"text":"hello"}`)
	explicit := execHash(t, `{"text":"hello","algorithm":"sha256"}`)
	if implicit.Output != explicit.Output {
		t.Fatalf("default algorithm is not sha256: %s", implicit.Output)
	}
}

func TestHashUnsupportedAlgorithm(t *testing.T) {
	res := execHash(t, `{"text":"hello","algorithm":"crc32"}`)
	// Deliberately a plain output, not IsError: the string is the answer the
	// model is expected to relay.
	if res.IsError {
		t.Fatal("unsupported algorithm should not be a hard error")
	}
	if !strings.Contains(res.Output, "Unsupported algorithm: crc32") {
		t.Fatalf("expected output naming the unsupported algorithm, got %s", res.Output)
	}
}
