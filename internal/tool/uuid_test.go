package tool

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsVersion4(t *testing.T) {
	res, err := NewUUIDTool().Execute(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	id, err := uuid.Parse(res.Output)
	if err != nil {
		t.Fatalf("output %q is not a UUID: %v", res.Output, err)
	}
	if id.Version() != 4 {
		t.Fatalf("expected version 4, got %d", id.Version())
	}
}

func TestUUIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	u := NewUUIDTool()
	for i := 0; i < 100; i++ {
		res, err := u.Execute(context.Background(), nil)
		if err != nil {
			t.Fatal(err)
		}
		if seen[res.Output] {
			t.Fatalf("duplicate UUID %s", res.Output)
		}
		seen[res.Output] = true
	}
}
