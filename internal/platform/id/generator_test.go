package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewUUIDGenerator()
	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("generate id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("generate id: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got=%s twice", first)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected uuid formatted id, got=%s: %v", first, err)
	}
}
