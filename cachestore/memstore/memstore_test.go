package memstore

import (
	"context"
	"testing"

	"github.com/flowdag/flowdag/cachestore"
)

func TestSaveThenLoad(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Save(ctx, "g1", "n1", cachestore.Entry{Value: 5.0, RunID: "r1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err := s.Load(ctx, "g1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if entries["n1"].Value != 5.0 {
		t.Errorf("Value = %v, want 5.0", entries["n1"].Value)
	}
}

func TestLoadUnknownGraphIsEmpty(t *testing.T) {
	s := New()
	entries, err := s.Load(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}

func TestGraphsAreIsolated(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.Save(ctx, "g1", "n1", cachestore.Entry{Value: 1.0})
	s.Save(ctx, "g2", "n1", cachestore.Entry{Value: 2.0})

	e1, _ := s.Load(ctx, "g1")
	e2, _ := s.Load(ctx, "g2")
	if e1["n1"].Value != 1.0 || e2["n1"].Value != 2.0 {
		t.Errorf("cross-graph contamination: g1=%v g2=%v", e1, e2)
	}
}
