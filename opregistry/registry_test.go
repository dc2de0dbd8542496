package opregistry

import "testing"

type countingOp struct {
	calls *int
}

func (c *countingOp) Execute(inputs map[string]any) (map[string]any, error) {
	*c.calls++
	return map[string]any{"out": inputs["x"]}, nil
}

func TestRegisterAndGetFreshInstance(t *testing.T) {
	r := NewRegistry()
	calls := 0
	if err := r.Register("count", func() Operation { return &countingOp{calls: &calls} }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	op1, ok := r.Get("count")
	if !ok {
		t.Fatal("expected operation to be found")
	}
	op2, ok := r.Get("count")
	if !ok {
		t.Fatal("expected operation to be found")
	}
	if op1 == op2 {
		t.Error("Get should return a fresh instance each call")
	}
}

func TestRegisterDuplicateFails(t *testing.T) {
	r := NewRegistry()
	noop := func() Operation { return &countingOp{calls: new(int)} }
	if err := r.Register("x", noop); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register("x", noop); err == nil {
		t.Error("expected error registering duplicate name")
	}
}

func TestGetUnknown(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Get("missing"); ok {
		t.Error("expected ok=false for unregistered name")
	}
}

func TestHasAndList(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("a", func() Operation { return &countingOp{calls: new(int)} })
	if !r.Has("a") {
		t.Error("Has(a) = false, want true")
	}
	if r.Has("b") {
		t.Error("Has(b) = true, want false")
	}
	if names := r.List(); len(names) != 1 || names[0] != "a" {
		t.Errorf("List() = %v, want [a]", names)
	}
}
