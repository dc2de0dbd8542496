package ops

import "testing"

func TestConstOp(t *testing.T) {
	out, err := (&ConstOp{}).Execute(map[string]any{"value": 42.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["out"] != 42.0 {
		t.Errorf("out = %v, want 42", out["out"])
	}
}

func TestConstOpMissingValue(t *testing.T) {
	if _, err := (&ConstOp{}).Execute(map[string]any{}); err == nil {
		t.Fatal("expected error for missing value")
	}
}
