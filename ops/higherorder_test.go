package ops

import (
	"reflect"
	"testing"
)

func TestMapWithStaticParams(t *testing.T) {
	out, err := (&MapOp{}).Execute(map[string]any{
		"list":     []any{1.0, 2.0, 3.0},
		"apply_op": "Add",
		"arg":      "a",
		"params":   map[string]any{"b": 10.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{11.0, 12.0, 13.0}
	if !reflect.DeepEqual(out["out"], want) {
		t.Errorf("out = %v, want %v", out["out"], want)
	}
}

func TestMapDefaultArgKey(t *testing.T) {
	out, err := (&MapOp{}).Execute(map[string]any{
		"list":     []any{"hi"},
		"apply_op": "Print",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{"hi"}
	if !reflect.DeepEqual(out["out"], want) {
		t.Errorf("out = %v, want %v", out["out"], want)
	}
}

func TestFilterKeepsTruthy(t *testing.T) {
	out, err := (&FilterOp{}).Execute(map[string]any{
		"list":     []any{1.0, 2.0, 3.0},
		"apply_op": "Gt",
		"arg":      "a",
		"params":   map[string]any{"b": 1.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{2.0, 3.0}
	if !reflect.DeepEqual(out["out"], want) {
		t.Errorf("out = %v, want %v", out["out"], want)
	}
}

func TestFilterDefaultArgKey(t *testing.T) {
	out, err := (&FilterOp{}).Execute(map[string]any{
		"list":     []any{1.0, 2.0, 3.0},
		"apply_op": "Gt",
		"params":   map[string]any{"b": 1.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{2.0, 3.0}
	if !reflect.DeepEqual(out["out"], want) {
		t.Errorf("out = %v, want %v", out["out"], want)
	}
}

func TestReduceSum(t *testing.T) {
	out, err := (&ReduceOp{}).Execute(map[string]any{
		"list":     []any{1.0, 2.0, 3.0, 4.0},
		"apply_op": "Add",
		"initial":  0.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["out"] != 10.0 {
		t.Errorf("out = %v, want 10", out["out"])
	}
}

func TestReduceCustomArgNames(t *testing.T) {
	out, err := (&ReduceOp{}).Execute(map[string]any{
		"list":     []any{1.0, 2.0},
		"apply_op": "Sub",
		"initial":  10.0,
		"acc_arg":  "b",
		"item_arg": "a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Sub computes a - b = item - acc: 1 - 10 = -9, then 2 - (-9) = 11.
	if out["out"] != 11.0 {
		t.Errorf("out = %v, want 11", out["out"])
	}
}

func TestMapUnknownOpFails(t *testing.T) {
	_, err := (&MapOp{}).Execute(map[string]any{
		"list":     []any{1.0},
		"apply_op": "NoSuchOp",
	})
	if err == nil {
		t.Fatal("expected error for unknown apply_op")
	}
}
