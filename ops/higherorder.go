package ops

import (
	"github.com/flowdag/flowdag/flowerr"
	"github.com/flowdag/flowdag/opregistry"
)

func init() {
	opregistry.MustRegister("Map", func() opregistry.Operation { return &MapOp{} })
	opregistry.MustRegister("Reduce", func() opregistry.Operation { return &ReduceOp{} })
	opregistry.MustRegister("Filter", func() opregistry.Operation { return &FilterOp{} })
}

// lookupOp fetches a fresh instance of the named operation from the process
// registry, never the evaluator: inner calls made by Map/Reduce/Filter must
// not touch the graph cache, the visiting set, or the type cache.
func lookupOp(name string) (opregistry.Operation, error) {
	op, ok := opregistry.Get(name)
	if !ok {
		return nil, &flowerr.UnknownOperationError{Node: flowerr.PlaceholderNode, Name: name}
	}
	return op, nil
}

// paramsOverlay returns a copy of params (or an empty map if absent/not an
// object) with key set to value, the item key taking precedence.
func paramsOverlay(inputs map[string]any, key string, value any) map[string]any {
	out := map[string]any{}
	if raw, ok := inputs["params"]; ok {
		if m, ok := raw.(map[string]any); ok {
			for k, v := range m {
				out[k] = v
			}
		}
	}
	out[key] = value
	return out
}

// MapOp applies apply_op to every element of list, overlaying {arg: element}
// on top of the static params map, and collects the "out" values in order.
type MapOp struct{}

// Execute implements opregistry.Operation.
func (m *MapOp) Execute(inputs map[string]any) (map[string]any, error) {
	list, err := requireArray(inputs, "list")
	if err != nil {
		return nil, err
	}
	applyOp, err := requireString(inputs, "apply_op")
	if err != nil {
		return nil, err
	}
	argKey := "in"
	if v, ok := inputs["arg"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, &flowerr.InvalidTypeError{Node: flowerr.PlaceholderNode, Expected: "String", Actual: "non-string"}
		}
		argKey = s
	}

	op, err := lookupOp(applyOp)
	if err != nil {
		return nil, err
	}

	result := make([]any, len(list))
	for i, elem := range list {
		callInputs := paramsOverlay(inputs, argKey, elem)
		out, err := op.Execute(callInputs)
		if err != nil {
			return nil, err
		}
		v, ok := out["out"]
		if !ok {
			v = nil
		}
		result[i] = v
	}
	return map[string]any{"out": result}, nil
}

// ReduceOp folds apply_op over list starting from initial, threading the
// accumulator through acc_arg (default "a") and the element through
// item_arg (default "b").
type ReduceOp struct{}

// Execute implements opregistry.Operation.
func (r *ReduceOp) Execute(inputs map[string]any) (map[string]any, error) {
	list, err := requireArray(inputs, "list")
	if err != nil {
		return nil, err
	}
	applyOp, err := requireString(inputs, "apply_op")
	if err != nil {
		return nil, err
	}
	initial, err := requireInput(inputs, "initial")
	if err != nil {
		return nil, err
	}
	accArg := stringOrDefault(inputs, "acc_arg", "a")
	itemArg := stringOrDefault(inputs, "item_arg", "b")

	op, err := lookupOp(applyOp)
	if err != nil {
		return nil, err
	}

	acc := initial
	for _, elem := range list {
		callInputs := map[string]any{accArg: acc, itemArg: elem}
		out, err := op.Execute(callInputs)
		if err != nil {
			return nil, err
		}
		v, ok := out["out"]
		if !ok {
			v = nil
		}
		acc = v
	}
	return map[string]any{"out": acc}, nil
}

// FilterOp applies apply_op to every element of list and keeps only those
// for which it returns a truthy boolean "out".
type FilterOp struct{}

// Execute implements opregistry.Operation.
func (f *FilterOp) Execute(inputs map[string]any) (map[string]any, error) {
	list, err := requireArray(inputs, "list")
	if err != nil {
		return nil, err
	}
	applyOp, err := requireString(inputs, "apply_op")
	if err != nil {
		return nil, err
	}
	argKey := stringOrDefault(inputs, "arg", "a")

	op, err := lookupOp(applyOp)
	if err != nil {
		return nil, err
	}

	result := make([]any, 0, len(list))
	for _, elem := range list {
		callInputs := paramsOverlay(inputs, argKey, elem)
		out, err := op.Execute(callInputs)
		if err != nil {
			return nil, err
		}
		keep, _ := out["out"].(bool)
		if keep {
			result = append(result, elem)
		}
	}
	return map[string]any{"out": result}, nil
}

// stringOrDefault reads a string-valued input, falling back to def when the
// port is absent.
func stringOrDefault(inputs map[string]any, port, def string) string {
	v, ok := inputs[port]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}
