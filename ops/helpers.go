// Package ops implements the built-in operations: Const, Print, the
// arithmetic and comparison family, Switch, Len, and the higher-order
// Map/Reduce/Filter trio. Each registers itself with opregistry.Default
// from an init() function, the same per-builtin self-registration
// convention used throughout this codebase.
package ops

import (
	"fmt"

	"github.com/flowdag/flowdag/flowerr"
)

// requireInput fetches port from inputs, failing with MissingInputError
// (under the placeholder node id the evaluator will rewrite) if absent.
func requireInput(inputs map[string]any, port string) (any, error) {
	v, ok := inputs[port]
	if !ok {
		return nil, &flowerr.MissingInputError{Node: flowerr.PlaceholderNode, Port: port}
	}
	return v, nil
}

// requireFloat fetches a Number-typed port.
func requireFloat(inputs map[string]any, port string) (float64, error) {
	v, err := requireInput(inputs, port)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, &flowerr.InvalidTypeError{
			Node:     flowerr.PlaceholderNode,
			Expected: "Number",
			Actual:   fmt.Sprintf("%T", v),
		}
	}
	return f, nil
}

// requireArray fetches an Array-typed port.
func requireArray(inputs map[string]any, port string) ([]any, error) {
	v, err := requireInput(inputs, port)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &flowerr.InvalidTypeError{
			Node:     flowerr.PlaceholderNode,
			Expected: "Array",
			Actual:   fmt.Sprintf("%T", v),
		}
	}
	return arr, nil
}

// requireString fetches a String-typed port.
func requireString(inputs map[string]any, port string) (string, error) {
	v, err := requireInput(inputs, port)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &flowerr.InvalidTypeError{
			Node:     flowerr.PlaceholderNode,
			Expected: "String",
			Actual:   fmt.Sprintf("%T", v),
		}
	}
	return s, nil
}
