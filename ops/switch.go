package ops

import (
	"fmt"

	"github.com/flowdag/flowdag/flowerr"
	"github.com/flowdag/flowdag/opregistry"
)

func init() {
	opregistry.MustRegister("Switch", func() opregistry.Operation { return &SwitchOp{} })
}

// SwitchOp has two modes selected by which ports are present: branch
// selection (both "true" and "false" bound) or routing (a "data" port
// that is echoed onto "true"/"false"/"out" depending on "cond").
type SwitchOp struct{}

// Execute implements opregistry.Operation.
func (s *SwitchOp) Execute(inputs map[string]any) (map[string]any, error) {
	condRaw, err := requireInput(inputs, "cond")
	if err != nil {
		return nil, err
	}
	cond, ok := condRaw.(bool)
	if !ok {
		return nil, &flowerr.InvalidTypeError{
			Node:     flowerr.PlaceholderNode,
			Expected: "Boolean",
			Actual:   fmt.Sprintf("%T", condRaw),
		}
	}

	trueVal, hasTrue := inputs["true"]
	falseVal, hasFalse := inputs["false"]
	if hasTrue && hasFalse {
		if cond {
			return map[string]any{"out": trueVal}, nil
		}
		return map[string]any{"out": falseVal}, nil
	}

	data, err := requireInput(inputs, "data")
	if err != nil {
		return nil, err
	}
	if cond {
		return map[string]any{"out": data, "true": data}, nil
	}
	return map[string]any{"out": data, "false": data}, nil
}
