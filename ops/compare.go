package ops

import (
	"fmt"
	"reflect"

	"github.com/flowdag/flowdag/flowerr"
	"github.com/flowdag/flowdag/opregistry"
)

func init() {
	opregistry.MustRegister("Eq", func() opregistry.Operation { return &EqOp{} })
	opregistry.MustRegister("Gt", func() opregistry.Operation { return &GtOp{} })
	opregistry.MustRegister("Lt", func() opregistry.Operation { return &LtOp{} })
}

// bothNumbers reports whether a and b are both JSON numbers, returning them
// as float64 alongside the flag.
func bothNumbers(a, b any) (fa, fb float64, ok bool) {
	fa, aok := a.(float64)
	fb, bok := b.(float64)
	return fa, fb, aok && bok
}

// EqOp compares a and b for equality: numeric pairs compare as doubles,
// everything else falls back to structural JSON equality.
type EqOp struct{}

// Execute implements opregistry.Operation.
func (o *EqOp) Execute(inputs map[string]any) (map[string]any, error) {
	a, err := requireInput(inputs, "a")
	if err != nil {
		return nil, err
	}
	b, err := requireInput(inputs, "b")
	if err != nil {
		return nil, err
	}
	if fa, fb, ok := bothNumbers(a, b); ok {
		return map[string]any{"out": fa == fb}, nil
	}
	return map[string]any{"out": reflect.DeepEqual(a, b)}, nil
}

// GtOp reports whether a > b; both must be JSON numbers.
type GtOp struct{}

// Execute implements opregistry.Operation.
func (o *GtOp) Execute(inputs map[string]any) (map[string]any, error) {
	a, b, err := numericOperands(inputs)
	if err != nil {
		return nil, err
	}
	return map[string]any{"out": a > b}, nil
}

// LtOp reports whether a < b; both must be JSON numbers.
type LtOp struct{}

// Execute implements opregistry.Operation.
func (o *LtOp) Execute(inputs map[string]any) (map[string]any, error) {
	a, b, err := numericOperands(inputs)
	if err != nil {
		return nil, err
	}
	return map[string]any{"out": a < b}, nil
}

// numericOperands fetches a and b and requires both to be JSON numbers,
// as Gt/Lt do not fall back to structural comparison the way Eq does.
func numericOperands(inputs map[string]any) (a, b float64, err error) {
	rawA, err := requireInput(inputs, "a")
	if err != nil {
		return 0, 0, err
	}
	rawB, err := requireInput(inputs, "b")
	if err != nil {
		return 0, 0, err
	}
	fa, fb, ok := bothNumbers(rawA, rawB)
	if !ok {
		return 0, 0, &flowerr.InvalidTypeError{
			Node:     flowerr.PlaceholderNode,
			Expected: "Number",
			Actual:   fmt.Sprintf("%T, %T", rawA, rawB),
		}
	}
	return fa, fb, nil
}
