package ops

import (
	"github.com/flowdag/flowdag/flowerr"
	"github.com/flowdag/flowdag/opregistry"
)

func init() {
	opregistry.MustRegister("Add", func() opregistry.Operation { return &AddOp{} })
	opregistry.MustRegister("Sub", func() opregistry.Operation { return &SubOp{} })
	opregistry.MustRegister("Mul", func() opregistry.Operation { return &MulOp{} })
	opregistry.MustRegister("Div", func() opregistry.Operation { return &DivOp{} })
}

func arithmeticOperands(inputs map[string]any) (a, b float64, err error) {
	a, err = requireFloat(inputs, "a")
	if err != nil {
		return 0, 0, err
	}
	b, err = requireFloat(inputs, "b")
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// AddOp computes a + b in double precision.
type AddOp struct{}

// Execute implements opregistry.Operation.
func (o *AddOp) Execute(inputs map[string]any) (map[string]any, error) {
	a, b, err := arithmeticOperands(inputs)
	if err != nil {
		return nil, err
	}
	return map[string]any{"out": a + b}, nil
}

// SubOp computes a - b in double precision.
type SubOp struct{}

// Execute implements opregistry.Operation.
func (o *SubOp) Execute(inputs map[string]any) (map[string]any, error) {
	a, b, err := arithmeticOperands(inputs)
	if err != nil {
		return nil, err
	}
	return map[string]any{"out": a - b}, nil
}

// MulOp computes a * b in double precision.
type MulOp struct{}

// Execute implements opregistry.Operation.
func (o *MulOp) Execute(inputs map[string]any) (map[string]any, error) {
	a, b, err := arithmeticOperands(inputs)
	if err != nil {
		return nil, err
	}
	return map[string]any{"out": a * b}, nil
}

// DivOp computes a / b in double precision; dividing by zero is an
// OperationError rather than producing +Inf/NaN.
type DivOp struct{}

// Execute implements opregistry.Operation.
func (o *DivOp) Execute(inputs map[string]any) (map[string]any, error) {
	a, b, err := arithmeticOperands(inputs)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, &flowerr.OperationError{Node: flowerr.PlaceholderNode, Reason: "Division by zero"}
	}
	return map[string]any{"out": a / b}, nil
}
