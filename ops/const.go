package ops

import "github.com/flowdag/flowdag/opregistry"

func init() {
	opregistry.MustRegister("Const", func() opregistry.Operation { return &ConstOp{} })
}

// ConstOp is the identity operation: it passes its "value" input through
// unchanged on "out".
type ConstOp struct{}

// Execute implements opregistry.Operation.
func (c *ConstOp) Execute(inputs map[string]any) (map[string]any, error) {
	v, err := requireInput(inputs, "value")
	if err != nil {
		return nil, err
	}
	return map[string]any{"out": v}, nil
}
