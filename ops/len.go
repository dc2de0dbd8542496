package ops

import "github.com/flowdag/flowdag/opregistry"

func init() {
	opregistry.MustRegister("Len", func() opregistry.Operation { return &LenOp{} })
}

// LenOp returns the element count of its "list" input.
type LenOp struct{}

// Execute implements opregistry.Operation.
func (l *LenOp) Execute(inputs map[string]any) (map[string]any, error) {
	list, err := requireArray(inputs, "list")
	if err != nil {
		return nil, err
	}
	return map[string]any{"out": float64(len(list))}, nil
}
