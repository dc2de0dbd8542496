package ops

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/flowdag/flowdag/flowerr"
	"github.com/flowdag/flowdag/opregistry"
)

func init() {
	opregistry.MustRegister("Print", func() opregistry.Operation { return &PrintOp{} })
}

// Stdout is where PrintOp writes its "OUTPUT: <json>" lines. Tests
// substitute a buffer; production code leaves it as os.Stdout.
var Stdout io.Writer = os.Stdout

// PrintOp writes its "in" input to Stdout as "OUTPUT: <json>" and passes it
// through unchanged on "out".
type PrintOp struct{}

// Execute implements opregistry.Operation.
func (p *PrintOp) Execute(inputs map[string]any) (map[string]any, error) {
	v, err := requireInput(inputs, "in")
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &flowerr.OperationError{Node: flowerr.PlaceholderNode, Reason: err.Error()}
	}
	fmt.Fprintf(Stdout, "OUTPUT: %s\n", b)
	return map[string]any{"out": v}, nil
}
