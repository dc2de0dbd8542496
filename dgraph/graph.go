// Package dgraph defines the program's graph schema: a Node names an
// operation, an optional declared return Type, and a map of argument ports
// bound to typed literals or references; a Graph maps node-id to Node.
package dgraph

import (
	"encoding/json"
	"fmt"

	"github.com/flowdag/flowdag/dtype"
)

// reservedKeys are Node fields that are never treated as argument ports.
var reservedKeys = map[string]bool{
	"op":      true,
	"returns": true,
}

// Node is a single vertex of a program graph.
type Node struct {
	// Op is the operation name looked up in the operation registry.
	Op string

	// Returns is the node's declared output Type, if any. A nil Returns
	// means the node's "out" value is not checked against a return type.
	Returns *dtype.Type

	// Args maps port name to that port's still-undecoded JSON value. The
	// evaluator decodes each into a dvalue.TypedValue when it resolves the
	// node's arguments, so that a decode failure can be reported with
	// node/port context rather than failing the whole graph parse.
	Args map[string]json.RawMessage
}

// Graph maps node-id to Node. Node-ids are unique strings; iteration order
// is unspecified.
type Graph map[string]Node

// UnmarshalJSON decodes a node object, splitting the reserved "op"/"returns"
// fields from the open set of remaining fields, which become argument
// ports.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var opRaw struct {
		Op      string  `json:"op"`
		Returns *string `json:"returns"`
	}
	if err := json.Unmarshal(data, &opRaw); err != nil {
		return err
	}
	n.Op = opRaw.Op

	if opRaw.Returns != nil {
		t, err := dtype.Parse(*opRaw.Returns)
		if err != nil {
			return fmt.Errorf("node returns: %w", err)
		}
		n.Returns = &t
	}

	n.Args = make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		if reservedKeys[k] {
			continue
		}
		n.Args[k] = v
	}
	return nil
}

// Parse decodes a program file's top-level JSON object into a Graph.
func Parse(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse graph: %w", err)
	}
	return g, nil
}
