// Package dvalue implements TypedValue, the sum of the two port-binding
// shapes a flowdag node argument can take: a typed inline literal, or a
// typed reference to another node's "out" port.
package dvalue

import (
	"encoding/json"
	"errors"

	"github.com/flowdag/flowdag/dtype"
)

// Shape discriminates the two TypedValue variants.
type Shape int

const (
	// Literal carries a raw JSON value alongside its declared Type.
	Literal Shape = iota
	// Reference carries a node-id whose "out" port supplies the value.
	Reference
)

// TypedValue is a port binding: either an inline Literal or a Reference to
// another node's output, each declaring the Type expected at this port.
type TypedValue struct {
	Shape Shape

	// Declared is the expected Type for this port. Every TypedValue must
	// carry one; ErrMissingType reports when the surface form omitted it.
	Declared dtype.Type

	// Raw holds the literal JSON value when Shape == Literal.
	Raw any

	// NodeID holds the referenced node id when Shape == Reference.
	NodeID string
}

// ErrMissingType reports that a port's surface form omitted the required
// "type" field, or that its value could not be decoded into a TypedValue
// shape at all.
var ErrMissingType = errors.New("typed value missing declared type")

// wireForm mirrors the two admissible JSON shapes from the program file
// format: {"ref": "...", "type": "..."} or {"literal": <any>, "type": "..."}.
type wireForm struct {
	Ref     *string         `json:"ref"`
	Literal json.RawMessage `json:"literal"`
	Type    *string         `json:"type"`
}

// Decode parses a single port's JSON value into a TypedValue. It returns
// ErrMissingType if the shape doesn't match either admissible form or the
// "type" field is absent/unparseable.
func Decode(raw json.RawMessage) (TypedValue, error) {
	var w wireForm
	if err := json.Unmarshal(raw, &w); err != nil {
		return TypedValue{}, ErrMissingType
	}
	if w.Type == nil {
		return TypedValue{}, ErrMissingType
	}
	declared, err := dtype.Parse(*w.Type)
	if err != nil {
		return TypedValue{}, ErrMissingType
	}

	switch {
	case w.Ref != nil:
		return TypedValue{Shape: Reference, Declared: declared, NodeID: *w.Ref}, nil
	case w.Literal != nil:
		var v any
		if err := json.Unmarshal(w.Literal, &v); err != nil {
			return TypedValue{}, ErrMissingType
		}
		return TypedValue{Shape: Literal, Declared: declared, Raw: v}, nil
	default:
		return TypedValue{}, ErrMissingType
	}
}
