// Package flowerr defines the evaluator's error taxonomy: one Go type per
// failure kind, each carrying the node/port context needed to locate the
// fault, following the *XxxError + AsXxxError(err) convention used
// throughout the rest of this codebase.
package flowerr

import (
	"errors"
	"fmt"

	"github.com/flowdag/flowdag/dtype"
)

// PlaceholderNode is the conventional node id an Operation uses when it
// has no way to know its own node's real id. The evaluator rewrites it to
// the real node-id before the error is surfaced to a caller; see WithNode.
const PlaceholderNode = "unknown"

// NodeNotFoundError reports a reference to a node absent from the graph.
type NodeNotFoundError struct {
	NodeID string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node not found: %s", e.NodeID)
}

// AsNodeNotFoundError checks if err is a NodeNotFoundError using errors.As.
func AsNodeNotFoundError(err error) (*NodeNotFoundError, bool) {
	var target *NodeNotFoundError
	return target, errors.As(err, &target)
}

// CycleDetectedError reports that a node is already on the resolution
// stack for the current top-level traversal.
type CycleDetectedError struct {
	NodeID string
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("cycle detected at node: %s", e.NodeID)
}

// AsCycleDetectedError checks if err is a CycleDetectedError using errors.As.
func AsCycleDetectedError(err error) (*CycleDetectedError, bool) {
	var target *CycleDetectedError
	return target, errors.As(err, &target)
}

// MissingInputError reports that an operation required a port absent from
// its resolved input map.
type MissingInputError struct {
	Node string
	Port string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("node %s: missing input %q", e.Node, e.Port)
}

// AsMissingInputError checks if err is a MissingInputError using errors.As.
func AsMissingInputError(err error) (*MissingInputError, bool) {
	var target *MissingInputError
	return target, errors.As(err, &target)
}

// TypeMismatchError reports that a referenced node's produced declared
// type disagrees with the consuming port's declared type.
type TypeMismatchError struct {
	Node     string
	Port     string
	Expected dtype.Type
	Actual   dtype.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("node %s, port %s: type mismatch, expected %s, got %s",
		e.Node, e.Port, e.Expected, e.Actual)
}

// AsTypeMismatchError checks if err is a TypeMismatchError using errors.As.
func AsTypeMismatchError(err error) (*TypeMismatchError, bool) {
	var target *TypeMismatchError
	return target, errors.As(err, &target)
}

// InvalidValueError reports that a literal, or an operation's produced
// output, fails to match its declared type.
type InvalidValueError struct {
	Node         string
	Port         string
	ExpectedType dtype.Type
	ActualValue  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("node %s, port %s: invalid value, expected type %s, got %s",
		e.Node, e.Port, e.ExpectedType, e.ActualValue)
}

// AsInvalidValueError checks if err is an InvalidValueError using errors.As.
func AsInvalidValueError(err error) (*InvalidValueError, bool) {
	var target *InvalidValueError
	return target, errors.As(err, &target)
}

// InvalidTypeError reports that an operation's internal type assertion on
// its resolved inputs failed, i.e. inputs were not of the shape the
// operation expects.
type InvalidTypeError struct {
	Node     string
	Expected string
	Actual   string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("node %s: invalid type, expected %s, got %s", e.Node, e.Expected, e.Actual)
}

// AsInvalidTypeError checks if err is an InvalidTypeError using errors.As.
func AsInvalidTypeError(err error) (*InvalidTypeError, bool) {
	var target *InvalidTypeError
	return target, errors.As(err, &target)
}

// OperationError reports a domain-specific failure raised by an
// operation's own logic (e.g. division by zero).
type OperationError struct {
	Node   string
	Reason string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("node %s: operation error: %s", e.Node, e.Reason)
}

// AsOperationError checks if err is an OperationError using errors.As.
func AsOperationError(err error) (*OperationError, bool) {
	var target *OperationError
	return target, errors.As(err, &target)
}

// UnknownOperationError reports a registry lookup miss.
type UnknownOperationError struct {
	Node string
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("node %s: unknown operation: %s", e.Node, e.Name)
}

// AsUnknownOperationError checks if err is an UnknownOperationError using errors.As.
func AsUnknownOperationError(err error) (*UnknownOperationError, bool) {
	var target *UnknownOperationError
	return target, errors.As(err, &target)
}

// MissingTypeAnnotationError reports that a port's TypedValue lacked a
// declared Type, or could not be decoded into a TypedValue at all.
type MissingTypeAnnotationError struct {
	Node string
	Port string
}

func (e *MissingTypeAnnotationError) Error() string {
	return fmt.Sprintf("node %s, port %s: missing type annotation", e.Node, e.Port)
}

// AsMissingTypeAnnotationError checks if err is a MissingTypeAnnotationError
// using errors.As.
func AsMissingTypeAnnotationError(err error) (*MissingTypeAnnotationError, bool) {
	var target *MissingTypeAnnotationError
	return target, errors.As(err, &target)
}

// WithNode rewrites the placeholder node identifier an operation left in
// err with the real node-id the evaluator is currently resolving. Errors
// that don't carry a placeholder Node field, or whose Node field is
// already something other than PlaceholderNode, pass through unchanged.
func WithNode(err error, nodeID string) error {
	switch e := err.(type) {
	case *MissingInputError:
		if e.Node == PlaceholderNode {
			return &MissingInputError{Node: nodeID, Port: e.Port}
		}
	case *InvalidTypeError:
		if e.Node == PlaceholderNode {
			return &InvalidTypeError{Node: nodeID, Expected: e.Expected, Actual: e.Actual}
		}
	case *OperationError:
		if e.Node == PlaceholderNode {
			return &OperationError{Node: nodeID, Reason: e.Reason}
		}
	case *UnknownOperationError:
		if e.Node == PlaceholderNode {
			return &UnknownOperationError{Node: nodeID, Name: e.Name}
		}
	}
	return err
}
