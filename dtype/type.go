// Package dtype implements the closed type system that annotates every
// node port and return value in a flowdag program: Number, String, Boolean,
// Unit, Any, and Array<T>. A Type is a structural predicate over decoded
// JSON values (float64, string, bool, nil, []any, map[string]any), not a
// runtime tag carried by the value itself — see Type.Matches.
package dtype

import "strings"

// Kind discriminates the closed set of surface types.
type Kind int

// The closed set of kinds. There is no provision for adding more: callers
// that need a new shape wrap Any and validate it themselves.
const (
	Number Kind = iota
	String
	Boolean
	Unit
	Any
	Array
)

// Type is a structural type: a leaf kind, or Array wrapping an element Type.
// The zero value has kind Number and equals TNumber; obtain other Types via
// the package constants, ArrayOf, or Parse.
type Type struct {
	kind Kind
	elem *Type
}

// Leaf type values. These are safe to copy and compare with Equal.
var (
	TNumber  = Type{kind: Number}
	TString  = Type{kind: String}
	TBoolean = Type{kind: Boolean}
	TUnit    = Type{kind: Unit}
	TAny     = Type{kind: Any}
)

// ArrayOf builds the type Array<elem>.
func ArrayOf(elem Type) Type {
	e := elem
	return Type{kind: Array, elem: &e}
}

// Kind reports the top-level discriminator of t.
func (t Type) Kind() Kind { return t.kind }

// Elem reports the element type of an Array type. It panics if t is not
// Array; callers should check Kind() first.
func (t Type) Elem() Type {
	if t.kind != Array {
		panic("dtype: Elem called on non-Array type")
	}
	return *t.elem
}

// Equal reports whether t and other denote the same type.
func (t Type) Equal(other Type) bool {
	if t.kind != other.kind {
		return false
	}
	if t.kind != Array {
		return true
	}
	return t.elem.Equal(*other.elem)
}

// String renders t in its surface syntax, e.g. "Array<Array<Number>>".
func (t Type) String() string {
	switch t.kind {
	case Number:
		return "Number"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	case Unit:
		return "Unit"
	case Any:
		return "Any"
	case Array:
		var b strings.Builder
		b.WriteString("Array<")
		b.WriteString(t.elem.String())
		b.WriteByte('>')
		return b.String()
	default:
		return "<invalid type>"
	}
}

// MarshalJSON renders a Type as its surface-syntax JSON string, so Types
// can be embedded directly in serialized diagnostics.
func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// ParseError reports that a string failed to parse as a Type.
type ParseError struct {
	// Input is the offending string.
	Input string
}

func (e *ParseError) Error() string {
	return "invalid type syntax: " + e.Input
}

// Parse decodes a type's surface syntax, per spec: leading/trailing
// whitespace trimmed, exact leaf tokens, and "Array<...>" with a matching
// trailing '>' admitting any successfully parseable inner type.
func Parse(s string) (Type, error) {
	trimmed := strings.TrimSpace(s)
	switch trimmed {
	case "Number":
		return TNumber, nil
	case "String":
		return TString, nil
	case "Boolean":
		return TBoolean, nil
	case "Unit":
		return TUnit, nil
	case "Any":
		return TAny, nil
	}
	if strings.HasPrefix(trimmed, "Array<") && strings.HasSuffix(trimmed, ">") {
		inner := trimmed[len("Array<") : len(trimmed)-1]
		elem, err := Parse(inner)
		if err != nil {
			return Type{}, &ParseError{Input: s}
		}
		return ArrayOf(elem), nil
	}
	return Type{}, &ParseError{Input: s}
}

// Matches reports whether the decoded JSON value v has the shape t
// requires. v is the output of encoding/json.Unmarshal into an
// interface{}: float64 for numbers, string, bool, nil, []any, or
// map[string]any.
//
// Any matches every value. No other pair of distinct kinds matches; in
// particular a value's matching a declared Any does not promote its own
// type to Any — the declared Type, not the value's shape, is what callers
// must carry forward (see the evaluator's type cache).
func (t Type) Matches(v any) bool {
	switch t.kind {
	case Any:
		return true
	case Number:
		_, ok := v.(float64)
		return ok
	case String:
		_, ok := v.(string)
		return ok
	case Boolean:
		_, ok := v.(bool)
		return ok
	case Unit:
		return v == nil
	case Array:
		arr, ok := v.([]any)
		if !ok {
			return false
		}
		for _, item := range arr {
			if !t.elem.Matches(item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
