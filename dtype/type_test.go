package dtype

import "testing"

func TestParseRoundTrip(t *testing.T) {
	cases := []Type{
		TNumber,
		TString,
		TBoolean,
		TUnit,
		TAny,
		ArrayOf(TNumber),
		ArrayOf(ArrayOf(TString)),
	}
	for _, want := range cases {
		got, err := Parse(want.String())
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", want.String(), err)
		}
		if !got.Equal(want) {
			t.Errorf("Parse(%q) = %v, want %v", want.String(), got, want)
		}
	}
}

func TestParseWhitespace(t *testing.T) {
	got, err := Parse("  Number  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(TNumber) {
		t.Errorf("got %v, want Number", got)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{"", "number", "Array<", "Array<Number", "Foo", "Array<Foo>"}
	for _, in := range cases {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", in)
		} else if pe, ok := err.(*ParseError); !ok || pe.Input != in {
			t.Errorf("Parse(%q) = %v, want *ParseError{Input: %q}", in, err, in)
		}
	}
}

func TestMatches(t *testing.T) {
	cases := []struct {
		typ   Type
		value any
		want  bool
	}{
		{TNumber, 3.0, true},
		{TNumber, "3", false},
		{TString, "hi", true},
		{TString, 1.0, false},
		{TBoolean, true, true},
		{TBoolean, 0.0, false},
		{TUnit, nil, true},
		{TUnit, false, false},
		{TAny, nil, true},
		{TAny, "anything", true},
		{TAny, []any{1.0, "x"}, true},
		{ArrayOf(TNumber), []any{1.0, 2.0}, true},
		{ArrayOf(TNumber), []any{1.0, "x"}, false},
		{ArrayOf(TNumber), []any{}, true},
		{ArrayOf(TNumber), "not an array", false},
		{ArrayOf(ArrayOf(TString)), []any{[]any{"a"}, []any{}}, true},
	}
	for _, c := range cases {
		if got := c.typ.Matches(c.value); got != c.want {
			t.Errorf("%v.Matches(%#v) = %v, want %v", c.typ, c.value, got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !ArrayOf(TNumber).Equal(ArrayOf(TNumber)) {
		t.Error("Array<Number> should equal itself")
	}
	if ArrayOf(TNumber).Equal(ArrayOf(TString)) {
		t.Error("Array<Number> should not equal Array<String>")
	}
	if TNumber.Equal(TString) {
		t.Error("Number should not equal String")
	}
}
