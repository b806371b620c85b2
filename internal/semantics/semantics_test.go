package semantics

import (
	"testing"

	"brio/internal/object"
)

func num(v float64) *object.Number { return &object.Number{Value: v} }
func str(v string) *object.String  { return &object.String{Value: v} }

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		obj      object.Object
		expected bool
	}{
		{&object.Null{}, false},
		{&object.Boolean{Value: false}, false},
		{&object.Boolean{Value: true}, true},
		{num(0), true},
		{num(-1), true},
		{str(""), true},
		{&object.List{}, true},
	}

	for _, tt := range tests {
		if got := IsTruthy(tt.obj); got != tt.expected {
			t.Errorf("IsTruthy(%s) = %v, want %v", tt.obj.Inspect(), got, tt.expected)
		}
	}
}

func TestEqualsAcrossKinds(t *testing.T) {
	if Equals(num(1), str("1")) {
		t.Error("number and string compared equal")
	}
	if Equals(&object.Boolean{Value: true}, num(1)) {
		t.Error("boolean and number compared equal")
	}
	if !Equals(&object.Null{}, &object.Null{}) {
		t.Error("null != null")
	}
}

func TestBinaryOp(t *testing.T) {
	tests := []struct {
		op       string
		left     object.Object
		right    object.Object
		expected string
	}{
		{"+", num(1), num(2), "3"},
		{"-", num(1), num(2), "-1"},
		{"*", num(3), num(4), "12"},
		{"/", num(10), num(4), "2.5"},
		{"+", str("a"), str("b"), "ab"},
		{"<", num(1), num(2), "true"},
		{">=", num(2), num(2), "true"},
		{"==", str("a"), str("a"), "true"},
		{"!=", num(1), str("1"), "true"},
	}

	for _, tt := range tests {
		result, err := BinaryOp(tt.op, tt.left, tt.right)
		if err != nil {
			t.Fatalf("%s %s %s: %v", tt.left.Inspect(), tt.op, tt.right.Inspect(), err)
		}
		if result.Inspect() != tt.expected {
			t.Errorf("%s %s %s = %s, want %s",
				tt.left.Inspect(), tt.op, tt.right.Inspect(), result.Inspect(), tt.expected)
		}
	}
}

func TestBinaryOpErrors(t *testing.T) {
	if _, err := BinaryOp("/", num(1), num(0)); err == nil {
		t.Error("expected division by zero error")
	}
	if _, err := BinaryOp("+", num(1), str("a")); err == nil {
		t.Error("expected type error for number + string")
	}
	if _, err := BinaryOp("-", str("a"), str("b")); err == nil {
		t.Error("expected type error for string - string")
	}
	if _, err := BinaryOp("<", str("a"), str("b")); err == nil {
		t.Error("expected type error for string comparison")
	}
}

func TestUnaryOp(t *testing.T) {
	result, err := UnaryOp("-", num(5))
	if err != nil {
		t.Fatal(err)
	}
	if result.Inspect() != "-5" {
		t.Errorf("got %s", result.Inspect())
	}

	result, err = UnaryOp("!", &object.Null{})
	if err != nil {
		t.Fatal(err)
	}
	if result.Inspect() != "true" {
		t.Errorf("got %s", result.Inspect())
	}

	if _, err := UnaryOp("-", str("a")); err == nil {
		t.Error("expected error for negating a string")
	}
}
