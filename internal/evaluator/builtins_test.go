package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"brio/internal/object"
)

func TestTypeBuiltin(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"type(1);", "number"},
		{`type("x");`, "string"},
		{"type(true);", "boolean"},
		{"type(null);", "null"},
		{"type([1]);", "list"},
		{"def f() {} type(f);", "function"},
		{"type(len);", "builtin"},
	}

	for _, tt := range tests {
		result, _ := testRun(t, tt.input)
		s, ok := result.(*object.String)
		if !ok {
			t.Fatalf("%q: expected String, got %T", tt.input, result)
		}
		if s.Value != tt.expected {
			t.Errorf("%q: got %q, want %q", tt.input, s.Value, tt.expected)
		}
	}
}

func TestStrAndNumBuiltins(t *testing.T) {
	result, _ := testRun(t, "str(1.5);")
	if result.Inspect() != "1.5" {
		t.Errorf("str(1.5) = %q", result.Inspect())
	}

	result, _ = testRun(t, `num("42");`)
	testNumber(t, result, 42)

	result, _ = testRun(t, `num(" 3.5 ");`)
	testNumber(t, result, 3.5)

	result, _ = testRun(t, "num(true);")
	testNumber(t, result, 1)

	result, _ = testRun(t, `num("abc");`)
	testError(t, result, "cannot convert")
}

func TestLenBuiltin(t *testing.T) {
	result, _ := testRun(t, `len("abc");`)
	testNumber(t, result, 3)

	result, _ = testRun(t, "len([1, 2]);")
	testNumber(t, result, 2)

	result, _ = testRun(t, "len(1);")
	testError(t, result, "unsupported argument")
}

func TestRangeBuiltin(t *testing.T) {
	_, out := testRun(t, "print range(3);")
	if out != "[0, 1, 2]\n" {
		t.Errorf("range(3) printed %q", out)
	}

	_, out = testRun(t, "print range(2, 5);")
	if out != "[2, 3, 4]\n" {
		t.Errorf("range(2, 5) printed %q", out)
	}

	_, out = testRun(t, "print range(0);")
	if out != "[]\n" {
		t.Errorf("range(0) printed %q", out)
	}

	result, _ := testRun(t, "range(1.5);")
	testError(t, result, "whole numbers")
}

func TestClockBuiltin(t *testing.T) {
	result, _ := testRun(t, "clock();")
	num, ok := result.(*object.Number)
	if !ok {
		t.Fatalf("expected Number, got %T", result)
	}
	if num.Value <= 0 {
		t.Errorf("clock() = %v", num.Value)
	}
}

func TestInputBuiltin(t *testing.T) {
	var out bytes.Buffer
	runner := NewRunner(Options{Out: &out, In: strings.NewReader("hello\n")})
	result, err := runner.Run(parse(t, `input("> ");`))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	s, ok := result.(*object.String)
	if !ok || s.Value != "hello" {
		t.Errorf("input() = %s", result.Inspect())
	}
	if out.String() != "> " {
		t.Errorf("prompt printed %q", out.String())
	}
}

func TestInputAtEOFYieldsNull(t *testing.T) {
	var out bytes.Buffer
	runner := NewRunner(Options{Out: &out, In: strings.NewReader("")})
	result, err := runner.Run(parse(t, "input();"))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result != NULL {
		t.Errorf("got %s, want null", result.Inspect())
	}
}

func TestBuiltinArity(t *testing.T) {
	result, _ := testRun(t, "len();")
	testError(t, result, "expected 1 arguments but got 0")

	result, _ = testRun(t, `str(1, 2);`)
	testError(t, result, "expected 1 arguments but got 2")
}

func TestBuiltinErrorCarriesCallSiteLine(t *testing.T) {
	result, _ := testRun(t, "var x = 1;\nnum(\"zzz\");")
	errObj := result.(*object.Error)
	if errObj.Line != 2 {
		t.Errorf("line = %d, want 2", errObj.Line)
	}
}
