package evaluator

import (
	"testing"

	"brio/internal/object"
)

const listPrelude = "var xs = [10, 20, 30, 40];\n"

func TestListIndexing(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{listPrelude + "xs[0];", 10},
		{listPrelude + "xs[3];", 40},
		{listPrelude + "xs[1 + 1];", 30},
		{listPrelude + "var i = 1; xs[i];", 20},
	}

	for _, tt := range tests {
		result, _ := testRun(t, tt.input)
		testNumber(t, result, tt.expected)
	}
}

func TestListIndexErrors(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{listPrelude + "xs[4];", "out of range"},
		{listPrelude + "xs[-1];", "out of range"},
		{listPrelude + "xs[1.5];", "whole number"},
		{listPrelude + `xs["a"];`, "whole number"},
		{"var n = 5; n[0];", "not a list"},
		{"ys[0];", `undefined variable "ys"`},
	}

	for _, tt := range tests {
		result, _ := testRun(t, tt.input)
		testError(t, result, tt.contains)
	}
}

func TestListSplicing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{listPrelude + "print xs[1:3];", "[20, 30]\n"},
		{listPrelude + "print xs[:2];", "[10, 20]\n"},
		{listPrelude + "print xs[2:];", "[30, 40]\n"},
		{listPrelude + "print xs[:];", "[10, 20, 30, 40]\n"},
		// Bounds clamp instead of failing.
		{listPrelude + "print xs[1:99];", "[20, 30, 40]\n"},
		{listPrelude + "print xs[-5:2];", "[10, 20]\n"},
		// An inverted range is empty.
		{listPrelude + "print xs[3:1];", "[]\n"},
	}

	for _, tt := range tests {
		_, out := testRun(t, tt.input)
		if out != tt.expected {
			t.Errorf("%q: printed %q, want %q", tt.input, out, tt.expected)
		}
	}
}

func TestSpliceCopiesTheRange(t *testing.T) {
	input := listPrelude + `
var ys = xs[1:3];
ys.push(99);
print xs;
print ys;
`
	_, out := testRun(t, input)
	want := "[10, 20, 30, 40]\n[20, 30, 99]\n"
	if out != want {
		t.Errorf("printed %q, want %q", out, want)
	}
}

func TestListMethods(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"var xs = [1]; xs.push(2); print xs;", "[1, 2]\n"},
		{"var xs = [1, 2]; print xs.pop(); print xs;", "2\n[1]\n"},
		{"var xs = [1, 2, 3]; print xs.length();", "3\n"},
		{"var xs = [1, 3]; xs.insert(1, 2); print xs;", "[1, 2, 3]\n"},
		{"var xs = [1, 2]; xs.insert(2, 3); print xs;", "[1, 2, 3]\n"},
		{"var xs = [1, 2, 3]; print xs.remove(1); print xs;", "2\n[1, 3]\n"},
		{"var xs = [1, 2]; print xs.contains(2);", "true\n"},
		{"var xs = [1, 2]; print xs.contains(9);", "false\n"},
		{`var xs = ["a"]; print xs.contains("a");`, "true\n"},
	}

	for _, tt := range tests {
		_, out := testRun(t, tt.input)
		if out != tt.expected {
			t.Errorf("%q: printed %q, want %q", tt.input, out, tt.expected)
		}
	}
}

func TestListMethodErrors(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"var xs = []; xs.pop();", "empty list"},
		{"var xs = [1]; xs.insert(5, 9);", "out of range"},
		{"var xs = [1]; xs.remove(1);", "out of range"},
		{"var xs = [1]; xs.push();", "expected 1 arguments but got 0"},
		{"var xs = [1]; xs.reverse();", "unknown list method"},
		{"var n = 1; n.push(2);", "not a list"},
	}

	for _, tt := range tests {
		result, _ := testRun(t, tt.input)
		testError(t, result, tt.contains)
	}
}

func TestMutationIsVisibleThroughAliases(t *testing.T) {
	input := `
var a = [1];
var b = a;
b.push(2);
print a;
`
	_, out := testRun(t, input)
	if out != "[1, 2]\n" {
		t.Errorf("printed %q, want %q", out, "[1, 2]\n")
	}
}

func TestMethodReceiverSharing(t *testing.T) {
	// push returns the same list object, not a copy.
	result, _ := testRun(t, "var xs = [1]; var ys = xs.push(2); ys == xs;")
	if !result.(*object.Boolean).Value {
		t.Error("push did not return the receiver")
	}
}
