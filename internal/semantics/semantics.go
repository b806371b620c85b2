// Package semantics defines how values behave under the language's
// operators, independently of how the evaluator walks the tree.
package semantics

import (
	"fmt"

	"brio/internal/object"
)

// IsTruthy: false and null are falsy, every other value is truthy.
func IsTruthy(obj object.Object) bool {
	switch v := obj.(type) {
	case *object.Null:
		return false
	case *object.Boolean:
		return v.Value
	default:
		return true
	}
}

// Equals compares two values. Values of different kinds are never equal;
// numbers, strings, booleans and null compare by value; lists and
// functions compare by identity.
func Equals(left, right object.Object) bool {
	if left.Type() != right.Type() {
		return false
	}
	switch l := left.(type) {
	case *object.Number:
		return l.Value == right.(*object.Number).Value
	case *object.String:
		return l.Value == right.(*object.String).Value
	case *object.Boolean:
		return l.Value == right.(*object.Boolean).Value
	case *object.Null:
		return true
	default:
		return left == right
	}
}

// UnaryOp applies a prefix operator.
func UnaryOp(op string, right object.Object) (object.Object, error) {
	switch op {
	case "!":
		return &object.Boolean{Value: !IsTruthy(right)}, nil
	case "-":
		num, ok := right.(*object.Number)
		if !ok {
			return nil, fmt.Errorf("unknown operator: -%s", right.Type())
		}
		return &object.Number{Value: -num.Value}, nil
	default:
		return nil, fmt.Errorf("unknown operator: %s%s", op, right.Type())
	}
}

// BinaryOp applies an arithmetic or comparison operator.
func BinaryOp(op string, left, right object.Object) (object.Object, error) {
	switch op {
	case "==":
		return &object.Boolean{Value: Equals(left, right)}, nil
	case "!=":
		return &object.Boolean{Value: !Equals(left, right)}, nil
	}

	if l, ok := left.(*object.String); ok {
		if r, ok := right.(*object.String); ok && op == "+" {
			return &object.String{Value: l.Value + r.Value}, nil
		}
	}

	l, lok := left.(*object.Number)
	r, rok := right.(*object.Number)
	if !lok || !rok {
		return nil, fmt.Errorf("unknown operator: %s %s %s", left.Type(), op, right.Type())
	}

	switch op {
	case "+":
		return &object.Number{Value: l.Value + r.Value}, nil
	case "-":
		return &object.Number{Value: l.Value - r.Value}, nil
	case "*":
		return &object.Number{Value: l.Value * r.Value}, nil
	case "/":
		if r.Value == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return &object.Number{Value: l.Value / r.Value}, nil
	case "<":
		return &object.Boolean{Value: l.Value < r.Value}, nil
	case "<=":
		return &object.Boolean{Value: l.Value <= r.Value}, nil
	case ">":
		return &object.Boolean{Value: l.Value > r.Value}, nil
	case ">=":
		return &object.Boolean{Value: l.Value >= r.Value}, nil
	default:
		return nil, fmt.Errorf("unknown operator: %s %s %s", left.Type(), op, right.Type())
	}
}
