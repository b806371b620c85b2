package evaluator

import (
	"brio/internal/ast"
	"brio/internal/object"
	"brio/internal/semantics"
)

// evalMethodCall dispatches name.method(args...). Methods are defined on
// lists only; mutating methods change the bound list in place, so every
// name sharing the value observes the change.
func (e *Evaluator) evalMethodCall(node *ast.MethodCallExpression, env *object.Environment) object.Object {
	obj, ok := env.Get(node.Object.Value)
	if !ok {
		return e.newErrorAt(node, "undefined variable %q", node.Object.Value)
	}

	args := e.evalExpressions(node.Call.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	list, ok := obj.(*object.List)
	if !ok {
		return e.newErrorAt(node, "%s has no methods, %q is not a list", obj.Type(), node.Object.Value)
	}

	method := node.Call.Function.(*ast.Identifier).Value
	switch method {
	case "push":
		return e.listPush(node, list, args)
	case "pop":
		return e.listPop(node, list, args)
	case "length":
		if errObj := e.wantArgs(node, method, args, 0); errObj != nil {
			return errObj
		}
		return &object.Number{Value: float64(len(list.Elements))}
	case "insert":
		return e.listInsert(node, list, args)
	case "remove":
		return e.listRemove(node, list, args)
	case "contains":
		if errObj := e.wantArgs(node, method, args, 1); errObj != nil {
			return errObj
		}
		for _, el := range list.Elements {
			if semantics.Equals(el, args[0]) {
				return TRUE
			}
		}
		return FALSE
	default:
		return e.newErrorAt(node, "unknown list method %q", method)
	}
}

func (e *Evaluator) listPush(node ast.Node, list *object.List, args []object.Object) object.Object {
	if errObj := e.wantArgs(node, "push", args, 1); errObj != nil {
		return errObj
	}
	list.Elements = append(list.Elements, args[0])
	return list
}

func (e *Evaluator) listPop(node ast.Node, list *object.List, args []object.Object) object.Object {
	if errObj := e.wantArgs(node, "pop", args, 0); errObj != nil {
		return errObj
	}
	if len(list.Elements) == 0 {
		return e.newErrorAt(node, "pop from empty list")
	}
	last := list.Elements[len(list.Elements)-1]
	list.Elements = list.Elements[:len(list.Elements)-1]
	return last
}

func (e *Evaluator) listInsert(node ast.Node, list *object.List, args []object.Object) object.Object {
	if errObj := e.wantArgs(node, "insert", args, 2); errObj != nil {
		return errObj
	}
	idx, ok := wholeNumber(args[0])
	if !ok {
		return e.newErrorAt(node, "insert index must be a whole number, got %s", args[0].Inspect())
	}
	if idx < 0 || idx > len(list.Elements) {
		return e.newErrorAt(node, "insert index %d out of range for length %d", idx, len(list.Elements))
	}

	list.Elements = append(list.Elements, nil)
	copy(list.Elements[idx+1:], list.Elements[idx:])
	list.Elements[idx] = args[1]
	return list
}

func (e *Evaluator) listRemove(node ast.Node, list *object.List, args []object.Object) object.Object {
	if errObj := e.wantArgs(node, "remove", args, 1); errObj != nil {
		return errObj
	}
	idx, ok := wholeNumber(args[0])
	if !ok {
		return e.newErrorAt(node, "remove index must be a whole number, got %s", args[0].Inspect())
	}
	if idx < 0 || idx >= len(list.Elements) {
		return e.newErrorAt(node, "remove index %d out of range for length %d", idx, len(list.Elements))
	}

	removed := list.Elements[idx]
	list.Elements = append(list.Elements[:idx], list.Elements[idx+1:]...)
	return removed
}

func (e *Evaluator) wantArgs(node ast.Node, method string, args []object.Object, n int) object.Object {
	if len(args) != n {
		return e.newErrorAt(node, "%s expected %d arguments but got %d", method, n, len(args))
	}
	return nil
}
