package evaluator

import (
	"fmt"
	"io"
	"math"

	"brio/internal/ast"
	"brio/internal/limits"
	"brio/internal/object"
	"brio/internal/semantics"
	"brio/internal/token"
)

var (
	NULL  = &object.Null{}
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

// Evaluator walks a validated program tree. It carries the output sink for
// print, the step budget, and the call-depth guard; the symbol state lives
// in the environments threaded through Eval.
type Evaluator struct {
	out    io.Writer
	budget *limits.Budget

	depth        int
	maxRecursion int
}

func (e *Evaluator) Eval(node ast.Node, env *object.Environment) object.Object {
	if err := e.budget.Charge(); err != nil {
		return e.newErrorAt(node, "%s", err.Error())
	}

	switch node := node.(type) {

	// Statements
	case *ast.Program:
		return e.evalProgram(node, env)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case *ast.VarStatement:
		return e.evalVarStatement(node, env)
	case *ast.FuncStatement:
		fn := &object.Function{
			Name:       node.Name.Value,
			Parameters: node.Parameters,
			Body:       node.Body,
			Env:        env,
		}
		env.Set(node.Name.Value, fn)
		return NULL
	case *ast.BlockStatement:
		return e.evalStatements(node.Statements, object.NewEnclosedEnvironment(env))
	case *ast.IfStatement:
		return e.evalIfStatement(node, env)
	case *ast.WhileStatement:
		return e.evalWhileStatement(node, env)
	case *ast.ForStatement:
		return e.evalForStatement(node, env)
	case *ast.PrintStatement:
		value := e.Eval(node.Expression, env)
		if isError(value) {
			return value
		}
		fmt.Fprintln(e.out, value.Inspect())
		return NULL
	case *ast.ReturnStatement:
		value := object.Object(NULL)
		if node.Value != nil {
			value = e.Eval(node.Value, env)
			if isError(value) {
				return value
			}
		}
		return &object.ReturnValue{Value: value}

	// Expressions
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.NumberLiteral:
		return &object.Number{Value: node.Value}
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.BooleanLiteral:
		return boolToObject(node.Value)
	case *ast.NullLiteral:
		return NULL
	case *ast.Grouping:
		return e.Eval(node.Expression, env)
	case *ast.ListLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &object.List{Elements: elements}
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(node, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)
	case *ast.LogicalExpression:
		return e.evalLogicalExpression(node, env)
	case *ast.AssignExpression:
		return e.evalAssignExpression(node, env)
	case *ast.AlterationExpression:
		return e.evalAlterationExpression(node, env)
	case *ast.CallExpression:
		return e.evalCallExpression(node, env)
	case *ast.MethodCallExpression:
		return e.evalMethodCall(node, env)
	case *ast.SpliceExpression:
		return e.evalSpliceExpression(node, env)
	}

	return e.newErrorAt(node, "unhandled node: %T", node)
}

func (e *Evaluator) evalProgram(program *ast.Program, env *object.Environment) object.Object {
	var result object.Object = NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalStatements runs a statement list in the given environment. Return
// and error objects stop the walk and propagate unchanged.
func (e *Evaluator) evalStatements(stmts []ast.Statement, env *object.Environment) object.Object {
	var result object.Object = NULL

	for _, stmt := range stmts {
		result = e.Eval(stmt, env)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

func (e *Evaluator) evalVarStatement(node *ast.VarStatement, env *object.Environment) object.Object {
	value := object.Object(NULL)
	if node.Value != nil {
		value = e.Eval(node.Value, env)
		if isError(value) {
			return value
		}
	}
	env.Set(node.Name.Value, value)
	return NULL
}

func (e *Evaluator) evalIfStatement(node *ast.IfStatement, env *object.Environment) object.Object {
	condition := e.Eval(node.Condition, env)
	if isError(condition) {
		return condition
	}

	if semantics.IsTruthy(condition) {
		return e.Eval(node.Consequence, env)
	}
	if node.Alternative != nil {
		return e.Eval(node.Alternative, env)
	}
	return NULL
}

func (e *Evaluator) evalWhileStatement(node *ast.WhileStatement, env *object.Environment) object.Object {
	for {
		condition := e.Eval(node.Condition, env)
		if isError(condition) {
			return condition
		}
		if !semantics.IsTruthy(condition) {
			return NULL
		}

		result := e.Eval(node.Body, env)
		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}
}

// evalForStatement runs the loop inside its own scope so the initializer
// variable does not leak into the enclosing one.
func (e *Evaluator) evalForStatement(node *ast.ForStatement, env *object.Environment) object.Object {
	scope := object.NewEnclosedEnvironment(env)

	if node.Init != nil {
		result := e.Eval(node.Init, scope)
		if isError(result) {
			return result
		}
	}

	for {
		condition := e.Eval(node.Cond, scope)
		if isError(condition) {
			return condition
		}
		if !semantics.IsTruthy(condition) {
			return NULL
		}

		result := e.Eval(node.Body, scope)
		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}

		if node.Post != nil {
			post := e.Eval(node.Post, scope)
			if isError(post) {
				return post
			}
		}
	}
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if value, ok := env.Get(node.Value); ok {
		return value
	}
	return e.newErrorAt(node, "undefined variable %q", node.Value)
}

func (e *Evaluator) evalExpressions(exprs []ast.Expression, env *object.Environment) []object.Object {
	result := make([]object.Object, 0, len(exprs))

	for _, expr := range exprs {
		evaluated := e.Eval(expr, env)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *object.Environment) object.Object {
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	result, err := semantics.UnaryOp(node.Operator, right)
	if err != nil {
		return e.newErrorAt(node, "%s", err.Error())
	}
	return result
}

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *object.Environment) object.Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	result, err := semantics.BinaryOp(node.Operator, left, right)
	if err != nil {
		return e.newErrorAt(node, "%s", err.Error())
	}
	return result
}

// evalLogicalExpression short-circuits: the right operand is evaluated
// only when the left one does not already decide the result, and the
// value of the deciding operand is returned as-is.
func (e *Evaluator) evalLogicalExpression(node *ast.LogicalExpression, env *object.Environment) object.Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}

	if node.Operator == "or" {
		if semantics.IsTruthy(left) {
			return left
		}
	} else {
		if !semantics.IsTruthy(left) {
			return left
		}
	}

	return e.Eval(node.Right, env)
}

func (e *Evaluator) evalAssignExpression(node *ast.AssignExpression, env *object.Environment) object.Object {
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}

	if !env.Assign(node.Name.Value, value) {
		return e.newErrorAt(node, "undefined variable %q", node.Name.Value)
	}
	return value
}

// evalAlterationExpression handles x++ and x--. The expression yields the
// updated value.
func (e *Evaluator) evalAlterationExpression(node *ast.AlterationExpression, env *object.Environment) object.Object {
	current, ok := env.Get(node.Name.Value)
	if !ok {
		return e.newErrorAt(node, "undefined variable %q", node.Name.Value)
	}

	num, ok := current.(*object.Number)
	if !ok {
		return e.newErrorAt(node, "cannot alter %s, %q is not a number", current.Type(), node.Name.Value)
	}

	value := num.Value + 1
	if node.Op == token.DECR {
		value = num.Value - 1
	}

	updated := &object.Number{Value: value}
	env.Assign(node.Name.Value, updated)
	return updated
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *object.Environment) object.Object {
	function := e.Eval(node.Function, env)
	if isError(function) {
		return function
	}

	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	return e.applyFunction(node, function, args)
}

func (e *Evaluator) applyFunction(node ast.Node, fn object.Object, args []object.Object) object.Object {
	switch fn := fn.(type) {
	case *object.Function:
		if len(args) != len(fn.Parameters) {
			return e.newErrorAt(node, "%s expected %d arguments but got %d",
				fn.Inspect(), len(fn.Parameters), len(args))
		}
		if e.depth >= e.maxRecursion {
			return e.newErrorAt(node, "call depth limit of %d exceeded", e.maxRecursion)
		}

		extended := object.NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Parameters {
			extended.Set(param.Value, args[i])
		}

		e.depth++
		evaluated := e.evalStatements(fn.Body.Statements, extended)
		e.depth--

		return unwrapReturnValue(evaluated)

	case *object.Builtin:
		if fn.Arity >= 0 && len(args) != fn.Arity {
			return e.newErrorAt(node, "%s expected %d arguments but got %d",
				fn.Inspect(), fn.Arity, len(args))
		}
		result := fn.Fn(args...)
		if result == nil {
			return NULL
		}
		if err, ok := result.(*object.Error); ok && err.Line == 0 {
			err.Line, err.Col = node.Pos()
		}
		return result

	default:
		return e.newErrorAt(node, "not a function: %s", fn.Type())
	}
}

// evalSpliceExpression handles both forms of bracket access on a bound
// list: a single index yields the element, a colon range yields a new
// list. Range bounds clamp; a bare index must be in range.
func (e *Evaluator) evalSpliceExpression(node *ast.SpliceExpression, env *object.Environment) object.Object {
	obj, ok := env.Get(node.List.Value)
	if !ok {
		return e.newErrorAt(node, "undefined variable %q", node.List.Value)
	}
	list, ok := obj.(*object.List)
	if !ok {
		return e.newErrorAt(node, "cannot index %s, %q is not a list", obj.Type(), node.List.Value)
	}

	length := len(list.Elements)

	if !node.IsSplice {
		idx, errObj := e.spliceBound(node.Start, env)
		if errObj != nil {
			return errObj
		}
		if idx < 0 || idx >= length {
			return e.newErrorAt(node, "list index %d out of range for length %d", idx, length)
		}
		return list.Elements[idx]
	}

	start := 0
	if node.Start != nil {
		bound, errObj := e.spliceBound(node.Start, env)
		if errObj != nil {
			return errObj
		}
		start = bound
	}
	end := length
	if node.End != nil {
		bound, errObj := e.spliceBound(node.End, env)
		if errObj != nil {
			return errObj
		}
		end = bound
	}

	start = clamp(start, 0, length)
	end = clamp(end, 0, length)
	if start > end {
		return &object.List{Elements: []object.Object{}}
	}

	elements := make([]object.Object, end-start)
	copy(elements, list.Elements[start:end])
	return &object.List{Elements: elements}
}

// spliceBound evaluates an index expression and requires a whole number.
func (e *Evaluator) spliceBound(expr ast.Expression, env *object.Environment) (int, object.Object) {
	evaluated := e.Eval(expr, env)
	if isError(evaluated) {
		return 0, evaluated
	}
	idx, ok := wholeNumber(evaluated)
	if !ok {
		return 0, e.newErrorAt(expr, "list index must be a whole number, got %s", evaluated.Inspect())
	}
	return idx, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func unwrapReturnValue(obj object.Object) object.Object {
	if returnValue, ok := obj.(*object.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}

func boolToObject(value bool) *object.Boolean {
	if value {
		return TRUE
	}
	return FALSE
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}

func (e *Evaluator) newErrorAt(node ast.Node, format string, args ...interface{}) *object.Error {
	line, col := node.Pos()
	return &object.Error{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Col:     col,
	}
}

func wholeNumber(obj object.Object) (int, bool) {
	num, ok := obj.(*object.Number)
	if !ok {
		return 0, false
	}
	if num.Value != math.Trunc(num.Value) {
		return 0, false
	}
	return int(num.Value), true
}
