package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"brio/internal/ast"
)

type Type string

const (
	NUMBER_OBJ       = "NUMBER"
	STRING_OBJ       = "STRING"
	BOOLEAN_OBJ      = "BOOLEAN"
	NULL_OBJ         = "NULL"
	LIST_OBJ         = "LIST"
	FUNCTION_OBJ     = "FUNCTION"
	BUILTIN_OBJ      = "BUILTIN"
	RETURN_VALUE_OBJ = "RETURN_VALUE"
	ERROR_OBJ        = "ERROR"
)

type Object interface {
	Type() Type
	Inspect() string
}

// Number is the single numeric kind; integers are whole floats.
type Number struct {
	Value float64
}

func (n *Number) Type() Type { return NUMBER_OBJ }
func (n *Number) Inspect() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

type String struct {
	Value string
}

func (s *String) Type() Type      { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }

type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// List is a mutable sequence; bindings share the same backing value, so
// mutation through one name is visible through all of them.
type List struct {
	Elements []Object
}

func (l *List) Type() Type { return LIST_OBJ }
func (l *List) Inspect() string {
	var out bytes.Buffer
	elements := make([]string, 0, len(l.Elements))
	for _, el := range l.Elements {
		elements = append(elements, el.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")
	return out.String()
}

// Function is a user-declared function closing over the environment in
// which its declaration was evaluated.
type Function struct {
	Name       string
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() Type      { return FUNCTION_OBJ }
func (f *Function) Inspect() string { return fmt.Sprintf("<fn %s>", f.Name) }

// BuiltinFunction is the native bridge: a host function callable from
// scripts. It receives already-evaluated arguments and returns either a
// value or an *Error.
type BuiltinFunction func(args ...Object) Object

type Builtin struct {
	Name  string
	Arity int // -1 accepts any number of arguments
	Fn    BuiltinFunction
}

func (b *Builtin) Type() Type      { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return fmt.Sprintf("<native fn %s>", b.Name) }

// ReturnValue wraps the value of a return statement while it unwinds
// through enclosing blocks up to the nearest function call.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() Type      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error aborts evaluation: once produced it propagates outward unchanged
// and becomes the run's failure.
type Error struct {
	Message string
	Line    int
	Col     int
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }
