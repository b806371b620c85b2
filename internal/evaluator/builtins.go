package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"brio/internal/object"
)

// builtins wires the native functions into a root environment. Natives
// receive evaluated arguments and report failures as error objects; the
// call site stamps the source position on them.
func registerBuiltins(env *object.Environment, out io.Writer, in *bufio.Reader) {
	register := func(name string, arity int, fn object.BuiltinFunction) {
		env.Set(name, &object.Builtin{Name: name, Arity: arity, Fn: fn})
	}

	register("clock", 0, func(args ...object.Object) object.Object {
		return &object.Number{Value: float64(time.Now().UnixMilli()) / 1000.0}
	})

	register("type", 1, func(args ...object.Object) object.Object {
		return &object.String{Value: strings.ToLower(string(args[0].Type()))}
	})

	register("str", 1, func(args ...object.Object) object.Object {
		return &object.String{Value: args[0].Inspect()}
	})

	register("num", 1, func(args ...object.Object) object.Object {
		switch arg := args[0].(type) {
		case *object.Number:
			return arg
		case *object.String:
			value, err := strconv.ParseFloat(strings.TrimSpace(arg.Value), 64)
			if err != nil {
				return nativeError("num: cannot convert %q to a number", arg.Value)
			}
			return &object.Number{Value: value}
		case *object.Boolean:
			if arg.Value {
				return &object.Number{Value: 1}
			}
			return &object.Number{Value: 0}
		default:
			return nativeError("num: cannot convert %s to a number", args[0].Type())
		}
	})

	register("len", 1, func(args ...object.Object) object.Object {
		switch arg := args[0].(type) {
		case *object.String:
			return &object.Number{Value: float64(len(arg.Value))}
		case *object.List:
			return &object.Number{Value: float64(len(arg.Elements))}
		default:
			return nativeError("len: unsupported argument of type %s", args[0].Type())
		}
	})

	register("range", -1, func(args ...object.Object) object.Object {
		if len(args) < 1 || len(args) > 2 {
			return nativeError("range expected 1 or 2 arguments but got %d", len(args))
		}
		bounds := make([]int, 0, 2)
		for _, arg := range args {
			n, ok := wholeNumber(arg)
			if !ok {
				return nativeError("range: bounds must be whole numbers, got %s", arg.Inspect())
			}
			bounds = append(bounds, n)
		}
		lo, hi := 0, bounds[0]
		if len(bounds) == 2 {
			lo, hi = bounds[0], bounds[1]
		}
		elements := []object.Object{}
		for i := lo; i < hi; i++ {
			elements = append(elements, &object.Number{Value: float64(i)})
		}
		return &object.List{Elements: elements}
	})

	register("input", -1, func(args ...object.Object) object.Object {
		if len(args) > 1 {
			return nativeError("input expected at most 1 argument but got %d", len(args))
		}
		if len(args) == 1 {
			fmt.Fprint(out, args[0].Inspect())
		}
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return NULL
		}
		return &object.String{Value: strings.TrimRight(line, "\r\n")}
	})
}

func nativeError(format string, args ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}
