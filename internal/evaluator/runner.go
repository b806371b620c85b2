package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"brio/internal/ast"
	"brio/internal/limits"
	"brio/internal/object"
)

const DefaultMaxRecursion = 1000

// Options configures a Runner. Zero values mean stdout, stdin, no step
// limit, and the default recursion limit.
type Options struct {
	Out          io.Writer
	In           io.Reader
	MaxSteps     int
	MaxRecursion int
}

// Runner owns the root environment of a session and evaluates validated
// programs against it. Each Run gets a fresh step budget; the environment
// persists, so the REPL accumulates state across runs.
type Runner struct {
	Env *object.Environment

	out          io.Writer
	in           *bufio.Reader
	maxSteps     int
	maxRecursion int
}

func NewRunner(opts Options) *Runner {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.MaxRecursion <= 0 {
		opts.MaxRecursion = DefaultMaxRecursion
	}

	env := object.NewEnvironment()
	in := bufio.NewReader(opts.In)
	registerBuiltins(env, opts.Out, in)

	return &Runner{
		Env:          env,
		out:          opts.Out,
		in:           in,
		maxSteps:     opts.MaxSteps,
		maxRecursion: opts.MaxRecursion,
	}
}

// Run evaluates the program in the session environment. The returned
// object is the value of the last statement; a runtime failure is also
// reported as an error suitable for display.
func (r *Runner) Run(program *ast.Program) (object.Object, error) {
	e := &Evaluator{
		out:          r.out,
		budget:       limits.NewBudget(r.maxSteps),
		maxRecursion: r.maxRecursion,
	}

	result := e.Eval(program, r.Env)
	if err, ok := result.(*object.Error); ok {
		return result, fmt.Errorf("[line %d] %s", err.Line, err.Message)
	}
	return result, nil
}
