// Package repl implements the interactive session. Input lines accumulate
// into a buffer; an empty line or the word "run" executes the buffer
// against a session environment that survives across runs.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"brio/internal/analyzer"
	"brio/internal/evaluator"
	"brio/internal/lexer"
	"brio/internal/parser"
	"brio/internal/runtimeio"
)

const (
	prompt       = ">> "
	continuation = ".. "
)

func Start(in io.Reader, out, errOut io.Writer) {
	scanner := bufio.NewScanner(in)
	runner := evaluator.NewRunner(evaluator.Options{Out: out})
	interactive := runtimeio.Interactive()

	if interactive {
		fmt.Fprintln(out, "brio — type statements, then an empty line (or \"run\") to execute; \"exit\" quits")
	}

	var buf []string
	for {
		if interactive {
			if len(buf) == 0 {
				fmt.Fprint(out, prompt)
			} else {
				fmt.Fprint(out, continuation)
			}
		}

		if !scanner.Scan() {
			if len(buf) > 0 {
				Execute(strings.Join(buf, "\n"), runner, errOut)
			}
			return
		}

		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "exit" {
			return
		}
		if trimmed == "" || trimmed == "run" {
			if len(buf) == 0 {
				continue
			}
			source := strings.Join(buf, "\n")
			buf = buf[:0]
			Execute(source, runner, errOut)
			continue
		}

		buf = append(buf, line)
	}
}

// Execute pushes source through the full pipeline against the runner's
// environment. Each stage fails closed: the first failing stage reports
// to the error stream and the later stages never see the input.
func Execute(source string, runner *evaluator.Runner, errOut io.Writer) {
	tokens, err := lexer.Scan(source)
	if err != nil {
		fmt.Fprintf(errOut, "A lexer error occurred: %s\n", err)
		return
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		fmt.Fprintf(errOut, "A parser error occurred: %s\n", err)
		return
	}

	if err := analyzer.Analyze(program); err != nil {
		fmt.Fprintf(errOut, "A semantic error occurred: %s\n", err)
		return
	}

	if _, err := runner.Run(program); err != nil {
		fmt.Fprintf(errOut, "An interpreter error occurred: %s\n", err)
	}
}
