// Package lsp holds the editor-facing pieces of the pipeline: document
// tracking and diagnostic collection for the language server.
package lsp

import (
	"brio/internal/analyzer"
	"brio/internal/diag"
	"brio/internal/lexer"
	"brio/internal/parser"
)

// Collect runs the front of the pipeline over source and merges each
// stage's diagnostics. Unlike a run, it does not stop at the first
// parser error; recovery keeps later diagnostics flowing to the editor.
func Collect(source string) []diag.Diagnostic {
	tokens, err := lexer.Scan(source)
	if err != nil {
		scanErr := err.(*lexer.Error)
		return []diag.Diagnostic{{
			Code:     "UnexpectedInput",
			Message:  scanErr.Message,
			Severity: diag.SeverityError,
			Range:    diag.Range{Line: scanErr.Line, Col: scanErr.Col, Length: 1},
		}}
	}

	p := parser.New(tokens)
	program := p.ParseProgram()
	diagnostics := append([]diag.Diagnostic{}, p.Diagnostics()...)

	if len(diagnostics) == 0 {
		a := analyzer.New()
		a.Run(program)
		diagnostics = append(diagnostics, a.Diagnostics()...)
	}

	return diagnostics
}
