// Package analyzer walks a parsed program before evaluation and rejects
// constructs that are well-formed syntax but can never execute correctly.
package analyzer

import (
	"fmt"

	"brio/internal/ast"
	"brio/internal/diag"
)

const (
	CodeReturnOutsideFunction = "ReturnOutsideFunction"
	CodeDuplicateParameter    = "DuplicateParameter"
	CodeUnreachableCode       = "UnreachableCode"
)

// Error is a semantic error tied to a source line.
type Error struct {
	Code    string
	Message string
	Line    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

type Analyzer struct {
	funcDepth int
	errs      []*Error
	diags     []diag.Diagnostic
}

func New() *Analyzer {
	return &Analyzer{errs: []*Error{}, diags: []diag.Diagnostic{}}
}

func (a *Analyzer) Diagnostics() []diag.Diagnostic { return a.diags }
func (a *Analyzer) Errors() []*Error               { return a.errs }

// Err returns the first semantic error, or nil. Warnings never make the
// program fail.
func (a *Analyzer) Err() error {
	if len(a.errs) == 0 {
		return nil
	}
	return a.errs[0]
}

// Analyze checks the whole program and reports the first semantic error.
func Analyze(program *ast.Program) error {
	a := New()
	a.Run(program)
	return a.Err()
}

func (a *Analyzer) Run(program *ast.Program) {
	a.walkStatements(program.Statements)
}

func (a *Analyzer) walkStatements(stmts []ast.Statement) {
	for i, stmt := range stmts {
		a.walkStatement(stmt)
		if _, ok := stmt.(*ast.ReturnStatement); ok && i+1 < len(stmts) {
			a.warnAt(stmts[i+1], CodeUnreachableCode, "unreachable code after return")
		}
	}
}

func (a *Analyzer) walkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.FuncStatement:
		a.checkParameters(s)
		a.funcDepth++
		a.walkStatements(s.Body.Statements)
		a.funcDepth--
	case *ast.VarStatement:
		if s.Value != nil {
			a.walkExpression(s.Value)
		}
	case *ast.BlockStatement:
		a.walkStatements(s.Statements)
	case *ast.IfStatement:
		a.walkExpression(s.Condition)
		a.walkStatement(s.Consequence)
		if s.Alternative != nil {
			a.walkStatement(s.Alternative)
		}
	case *ast.WhileStatement:
		a.walkExpression(s.Condition)
		a.walkStatement(s.Body)
	case *ast.ForStatement:
		if s.Init != nil {
			a.walkStatement(s.Init)
		}
		a.walkExpression(s.Cond)
		if s.Post != nil {
			a.walkExpression(s.Post)
		}
		a.walkStatement(s.Body)
	case *ast.PrintStatement:
		a.walkExpression(s.Expression)
	case *ast.ReturnStatement:
		if a.funcDepth == 0 {
			a.errorAt(s, CodeReturnOutsideFunction, "cannot return from top-level code")
		}
		if s.Value != nil {
			a.walkExpression(s.Value)
		}
	case *ast.ExpressionStatement:
		a.walkExpression(s.Expression)
	}
}

func (a *Analyzer) walkExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Grouping:
		a.walkExpression(e.Expression)
	case *ast.PrefixExpression:
		a.walkExpression(e.Right)
	case *ast.InfixExpression:
		a.walkExpression(e.Left)
		a.walkExpression(e.Right)
	case *ast.LogicalExpression:
		a.walkExpression(e.Left)
		a.walkExpression(e.Right)
	case *ast.AssignExpression:
		a.walkExpression(e.Value)
	case *ast.CallExpression:
		a.walkExpression(e.Function)
		for _, arg := range e.Arguments {
			a.walkExpression(arg)
		}
	case *ast.MethodCallExpression:
		for _, arg := range e.Call.Arguments {
			a.walkExpression(arg)
		}
	case *ast.SpliceExpression:
		if e.Start != nil {
			a.walkExpression(e.Start)
		}
		if e.End != nil {
			a.walkExpression(e.End)
		}
	case *ast.ListLiteral:
		for _, el := range e.Elements {
			a.walkExpression(el)
		}
	}
}

func (a *Analyzer) checkParameters(fn *ast.FuncStatement) {
	seen := map[string]bool{}
	for _, param := range fn.Parameters {
		if seen[param.Value] {
			a.errorAt(param, CodeDuplicateParameter,
				fmt.Sprintf("duplicate parameter %s in function %s", param.Value, fn.Name.Value))
			continue
		}
		seen[param.Value] = true
	}
}

func (a *Analyzer) errorAt(node ast.Node, code string, msg string) {
	line, col := node.Pos()
	a.errs = append(a.errs, &Error{Code: code, Message: msg, Line: line})
	a.diags = append(a.diags, diag.Diagnostic{
		Code:     code,
		Message:  msg,
		Severity: diag.SeverityError,
		Range:    diag.Range{Line: line, Col: col, Length: 1},
	})
}

func (a *Analyzer) warnAt(node ast.Node, code string, msg string) {
	line, col := node.Pos()
	a.diags = append(a.diags, diag.Diagnostic{
		Code:     code,
		Message:  msg,
		Severity: diag.SeverityWarning,
		Range:    diag.Range{Line: line, Col: col, Length: 1},
	})
}
