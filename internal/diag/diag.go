// Package diag is the diagnostic currency of the pipeline: the parser and
// analyzer produce these values, and the check command and language server
// render them.
package diag

import "fmt"

// Severity splits diagnostics into run-stopping errors and advisory
// warnings. Warnings never fail a run.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Range locates a diagnostic in the source text.
type Range struct {
	Line   int // 1-based
	Col    int // 1-based
	Length int // best-effort; can be 1 if unknown
}

// Diagnostic is one finding. Code names the condition (a parser or
// analyzer code constant) so callers can match without parsing Message.
type Diagnostic struct {
	Code     string
	Message  string
	Severity Severity
	Range    Range
}

func (d Diagnostic) Format(path string) string {
	if d.Code != "" {
		return fmt.Sprintf("%s:%d:%d: %s %s: %s", path, d.Range.Line, d.Range.Col, d.Severity.String(), d.Code, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", path, d.Range.Line, d.Range.Col, d.Severity.String(), d.Message)
}
