package diag

import "testing"

func TestFormat(t *testing.T) {
	d := Diagnostic{
		Code:     "ExpectedExpression",
		Message:  "expected expression, got \";\"",
		Severity: SeverityError,
		Range:    Range{Line: 3, Col: 7, Length: 1},
	}
	want := `main.brio:3:7: error ExpectedExpression: expected expression, got ";"`
	if got := d.Format("main.brio"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatWithoutCode(t *testing.T) {
	d := Diagnostic{
		Message:  "unterminated string",
		Severity: SeverityError,
		Range:    Range{Line: 1, Col: 2},
	}
	want := "a.brio:1:2: error: unterminated string"
	if got := d.Format("a.brio"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" {
		t.Errorf("error prints as %q", SeverityError.String())
	}
	if SeverityWarning.String() != "warning" {
		t.Errorf("warning prints as %q", SeverityWarning.String())
	}
}
