package lsp

import (
	"testing"

	"brio/internal/diag"
)

func TestCollectCleanSource(t *testing.T) {
	diags := Collect("var x = 1;\nprint x;\n")
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func TestCollectLexerError(t *testing.T) {
	diags := Collect("var x = @;")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Code != "UnexpectedInput" {
		t.Errorf("code = %q", diags[0].Code)
	}
	if diags[0].Range.Line != 1 {
		t.Errorf("line = %d", diags[0].Range.Line)
	}
}

func TestCollectParserErrorsSurviveRecovery(t *testing.T) {
	diags := Collect("var = 1;\nvar x = 2;\nprint ;\n")
	if len(diags) < 2 {
		t.Fatalf("expected recovered diagnostics, got %d", len(diags))
	}
	for _, d := range diags {
		if d.Severity != diag.SeverityError {
			t.Errorf("unexpected severity %v for %q", d.Severity, d.Code)
		}
	}
}

func TestCollectAnalyzerDiagnostics(t *testing.T) {
	diags := Collect("return 1;")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Code != "ReturnOutsideFunction" {
		t.Errorf("code = %q", diags[0].Code)
	}
}

func TestCollectWarnings(t *testing.T) {
	diags := Collect("def f() {\n  return 1;\n  print 2;\n}")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Severity != diag.SeverityWarning {
		t.Errorf("severity = %v", diags[0].Severity)
	}
}

func TestIsScriptURI(t *testing.T) {
	if !IsScriptURI("file:///tmp/main.brio") {
		t.Error("main.brio not recognized")
	}
	if IsScriptURI("file:///tmp/readme.md") {
		t.Error("readme.md recognized")
	}
}

func TestPathFromURI(t *testing.T) {
	if got := PathFromURI("file:///tmp/a.brio"); got != "/tmp/a.brio" {
		t.Errorf("got %q", got)
	}
	if got := PathFromURI("not a uri"); got != "not a uri" {
		t.Errorf("got %q", got)
	}
}

func TestDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	store.Set("u", "text")

	if text, ok := store.Get("u"); !ok || text != "text" {
		t.Errorf("get = %q, %v", text, ok)
	}

	store.Delete("u")
	if _, ok := store.Get("u"); ok {
		t.Error("document survived delete")
	}
}
