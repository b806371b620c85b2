package lexer

import (
	"testing"

	"brio/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `var five = 5;
var pi = 3.14;
def add(x, y) {
	return x + y;
}
var ok = five <= 10 and five != 4;
xs[1:2];
xs.push(5);
i++;
i--;
`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.VAR, "var"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.NUM, "5"},
		{token.SEMICOLON, ";"},
		{token.VAR, "var"},
		{token.IDENT, "pi"},
		{token.ASSIGN, "="},
		{token.NUM, "3.14"},
		{token.SEMICOLON, ";"},
		{token.DEF, "def"},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.IDENT, "y"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.VAR, "var"},
		{token.IDENT, "ok"},
		{token.ASSIGN, "="},
		{token.IDENT, "five"},
		{token.LE, "<="},
		{token.NUM, "10"},
		{token.AND, "and"},
		{token.IDENT, "five"},
		{token.NE, "!="},
		{token.NUM, "4"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "xs"},
		{token.LBRACKET, "["},
		{token.NUM, "1"},
		{token.COLON, ":"},
		{token.NUM, "2"},
		{token.RBRACKET, "]"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "xs"},
		{token.DOT, "."},
		{token.IDENT, "push"},
		{token.LPAREN, "("},
		{token.NUM, "5"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "i"},
		{token.INCR, "++"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "i"},
		{token.DECR, "--"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d]: wrong type. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d]: wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := "// leading\nvar x = 1; /* inline */ var y = 2;\n/* multi\nline */ var z = 3;"

	toks, err := Scan(input)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	var idents []string
	for _, tok := range toks {
		if tok.Type == token.IDENT {
			idents = append(idents, tok.Literal)
		}
	}
	want := []string{"x", "y", "z"}
	if len(idents) != len(want) {
		t.Fatalf("wrong idents: %v", idents)
	}
	for i := range want {
		if idents[i] != want[i] {
			t.Errorf("idents[%d]=%q, want %q", i, idents[i], want[i])
		}
	}
}

func TestStringEscapes(t *testing.T) {
	toks, err := Scan(`"a\"b\n\tc";`)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if toks[0].Type != token.STRING {
		t.Fatalf("expected string token, got %q", toks[0].Type)
	}
	if toks[0].Literal != "a\"b\n\tc" {
		t.Errorf("wrong literal: %q", toks[0].Literal)
	}
	if toks[0].Raw != `"a\"b\n\tc"` {
		t.Errorf("wrong raw: %q", toks[0].Raw)
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		input string
		line  int
	}{
		{"var x = 1;\n@", 2},
		{`"never closed`, 1},
	}

	for _, tt := range tests {
		_, err := Scan(tt.input)
		if err == nil {
			t.Fatalf("expected error for %q", tt.input)
		}
		scanErr, ok := err.(*Error)
		if !ok {
			t.Fatalf("expected *Error, got %T", err)
		}
		if scanErr.Line != tt.line {
			t.Errorf("wrong line for %q: got %d, want %d", tt.input, scanErr.Line, tt.line)
		}
	}
}

func TestLineAndColTracking(t *testing.T) {
	toks, err := Scan("var x = 1;\nvar y = 2;")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	// second 'var' starts line 2, col 1
	if toks[5].Type != token.VAR || toks[5].Line != 2 || toks[5].Col != 1 {
		t.Errorf("wrong position: %+v", toks[5])
	}
}
