package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"brio/internal/diag"
)

// ToProtocolDiagnostics converts pipeline diagnostics (1-based lines and
// columns) to LSP diagnostics (0-based positions).
func ToProtocolDiagnostics(diags []diag.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	source := "brio"

	for _, d := range diags {
		severity := protocol.DiagnosticSeverityError
		if d.Severity == diag.SeverityWarning {
			severity = protocol.DiagnosticSeverityWarning
		}

		line := uint32(0)
		if d.Range.Line > 0 {
			line = uint32(d.Range.Line - 1)
		}
		col := uint32(0)
		if d.Range.Col > 0 {
			col = uint32(d.Range.Col - 1)
		}
		length := uint32(1)
		if d.Range.Length > 0 {
			length = uint32(d.Range.Length)
		}

		code := d.Code
		out = append(out, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: col},
				End:   protocol.Position{Line: line, Character: col + length},
			},
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: code},
			Source:   &source,
			Message:  d.Message,
		})
	}

	return out
}
