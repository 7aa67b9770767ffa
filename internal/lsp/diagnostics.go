package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bdl/internal/errors"
)

const diagnosticSource = "bdl"

// ConvertDiagnostics transforms compiler diagnostics into LSP diagnostics for IDE display.
// Positions are converted from 1-based to 0-based.
func ConvertDiagnostics(diags []errors.CompilerError) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, convertDiagnostic(d))
	}
	return out
}

func convertDiagnostic(d errors.CompilerError) protocol.Diagnostic {
	line := zeroBased(d.Position.Line)
	start := zeroBased(d.Position.Column)
	length := d.Length
	if length <= 0 {
		length = 1
	}

	message := d.Message
	for _, s := range d.Suggestions {
		message += "\n" + s.Message
	}
	if d.HelpText != "" {
		message += "\nhelp: " + d.HelpText
	}

	severity := protocol.DiagnosticSeverityError
	if d.Level == errors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	diag := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: start + uint32(length)},
		},
		Severity: ptrSeverity(severity),
		Source:   ptrString(diagnosticSource),
		Message:  message,
	}
	if d.Code != "" {
		diag.Code = &protocol.IntegerOrString{Value: d.Code}
	}
	return diag
}

func zeroBased(n int) uint32 {
	if n <= 1 {
		return 0
	}
	return uint32(n - 1)
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
