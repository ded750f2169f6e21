package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	calcerrors "calc/internal/errors"
)

// ConvertDiagnostics transforms worksheet diagnostics into LSP diagnostics.
// The result is never nil so an empty list clears the client's markers.
func ConvertDiagnostics(diagnostics []calcerrors.CompilerError) []protocol.Diagnostic {
	result := []protocol.Diagnostic{}

	for _, d := range diagnostics {
		length := d.Length
		if length <= 0 {
			length = 1
		}

		message := d.Message
		if d.HelpText != "" {
			message += "\n" + d.HelpText
		}
		for _, s := range d.Suggestions {
			message += "\n" + s.Message
		}

		result = append(result, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(d.Position.Line - 1),   // Convert to 0-based indexing
					Character: uint32(d.Position.Column - 1), // Convert to 0-based indexing
				},
				End: protocol.Position{
					Line:      uint32(d.Position.Line - 1),
					Character: uint32(d.Position.Column - 1 + length),
				},
			},
			Severity: ptrSeverity(severity(d.Level)),
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   ptrString("calc"),
			Message:  message,
		})
	}

	return result
}

func severity(level calcerrors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case calcerrors.Warning:
		return protocol.DiagnosticSeverityWarning
	case calcerrors.Note:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
