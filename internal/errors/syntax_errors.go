package errors

import "calc/internal/calc"

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error-level diagnostic builder
func NewDiagnostic(code, message string, pos Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string, pos Position, length int) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// FromSyntaxError converts an evaluator error on the given 1-based line of
// source into a diagnostic with a fix suggestion where one is obvious.
func FromSyntaxError(err *calc.SyntaxError, line int, source string) CompilerError {
	pos := Position{Line: line, Column: err.Column}
	builder := NewDiagnostic(CodeFor(err.Kind), err.Message, pos)

	switch err.Kind {
	case calc.UnexpectedPoint:
		builder = builder.WithSuggestion("write at least one digit on both sides of '.'").
			WithNote("numbers look like 3, 0.5 or 12.75")
	case calc.UnexpectedOpenParen:
		builder = builder.WithReplacement("insert an explicit operator", "*", pos, 0).
			WithNote("implicit multiplication such as 2(3) is not supported")
	case calc.UnexpectedCloseParen:
		builder = builder.WithSuggestion("remove the ')' or add a matching '('")
	case calc.ExpectedCloseParen:
		builder = builder.WithReplacement("close the group", source+")", Position{Line: line, Column: 1}, len(source))
	case calc.TrailingInput:
		builder = builder.WithSuggestion("remove everything after the complete expression")
	default:
		builder = builder.WithHelp("a number, '-' or '(' was expected here; unary '+' is not supported")
	}

	return builder.Build()
}
