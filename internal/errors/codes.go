package errors

import "calc/internal/calc"

// Error codes for calc diagnostics.
// These codes are used in CLI output, REPL output and language server
// diagnostics so the same problem is identified the same way everywhere.
//
// Error code ranges:
// E0100-E0199: Syntax errors
// E0900-E0999: Reserved for tooling errors (worksheet I/O)

const (
	// E0100: A '.' not followed by a digit, or a factor starting with '.'
	ErrorUnexpectedPoint = "E0100"

	// E0101: A '(' directly after a number (implicit multiplication)
	ErrorUnexpectedOpenParen = "E0101"

	// E0102: A ')' after a number outside of any group
	ErrorUnexpectedCloseParen = "E0102"

	// E0103: A group opened with '(' was never closed
	ErrorExpectedCloseParen = "E0103"

	// E0104: Any other symbol where a number or group was expected
	ErrorGenericSyntax = "E0104"

	// E0105: Input left over after a complete expression
	ErrorTrailingInput = "E0105"

	// E0900: Worksheet could not be read
	ErrorWorksheetIO = "E0900"
)

// CodeFor returns the error code for a syntax error kind.
func CodeFor(kind calc.ErrorKind) string {
	switch kind {
	case calc.UnexpectedPoint:
		return ErrorUnexpectedPoint
	case calc.UnexpectedOpenParen:
		return ErrorUnexpectedOpenParen
	case calc.UnexpectedCloseParen:
		return ErrorUnexpectedCloseParen
	case calc.ExpectedCloseParen:
		return ErrorExpectedCloseParen
	case calc.TrailingInput:
		return ErrorTrailingInput
	default:
		return ErrorGenericSyntax
	}
}

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedPoint:
		return "Decimal point without digits after it"
	case ErrorUnexpectedOpenParen:
		return "Parenthesis directly after a number; implicit multiplication is not supported"
	case ErrorUnexpectedCloseParen:
		return "Closing parenthesis without a matching open parenthesis"
	case ErrorExpectedCloseParen:
		return "Parenthesized group is missing its closing parenthesis"
	case ErrorGenericSyntax:
		return "Expected a number or a parenthesized expression"
	case ErrorTrailingInput:
		return "Input continues after a complete expression"
	case ErrorWorksheetIO:
		return "Worksheet file could not be read"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Syntax"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
