package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// Position is a 1-based line and column in the reported source
type Position struct {
	Line   int
	Column int
}

// CompilerError represents a structured diagnostic with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0101
	Message     string       // Primary error message
	Position    Position     // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string   // Description of the suggestion
	Replacement string   // Suggested replacement text (optional)
	Position    Position // Position to apply the fix (optional)
	Length      int      // Length of text to replace (optional)
}

// ErrorReporter renders diagnostics against one source text
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a named source
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError formats a diagnostic as a header, a locator, the offending
// source line with a caret marker, then suggestions, notes and help.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder

	levelColor := levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	width := lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)
	bar := dim("│")

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, bar)

	if err.Position.Line > 0 && err.Position.Line <= len(er.lines) {
		fmt.Fprintf(&b, "%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, err.Position.Line)), bar, er.lines[err.Position.Line-1])
		fmt.Fprintf(&b, "%s %s %s\n", indent, bar, createMarker(err.Position.Column, err.Length, err.Level))
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	for i, suggestion := range err.Suggestions {
		if i == 0 {
			fmt.Fprintf(&b, "%s %s %s: %s\n", indent, cyan("help"), cyan("try"), suggestion.Message)
		} else {
			fmt.Fprintf(&b, "%s %s %s\n", indent, cyan("    "), suggestion.Message)
		}
		if suggestion.Replacement != "" {
			fmt.Fprintf(&b, "%s %s %s\n", indent, cyan("│"), cyan(suggestion.Replacement))
		}
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, bar, blue("note:"), note)
	}

	if err.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, bar, green("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

func levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the underline marker for a span starting at column
func createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	return spaces + levelColor(level)(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	return max(3, len(fmt.Sprintf("%d", line))) // minimum width for visual alignment
}
