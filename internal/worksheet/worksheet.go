// Package worksheet evaluates a document holding one expression per line.
//
// Blank lines are skipped and '#' starts a comment that runs to the end of
// the line. Each remaining line is evaluated on its own.
package worksheet

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	"calc/internal/calc"
	calcerrors "calc/internal/errors"
)

// log is resolved on each use so it picks up the backend configured by main.
func log() commonlog.Logger {
	return commonlog.GetLogger("calc.worksheet")
}

// Line is the outcome of one expression line.
type Line struct {
	Number int // 1-based line number in the document
	Source string
	Value  float64
	Err    *calc.SyntaxError
}

// Sheet is an evaluated worksheet.
type Sheet struct {
	Source string
	Lines  []Line
}

// Evaluate evaluates every expression line of source with evaluator.
func Evaluate(source string, evaluator *calc.Evaluator) *Sheet {
	sheet := &Sheet{Source: source}

	for i, raw := range strings.Split(source, "\n") {
		text := StripComment(strings.TrimRight(raw, "\r"))
		if strings.TrimSpace(text) == "" {
			continue
		}

		line := Line{Number: i + 1, Source: text}
		value, err := evaluator.Evaluate(text)
		if err != nil {
			line.Err = asSyntaxError(err)
		} else {
			line.Value = value
		}
		sheet.Lines = append(sheet.Lines, line)
	}

	return sheet
}

// Load reads and evaluates the worksheet at path.
func Load(path string, evaluator *calc.Evaluator) (*Sheet, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet: %w", err)
	}

	sheet := Evaluate(string(source), evaluator)
	log().Debugf("evaluated %s: %d expressions, %d failed", path, len(sheet.Lines), len(sheet.Failed()))
	return sheet, nil
}

func asSyntaxError(err error) *calc.SyntaxError {
	var syntaxErr *calc.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr
	}
	return &calc.SyntaxError{Kind: calc.Generic, Message: err.Error(), Column: 1}
}

// StripComment drops everything from the first '#' on.
func StripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// Failed returns the lines that did not evaluate.
func (s *Sheet) Failed() []Line {
	var failed []Line
	for _, line := range s.Lines {
		if line.Err != nil {
			failed = append(failed, line)
		}
	}
	return failed
}

// LineAt returns the expression on the given 1-based document line.
func (s *Sheet) LineAt(number int) (Line, bool) {
	for _, line := range s.Lines {
		if line.Number == number {
			return line, true
		}
	}
	return Line{}, false
}

// Diagnostics converts every failed line into a reportable diagnostic.
func (s *Sheet) Diagnostics() []calcerrors.CompilerError {
	var diagnostics []calcerrors.CompilerError
	for _, line := range s.Failed() {
		diagnostics = append(diagnostics, calcerrors.FromSyntaxError(line.Err, line.Number, line.Source))
	}
	return diagnostics
}
