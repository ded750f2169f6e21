// Package calc evaluates arithmetic expressions over float64.
//
// The accepted language is digits with an optional fraction, the binary
// operators + - * / ^, unary minus on a factor, and parentheses. Every space
// is removed before parsing, so "1 2" reads as 12. Exponentiation associates
// to the left: 2^3^2 is 64.
package calc

import "strconv"

// Evaluator evaluates expressions with a fixed set of options.
// The zero value rejects trailing input and is safe for concurrent use.
type Evaluator struct {
	allowTrailing bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTrailingInput makes the evaluator ignore anything left over after the
// top-level expression, e.g. "(1+2))" evaluates to 3.
func WithTrailingInput() Option {
	return func(e *Evaluator) {
		e.allowTrailing = true
	}
}

// New returns an Evaluator configured by opts.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AllowsTrailingInput reports whether leftover input is ignored.
func (e *Evaluator) AllowsTrailingInput() bool {
	return e.allowTrailing
}

// Evaluate parses expression and returns its value. Malformed input yields a
// *SyntaxError.
func (e *Evaluator) Evaluate(expression string) (float64, error) {
	s := newScanner(expression)

	value, err := s.parseExpression()
	if err != nil {
		return 0, err
	}

	if !e.allowTrailing && !s.isAtEnd() {
		return 0, s.errorAtCurrent(TrailingInput)
	}
	return value, nil
}

var strict = New()

// Evaluate evaluates expression, rejecting trailing input.
func Evaluate(expression string) (float64, error) {
	return strict.Evaluate(expression)
}

// Format renders a result the way the command line prints it: the shortest
// representation that reads back to the same float64, "+Inf" for 1/0.
func Format(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
