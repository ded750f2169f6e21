package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"calc/internal/calc"
)

var parser = buildParser()

func buildParser() *participle.Parser[Expression] {
	p, err := participle.Build[Expression](
		participle.Lexer(CalcLexer),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

// Parse strips spaces from expression, as calc does, and parses the rest.
// Positions in the returned tree and errors refer to the stripped text.
func Parse(expression string) (*Expression, error) {
	return parser.ParseString("", calc.StripSpaces(expression))
}

// EBNF returns the grammar in participle's EBNF notation.
func EBNF() string {
	return parser.String()
}
