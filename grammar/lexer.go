package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CalcLexer tokenizes space-stripped expressions. A number is digits with an
// optional fraction; a lone '.' is not a token, so "1." fails to lex.
var CalcLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`, Action: nil},
		{Name: "Operator", Pattern: `[-+*/^()]`, Action: nil},
	},
})
