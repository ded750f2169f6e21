// Package grammar is a declarative description of the calculator language.
//
// Unlike calc, which folds values while it scans, this grammar builds a tree.
// It always requires the whole input to be consumed.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Expression struct {
	Pos  lexer.Position
	Head *Term    `parser:"@@"`
	Tail []*AddOp `parser:"@@*"`
}

type AddOp struct {
	Operator string `parser:"@(\"+\" | \"-\")"`
	Term     *Term  `parser:"@@"`
}

type Term struct {
	Head *Exponent `parser:"@@"`
	Tail []*MulOp  `parser:"@@*"`
}

type MulOp struct {
	Operator string    `parser:"@(\"*\" | \"/\")"`
	Exponent *Exponent `parser:"@@"`
}

// Exponent chains factors with '^', folded left to right.
type Exponent struct {
	Base   *Factor   `parser:"@@"`
	Powers []*Factor `parser:"( \"^\" @@ )*"`
}

type Factor struct {
	Pos      lexer.Position
	Negative bool        `parser:"@\"-\"?"`
	Number   *float64    `parser:"( @Number"`
	Group    *Expression `parser:"| \"(\" @@ \")\" )"`
}
