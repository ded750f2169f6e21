package calc

import "errors"

// ErrSyntax matches every *SyntaxError under errors.Is.
var ErrSyntax = errors.New("syntax error")

// ErrorKind classifies why an expression was rejected.
type ErrorKind int

const (
	UnexpectedPoint ErrorKind = iota
	UnexpectedOpenParen
	UnexpectedCloseParen
	ExpectedCloseParen
	Generic
	TrailingInput
)

func (k ErrorKind) message() string {
	switch k {
	case UnexpectedPoint:
		return "Syntax: Unexpected decimal point"
	case UnexpectedOpenParen:
		return "Syntax: Unexpected open parenthesis"
	case UnexpectedCloseParen:
		return "Syntax: Unexpected closed parenthesis"
	case ExpectedCloseParen:
		return "Syntax: Expected closed parenthesis"
	case TrailingInput:
		return "Syntax: Unexpected trailing input"
	default:
		return "Syntax"
	}
}

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedPoint:
		return "UnexpectedPoint"
	case UnexpectedOpenParen:
		return "UnexpectedOpenParen"
	case UnexpectedCloseParen:
		return "UnexpectedCloseParen"
	case ExpectedCloseParen:
		return "ExpectedCloseParen"
	case Generic:
		return "Generic"
	case TrailingInput:
		return "TrailingInput"
	default:
		return "ErrorKind(?)"
	}
}

// SyntaxError is returned for any input the grammar cannot accept.
type SyntaxError struct {
	Kind    ErrorKind
	Message string
	Offset  int // index into the space-stripped input
	Column  int // 1-based column in the input as given
}

func (e *SyntaxError) Error() string {
	return e.Message
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}
