package calc

// Symbol is the terminal class of a single input byte.
type Symbol int

const (
	NUMBER Symbol = iota
	POINT
	LEFT_PAREN
	RIGHT_PAREN
	PLUS
	MINUS
	STAR
	SLASH
	CARET
	INVALID
)

var symbolNames = [...]string{
	NUMBER:      "NUMBER",
	POINT:       "POINT",
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	STAR:        "STAR",
	SLASH:       "SLASH",
	CARET:       "CARET",
	INVALID:     "INVALID",
}

func (s Symbol) String() string {
	if s < 0 || int(s) >= len(symbolNames) {
		return "Symbol(?)"
	}
	return symbolNames[s]
}

// IsOperator reports whether s is one of the binary/unary operator symbols.
func (s Symbol) IsOperator() bool {
	switch s {
	case PLUS, MINUS, STAR, SLASH, CARET:
		return true
	}
	return false
}

// Classify maps a byte to its Symbol. Every byte outside the calculator
// alphabet, including the zero byte used as end of input, is INVALID.
func Classify(c byte) Symbol {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return NUMBER
	case '.':
		return POINT
	case '(':
		return LEFT_PAREN
	case ')':
		return RIGHT_PAREN
	case '+':
		return PLUS
	case '-':
		return MINUS
	case '*':
		return STAR
	case '/':
		return SLASH
	case '^':
		return CARET
	default:
		return INVALID
	}
}
