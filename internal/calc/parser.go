package calc

import "math"

// The rules below evaluate while they parse; no tree is built.
//
//	expression = term { ("+" | "-") term }
//	term       = exponent { ("*" | "/") exponent }
//	exponent   = factor { "^" factor }
//	factor     = [ "-" ] ( number | "(" expression ")" )
//	number     = digit { digit } [ "." digit { digit } ]

func (s *scanner) parseExpression() (float64, error) {
	value, err := s.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		switch s.peek() {
		case PLUS:
			s.advance()
			right, err := s.parseTerm()
			if err != nil {
				return 0, err
			}
			value += right
		case MINUS:
			s.advance()
			right, err := s.parseTerm()
			if err != nil {
				return 0, err
			}
			value -= right
		default:
			return value, nil
		}
	}
}

func (s *scanner) parseTerm() (float64, error) {
	value, err := s.parseExponent()
	if err != nil {
		return 0, err
	}

	for {
		switch s.peek() {
		case STAR:
			s.advance()
			right, err := s.parseExponent()
			if err != nil {
				return 0, err
			}
			value *= right
		case SLASH:
			s.advance()
			right, err := s.parseExponent()
			if err != nil {
				return 0, err
			}
			// x/0 yields ±Inf or NaN
			value /= right
		default:
			return value, nil
		}
	}
}

// parseExponent folds left to right, so 2^3^2 is (2^3)^2.
func (s *scanner) parseExponent() (float64, error) {
	value, err := s.parseFactor()
	if err != nil {
		return 0, err
	}

	for s.peek() == CARET {
		s.advance()
		power, err := s.parseFactor()
		if err != nil {
			return 0, err
		}
		value = math.Pow(value, power)
	}
	return value, nil
}

func (s *scanner) parseFactor() (float64, error) {
	sign := 1.0
	if s.peek() == MINUS {
		s.advance()
		sign = -1
	}

	switch s.peek() {
	case NUMBER:
		value, err := s.parseNumber()
		if err != nil {
			return 0, err
		}
		return sign * value, nil
	case LEFT_PAREN:
		s.parenDepth++
		s.advance()
		value, err := s.parseExpression()
		if err != nil {
			return 0, err
		}
		if s.peek() != RIGHT_PAREN {
			return 0, s.errorAtCurrent(ExpectedCloseParen)
		}
		s.advance()
		s.parenDepth--
		return sign * value, nil
	case POINT:
		return 0, s.errorAtCurrent(UnexpectedPoint)
	default:
		return 0, s.errorAtCurrent(Generic)
	}
}

func (s *scanner) parseNumber() (float64, error) {
	var value float64
	for s.peek() == NUMBER {
		value = value*10 + float64(s.char-'0')
		s.advance()
	}

	if s.peek() == POINT {
		s.advance()
		if s.peek() != NUMBER {
			return 0, s.errorAtCurrent(UnexpectedPoint)
		}

		var fraction float64
		digits := 0
		for s.peek() == NUMBER {
			fraction = fraction*10 + float64(s.char-'0')
			digits++
			s.advance()
		}
		value += fraction / math.Pow(10, float64(digits))
	}

	switch {
	case s.peek() == LEFT_PAREN:
		// no implicit multiplication
		return 0, s.errorAtCurrent(UnexpectedOpenParen)
	case s.peek() == RIGHT_PAREN && s.parenDepth == 0:
		return 0, s.errorAtCurrent(UnexpectedCloseParen)
	}
	return value, nil
}
