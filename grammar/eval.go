package grammar

import "math"

func (e *Expression) Eval() float64 {
	value := e.Head.Eval()
	for _, op := range e.Tail {
		switch op.Operator {
		case "+":
			value += op.Term.Eval()
		case "-":
			value -= op.Term.Eval()
		}
	}
	return value
}

func (t *Term) Eval() float64 {
	value := t.Head.Eval()
	for _, op := range t.Tail {
		switch op.Operator {
		case "*":
			value *= op.Exponent.Eval()
		case "/":
			value /= op.Exponent.Eval()
		}
	}
	return value
}

func (e *Exponent) Eval() float64 {
	value := e.Base.Eval()
	for _, power := range e.Powers {
		value = math.Pow(value, power.Eval())
	}
	return value
}

func (f *Factor) Eval() float64 {
	var value float64
	if f.Number != nil {
		value = *f.Number
	} else if f.Group != nil {
		value = f.Group.Eval()
	}
	if f.Negative {
		return -value
	}
	return value
}
