package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the tree with every binary operation parenthesized, which
// makes precedence and associativity visible: "2+3*4" prints as (2 + (3 * 4)).
func (e *Expression) String() string {
	s := e.Head.String()
	for _, op := range e.Tail {
		s = fmt.Sprintf("(%s %s %s)", s, op.Operator, op.Term.String())
	}
	return s
}

func (t *Term) String() string {
	s := t.Head.String()
	for _, op := range t.Tail {
		s = fmt.Sprintf("(%s %s %s)", s, op.Operator, op.Exponent.String())
	}
	return s
}

func (e *Exponent) String() string {
	s := e.Base.String()
	for _, power := range e.Powers {
		s = fmt.Sprintf("(%s ^ %s)", s, power.String())
	}
	return s
}

func (f *Factor) String() string {
	var s string
	if f.Number != nil {
		s = strconv.FormatFloat(*f.Number, 'g', -1, 64)
	} else if f.Group != nil {
		s = f.Group.String()
	}
	if f.Negative {
		return "-" + s
	}
	return s
}

// Tree renders the expression as an indented outline, one node per line.
func (e *Expression) Tree() string {
	var b strings.Builder
	e.writeTree(&b, 0)
	return b.String()
}

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (e *Expression) writeTree(b *strings.Builder, level int) {
	if len(e.Tail) == 0 {
		e.Head.writeTree(b, level)
		return
	}
	b.WriteString(indent(level) + "Expression\n")
	e.Head.writeTree(b, level+1)
	for _, op := range e.Tail {
		b.WriteString(indent(level+1) + op.Operator + "\n")
		op.Term.writeTree(b, level+1)
	}
}

func (t *Term) writeTree(b *strings.Builder, level int) {
	if len(t.Tail) == 0 {
		t.Head.writeTree(b, level)
		return
	}
	b.WriteString(indent(level) + "Term\n")
	t.Head.writeTree(b, level+1)
	for _, op := range t.Tail {
		b.WriteString(indent(level+1) + op.Operator + "\n")
		op.Exponent.writeTree(b, level+1)
	}
}

func (e *Exponent) writeTree(b *strings.Builder, level int) {
	if len(e.Powers) == 0 {
		e.Base.writeTree(b, level)
		return
	}
	b.WriteString(indent(level) + "Exponent\n")
	e.Base.writeTree(b, level+1)
	for _, power := range e.Powers {
		b.WriteString(indent(level+1) + "^\n")
		power.writeTree(b, level+1)
	}
}

func (f *Factor) writeTree(b *strings.Builder, level int) {
	prefix := ""
	if f.Negative {
		prefix = "-"
	}
	if f.Number != nil {
		b.WriteString(fmt.Sprintf("%sNumber %s%s\n", indent(level), prefix, strconv.FormatFloat(*f.Number, 'g', -1, 64)))
		return
	}
	b.WriteString(indent(level) + prefix + "Group\n")
	f.Group.writeTree(b, level+1)
}
