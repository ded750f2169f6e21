package calc

// scanner is the cursor over one space-stripped expression. It is owned by a
// single evaluation and never shared.
type scanner struct {
	input   string
	columns []int // 1-based raw column for every index, including end of input
	current int
	char    byte
	// parenDepth > 0 means a ')' may legally terminate the current number.
	parenDepth int
}

func newScanner(raw string) *scanner {
	input, columns := stripSpaces(raw)
	s := &scanner{
		input:   input,
		columns: columns,
	}
	s.char = s.charAt(0)
	return s
}

func (s *scanner) advance() {
	if !s.isAtEnd() {
		s.current++
	}
	s.char = s.charAt(s.current)
}

func (s *scanner) peek() Symbol {
	return Classify(s.char)
}

func (s *scanner) charAt(i int) byte {
	if i >= len(s.input) {
		return 0
	}
	return s.input[i]
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.input)
}

func (s *scanner) column() int {
	return s.columns[s.current]
}

func (s *scanner) errorAtCurrent(kind ErrorKind) *SyntaxError {
	return &SyntaxError{
		Kind:    kind,
		Message: kind.message(),
		Offset:  s.current,
		Column:  s.column(),
	}
}

// StripSpaces removes every space byte from s, wherever it occurs.
// Tabs and other whitespace are left alone and later classify as INVALID.
func StripSpaces(s string) string {
	stripped, _ := stripSpaces(s)
	return stripped
}

func stripSpaces(raw string) (string, []int) {
	out := make([]byte, 0, len(raw))
	columns := make([]int, 0, len(raw)+1)
	for i := 0; i < len(raw); i++ {
		if raw[i] == ' ' {
			continue
		}
		out = append(out, raw[i])
		columns = append(columns, i+1)
	}
	columns = append(columns, len(raw)+1)
	return string(out), columns
}
