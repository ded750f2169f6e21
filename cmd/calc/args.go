package main

// normalizeArgs stops flag parsing at the first argument that reads as a
// negative expression, so "calc -2*3" evaluates instead of failing on an
// unknown flag "-2".
func normalizeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if looksLikeExpression(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func looksLikeExpression(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	switch c := arg[1]; {
	case c >= '0' && c <= '9', c == '.', c == '(', c == '-', c == ' ':
		return true
	}
	return false
}
