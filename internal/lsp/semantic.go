package lsp

import (
	"strings"

	"calc/internal/calc"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens marks number literals, operators and parentheses,
// and comments, in document order.
func collectSemanticTokens(source string) []SemanticToken {
	var tokens []SemanticToken

	for lineNo, line := range strings.Split(source, "\n") {
		line = strings.TrimRight(line, "\r")
		for i := 0; i < len(line); {
			c := line[i]
			switch sym := calc.Classify(c); {
			case c == '#':
				tokens = append(tokens, makeToken(lineNo, i, len(line)-i, "comment"))
				i = len(line)
			case sym == calc.NUMBER || sym == calc.POINT:
				start := i
				for i < len(line) && (calc.Classify(line[i]) == calc.NUMBER || calc.Classify(line[i]) == calc.POINT) {
					i++
				}
				tokens = append(tokens, makeToken(lineNo, start, i-start, "number"))
			case sym != calc.INVALID:
				tokens = append(tokens, makeToken(lineNo, i, 1, "operator"))
				i++
			default:
				i++
			}
		}
	}

	return tokens
}

// encodeSemanticTokens encodes tokens into LSP wire format (delta-line, delta-start)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

func makeToken(line, start, length int, tokenType string) SemanticToken {
	return SemanticToken{
		Line:      uint32(line),
		StartChar: uint32(start),
		Length:    uint32(length),
		TokenType: indexOf(tokenType, SemanticTokenTypes),
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
