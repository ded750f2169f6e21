package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"calc/internal/calc"
	"calc/internal/lsp"
)

const uri = "file:///tmp/sheet.calc"

const source = "1 + 2\n2(3)   # oops\n\n8/4/2\n"

type published struct {
	method string
	params *protocol.PublishDiagnosticsParams
}

func newContext(notifications *[]published) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			p, _ := params.(*protocol.PublishDiagnosticsParams)
			*notifications = append(*notifications, published{method: method, params: p})
		},
	}
}

func openSheet(t *testing.T, handler *lsp.CalcHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "calc", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	handler := lsp.NewCalcHandler(calc.New())

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	init, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, true, init.Capabilities.HoverProvider)
	require.NotNil(t, init.Capabilities.SemanticTokensProvider)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	var notifications []published
	ctx := newContext(&notifications)
	handler := lsp.NewCalcHandler(calc.New())

	openSheet(t, handler, ctx, source)

	require.Len(t, notifications, 1)
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, notifications[0].method)
	require.NotNil(t, notifications[0].params)

	diagnostics := notifications[0].params.Diagnostics
	require.Len(t, diagnostics, 1)
	assert.Equal(t, uint32(1), diagnostics[0].Range.Start.Line)
	assert.Equal(t, uint32(1), diagnostics[0].Range.Start.Character)
	assert.Equal(t, "E0101", diagnostics[0].Code.Value)
	assert.Contains(t, diagnostics[0].Message, "Unexpected open parenthesis")
}

func TestDidChangeClearsDiagnostics(t *testing.T) {
	var notifications []published
	ctx := newContext(&notifications)
	handler := lsp.NewCalcHandler(calc.New())

	openSheet(t, handler, ctx, source)

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "2*(3)\n"}},
	})
	require.NoError(t, err)

	require.Len(t, notifications, 2)
	assert.Empty(t, notifications[1].params.Diagnostics)
	assert.NotNil(t, notifications[1].params.Diagnostics, "an empty list is needed to clear markers")
}

func TestHover(t *testing.T) {
	var notifications []published
	ctx := newContext(&notifications)
	handler := lsp.NewCalcHandler(calc.New())

	openSheet(t, handler, ctx, source)

	hover := hoverAt(t, handler, 0)
	require.NotNil(t, hover)
	assert.Equal(t, "`= 3`", hover.Contents.(protocol.MarkupContent).Value)

	hover = hoverAt(t, handler, 1)
	require.NotNil(t, hover)
	assert.Contains(t, hover.Contents.(protocol.MarkupContent).Value, "Unexpected open parenthesis")

	assert.Nil(t, hoverAt(t, handler, 2), "blank lines have no value")

	hover = hoverAt(t, handler, 3)
	require.NotNil(t, hover)
	assert.Equal(t, "`= 1`", hover.Contents.(protocol.MarkupContent).Value)
}

func TestDidClose(t *testing.T) {
	var notifications []published
	ctx := newContext(&notifications)
	handler := lsp.NewCalcHandler(calc.New())

	openSheet(t, handler, ctx, source)
	require.NoError(t, handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))

	assert.Nil(t, hoverAt(t, handler, 0))
	require.Len(t, notifications, 2)
	assert.Empty(t, notifications[1].params.Diagnostics)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	var notifications []published
	ctx := newContext(&notifications)
	handler := lsp.NewCalcHandler(calc.New())

	openSheet(t, handler, ctx, "12.5 * (3)\n# note")

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 6)

	assertToken(t, &decoded[0], 1, 1, 4, "number")
	assertToken(t, &decoded[1], 1, 6, 1, "operator")
	assertToken(t, &decoded[2], 1, 8, 1, "operator")
	assertToken(t, &decoded[3], 1, 9, 1, "number")
	assertToken(t, &decoded[4], 1, 10, 1, "operator")
	assertToken(t, &decoded[5], 2, 1, 6, "comment")
}

func TestSemanticTokensForUnknownDocument(t *testing.T) {
	handler := lsp.NewCalcHandler(calc.New())

	_, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	assert.Error(t, err)
}

func hoverAt(t *testing.T, handler *lsp.CalcHandler, line uint32) *protocol.Hover {
	t.Helper()
	hover, err := handler.TextDocumentHover(&glsp.Context{}, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: line, Character: 0},
		},
	})
	require.NoError(t, err)
	return hover
}

type DecodedToken struct {
	Line   uint32
	Char   uint32
	Length uint32
	Type   string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		decoded = append(decoded, DecodedToken{
			Line:   line + 1, // LSP uses 0-based indexing
			Char:   char + 1, // LSP uses 0-based indexing
			Length: raw[i+2],
			Type:   lsp.SemanticTokenTypes[raw[i+3]],
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
}
