package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"calc/internal/calc"
	"calc/internal/worksheet"
)

// Semantic token types advertised in the legend, indexed by token type
var SemanticTokenTypes = []string{
	"number",
	"operator",
	"comment",
}

// Semantic token modifiers; worksheets use none but clients expect the legend
var SemanticTokenModifiers = []string{}

func log() commonlog.Logger {
	return commonlog.GetLogger("calc.lsp")
}

// CalcHandler implements the LSP server handlers for calc worksheets
type CalcHandler struct {
	mu        sync.RWMutex
	evaluator *calc.Evaluator
	sheets    map[protocol.DocumentUri]*worksheet.Sheet
}

// NewCalcHandler creates a handler that evaluates documents with evaluator
func NewCalcHandler(evaluator *calc.Evaluator) *CalcHandler {
	return &CalcHandler{
		evaluator: evaluator,
		sheets:    make(map[protocol.DocumentUri]*worksheet.Sheet),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *CalcHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log().Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities
func (h *CalcHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log().Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *CalcHandler) Shutdown(ctx *glsp.Context) error {
	log().Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

// SetTrace updates the trace level requested by the client
func (h *CalcHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen evaluates a newly opened worksheet and publishes its diagnostics
func (h *CalcHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log().Debugf("opened %s", params.TextDocument.URI)
	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange re-evaluates a worksheet after an edit; only full sync is advertised
func (h *CalcHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log().Debugf("changed %s", params.TextDocument.URI)

	var text string
	found := false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, found = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range != nil {
				return fmt.Errorf("incremental change for %s not supported", params.TextDocument.URI)
			}
			text, found = c.Text, true
		}
	}
	if !found {
		return nil
	}

	h.update(ctx, params.TextDocument.URI, text)
	return nil
}

// TextDocumentDidClose forgets the worksheet and clears its diagnostics
func (h *CalcHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log().Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.sheets, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentHover shows the value (or the error) of the expression under the cursor
func (h *CalcHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	sheet, ok := h.sheet(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	line, ok := sheet.LineAt(int(params.Position.Line) + 1)
	if !ok {
		return nil, nil
	}

	var value string
	if line.Err != nil {
		value = fmt.Sprintf("**error**: %s", line.Err.Message)
	} else {
		value = fmt.Sprintf("`= %s`", calc.Format(line.Value))
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: value,
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: params.Position.Line, Character: 0},
			End:   protocol.Position{Line: params.Position.Line, Character: uint32(len(line.Source))},
		},
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *CalcHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	sheet, ok := h.sheet(params.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("document %s is not open", params.TextDocument.URI)
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(sheet.Source)),
	}, nil
}

func (h *CalcHandler) sheet(uri protocol.DocumentUri) (*worksheet.Sheet, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sheet, ok := h.sheets[uri]
	return sheet, ok
}

func (h *CalcHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	sheet := worksheet.Evaluate(text, h.evaluator)

	h.mu.Lock()
	h.sheets[uri] = sheet
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, ConvertDiagnostics(sheet.Diagnostics()))
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log().Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
