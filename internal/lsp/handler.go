package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bdl/internal/ast"
	"bdl/internal/codegen"
	"bdl/internal/compiler"
	"bdl/token"
)

var log = commonlog.GetLogger("bdl.lsp")

// SemanticTokenTypes is the legend advertised to the client
var SemanticTokenTypes = []string{
	"function",
	"variable",
	"parameter",
	"keyword",
	"number",
	"string",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

// BdlHandler implements the LSP server handlers for BDL. Documents are kept
// in memory and recompiled on every change.
type BdlHandler struct {
	mu      sync.RWMutex
	opts    codegen.Options
	content map[protocol.DocumentUri]string
	results map[protocol.DocumentUri]*compiler.Result
}

func NewBdlHandler(opts codegen.Options) *BdlHandler {
	return &BdlHandler{
		opts:    opts,
		content: make(map[protocol.DocumentUri]string),
		results: make(map[protocol.DocumentUri]*compiler.Result),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *BdlHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
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

func (h *BdlHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *BdlHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *BdlHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *BdlHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("opened %s", uri)

	h.mu.Lock()
	h.content[uri] = params.TextDocument.Text
	h.mu.Unlock()

	return h.refresh(ctx, uri)
}

// TextDocumentDidChange applies the edits in order and recompiles
func (h *BdlHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	h.mu.Lock()
	text := h.content[uri]
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, c)
		}
	}
	h.content[uri] = text
	h.mu.Unlock()

	return h.refresh(ctx, uri)
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *BdlHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.content, uri)
	delete(h.results, uri)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers keywords, type names and the document's functions
func (h *BdlHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	var items []protocol.CompletionItem

	keywordKind := protocol.CompletionItemKindKeyword
	for _, kw := range token.Keywords() {
		items = append(items, protocol.CompletionItem{Label: kw, Kind: &keywordKind})
	}
	typeKind := protocol.CompletionItemKindTypeParameter
	for _, kw := range token.TypeKeywords() {
		items = append(items, protocol.CompletionItem{Label: kw, Kind: &typeKind})
	}

	h.mu.RLock()
	result := h.results[params.TextDocument.URI]
	h.mu.RUnlock()
	if result != nil && result.Program != nil {
		fnKind := protocol.CompletionItemKindFunction
		for _, fn := range functionDefs(result.Program) {
			detail := fn.String()
			if i := strings.Index(detail, " {"); i >= 0 {
				detail = detail[:i]
			}
			items = append(items, protocol.CompletionItem{Label: fn.Name.Value, Kind: &fnKind, Detail: ptrString(detail)})
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *BdlHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI

	h.mu.RLock()
	result, ok := h.results[uri]
	h.mu.RUnlock()
	if !ok {
		if err := h.refresh(ctx, uri); err != nil {
			return nil, err
		}
		h.mu.RLock()
		result = h.results[uri]
		h.mu.RUnlock()
	}

	if result == nil || result.Program == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(collectSemanticTokens(result.Program))}, nil
}

// refresh recompiles the stored text of uri and publishes its diagnostics
func (h *BdlHandler) refresh(ctx *glsp.Context, uri protocol.DocumentUri) error {
	h.mu.RLock()
	text, ok := h.content[uri]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("document %s is not open", uri)
	}

	name, err := uriToPath(uri)
	if err != nil {
		return err
	}

	// the error only summarizes what the diagnostics already say
	result, _ := compiler.Compile(name, text, h.opts)

	h.mu.Lock()
	h.results[uri] = result
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, ConvertDiagnostics(result.Diagnostics))
	return nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// /C:/... on Windows
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

// applyChange replaces the range of a ranged change; a change without a range replaces everything
func applyChange(text string, change protocol.TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}
	start := offsetOf(text, change.Range.Start)
	end := offsetOf(text, change.Range.End)
	if end < start {
		start, end = end, start
	}
	return text[:start] + change.Text + text[end:]
}

// offsetOf maps a 0-based line/character position to a byte offset, clamped to
// the text. Characters count UTF-16 code units.
func offsetOf(text string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}
	lineEnd := strings.IndexByte(text[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text) - offset
	}
	units := 0
	for i, r := range text[offset : offset+lineEnd] {
		n := utf16.RuneLen(r)
		if units+n > int(pos.Character) {
			return offset + i
		}
		units += n
	}
	return offset + lineEnd
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostic(s) for %s", len(diagnostics), uri)
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

func functionDefs(program *ast.Program) []*ast.FunctionDef {
	var fns []*ast.FunctionDef
	for _, e := range program.Expressions {
		if fn, ok := e.(*ast.FunctionDef); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
