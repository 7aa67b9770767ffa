package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bdl/internal/codegen"
	"bdl/internal/lsp"
)

const uri = "file:///tmp/sample.bdl"

const sample = `def add(a: int, b: int) -> int {
    return a + b
}
x: int = add(1, 2)
print(x)
`

type published struct {
	uri         string
	diagnostics []protocol.Diagnostic
}

func newContext(sink *[]published) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				return
			}
			p := params.(*protocol.PublishDiagnosticsParams)
			*sink = append(*sink, published{uri: p.URI, diagnostics: p.Diagnostics})
		},
	}
}

func open(t *testing.T, h *lsp.BdlHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "bdl", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewBdlHandler(codegen.DefaultOptions())
	var sink []published
	ctx := newContext(&sink)
	open(t, handler, ctx, sample)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 13)

	assertToken(t, &decoded[0], 1, 1, 3, "keyword", nil)
	assertToken(t, &decoded[1], 1, 5, 3, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 9, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[3], 1, 17, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[4], 2, 5, 6, "keyword", nil)
	assertToken(t, &decoded[5], 2, 12, 1, "parameter", nil)
	assertToken(t, &decoded[6], 2, 16, 1, "parameter", nil)
	assertToken(t, &decoded[7], 4, 1, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[8], 4, 10, 3, "function", nil)
	assertToken(t, &decoded[9], 4, 14, 1, "number", nil)
	assertToken(t, &decoded[10], 4, 17, 1, "number", nil)
	assertToken(t, &decoded[11], 5, 1, 5, "keyword", nil)
	assertToken(t, &decoded[12], 5, 7, 1, "variable", nil)
}

func TestDiagnosticsFollowEdits(t *testing.T) {
	handler := lsp.NewBdlHandler(codegen.DefaultOptions())
	var sink []published
	ctx := newContext(&sink)

	open(t, handler, ctx, "x: int = 1\ny = 2\n")
	require.Len(t, sink, 1)
	require.Len(t, sink[0].diagnostics, 1)

	diag := sink[0].diagnostics[0]
	assert.Equal(t, uri, sink[0].uri)
	assert.Equal(t, uint32(1), diag.Range.Start.Line)
	assert.Equal(t, uint32(0), diag.Range.Start.Character)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	assert.Equal(t, "E0001", diag.Code.Value)

	// fix the typo with a ranged edit: "y" -> "x"
	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 1, Character: 0},
					End:   protocol.Position{Line: 1, Character: 1},
				},
				Text: "x",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, sink, 2)
	assert.Empty(t, sink[1].diagnostics)

	err = handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                3,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "print(1"}},
	})
	require.NoError(t, err)
	require.Len(t, sink, 3)
	require.Len(t, sink[2].diagnostics, 1)
	assert.Equal(t, "E0100", sink[2].diagnostics[0].Code.Value)

	require.NoError(t, handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	require.Len(t, sink, 4)
	assert.Empty(t, sink[3].diagnostics)
}

func TestRangedEditAfterWideCharacter(t *testing.T) {
	handler := lsp.NewBdlHandler(codegen.DefaultOptions())
	var sink []published
	ctx := newContext(&sink)

	open(t, handler, ctx, "s: string = \"😀\"\nprint(t)\n")
	require.Len(t, sink, 1)
	require.Len(t, sink[0].diagnostics, 1)

	// the closing quote ends at UTF-16 character 16
	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 0, Character: 16},
					End:   protocol.Position{Line: 0, Character: 16},
				},
				Text: "\nt: int = 1",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, sink, 2)
	assert.Empty(t, sink[1].diagnostics)
}

func TestWarningSeverity(t *testing.T) {
	handler := lsp.NewBdlHandler(codegen.DefaultOptions())
	var sink []published
	open(t, handler, newContext(&sink), "xs: list<int> = [1]\nprint(xs)\n")

	require.Len(t, sink, 1)
	require.Len(t, sink[0].diagnostics, 1)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *sink[0].diagnostics[0].Severity)
}

func TestCompletion(t *testing.T) {
	handler := lsp.NewBdlHandler(codegen.DefaultOptions())
	var sink []published
	ctx := newContext(&sink)
	open(t, handler, ctx, sample)

	result, err := handler.TextDocumentCompletion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)

	list := result.(*protocol.CompletionList)
	labels := make(map[string]*protocol.CompletionItem)
	for i := range list.Items {
		labels[list.Items[i].Label] = &list.Items[i]
	}

	for _, want := range []string{"def", "rep", "print", "int", "list"} {
		assert.Contains(t, labels, want)
	}
	require.Contains(t, labels, "add")
	assert.Equal(t, "def add(a: int, b: int) -> int", *labels["add"].Detail)
}

func TestChangeOnUnopenedDocumentFails(t *testing.T) {
	handler := lsp.NewBdlHandler(codegen.DefaultOptions())
	_, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///nowhere.bdl"},
	})
	assert.Error(t, err)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
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
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
