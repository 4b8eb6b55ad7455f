package lsp

import (
	"path/filepath"
	"testing"

	"github.com/dhamidi/parsekit/diag"
	"github.com/dhamidi/parsekit/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type recorder struct {
	published []protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published)
	return r.published[len(r.published)-1]
}

func TestServer_Initialize(t *testing.T) {
	_, dir := writeWorkspace(t)
	ls := NewServer("1.2.3", nil)
	rec := &recorder{}

	root := "file://" + dir
	result, err := ls.initialize(rec.context(), &protocol.InitializeParams{RootURI: &root})
	require.NoError(t, err)

	res, ok := result.(protocol.InitializeResult)
	require.True(t, ok)
	require.NotNil(t, res.ServerInfo)
	assert.Equal(t, "parsekit", res.ServerInfo.Name)
	assert.Equal(t, "1.2.3", *res.ServerInfo.Version)

	_, ok = ls.Workspace().Config().Grammar("list")
	assert.True(t, ok)
}

func TestServer_DocumentLifecycle(t *testing.T) {
	ls := NewServer("test", nil)
	rec := &recorder{}
	ctx := rec.context()
	uri := "file:///tmp/doc.json"

	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "json", Version: 1, Text: `{"a": }`},
	}))
	published := rec.last(t)
	assert.Equal(t, uri, published.URI)
	require.Len(t, published.Diagnostics, 1)
	d := published.Diagnostics[0]
	assert.Equal(t, "parsekit", *d.Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Contains(t, d.Message, "expected a value")

	require.NoError(t, ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: `{"a": 1}`}},
	}))
	published = rec.last(t)
	assert.NotNil(t, published.Diagnostics)
	assert.Empty(t, published.Diagnostics)
	assert.Equal(t, `{"a": 1}`, ls.Workspace().GetFile("/tmp/doc.json").Content)

	saved := "[1,"
	require.NoError(t, ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		Text:         &saved,
	}))
	assert.Len(t, rec.last(t).Diagnostics, 1)

	require.NoError(t, ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	published = rec.last(t)
	assert.NotNil(t, published.Diagnostics)
	assert.Empty(t, published.Diagnostics)
	assert.Nil(t, ls.Workspace().GetFile("/tmp/doc.json"))
}

func TestServer_WatcherRepublishes(t *testing.T) {
	cfg, dir := writeWorkspace(t)
	ls := NewServer("test", cfg)
	rec := &recorder{}
	ctx := rec.context()

	require.NoError(t, ls.initialized(ctx, &protocol.InitializedParams{}))
	defer ls.shutdown(ctx)

	uri := "file://" + filepath.Join(dir, "d.list")
	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "[a]"},
	}))
	count := len(rec.published)

	docs := ls.Workspace().InvalidateGrammar("list")
	ls.watcher.onChange(docs)
	require.Len(t, rec.published, count+1)
	assert.Equal(t, uri, rec.last(t).URI)
}

func TestToProtocolRange(t *testing.T) {
	content := "ab\n€x😀y\n"

	tests := []struct {
		name       string
		line, col  int
		start, end protocol.Position
	}{
		{"first char", 1, 1, protocol.Position{Line: 0, Character: 0}, protocol.Position{Line: 0, Character: 1}},
		{"end of line", 1, 3, protocol.Position{Line: 0, Character: 2}, protocol.Position{Line: 0, Character: 2}},
		{"after bmp rune", 2, 2, protocol.Position{Line: 1, Character: 1}, protocol.Position{Line: 1, Character: 2}},
		{"astral rune", 2, 3, protocol.Position{Line: 1, Character: 2}, protocol.Position{Line: 1, Character: 4}},
		{"after astral rune", 2, 4, protocol.Position{Line: 1, Character: 4}, protocol.Position{Line: 1, Character: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := toProtocolRange(content, diag.At(content, tt.line, tt.col))
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, tt.end, r.End)
		})
	}

	t.Run("multi-line span", func(t *testing.T) {
		in := parser.NewInput(content)
		in.Read()
		start := in.Cursor()
		for range 5 {
			in.Read()
		}
		r := toProtocolRange(content, in.SpanFrom(start))
		assert.Equal(t, protocol.Position{Line: 0, Character: 1}, r.Start)
		assert.Equal(t, protocol.Position{Line: 1, Character: 4}, r.End)
	})
}

func TestUriToPath(t *testing.T) {
	path, err := uriToPath("file:///home/user/my%20file.json")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/my file.json", path)

	path, err = uriToPath("untitled:1")
	require.NoError(t, err)
	assert.Equal(t, "untitled:1", path)
}
