// Package lsp is a language server that reports parse errors as
// diagnostics while documents are edited.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/parsekit/config"
	"github.com/dhamidi/parsekit/parser"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "parsekit"

var log = commonlog.GetLogger("parsekit.lsp")

type Server struct {
	cfg       *config.Config
	workspace *Workspace
	watcher   *GrammarWatcher
	handler   protocol.Handler
	server    *server.Server
	version   string

	mu   sync.Mutex
	uris map[string]protocol.DocumentUri
}

// NewServer creates a server. With a nil cfg the configuration is looked
// up from the workspace root when the client initializes.
func NewServer(version string, cfg *config.Config) *Server {
	ls := &Server{
		cfg:       cfg,
		workspace: NewWorkspace(cfg),
		version:   version,
		uris:      make(map[string]protocol.DocumentUri),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) Workspace() *Workspace {
	return ls.workspace
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if ls.cfg == nil {
		rootDir := "."
		if params.RootPath != nil && *params.RootPath != "" {
			rootDir = *params.RootPath
		} else if params.RootURI != nil && *params.RootURI != "" {
			if path, err := uriToPath(*params.RootURI); err == nil {
				rootDir = path
			}
		}

		if path, err := config.Find(rootDir); err == nil {
			cfg, err := config.Load(path)
			if err != nil {
				log.Errorf("%s", err)
			} else {
				ls.workspace = NewWorkspace(cfg)
			}
		}
	}

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	notify := ctx.Notify
	ls.watcher = NewGrammarWatcher(ls.workspace, func(docs []*Document) {
		for _, doc := range docs {
			if uri, ok := ls.uriFor(doc.Path); ok {
				publish(notify, uri, doc)
			}
		}
	})
	ls.watcher.Start()
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
	}
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.RemoveFile(path)

	ls.mu.Lock()
	delete(ls.uris, path)
	ls.mu.Unlock()

	publish(ctx.Notify, params.TextDocument.URI, nil)
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	path, err := uriToPath(uri)
	if err != nil {
		return
	}

	ls.mu.Lock()
	ls.uris[path] = uri
	ls.mu.Unlock()

	doc := ls.workspace.UpdateFile(path, text)
	log.Debugf("%s: %s, %d diagnostics", path, doc.Language, len(doc.Diagnostics))
	publish(ctx.Notify, uri, doc)
}

func (ls *Server) uriFor(path string) (protocol.DocumentUri, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	uri, ok := ls.uris[path]
	return uri, ok
}

// publish sends the diagnostics of doc; a nil doc clears them.
func publish(notify glsp.NotifyFunc, uri protocol.DocumentUri, doc *Document) {
	diagnostics := []protocol.Diagnostic{}
	if doc != nil {
		diagnostics = toProtocolDiagnostics(doc)
	}
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func toProtocolDiagnostics(doc *Document) []protocol.Diagnostic {
	source := lsName
	out := make([]protocol.Diagnostic, 0, len(doc.Diagnostics))
	for _, d := range doc.Diagnostics {
		severity := protocol.DiagnosticSeverity(d.Severity)
		out = append(out, protocol.Diagnostic{
			Range:    toProtocolRange(doc.Content, d.Span),
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return out
}

// toProtocolRange widens an empty span to the character under it so that
// editors have something to underline.
func toProtocolRange(content string, span parser.Span) protocol.Range {
	start := span.Start().ByteOffset()
	end := span.End().ByteOffset()
	if start == end && end < len(content) && content[end] != '\n' {
		_, size := utf8.DecodeRuneInString(content[end:])
		end += size
	}
	return protocol.Range{
		Start: toProtocolPosition(content, start),
		End:   toProtocolPosition(content, end),
	}
}

// toProtocolPosition converts a byte offset into a zero-based line and a
// character counted in UTF-16 code units.
func toProtocolPosition(content string, offset int) protocol.Position {
	lineStart := strings.LastIndexByte(content[:offset], '\n') + 1
	character := 0
	for _, r := range content[lineStart:offset] {
		character += max(utf16.RuneLen(r), 1)
	}
	return protocol.Position{
		Line:      protocol.UInteger(strings.Count(content[:lineStart], "\n")),
		Character: protocol.UInteger(character),
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
