package lsp

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/dhamidi/parsekit/config"
	"github.com/dhamidi/parsekit/diag"
	"github.com/dhamidi/parsekit/ebnf/parse"
	"github.com/dhamidi/parsekit/grammars/arith"
	"github.com/dhamidi/parsekit/grammars/json"
	"golang.org/x/exp/ebnf"
)

// Languages checked without configuration.
const (
	LanguageJSON  = "json"
	LanguageArith = "arith"
	LanguageEBNF  = "ebnf"
)

// Workspace holds the open documents and the grammars used to check them.
type Workspace struct {
	mu       sync.RWMutex
	cfg      *config.Config
	grammars map[string]*compiledGrammar
	files    map[string]*Document
}

type compiledGrammar struct {
	grammar *parse.Grammar
	err     error
}

type Document struct {
	Path        string
	Content     string
	Language    string
	Diagnostics []diag.Diagnostic
}

func NewWorkspace(cfg *config.Config) *Workspace {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Workspace{
		cfg:      cfg,
		grammars: make(map[string]*compiledGrammar),
		files:    make(map[string]*Document),
	}
}

func (w *Workspace) Config() *config.Config {
	return w.cfg
}

// UpdateFile stores content for path and checks it.
func (w *Workspace) UpdateFile(path, content string) *Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := &Document{Path: path, Content: content, Language: w.languageFor(path)}
	doc.Diagnostics = w.checkLocked(doc)
	w.files[path] = doc
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns the open documents ordered by path.
func (w *Workspace) Files() []*Document {
	w.mu.RLock()
	defer w.mu.RUnlock()

	docs := make([]*Document, 0, len(w.files))
	for _, doc := range w.files {
		docs = append(docs, doc)
	}
	slices.SortFunc(docs, func(a, b *Document) int { return strings.Compare(a.Path, b.Path) })
	return docs
}

// GrammarFiles returns the grammar name for every configured grammar file.
func (w *Workspace) GrammarFiles() map[string]string {
	files := make(map[string]string, len(w.cfg.Grammars))
	for _, g := range w.cfg.Grammars {
		files[w.cfg.Path(g)] = g.Name
	}
	return files
}

// InvalidateGrammar forgets the compiled grammar called name and checks
// again every open document that depends on it. It returns those
// documents.
func (w *Workspace) InvalidateGrammar(name string) []*Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.grammars, name)

	var path string
	if g, ok := w.cfg.Grammar(name); ok {
		path = w.cfg.Path(g)
	}

	var changed []*Document
	for p, doc := range w.files {
		if doc.Language != name && p != path {
			continue
		}
		updated := &Document{Path: doc.Path, Content: doc.Content, Language: doc.Language}
		updated.Diagnostics = w.checkLocked(updated)
		w.files[p] = updated
		changed = append(changed, updated)
	}
	slices.SortFunc(changed, func(a, b *Document) int { return strings.Compare(a.Path, b.Path) })
	return changed
}

func (w *Workspace) languageFor(path string) string {
	if g, ok := w.cfg.GrammarFor(path); ok {
		return g.Name
	}
	switch filepath.Ext(path) {
	case ".json":
		return LanguageJSON
	case ".arith":
		return LanguageArith
	case ".ebnf":
		return LanguageEBNF
	}
	return ""
}

func (w *Workspace) checkLocked(doc *Document) []diag.Diagnostic {
	var err error
	switch doc.Language {
	case "":
		return nil
	case LanguageJSON:
		_, err = json.Parse(doc.Content)
	case LanguageArith:
		_, err = arith.EvalWith(doc.Content, arith.Options{MaxDepth: w.cfg.Arith.MaxDepth})
	case LanguageEBNF:
		return w.checkGrammarLocked(doc)
	default:
		g, gerr := w.grammarLocked(doc.Language)
		if gerr != nil {
			return []diag.Diagnostic{{
				Severity: diag.SeverityWarning,
				Message:  fmt.Sprintf("grammar %s: %v", doc.Language, gerr),
				Span:     diag.At(doc.Content, 1, 1),
			}}
		}
		_, err = g.Parse(doc.Content)
	}

	if d, ok := diag.FromError(doc.Content, err); ok {
		return []diag.Diagnostic{d}
	}
	return nil
}

// checkGrammarLocked reports syntax errors in an EBNF file and, when the
// file is a configured grammar, verification errors against its start
// production.
func (w *Workspace) checkGrammarLocked(doc *Document) []diag.Diagnostic {
	g, err := ebnf.Parse(doc.Path, strings.NewReader(doc.Content))
	if err == nil {
		if name, ok := w.GrammarFiles()[doc.Path]; ok {
			gc, _ := w.cfg.Grammar(name)
			_, err = parse.Compile(g, gc.Start)
		}
	}

	var ds []diag.Diagnostic
	for _, e := range parse.GrammarErrors(doc.Path, err) {
		line, column := max(e.Line, 1), max(e.Column, 1)
		ds = append(ds, diag.Diagnostic{
			Severity: diag.SeverityError,
			Message:  e.Message,
			Span:     diag.At(doc.Content, line, column),
		})
	}
	return ds
}

func (w *Workspace) grammarLocked(name string) (*parse.Grammar, error) {
	if c, ok := w.grammars[name]; ok {
		return c.grammar, c.err
	}
	g, err := CompileGrammar(w.cfg, name)
	w.grammars[name] = &compiledGrammar{grammar: g, err: err}
	return g, err
}

// CompileGrammar compiles the configured grammar called name.
func CompileGrammar(cfg *config.Config, name string) (*parse.Grammar, error) {
	gc, ok := cfg.Grammar(name)
	if !ok {
		return nil, fmt.Errorf("no grammar named %q", name)
	}

	var opts []parse.Option
	if gc.Skip != "" {
		skip, err := parse.SkipPattern(gc.Skip)
		if err != nil {
			return nil, err
		}
		opts = append(opts, skip)
	}
	return parse.CompileFile(cfg.Path(gc), gc.Start, opts...)
}
