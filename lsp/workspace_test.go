package lsp

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhamidi/parsekit/config"
	"github.com/dhamidi/parsekit/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listGrammar = `
List  = "[" [ Item { "," Item } ] "]" .
Item  = ident .
ident = letter { letter } .
letter = "a" … "z" .
`

// writeWorkspace creates a directory with a configuration registering the
// list grammar for .list files and returns the loaded configuration.
func writeWorkspace(t *testing.T) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.ebnf"), []byte(listGrammar), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(`
grammars:
  - name: list
    file: list.ebnf
    start: List
    extensions: [".list"]
`), 0o644))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	return cfg, dir
}

func TestWorkspace_Languages(t *testing.T) {
	cfg, dir := writeWorkspace(t)
	ws := NewWorkspace(cfg)

	tests := []struct {
		path     string
		language string
	}{
		{"a.json", LanguageJSON},
		{"b.arith", LanguageArith},
		{"c.ebnf", LanguageEBNF},
		{"d.list", "list"},
		{"e.txt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			doc := ws.UpdateFile(filepath.Join(dir, tt.path), "")
			assert.Equal(t, tt.language, doc.Language)
		})
	}
}

func TestWorkspace_UpdateFile(t *testing.T) {
	cfg, dir := writeWorkspace(t)
	ws := NewWorkspace(cfg)

	tests := []struct {
		name    string
		path    string
		content string
		message string
	}{
		{"valid json", "a.json", `{"a": [1, 2]}`, ""},
		{"invalid json", "a.json", `{"a": }`, "expected a value after ':'"},
		{"valid arith", "b.arith", "1 + 2 * 3", ""},
		{"division by zero", "b.arith", "1 / 0", "division by zero"},
		{"valid list", "d.list", "[a, bc]", ""},
		{"invalid list", "d.list", "[a, ]", `expected ident, found ']'`},
		{"plain text", "e.txt", "anything", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.path)
			doc := ws.UpdateFile(path, tt.content)
			assert.Same(t, doc, ws.GetFile(path))

			if tt.message == "" {
				assert.Empty(t, doc.Diagnostics)
				return
			}
			require.Len(t, doc.Diagnostics, 1)
			assert.Equal(t, diag.SeverityError, doc.Diagnostics[0].Severity)
			assert.Contains(t, doc.Diagnostics[0].Message, tt.message)
		})
	}
}

func TestWorkspace_GrammarFile(t *testing.T) {
	cfg, dir := writeWorkspace(t)
	ws := NewWorkspace(cfg)

	doc := ws.UpdateFile(filepath.Join(dir, "list.ebnf"), `List = Missing .`)
	require.Len(t, doc.Diagnostics, 1)
	assert.Contains(t, doc.Diagnostics[0].Message, "Missing")
	assert.Equal(t, 1, doc.Diagnostics[0].Span.Start().Line())

	doc = ws.UpdateFile(filepath.Join(dir, "other.ebnf"), "A = \"a\" .\nB = .\n C")
	require.NotEmpty(t, doc.Diagnostics)
	assert.Equal(t, 3, doc.Diagnostics[0].Span.Start().Line())

	doc = ws.UpdateFile(filepath.Join(dir, "list.ebnf"), listGrammar)
	assert.Empty(t, doc.Diagnostics)
}

func TestWorkspace_BrokenGrammar(t *testing.T) {
	cfg, dir := writeWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.ebnf"), []byte(`List = List "x" .`), 0o644))
	ws := NewWorkspace(cfg)

	doc := ws.UpdateFile(filepath.Join(dir, "d.list"), "[a]")
	require.Len(t, doc.Diagnostics, 1)
	assert.Equal(t, diag.SeverityWarning, doc.Diagnostics[0].Severity)
	assert.Contains(t, doc.Diagnostics[0].Message, "left recursion")
}

func TestWorkspace_InvalidateGrammar(t *testing.T) {
	cfg, dir := writeWorkspace(t)
	ws := NewWorkspace(cfg)

	listPath := filepath.Join(dir, "d.list")
	doc := ws.UpdateFile(listPath, "[a; b]")
	require.Len(t, doc.Diagnostics, 1)
	ws.UpdateFile(filepath.Join(dir, "a.json"), "{}")

	relaxed := `List = "[" [ ident { ( "," | ";" ) ident } ] "]" . ident = "a" … "z" .`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.ebnf"), []byte(relaxed), 0o644))

	changed := ws.InvalidateGrammar("list")
	require.Len(t, changed, 1)
	assert.Equal(t, listPath, changed[0].Path)
	assert.Empty(t, changed[0].Diagnostics)
	assert.Same(t, changed[0], ws.GetFile(listPath))
}

func TestWorkspace_Files(t *testing.T) {
	ws := NewWorkspace(nil)
	ws.UpdateFile("/b.json", "1")
	ws.UpdateFile("/a.json", "2")
	ws.UpdateFile("/c.json", "3")
	ws.RemoveFile("/c.json")

	var paths []string
	for _, doc := range ws.Files() {
		paths = append(paths, doc.Path)
	}
	assert.Equal(t, []string{"/a.json", "/b.json"}, paths)
	assert.Nil(t, ws.GetFile("/c.json"))
}

func TestGrammarWatcher_Scan(t *testing.T) {
	cfg, dir := writeWorkspace(t)
	ws := NewWorkspace(cfg)
	ws.UpdateFile(filepath.Join(dir, "d.list"), "[a]")

	var reported [][]*Document
	w := NewGrammarWatcher(ws, func(docs []*Document) { reported = append(reported, docs) })

	w.scan()
	assert.Empty(t, reported)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "list.ebnf"), later, later))
	w.scan()
	require.Len(t, reported, 1)
	assert.Equal(t, filepath.Join(dir, "d.list"), reported[0][0].Path)

	w.scan()
	assert.Len(t, reported, 1)

	w.Stop()
	w.Stop()
}

func TestCompileGrammar(t *testing.T) {
	cfg, _ := writeWorkspace(t)

	g, err := CompileGrammar(cfg, "list")
	require.NoError(t, err)
	assert.Equal(t, "List", g.Start())

	_, err = CompileGrammar(cfg, "nope")
	assert.EqualError(t, err, `no grammar named "nope"`)
}
