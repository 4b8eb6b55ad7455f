package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/parsekit/grammars/arith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "auto", c.Color)
	assert.Equal(t, arith.DefaultMaxDepth, c.Arith.MaxDepth)
	assert.Nil(t, c.LogFile())
	assert.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	c, err := Load("testdata/parsekit.yaml")
	require.NoError(t, err)

	assert.Equal(t, 2, c.Log.Verbosity)
	require.NotNil(t, c.LogFile())
	assert.Equal(t, "parsekit.log", *c.LogFile())
	assert.Equal(t, "never", c.Color)
	assert.True(t, c.Trace)
	assert.Equal(t, 16, c.Arith.MaxDepth)
	require.Len(t, c.Grammars, 2)

	g, ok := c.GrammarFor("settings.cfg")
	require.True(t, ok)
	assert.Equal(t, "ini", g.Name)
	assert.Equal(t, `[ \t]*`, g.Skip)
	assert.Equal(t, "/etc/parsekit/ini.ebnf", c.Path(g))

	g, ok = c.Grammar("arith")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("testdata", "grammars", "arith.ebnf"), c.Path(g))

	_, ok = c.GrammarFor("README")
	assert.False(t, ok)
	_, ok = c.GrammarFor("x.json")
	assert.False(t, ok)
	_, ok = c.Grammar("nope")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		c, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), c)
	})

	t.Run("partial document", func(t *testing.T) {
		c, err := Parse([]byte("color: always\n"))
		require.NoError(t, err)
		assert.Equal(t, "always", c.Color)
		assert.Equal(t, arith.DefaultMaxDepth, c.Arith.MaxDepth)
	})

	tests := []struct {
		name string
		yaml string
		want []string
	}{
		{"unknown key", "colour: auto\n", []string{"colour"}},
		{"bad color", "color: sometimes\n", []string{`got "sometimes"`}},
		{"bad depth", "arith:\n  max_depth: 0\n", []string{"arith.max_depth must be positive"}},
		{
			"bad grammars",
			"grammars:\n  - file: a.ebnf\n    extensions: [txt]\n  - name: b\n  - name: b\n    file: b.ebnf\n    start: B\n",
			[]string{
				"grammars[0]: name is required",
				"grammars[0]: start is required",
				`grammars[0]: extension "txt" must start with a dot`,
				"grammars[1]: file is required",
				`grammars[2]: duplicate name "b"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			for _, want := range tt.want {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	_, err := Find(nested)
	if err == nil {
		t.Skip("a parsekit.yaml exists above the temporary directory")
	}
	assert.ErrorIs(t, err, ErrNotFound)

	hidden := filepath.Join(root, "a", HiddenFileName)
	require.NoError(t, os.WriteFile(hidden, []byte("color: never\n"), 0o644))

	found, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, hidden, found)

	visible := filepath.Join(root, "a", FileName)
	require.NoError(t, os.WriteFile(visible, []byte("color: never\n"), 0o644))

	found, err = Find(filepath.Join(root, "a"))
	require.NoError(t, err)
	assert.Equal(t, visible, found)
}
