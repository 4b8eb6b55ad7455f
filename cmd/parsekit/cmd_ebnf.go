package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/parsekit/config"
	"github.com/dhamidi/parsekit/diag"
	"github.com/dhamidi/parsekit/ebnf/parse"
	"github.com/dhamidi/parsekit/format"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newEbnfCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ebnf",
		Short: "EBNF grammar tools",
	}

	cmd.AddCommand(newEbnfCheckCmd(a))
	cmd.AddCommand(newEbnfParseCmd(a))

	return cmd
}

func newEbnfCheckCmd(a *app) *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse and verify an EBNF grammar file",
		Long: `Parse an EBNF grammar file. With --start the grammar is also verified
from that production and checked for left recursion. A configured grammar
file is verified from its configured start production.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if startProduction == "" {
				if g, ok := grammarFile(a.cfg, filename); ok {
					startProduction = g.Start
				}
			}
			_, err := a.loadGrammar(cmd, filename, startProduction)
			return err
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newEbnfParseCmd(a *app) *cobra.Command {
	var (
		startProduction string
		skip            string
		outputFormat    string
		maxDepth        int
	)

	cmd := &cobra.Command{
		Use:   "parse <grammar> <file|->",
		Short: "Parse a file with an EBNF grammar and print its syntax tree",
		Long: `Parse a file with an EBNF grammar and print its syntax tree.

The grammar is a file or the name of a grammar in the configuration, whose
start production and skip pattern are used unless overridden by flags.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, start, skipPattern := args[0], startProduction, skip
			if g, ok := a.cfg.Grammar(args[0]); ok {
				filename = a.cfg.Path(g)
				if !cmd.Flags().Changed("start") {
					start = g.Start
				}
				if !cmd.Flags().Changed("skip") {
					skipPattern = g.Skip
				}
			}
			if start == "" {
				return fmt.Errorf("no start production: use --start")
			}

			var opts []parse.Option
			if skipPattern != "" {
				opt, err := parse.SkipPattern(skipPattern)
				if err != nil {
					return err
				}
				opts = append(opts, opt)
			}
			if cmd.Flags().Changed("max-depth") {
				opts = append(opts, parse.WithMaxDepth(maxDepth))
			}

			grammar, err := a.loadGrammar(cmd, filename, start, opts...)
			if err != nil {
				return err
			}

			content, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}

			root, err := grammar.Parse(content, a.parserOptions()...)
			if err != nil {
				return a.report(cmd.ErrOrStderr(), displayName(args[1]), content, err)
			}

			var enc format.Encoder[*parse.Node]
			switch outputFormat {
			case "tree":
				enc = format.NewTreeEncoder(cmd.OutOrStdout())
			case "json":
				enc = format.NewASTJSONEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := enc.Encode(root); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production")
	cmd.Flags().StringVar(&skip, "skip", "", "regular expression skipped before tokens (default: whitespace)")
	cmd.Flags().StringVar(&outputFormat, "format", "tree", "output format: tree or json")
	cmd.Flags().IntVar(&maxDepth, "max-depth", parse.DefaultMaxDepth, "maximum production nesting (0 for unlimited)")

	return cmd
}

// loadGrammar parses the grammar in filename and, when start is set,
// compiles it. Grammar errors are rendered as diagnostics; the returned
// grammar is nil when start is empty.
func (a *app) loadGrammar(cmd *cobra.Command, filename, start string, opts ...parse.Option) (*parse.Grammar, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	content := string(data)

	g, err := ebnf.Parse(filename, strings.NewReader(content))
	if err != nil {
		return nil, a.reportGrammar(cmd, filename, content, err)
	}
	if start == "" {
		return nil, nil
	}

	compiled, err := parse.Compile(g, start, opts...)
	if err != nil {
		return nil, a.reportGrammar(cmd, filename, content, err)
	}
	return compiled, nil
}

func (a *app) reportGrammar(cmd *cobra.Command, filename, content string, err error) error {
	var ds []diag.Diagnostic
	for _, e := range parse.GrammarErrors(filename, err) {
		ds = append(ds, diag.Diagnostic{
			Severity: diag.SeverityError,
			Message:  e.Message,
			Span:     diag.At(content, max(e.Line, 1), max(e.Column, 1)),
		})
	}
	o := diag.Options{Color: !color.NoColor, Filename: filename}
	if rerr := diag.RenderAll(cmd.ErrOrStderr(), ds, o); rerr != nil {
		return rerr
	}
	return errReported
}

// grammarFile returns the configured grammar stored in filename.
func grammarFile(cfg *config.Config, filename string) (config.Grammar, bool) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return config.Grammar{}, false
	}
	for _, g := range cfg.Grammars {
		if path, err := filepath.Abs(cfg.Path(g)); err == nil && path == abs {
			return g, true
		}
	}
	return config.Grammar{}, false
}
