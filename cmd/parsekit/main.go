package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/parsekit/config"
	"github.com/dhamidi/parsekit/diag"
	"github.com/dhamidi/parsekit/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/term"

	_ "github.com/tliron/commonlog/simple"
)

var version = "0.1.0"

// errReported is returned once diagnostics have been written, so that main
// exits with a failure without printing the error again.
var errReported = errors.New("errors reported")

// traceVerbosity is the commonlog verbosity at which debug messages, and
// so parser traces, are written.
const traceVerbosity = 2

// app holds the persistent flags and the configuration they resolve to.
type app struct {
	configPath string
	verbosity  int
	color      string
	trace      bool

	cfg *config.Config

	// loaded is set when cfg came from a file rather than the defaults.
	loaded bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "parsekit:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "parsekit",
		Short:         "Parser combinators, EBNF grammars and diagnostics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (default: parsekit.yaml in this or a parent directory)")
	flags.CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")
	flags.StringVar(&a.color, "color", "auto", "colorize diagnostics: auto, always or never")
	flags.BoolVar(&a.trace, "trace", false, "log every traced parser at debug level")

	rootCmd.AddCommand(newJSONCmd(a))
	rootCmd.AddCommand(newEvalCmd(a))
	rootCmd.AddCommand(newEbnfCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbosity = a.verbosity
	}
	if flags.Changed("trace") {
		cfg.Trace = a.trace
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	verbosity := cfg.Log.Verbosity
	if cfg.Trace {
		verbosity = max(verbosity, traceVerbosity)
	}
	commonlog.Configure(verbosity, cfg.LogFile())

	setColor(cfg.Color, os.Stderr)

	a.cfg = cfg
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	path := a.configPath
	if path == "" {
		found, err := config.Find(".")
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	a.loaded = true
	return cfg, nil
}

// setColor applies the color mode to fatih/color. auto enables color when
// out is a terminal and NO_COLOR is unset.
func setColor(mode string, out *os.File) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		if !term.IsTerminal(int(out.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
}

// parserOptions returns the input options every command parses with.
func (a *app) parserOptions() []parser.Option {
	if a.cfg == nil || !a.cfg.Trace {
		return nil
	}
	return []parser.Option{parser.WithLogger(commonlog.GetLogger("parsekit.trace"))}
}

// report writes err as a diagnostic against content. It returns
// errReported, or nil when err is nil.
func (a *app) report(w io.Writer, filename, content string, err error) error {
	d, ok := diag.FromError(content, err)
	if !ok {
		return nil
	}
	if rerr := diag.Render(w, d, diag.Options{Color: !color.NoColor, Filename: filename}); rerr != nil {
		return rerr
	}
	return errReported
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

func displayName(name string) string {
	if name == "-" {
		return "<stdin>"
	}
	return name
}
