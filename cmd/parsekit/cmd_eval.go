package main

import (
	"fmt"

	"github.com/dhamidi/parsekit/grammars/arith"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an integer arithmetic expression",
		Long: `Evaluate an expression of integers, + - * / and parentheses.
Division truncates toward zero. Use - to read the expression from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			name := "<expression>"
			if text == "-" {
				content, err := readInput(cmd, text)
				if err != nil {
					return err
				}
				text, name = content, displayName("-")
			}

			opts := arith.Options{MaxDepth: a.cfg.Arith.MaxDepth}
			if cmd.Flags().Changed("max-depth") {
				opts.MaxDepth = maxDepth
			}

			result, err := arith.EvalWith(text, opts, a.parserOptions()...)
			if err != nil {
				return a.report(cmd.ErrOrStderr(), name, text, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", arith.DefaultMaxDepth, "maximum parenthesis nesting (negative for unlimited)")

	return cmd
}
