package main

import (
	"fmt"

	"github.com/dhamidi/parsekit/format"
	"github.com/dhamidi/parsekit/grammars/json"
	"github.com/spf13/cobra"
)

func newJSONCmd(a *app) *cobra.Command {
	var indent string

	cmd := &cobra.Command{
		Use:   "json <file|->",
		Short: "Parse a JSON document and print it re-encoded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			value, err := json.Parse(content, a.parserOptions()...)
			if err != nil {
				return a.report(cmd.ErrOrStderr(), displayName(args[0]), content, err)
			}

			enc := format.NewJSONEncoder(cmd.OutOrStdout())
			enc.SetIndent(indent)
			if err := enc.Encode(value); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&indent, "indent", "  ", "indentation for nested values (empty for compact output)")

	return cmd
}
