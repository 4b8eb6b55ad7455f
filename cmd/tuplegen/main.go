// Command tuplegen writes the fixed-arity sequence combinators of package
// parser.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func main() {
	var output string
	var maxArity int

	rootCmd := &cobra.Command{
		Use:   "tuplegen",
		Short: "Generate SequenceN and SeparatedSequenceN combinators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxArity < 1 || maxArity > len(letters) {
				return fmt.Errorf("max must be between 1 and %d, got %d", len(letters), maxArity)
			}
			src, err := generate(maxArity)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			if output == "" || output == "-" {
				_, err = os.Stdout.Write(src)
				return err
			}
			return os.WriteFile(output, src, 0o644)
		},
	}

	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	rootCmd.Flags().IntVar(&maxArity, "max", 20, "largest arity to generate")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generate(maxArity int) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by tuplegen. DO NOT EDIT.\n\npackage parser\n")
	for n := 1; n <= maxArity; n++ {
		writeTuple(&b, n)
		writeSequence(&b, n, false)
		writeSequence(&b, n, true)
	}
	return format.Source(b.Bytes())
}

func typeParams(n int) []string {
	params := make([]string, n)
	for i := range params {
		params[i] = letters[i : i+1]
	}
	return params
}

func writeTuple(b *bytes.Buffer, n int) {
	params := typeParams(n)
	name := fmt.Sprintf("Tuple%d[%s]", n, strings.Join(params, ", "))

	fmt.Fprintf(b, "\n// Tuple%d holds the results of Sequence%d.\n", n, n)
	fmt.Fprintf(b, "type Tuple%d[%s any] struct {\n", n, strings.Join(params, ", "))
	for _, p := range params {
		fmt.Fprintf(b, "\t%s %s\n", p, p)
	}
	b.WriteString("}\n")

	fields := make([]string, n)
	for i, p := range params {
		fields[i] = "t." + p
	}
	results := strings.Join(params, ", ")
	if n > 1 {
		results = "(" + results + ")"
	}
	fmt.Fprintf(b, "\n// Unpack returns the fields in order.\n")
	fmt.Fprintf(b, "func (t %s) Unpack() %s {\n\treturn %s\n}\n", name, results, strings.Join(fields, ", "))
}

func writeSequence(b *bytes.Buffer, n int, separated bool) {
	params := typeParams(n)
	tuple := fmt.Sprintf("Tuple%d[%s]", n, strings.Join(params, ", "))

	args := make([]string, n)
	for i, p := range params {
		args[i] = fmt.Sprintf("p%s Parser[%s]", strings.ToLower(p), p)
	}

	switch {
	case separated && n == 1:
		b.WriteString("\n// SeparatedSequence1 is Sequence1. sep has no effect with a single parser.\n")
	case separated:
		fmt.Fprintf(b, "\n// SeparatedSequence%d is Sequence%d with sep matched between every pair\n// of parsers.\n", n, n)
	case n == 1:
		b.WriteString("\n// Sequence1 reads one parser and returns its result.\n")
	default:
		fmt.Fprintf(b, "\n// Sequence%d reads %d parsers in order and returns all their results.\n", n, n)
	}

	if separated {
		fmt.Fprintf(b, "func SeparatedSequence%d[%s any](sep Matcher, %s) Parser[%s] {\n",
			n, strings.Join(params, ", "), strings.Join(args, ", "), tuple)
	} else {
		fmt.Fprintf(b, "func Sequence%d[%s any](%s) Parser[%s] {\n",
			n, strings.Join(params, ", "), strings.Join(args, ", "), tuple)
	}

	fmt.Fprintf(b, "\treturn RestoreOnNotFound(func(in *Input) (t %s, err error) {\n", tuple)
	for i, p := range params {
		if separated && i > 0 {
			fmt.Fprintf(b, "\t\tif err = sep.Match(in); err != nil {\n\t\t\treturn %s{}, err\n\t\t}\n", tuple)
		}
		fmt.Fprintf(b, "\t\tif t.%s, err = p%s(in); err != nil {\n\t\t\treturn %s{}, err\n\t\t}\n",
			p, strings.ToLower(p), tuple)
	}
	b.WriteString("\t\treturn t, nil\n\t})\n}\n")
}
