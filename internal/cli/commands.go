package cli

import (
	"fmt"
	"time"

	"github.com/npillmayer/pretty"
	"github.com/spf13/cobra"
)

func newSexprCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sexpr [file...]",
		Short: "Pretty-print s-expressions",
		Long:  `Reads s-expressions from the given files, or from stdin, and prints them laid out for the configured line width.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, inputSexpr, args)
		},
	}
}

func newJSONCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "json [file...]",
		Short: "Pretty-print JSON values",
		Long:  `Reads a stream of JSON values from the given files, or from stdin, and prints them laid out for the configured line width. Object members keep their order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, inputJSON, args)
		},
	}
}

func newDotCmd(opts *options) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "dot [file...]",
		Short: "Output the document tree in Graphviz DOT format",
		Long:  `Converts the input into a document and outputs its internal tree structure in Graphviz DOT format, for debugging layouts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd, opts)
			if err != nil {
				return err
			}
			sources, err := readSources(cmd, args)
			if err != nil {
				return err
			}
			docs, err := p.convert(input, sources)
			if err != nil {
				return err
			}
			return pretty.Doc2Dot(pretty.Join(pretty.Line(), docs...), p.out)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", inputSexpr, "input format: sexpr, json")
	return cmd
}

func runFormat(cmd *cobra.Command, opts *options, kind string, args []string) error {
	start := time.Now()
	p, err := newPrinter(cmd, opts)
	if err != nil {
		return err
	}
	sources, err := readSources(cmd, args)
	if err != nil {
		return err
	}
	docs, err := p.convert(kind, sources)
	if err != nil {
		return err
	}
	if err := p.print(docs); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	p.logger.Debugf("printed %d documents (%s)", len(docs), time.Since(start).Round(time.Millisecond))
	return nil
}
