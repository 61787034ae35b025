// Package cli implements the prettyfmt command-line interface.
//
// prettyfmt reads s-expressions or JSON and pretty-prints them for a given
// line width:
//
//	prettyfmt sexpr --width 40 program.scm
//	prettyfmt json --color always < data.json
//	prettyfmt dot --input json data.json | dot -Tsvg > doc.svg
//
// Settings are taken from a TOML configuration file (see package config),
// overridden by command-line flags. All commands support --verbose (-v) for
// debug-level logging; loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "prettyfmt"

var (
	version = "dev"
	commit  string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// options are the flags shared by all commands.
type options struct {
	configPath string
	width      int
	color      string
	indent     int
	html       bool
	verbose    bool
}

// Execute runs the prettyfmt CLI with the process' arguments and standard
// streams.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           appName,
		Short:         "prettyfmt lays out s-expressions and JSON for a line width",
		Long:          `prettyfmt is a pretty printer for s-expressions and JSON. Nested structures are printed on a single line if they fit, and are broken up and indented otherwise.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\n", appName, version, commit))

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default $XDG_CONFIG_HOME/prettyfmt/config.toml)")
	flags.IntVarP(&opts.width, "width", "w", 0, "line width (default from configuration, or 80)")
	flags.StringVar(&opts.color, "color", "", "color output: auto, always, never")
	flags.IntVar(&opts.indent, "indent", 0, "indentation of the output")
	flags.BoolVar(&opts.html, "html", false, "output HTML instead of text")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSexprCmd(opts))
	root.AddCommand(newJSONCmd(opts))
	root.AddCommand(newDotCmd(opts))
	return root
}

// source is the content of an input file.
type source struct {
	name string
	data []byte
}

// readSources reads the files named in args, or stdin if there are none.
func readSources(cmd *cobra.Command, args []string) ([]source, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []source{{name: "<stdin>", data: data}}, nil
	}
	sources := make([]source, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{name: path, data: data})
	}
	return sources, nil
}
