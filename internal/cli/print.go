package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/npillmayer/pretty"
	"github.com/npillmayer/pretty/internal/config"
	"github.com/npillmayer/pretty/internal/jsondoc"
	"github.com/npillmayer/pretty/internal/sexpr"
	"github.com/npillmayer/pretty/internal/theme"
	"github.com/npillmayer/pretty/styled/formatter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// printer renders documents to the output of a command, with settings
// from the configuration file and flags.
type printer struct {
	out    io.Writer
	logger *log.Logger
	render *pretty.Config
	theme  theme.Theme
	html   bool
}

func newPrinter(cmd *cobra.Command, opts *options) (*printer, error) {
	logger := loggerFromContext(cmd.Context())
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if flags.Changed("indent") {
		cfg.Indent = opts.indent
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	th, err := theme.FromSpecs(cfg.Theme, out)
	if err != nil {
		return nil, err
	}
	p := &printer{
		out:    out,
		logger: logger,
		render: cfg.Render(opts.html || isTerminal(out)),
		theme:  th,
		html:   opts.html,
	}
	logger.Debug("settings", "width", p.render.Width, "color", p.render.Color, "indent", p.render.Indent, "html", p.html)
	return p, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// print outputs documents, each starting on a new line.
func (p *printer) print(docs []pretty.Doc) error {
	d := pretty.Join(pretty.Line(), docs...)
	var format pretty.Format
	if p.html {
		h := formatter.NewHTML(appName, nil)
		h.SetColor(p.render.Color)
		format = h
	} else {
		fw := formatter.NewConsoleFixedWidthFormat(nil, nil)
		fw.SetColor(p.render.Color)
		format = fw
	}
	var buf bytes.Buffer
	if err := pretty.Output(d, &buf, p.render, indented{format, p.render.Indent}); err != nil {
		return err
	}
	if !p.html && len(docs) > 0 {
		buf.WriteByte('\n')
	}
	_, err := p.out.Write(buf.Bytes())
	return err
}

// indented starts the first line of output at column n, after the
// preamble of the wrapped format.
type indented struct {
	pretty.Format
	n int
}

func (ind indented) Preamble(w io.Writer) error {
	if err := ind.Format.Preamble(w); err != nil {
		return err
	}
	return ind.Format.StyledText(strings.Repeat(" ", ind.n), nil, w)
}

// --- Input conversion ------------------------------------------------------

const (
	inputSexpr = "sexpr"
	inputJSON  = "json"
)

func (p *printer) convert(kind string, sources []source) ([]pretty.Doc, error) {
	var docs []pretty.Doc
	for _, src := range sources {
		var converted []pretty.Doc
		var err error
		switch kind {
		case inputSexpr:
			converted, err = p.sexprDocs(src.data)
		case inputJSON:
			converted, err = jsondoc.New(&p.theme).Read(bytes.NewReader(src.data))
		default:
			return nil, fmt.Errorf("unknown input format %q", kind)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.name, err)
		}
		p.logger.Debug("converted input", "source", src.name, "documents", len(converted))
		docs = append(docs, converted...)
	}
	return docs, nil
}

func (p *printer) sexprDocs(data []byte) ([]pretty.Doc, error) {
	exprs, err := sexpr.Parse(string(data))
	if err != nil {
		return nil, err
	}
	docs := make([]pretty.Doc, len(exprs))
	for i, e := range exprs {
		docs[i] = e.Doc(&p.theme)
	}
	return docs, nil
}
