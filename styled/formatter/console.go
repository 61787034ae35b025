package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/pretty"
	"golang.org/x/term"
)

// ControlCodes holds certain byte sequences which a console formatter emits
// around a document and at line breaks.
type ControlCodes struct {
	Preamble, Postamble []byte
	Newline             []byte
}

// DefaultCodes is the default set of control codes.
var DefaultCodes = ControlCodes{
	Preamble:  []byte{},
	Postamble: []byte{},
	Newline:   []byte{'\n'},
}

// ConsoleFixedWidth is a type for outputting documents to a console with
// a fixed width font.
//
// Styles are painted on the console if color output is enabled. A palette
// may re-map styles to colors; styles not contained in the palette paint
// themselves. If color output is disabled, styles are ignored.
type ConsoleFixedWidth struct {
	Codes  *ControlCodes
	colors map[pretty.Style]*color.Color
	color  bool
	ccnt   int // number of character positions already printed for line
}

var _ pretty.Format = &ConsoleFixedWidth{}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used for consoles
// with a fixed width font.
//
// codes is a table of control sequences for the console; if nil, DefaultCodes
// are used. colors is a map from styles to colors, used for display. It may
// contain just a subset of the styles used in the documents which will be
// handled by this formatter. Palette keys have to be comparable values.
func NewConsoleFixedWidthFormat(codes *ControlCodes, colors map[pretty.Style]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{
		Codes:  &DefaultCodes,
		colors: colors,
		color:  true,
	}
	if codes != nil {
		fw.Codes = codes
	}
	return fw
}

// SetColor switches color output on or off. Print and Fprint override this
// setting with config.Color; it is effective when driving pretty.Output
// directly.
func (fw *ConsoleFixedWidth) SetColor(on bool) {
	fw.color = on
}

// Print outputs a document to stdout.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive).
func (fw *ConsoleFixedWidth) Print(doc pretty.Doc, config *pretty.Config) error {
	return fw.Fprint(os.Stdout, doc, config)
}

// Fprint outputs a document to w. If config is nil, it is created from the
// properties of the current terminal.
func (fw *ConsoleFixedWidth) Fprint(w io.Writer, doc pretty.Doc, config *pretty.Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	fw.color = config.Color
	return pretty.Output(doc, w, config, fw)
}

// StyledText is called by the formatting driver to output a run of
// uniformly styled text. It uses colors to visualize styles.
// (Part of interface pretty.Format)
func (fw *ConsoleFixedWidth) StyledText(s string, style pretty.Style, w io.Writer) error {
	fw.ccnt += len([]rune(s))
	if fw.color && style != nil {
		if c, ok := fw.lookup(style); ok {
			s = c.Sprint(s)
		} else {
			s = style.Paint(s)
		}
	}
	_, err := io.WriteString(w, s)
	return err
}

func (fw *ConsoleFixedWidth) lookup(style pretty.Style) (*color.Color, bool) {
	if len(fw.colors) == 0 || !reflect.TypeOf(style).Comparable() {
		return nil, false
	}
	c, ok := fw.colors[style]
	return c, ok
}

// Preamble is called by the output driver before a document will be formatted.
// It outputs the `Preamble` control sequence from fw.Codes.
// (Part of interface pretty.Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) error {
	fw.ccnt = 0
	_, err := w.Write(fw.Codes.Preamble)
	return err
}

// Postamble will be called after a document has been formatted.
// It outputs the `Postamble` control sequence from fw.Codes.
// (Part of interface pretty.Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) error {
	_, err := w.Write(fw.Codes.Postamble)
	return err
}

// Newline will be called at every line break. It outputs the `Newline`
// control sequence from fw.Codes, followed by indent spaces.
// (Part of interface pretty.Format)
func (fw *ConsoleFixedWidth) Newline(indent int, w io.Writer) error {
	if _, err := w.Write(fw.Codes.Newline); err != nil {
		return err
	}
	fw.ccnt = max(indent, 0)
	_, err := io.WriteString(w, strings.Repeat(" ", fw.ccnt))
	return err
}

// Column returns the number of character positions printed on the current
// line so far.
func (fw *ConsoleFixedWidth) Column() int {
	return fw.ccnt
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.Width parameter accordingly. Colors are enabled for
// terminals only.
func ConfigFromTerminal() *pretty.Config {
	config := &pretty.Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.Width = pretty.DefaultWidth
		} else {
			config.Width = widthFromTerminal(w)
		}
	} else {
		config.Width = pretty.DefaultWidth
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.Width)
	return config
}

// widthFromTerminal leaves a small margin on wide terminals.
func widthFromTerminal(w int) int {
	if w > 100 {
		return w - 4
	} else if w > 10 {
		return w
	}
	return 10
}
