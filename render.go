package pretty

import (
	"io"
	"strings"
)

// Config represents a set of configuration parameters for rendering.
//
// Indent, Column and Style describe the state of the output device where the
// document starts, see type State.
type Config struct {
	Width  int
	Color  bool
	Indent int
	Column int
	Style  Style
}

// DefaultWidth is the line width used if no configuration is given.
const DefaultWidth = 80

// Format is an interface for output drivers. Output will call
//
//	Preamble     once, before any text
//	StyledText   for every run of text
//	Newline      for every line break, with the indentation of the next line
//	Postamble    once, after the last text
//
// The first error returned by any of these stops the output.
type Format interface {
	Preamble(io.Writer) error
	StyledText(string, Style, io.Writer) error
	Newline(int, io.Writer) error
	Postamble(io.Writer) error
}

// Output lays out a document and drives a format with the resulting events.
//
// If config is nil, a line width of DefaultWidth is used. out and format may
// not be nil.
func Output(d Doc, out io.Writer, config *Config, format Format) error {
	if out == nil || format == nil {
		return ErrIllegalArguments
	}
	if config == nil {
		config = &Config{Width: DefaultWidth}
	}
	tracer().Debugf("output document with width=%d, color=%v", config.Width, config.Color)
	if err := format.Preamble(out); err != nil {
		tracer().Errorf("pretty output: %v", err)
		return err
	}
	initial := State{Indent: config.Indent, Column: config.Column, Style: config.Style}
	for ev := range Layout(d, config.Width, initial) {
		var err error
		switch ev.Kind {
		case TextEvent:
			err = format.StyledText(ev.Text, ev.Style, out)
		case LineEvent:
			err = format.Newline(ev.Indent, out)
		}
		if err != nil {
			tracer().Errorf("pretty output: %v", err)
			return err
		}
	}
	return format.Postamble(out)
}

// --- Plain text ------------------------------------------------------------

// TextFormat is the default format. It outputs newlines followed by spaces for
// indentation. Text is painted with its style if Color is set, otherwise styles
// are ignored.
type TextFormat struct {
	Color bool
}

// Preamble is a no-op for text output. (Part of interface Format)
func (tf TextFormat) Preamble(w io.Writer) error {
	return nil
}

// Postamble is a no-op for text output. (Part of interface Format)
func (tf TextFormat) Postamble(w io.Writer) error {
	return nil
}

// StyledText outputs a run of text, painted with style if tf.Color is set.
// (Part of interface Format)
func (tf TextFormat) StyledText(s string, style Style, w io.Writer) error {
	if tf.Color && style != nil {
		s = style.Paint(s)
	}
	_, err := io.WriteString(w, s)
	return err
}

// Newline outputs a newline and indent spaces. (Part of interface Format)
func (tf TextFormat) Newline(indent int, w io.Writer) error {
	_, err := io.WriteString(w, "\n"+strings.Repeat(" ", max(indent, 0)))
	return err
}

// Fprint renders a document as text to a writer.
func Fprint(w io.Writer, d Doc, width int, color bool) error {
	return Output(d, w, &Config{Width: width, Color: color}, TextFormat{Color: color})
}

// Render renders a document as a string, for a line width of width.
// If color is false, styles are ignored.
func Render(d Doc, width int, color bool) string {
	var sb strings.Builder
	err := Fprint(&sb, d, width, color)
	assert(err == nil, "pretty: writing to strings.Builder failed")
	return sb.String()
}

// Display binds a document to rendering parameters. It implements fmt.Stringer.
type Display struct {
	doc   Doc
	width int
	color bool
}

// Display returns an object which renders d for the given settings when
// printed, e.g. with
//
//	fmt.Println(doc.Display(80, false))
func (d Doc) Display(width int, color bool) Display {
	return Display{doc: d, width: width, color: color}
}

func (disp Display) String() string {
	return Render(disp.doc, disp.width, disp.color)
}

// WriteTo writes the rendered document to w. It implements io.WriterTo.
func (disp Display) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := Fprint(cw, disp.doc, disp.width, disp.color)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
