package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/pretty"
	"golang.org/x/net/html"
)

// CSSStyle is implemented by styles which are able to express themselves
// as CSS declarations, e.g. styled.Style.
type CSSStyle interface {
	CSS() string
}

// HTML is a format for simple HTML output. A document is output as a
// `pre` element, styled runs of text as `span` elements.
type HTML struct {
	Class   string            // CSS class of the pre element; may be empty
	classes map[string]string // style string → CSS class name
	color   bool
}

var _ pretty.Format = &HTML{}

// NewHTML creates an HTML formatter. Output will be enclosed in
//
//	<pre class="class"> … </pre>
//
// classes optionally maps styles, identified by their fmt.Sprint representation,
// to CSS class names. Styled text with a style in classes is wrapped into
// a span with that class, other styles are inlined as style attributes (if
// they implement CSSStyle) or ignored.
func NewHTML(class string, classes map[string]string) *HTML {
	return &HTML{
		Class:   class,
		classes: classes,
		color:   true,
	}
}

// SetColor switches styled output on or off. If off, text is output without
// span elements. Print overrides this setting with config.Color.
func (h *HTML) SetColor(on bool) {
	h.color = on
}

// Print outputs a document as HTML. Styles are output only if config.Color
// is set.
//
// If parameter config is nil, a default configuration with styles enabled
// will be used.
func (h *HTML) Print(doc pretty.Doc, w io.Writer, config *pretty.Config) error {
	if config == nil {
		config = &pretty.Config{Width: pretty.DefaultWidth, Color: true}
	}
	h.color = config.Color
	return pretty.Output(doc, w, config, h)
}

// StyledText is called by the formatting driver to output a run of
// uniformly styled text. Text is HTML-escaped.
// (Part of interface pretty.Format)
func (h *HTML) StyledText(s string, style pretty.Style, w io.Writer) error {
	text := html.EscapeString(s)
	if !h.color || style == nil || s == "" {
		_, err := io.WriteString(w, text)
		return err
	}
	if class, ok := h.classes[fmt.Sprint(style)]; ok {
		_, err := fmt.Fprintf(w, `<span class="%s">%s</span>`, html.EscapeString(class), text)
		return err
	}
	if css, ok := style.(CSSStyle); ok {
		if decls := css.CSS(); decls != "" {
			_, err := fmt.Fprintf(w, `<span style="%s">%s</span>`, html.EscapeString(decls), text)
			return err
		}
	}
	_, err := io.WriteString(w, text)
	return err
}

// Preamble is called by the output driver before a document will be formatted.
// It outputs an opening `pre` tag.
// (Part of interface pretty.Format)
func (h *HTML) Preamble(w io.Writer) error {
	var err error
	if h.Class == "" {
		_, err = io.WriteString(w, "<pre>")
	} else {
		_, err = fmt.Fprintf(w, `<pre class="%s">`, html.EscapeString(h.Class))
	}
	return err
}

// Postamble will be called after a document has been formatted.
// It outputs a closing `pre` tag.
// (Part of interface pretty.Format)
func (h *HTML) Postamble(w io.Writer) error {
	_, err := io.WriteString(w, "</pre>\n")
	return err
}

// Newline will be called at every line break. Within a `pre` element, we
// output a plain newline and spaces for indentation.
// (Part of interface pretty.Format)
func (h *HTML) Newline(indent int, w io.Writer) error {
	_, err := io.WriteString(w, "\n"+strings.Repeat(" ", max(indent, 0)))
	return err
}
