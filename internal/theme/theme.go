// Package theme maps token classes of pretty-printed sources to styles.
//
// Style specifications are either styled.Parse specs ("bold red on white")
// or extended color specs ("#ff8800", "208", "italic #88ccff"), the latter
// rendered through lipgloss.
package theme

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/npillmayer/pretty"
	"github.com/npillmayer/pretty/styled"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pretty")
}

// Token classes which may be styled.
const (
	ClassAtom    = "atom"
	ClassKeyword = "keyword"
	ClassNumber  = "number"
	ClassString  = "string"
	ClassKey     = "key"
	ClassPunct   = "punct"
)

// Classes lists all token classes.
var Classes = []string{ClassAtom, ClassKeyword, ClassNumber, ClassString, ClassKey, ClassPunct}

// Theme holds a style per token class. Nil entries leave tokens unstyled.
// The zero Theme is valid and styles nothing.
type Theme struct {
	Atom    pretty.Style
	Keyword pretty.Style
	Number  pretty.Style
	String  pretty.Style
	Key     pretty.Style
	Punct   pretty.Style
}

// Default is the theme used if no configuration overrides it.
var Default = Theme{
	Keyword: styled.Plain.Add(styled.Bold).Foreground(color.FgBlue),
	Number:  styled.Plain.Foreground(color.FgCyan),
	String:  styled.Plain.Foreground(color.FgGreen),
	Key:     styled.Plain.Foreground(color.FgMagenta),
	Punct:   styled.Plain.Add(styled.Faint),
}

// Paint applies the style of a token class to d. A nil style returns d
// unchanged.
func Paint(d pretty.Doc, style pretty.Style) pretty.Doc {
	if style == nil {
		return d
	}
	return d.WithStyle(style)
}

// Token creates a document for a single token, painted with style.
func Token(s string, style pretty.Style) pretty.Doc {
	return Paint(pretty.From(s), style)
}

// Enclose works like pretty.Bracket, but with delimiters painted in the
// theme's punctuation style.
func (t *Theme) Enclose(d pretty.Doc, open, close string) pretty.Doc {
	l, r := Token(open, t.punct()), Token(close, t.punct())
	if d.IsEmpty() {
		return l.Append(r)
	}
	return pretty.Concat(
		l,
		pretty.SplitPoint().Append(d).Nest(pretty.BracketIndent),
		pretty.SplitPoint(),
		r,
	).Group()
}

func (t *Theme) punct() pretty.Style {
	if t == nil {
		return nil
	}
	return t.Punct
}

// Set assigns a style to a token class.
func (t *Theme) Set(class string, style pretty.Style) error {
	switch class {
	case ClassAtom:
		t.Atom = style
	case ClassKeyword:
		t.Keyword = style
	case ClassNumber:
		t.Number = style
	case ClassString:
		t.String = style
	case ClassKey:
		t.Key = style
	case ClassPunct:
		t.Punct = style
	default:
		return fmt.Errorf("unknown token class %q", class)
	}
	return nil
}

// FromSpecs creates a theme from the default theme, overriding the classes
// contained in specs. An empty spec removes the styling of a class.
// Extended colors are rendered for output w.
func FromSpecs(specs map[string]string, w io.Writer) (Theme, error) {
	t := Default
	for class, spec := range specs {
		style, err := ParseStyle(spec, w)
		if err != nil {
			return t, fmt.Errorf("theme entry %q: %w", class, err)
		}
		if err = t.Set(class, style); err != nil {
			return t, err
		}
		tracer().Debugf("theme: %s = %v", class, style)
	}
	return t, nil
}

// ParseStyle interprets a style spec. Specs using only the 16 standard
// colors result in a styled.Style, all others in an extended style.
func ParseStyle(spec string, w io.Writer) (pretty.Style, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	if !isExtended(spec) {
		s, err := styled.Parse(spec)
		if err != nil || s.IsPlain() {
			return nil, err
		}
		return s, nil
	}
	return parseExtended(spec, w)
}

// --- Extended colors --------------------------------------------------------

// Extended is a style with 256-color or true-color colors. It paints text
// with escape sequences for the color profile of its renderer.
type Extended struct {
	spec  string
	style lipgloss.Style
}

// Paint is part of interface pretty.Style.
func (x Extended) Paint(text string) string {
	if text == "" {
		return text
	}
	return x.style.Render(text)
}

func (x Extended) String() string {
	return x.spec
}

func isExtended(spec string) bool {
	for _, w := range fields(spec) {
		if isColorValue(w) {
			return true
		}
	}
	return false
}

func fields(spec string) []string {
	return strings.FieldsFunc(strings.ToLower(spec), func(r rune) bool {
		return r == ' ' || r == '+' || r == '\t' || r == ','
	})
}

func isColorValue(w string) bool {
	if strings.HasPrefix(w, "#") {
		return len(w) == 4 || len(w) == 7
	}
	n, err := strconv.Atoi(w)
	return err == nil && n >= 0 && n < 256
}

// parseExtended builds a lipgloss style. Words are attributes or colors;
// standard color names are accepted, too.
func parseExtended(spec string, w io.Writer) (pretty.Style, error) {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)
	style := r.NewStyle()
	background := false
	for _, word := range fields(spec) {
		if word == "on" {
			background = true
			continue
		}
		var c lipgloss.TerminalColor
		if isColorValue(word) {
			c = lipgloss.Color(word)
		} else {
			s, err := styled.Parse(word)
			if err != nil {
				return nil, err
			}
			switch {
			case s.Fg != styled.NoColor:
				c = lipgloss.Color(strconv.Itoa(ansiIndex(s)))
			case s.Attrs&styled.Bold != 0:
				style = style.Bold(true)
			case s.Attrs&styled.Faint != 0:
				style = style.Faint(true)
			case s.Attrs&styled.Italic != 0:
				style = style.Italic(true)
			case s.Attrs&styled.Underline != 0:
				style = style.Underline(true)
			case s.Attrs&styled.Blink != 0:
				style = style.Blink(true)
			case s.Attrs&styled.Reverse != 0:
				style = style.Reverse(true)
			case s.Attrs&styled.CrossedOut != 0:
				style = style.Strikethrough(true)
			}
		}
		if c == nil {
			continue
		}
		if background {
			style = style.Background(c)
			background = false
		} else {
			style = style.Foreground(c)
		}
	}
	if background {
		return nil, fmt.Errorf("%w: missing background color in %q", styled.ErrUnknownStyle, spec)
	}
	return Extended{spec: spec, style: style}, nil
}

// ansiIndex returns the 256-color palette index of a standard foreground color.
func ansiIndex(s styled.Style) int {
	if s.Fg >= color.FgHiBlack {
		return int(s.Fg-color.FgHiBlack) + 8
	}
	return int(s.Fg - color.FgBlack)
}
