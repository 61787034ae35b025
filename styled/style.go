package styled

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/pretty"
)

// Attr is a set of text attributes.
type Attr uint8

// Text attributes, to be combined with bitwise or.
const (
	Bold Attr = 1 << iota
	Faint
	Italic
	Underline
	Blink
	Reverse
	CrossedOut
)

var attrNames = [...]string{"bold", "faint", "italic", "underline", "blink", "reverse", "crossedout"}

var attrCodes = [...]color.Attribute{color.Bold, color.Faint, color.Italic,
	color.Underline, color.BlinkSlow, color.ReverseVideo, color.CrossedOut}

func (a Attr) String() string {
	if a == 0 {
		return "plain"
	}
	var names []string
	for i, name := range attrNames {
		if a&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "+")
}

// Style is a text style: attributes plus optional colors. A zero color
// (NoColor) leaves the color of the enclosing span unchanged.
//
// Style implements pretty.Style and pretty.Cascader.
type Style struct {
	Attrs Attr
	Fg    color.Attribute // one of color.FgBlack … color.FgHiWhite, or NoColor
	Bg    color.Attribute // one of color.BgBlack … color.BgHiWhite, or NoColor
}

// NoColor is the color value of styles not setting a color.
const NoColor color.Attribute = 0

// Plain is the style without any attributes.
var Plain = Style{}

var _ pretty.Style = Style{}
var _ pretty.Cascader = Style{}

// Add returns a copy of s with attributes a added.
func (s Style) Add(a Attr) Style {
	s.Attrs |= a
	return s
}

// Minus returns a copy of s with attributes a removed.
func (s Style) Minus(a Attr) Style {
	s.Attrs &^= a
	return s
}

// Foreground returns a copy of s with foreground color c.
func (s Style) Foreground(c color.Attribute) Style {
	s.Fg = c
	return s
}

// Background returns a copy of s with background color c.
func (s Style) Background(c color.Attribute) Style {
	s.Bg = c
	return s
}

// IsPlain reports whether s neither sets attributes nor colors.
func (s Style) IsPlain() bool {
	return s == Plain
}

// Cascade merges s with the style of an enclosing span. Colors of s win
// over those of outer, attributes of both are combined.
// outer styles of other types are ignored.
// (Part of interface pretty.Cascader)
func (s Style) Cascade(outer pretty.Style) pretty.Style {
	o, ok := outer.(Style)
	if !ok {
		return s
	}
	merged := Style{Attrs: s.Attrs | o.Attrs, Fg: o.Fg, Bg: o.Bg}
	if s.Fg != NoColor {
		merged.Fg = s.Fg
	}
	if s.Bg != NoColor {
		merged.Bg = s.Bg
	}
	return merged
}

// Paint wraps text into ANSI escape sequences switching the style on and off.
// Painting is independent of whether stdout is a terminal; deciding whether
// to use colors at all is up to the caller.
// (Part of interface pretty.Style)
func (s Style) Paint(text string) string {
	if s.IsPlain() || text == "" {
		return text
	}
	return s.Color().Sprint(text)
}

// Color returns a fatih/color color for s, with color output enabled.
func (s Style) Color() *color.Color {
	c := color.New(s.codes()...)
	c.EnableColor()
	return c
}

// codes returns the SGR parameters of s: attributes first, then foreground
// and background color.
func (s Style) codes() []color.Attribute {
	codes := make([]color.Attribute, 0, 4)
	for i, code := range attrCodes {
		if s.Attrs&(1<<i) != 0 {
			codes = append(codes, code)
		}
	}
	if s.Fg != NoColor {
		codes = append(codes, s.Fg)
	}
	if s.Bg != NoColor {
		codes = append(codes, s.Bg)
	}
	return codes
}

func (s Style) String() string {
	str := s.Attrs.String()
	if s.Fg != NoColor {
		if s.Attrs == 0 {
			str = colorName(s.Fg)
		} else {
			str += " " + colorName(s.Fg)
		}
	}
	if s.Bg != NoColor {
		str += " on " + colorName(s.Bg-bgOffset)
	}
	return str
}

// CSS returns s as a list of CSS declarations, suitable for an HTML style
// attribute.
func (s Style) CSS() string {
	var decls []string
	if s.Attrs&Bold != 0 {
		decls = append(decls, "font-weight:bold")
	}
	if s.Attrs&Faint != 0 {
		decls = append(decls, "opacity:0.6")
	}
	if s.Attrs&Italic != 0 {
		decls = append(decls, "font-style:italic")
	}
	var deco []string
	if s.Attrs&Underline != 0 {
		deco = append(deco, "underline")
	}
	if s.Attrs&CrossedOut != 0 {
		deco = append(deco, "line-through")
	}
	if s.Attrs&Blink != 0 {
		deco = append(deco, "blink")
	}
	if len(deco) > 0 {
		decls = append(decls, "text-decoration:"+strings.Join(deco, " "))
	}
	var fg, bg string
	if s.Fg != NoColor {
		fg = cssColor(s.Fg)
	}
	if s.Bg != NoColor {
		bg = cssColor(s.Bg - bgOffset)
	}
	if s.Attrs&Reverse != 0 {
		fg, bg = bg, fg
	}
	if fg != "" {
		decls = append(decls, "color:"+fg)
	}
	if bg != "" {
		decls = append(decls, "background-color:"+bg)
	}
	return strings.Join(decls, ";")
}

// --- Colors ----------------------------------------------------------------

// background colors are foreground colors shifted by 10
const bgOffset = color.BgBlack - color.FgBlack

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// xterm default palette
var cssColors = [...]string{
	"#000000", "#cd0000", "#00cd00", "#cdcd00", "#0000ee", "#cd00cd", "#00cdcd", "#e5e5e5",
	"#7f7f7f", "#ff0000", "#00ff00", "#ffff00", "#5c5cff", "#ff00ff", "#00ffff", "#ffffff",
}

// colorIndex maps a foreground color to 0…15.
func colorIndex(fg color.Attribute) (int, bool) {
	switch {
	case fg >= color.FgBlack && fg <= color.FgWhite:
		return int(fg - color.FgBlack), true
	case fg >= color.FgHiBlack && fg <= color.FgHiWhite:
		return int(fg-color.FgHiBlack) + 8, true
	}
	return 0, false
}

func colorName(fg color.Attribute) string {
	i, ok := colorIndex(fg)
	if !ok {
		return fmt.Sprintf("Color(%d)", fg)
	}
	if i >= 8 {
		return "bright" + colorNames[i-8]
	}
	return colorNames[i]
}

func cssColor(fg color.Attribute) string {
	i, ok := colorIndex(fg)
	if !ok {
		return "inherit"
	}
	return cssColors[i]
}
