package styled

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Parse creates a style from a textual specification. A specification is a
// list of words, separated by spaces or '+':
//
//	bold italic red on white
//	underline+brightblue
//	plain
//
// Attribute names are those of Attr.String. Color names are the eight basic
// color names, optionally prefixed by "bright". The first color word sets the
// foreground color, a color word following "on" sets the background color.
func Parse(spec string) (Style, error) {
	var s Style
	words := strings.FieldsFunc(strings.ToLower(spec), func(r rune) bool {
		return r == ' ' || r == '+' || r == '\t' || r == ','
	})
	background := false
	for _, w := range words {
		if w == "plain" || w == "none" {
			continue
		}
		if w == "on" {
			background = true
			continue
		}
		if a, ok := lookupAttr(w); ok {
			s.Attrs |= a
			continue
		}
		fg, ok := lookupColor(w)
		if !ok {
			return Plain, fmt.Errorf("%w: %q in %q", ErrUnknownStyle, w, spec)
		}
		if background {
			s.Bg = fg + bgOffset
			background = false
		} else {
			s.Fg = fg
		}
	}
	if background {
		return Plain, fmt.Errorf("%w: missing background color in %q", ErrUnknownStyle, spec)
	}
	tracer().Debugf("parsed style spec %q as %v", spec, s)
	return s, nil
}

// MustParse is like Parse, but panics if spec is invalid.
// It simplifies initialization of global style variables.
func MustParse(spec string) Style {
	s, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return s
}

func lookupAttr(name string) (Attr, bool) {
	for i, n := range attrNames {
		if n == name {
			return 1 << i, true
		}
	}
	switch name {
	case "strikethrough":
		return CrossedOut, true
	case "dim":
		return Faint, true
	}
	return 0, false
}

func lookupColor(name string) (color.Attribute, bool) {
	base, bright := name, false
	if strings.HasPrefix(name, "bright") {
		base, bright = strings.TrimPrefix(name, "bright"), true
	} else if strings.HasPrefix(name, "hi") {
		base, bright = strings.TrimPrefix(name, "hi"), true
	}
	for i, n := range colorNames {
		if n == base {
			if bright {
				return color.FgHiBlack + color.Attribute(i), true
			}
			return color.FgBlack + color.Attribute(i), true
		}
	}
	return NoColor, false
}
