package pretty

// Style is a styling attribute, applicable to spans of text.
//
// Package pretty treats styles as opaque values. The only thing required from
// a style is that it is able to paint a run of text, i.e. wrap it in the
// control sequences which activate and afterwards deactivate the style.
// Package styled offers an implementation for terminals.
type Style interface {
	Paint(text string) string
}

// Cascader is implemented by styles which are able to merge with the style of
// an enclosing span. Attributes set by the inner style win, attributes not set
// by it are inherited from outer.
//
// Styles which do not implement Cascader replace the enclosing style for the
// extent of their span.
type Cascader interface {
	Cascade(outer Style) Style
}

// cascade computes the effective style for a span styled with inner, nested
// in a span with effective style outer.
func cascade(inner, outer Style) Style {
	if inner == nil {
		return outer
	}
	if outer == nil {
		return inner
	}
	if c, ok := inner.(Cascader); ok {
		return c.Cascade(outer)
	}
	return inner
}
