package pretty

import (
	"strings"
)

// BracketIndent is the indentation of the content of a bracketed document
// if it is rendered on lines of its own.
const BracketIndent = 4

// Pretty is implemented by values which are able to represent themselves as
// a document.
type Pretty interface {
	ToDoc() Doc
}

// Show renders a pretty-printable value with a width of 80 columns and without
// color. It is intended to help implementing fmt.Stringer:
//
//	func (e Expr) String() string { return pretty.Show(e) }
func Show(p Pretty) string {
	return Render(p.ToDoc(), 80, false)
}

// Empty returns the empty document, which renders to nothing.
// It is the neutral element of Append.
func Empty() Doc {
	return Doc{}
}

// From creates a document from a string.
//
// Newline characters in s are converted to line breaks which will never
// collapse, not even inside a group. A multi-line string is therefore
// always rendered line by line, exactly as given.
func From(s string) Doc {
	if !strings.Contains(s, "\n") {
		return mkdoc(textNode(s))
	}
	parts := strings.Split(s, "\n")
	n := textNode(parts[len(parts)-1])
	for i := len(parts) - 2; i >= 0; i-- {
		n = appendNodes(textNode(parts[i]), appendNodes(hardline(), n))
	}
	return mkdoc(n)
}

// Line returns a line break which is always rendered as a newline, followed
// by the current indentation.
func Line() Doc {
	return mkdoc(hardline())
}

// LineOr returns a line break which collapses to s if its enclosing group
// is rendered flat.
func LineOr(s string) Doc {
	return mkdoc(softline(s))
}

// Space is a line break collapsing to a single space.
func Space() Doc {
	return LineOr(" ")
}

// SplitPoint is a line break collapsing to nothing. It is useful to avoid
// trailing spaces before closing delimiters.
func SplitPoint() Doc {
	return LineOr("")
}

// Nbsp is a space which will never be broken.
func Nbsp() Doc {
	return mkdoc(textNode(" "))
}

// Append concatenates two documents, without inserting a break between
// them.
//
// Append does not normalize: empty operands are kept in the tree.
func Append(left, right Doc) Doc {
	return mkdoc(appendNodes(left.node(), right.node()))
}

// Append appends a document to d. It is a shortcut for Append(d, right).
func (d Doc) Append(right Doc) Doc {
	return Append(d, right)
}

// Concat concatenates a sequence of documents from left to right.
func Concat(docs ...Doc) Doc {
	if len(docs) == 0 {
		return Empty()
	}
	doc := docs[0]
	for _, d := range docs[1:] {
		doc = Append(doc, d)
	}
	return doc
}

// ConcatEach concatenates the documents of a sequence of pretty-printable
// values.
func ConcatEach[P Pretty](items []P) Doc {
	if len(items) == 0 {
		return Empty()
	}
	doc := items[0].ToDoc()
	for _, p := range items[1:] {
		doc = Append(doc, p.ToDoc())
	}
	return doc
}

// Nest increases the indentation *by* (not to) n for every line break in d.
// The indentation is inserted after a newline, thus it does not affect the
// first line of d. Negative values of n are treated as 0.
func Nest(d Doc, n int) Doc {
	if n < 0 {
		n = 0
	}
	return mkdoc(nestNode(n, d.node()))
}

// Nest is a shortcut for Nest(d, n).
func (d Doc) Nest(n int) Doc {
	return Nest(d, n)
}

// Group offers the layout algorithm the choice of rendering d either flat,
// i.e. with all collapsible line breaks collapsed, or as is. d will be rendered
// flat if it fits the remaining width of the current line.
//
// Groups may be nested. If an outer group is broken, every inner group
// will get its own choice.
func Group(d Doc) Doc {
	flat := Flatten(d)
	if flat.root == d.root { // nothing to collapse
		return d
	}
	return mkdoc(altNode(flat.node(), d.node()))
}

// Group is a shortcut for Group(d).
func (d Doc) Group() Doc {
	return Group(d)
}

// Join concatenates a sequence of documents, putting sep between each
// two consecutive items. Joining an empty sequence yields the empty document.
func Join(sep Doc, docs ...Doc) Doc {
	if len(docs) == 0 {
		return Empty()
	}
	doc := docs[0]
	for _, d := range docs[1:] {
		doc = Append(Append(doc, sep), d)
	}
	return doc
}

// JoinEach joins the documents of a sequence of pretty-printable values,
// putting sep between each two consecutive items.
func JoinEach[P Pretty](sep Doc, items []P) Doc {
	if len(items) == 0 {
		return Empty()
	}
	doc := items[0].ToDoc()
	for _, p := range items[1:] {
		doc = Append(Append(doc, sep), p.ToDoc())
	}
	return doc
}

// Bracket encloses d in delimiters left and right. If the result fits on
// the current line it renders as
//
//	left d right
//
// (without spaces), otherwise as
//
//	left
//	    d
//	right
//
// Bracketing the empty document results in left and right without any break
// in between.
func Bracket(d Doc, left, right string) Doc {
	if d.IsEmpty() {
		return From(left).Append(From(right))
	}
	inner := Nest(SplitPoint().Append(d), BracketIndent)
	return From(left).Append(inner).Append(SplitPoint()).Append(From(right)).Group()
}

// Bracket is a shortcut for Bracket(d, left, right).
func (d Doc) Bracket(left, right string) Doc {
	return Bracket(d, left, right)
}

// WithStyle applies a style to every text of d. Styles may be nested; refer to
// interface Cascader for how nested styles combine.
func WithStyle(d Doc, s Style) Doc {
	return mkdoc(styleNode(s, d.node()))
}

// WithStyle is a shortcut for WithStyle(d, s).
func (d Doc) WithStyle(s Style) Doc {
	return WithStyle(d, s)
}
