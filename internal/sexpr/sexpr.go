/*
Package sexpr reads s-expressions and pretty-prints them.

	exprs, err := sexpr.Parse("(define (square x) (* x x))")
	doc := exprs[0].Doc(&theme.Default)

Lists are bracketed and grouped: a list is printed on a single line if it
fits, otherwise every element goes on a line of its own.
*/
package sexpr

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/pretty"
	"github.com/npillmayer/pretty/internal/theme"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pretty")
}

// Kind is the kind of an expression.
type Kind int8

// Kinds of expressions.
const (
	Symbol Kind = iota
	Number
	String
	List
	Quote // 'x
)

func (k Kind) String() string {
	switch k {
	case Symbol:
		return "Symbol"
	case Number:
		return "Number"
	case String:
		return "String"
	case List:
		return "List"
	case Quote:
		return "Quote"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Expr is an s-expression. Atoms carry their source text, strings include
// the enclosing quotes. Lists hold their elements in Items, quotes the quoted
// expression as the single item.
type Expr struct {
	Kind  Kind
	Text  string
	Items []Expr
	Pos   Position
}

// Position is a location in the source text, counting from 1.
type Position struct {
	Line, Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Sym creates a symbol.
func Sym(name string) Expr {
	return Expr{Kind: Symbol, Text: name}
}

// Num creates a number.
func Num(n float64) Expr {
	return Expr{Kind: Number, Text: strconv.FormatFloat(n, 'g', -1, 64)}
}

// Str creates a string literal.
func Str(s string) Expr {
	return Expr{Kind: String, Text: strconv.Quote(s)}
}

// L creates a list.
func L(items ...Expr) Expr {
	if items == nil {
		items = []Expr{}
	}
	return Expr{Kind: List, Items: items}
}

// keywords are special forms, highlighted in head position.
var keywords = map[string]bool{
	"define": true, "lambda": true, "let": true, "let*": true, "letrec": true,
	"if": true, "cond": true, "case": true, "and": true, "or": true,
	"begin": true, "quote": true, "set!": true, "defun": true, "defmacro": true,
}

// ToDoc renders the expression without styles. (Part of interface pretty.Pretty)
func (e Expr) ToDoc() pretty.Doc {
	return e.Doc(nil)
}

func (e Expr) String() string {
	return pretty.Show(e)
}

// Doc renders the expression as a document, styled with th. th may be nil.
func (e Expr) Doc(th *theme.Theme) pretty.Doc {
	if th == nil {
		th = &theme.Theme{}
	}
	return e.doc(th, false)
}

func (e Expr) doc(th *theme.Theme, head bool) pretty.Doc {
	switch e.Kind {
	case Number:
		return theme.Token(e.Text, th.Number)
	case String:
		return theme.Token(e.Text, th.String)
	case Quote:
		return theme.Token("'", th.Punct).Append(e.Items[0].doc(th, false))
	case List:
		items := make([]pretty.Doc, len(e.Items))
		for i, item := range e.Items {
			items[i] = item.doc(th, i == 0)
		}
		return th.Enclose(pretty.Join(pretty.Space(), items...), "(", ")")
	}
	if head && keywords[e.Text] {
		return theme.Token(e.Text, th.Keyword)
	}
	return theme.Token(e.Text, th.Atom)
}
