package sexpr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SyntaxError is the error type for malformed input.
type SyntaxError string

func (e SyntaxError) Error() string {
	return string(e)
}

// ErrSyntax is wrapped by all errors returned from Parse.
const ErrSyntax = SyntaxError("s-expression syntax error")

// Parse reads all top-level expressions from src. Comments start with ';'
// and extend to the end of the line.
func Parse(src string) ([]Expr, error) {
	r := &reader{src: src, line: 1, col: 1}
	var exprs []Expr
	for {
		r.skipSpace()
		if r.eof() {
			break
		}
		e, err := r.read()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	tracer().Debugf("parsed %d s-expressions", len(exprs))
	return exprs, nil
}

type reader struct {
	src       string
	pos       int
	line, col int
}

func (r *reader) eof() bool {
	return r.pos >= len(r.src)
}

func (r *reader) peek() rune {
	ch, _ := utf8.DecodeRuneInString(r.src[r.pos:])
	return ch
}

func (r *reader) advance() rune {
	ch, size := utf8.DecodeRuneInString(r.src[r.pos:])
	r.pos += size
	if ch == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return ch
}

func (r *reader) position() Position {
	return Position{Line: r.line, Column: r.col}
}

func (r *reader) errorf(at Position, format string, args ...any) error {
	return fmt.Errorf("%w at %v: %s", ErrSyntax, at, fmt.Sprintf(format, args...))
}

func (r *reader) skipSpace() {
	for !r.eof() {
		switch ch := r.peek(); {
		case ch == ';':
			for !r.eof() && r.peek() != '\n' {
				r.advance()
			}
		case unicode.IsSpace(ch):
			r.advance()
		default:
			return
		}
	}
}

func (r *reader) read() (Expr, error) {
	start := r.position()
	switch r.peek() {
	case '(':
		r.advance()
		return r.readList(start)
	case ')':
		return Expr{}, r.errorf(start, "unexpected ')'")
	case '\'':
		r.advance()
		r.skipSpace()
		if r.eof() {
			return Expr{}, r.errorf(start, "quote without expression")
		}
		e, err := r.read()
		if err != nil {
			return Expr{}, err
		}
		return Expr{Kind: Quote, Items: []Expr{e}, Pos: start}, nil
	case '"':
		return r.readString(start)
	}
	return r.readAtom(start), nil
}

func (r *reader) readList(start Position) (Expr, error) {
	list := L()
	list.Pos = start
	for {
		r.skipSpace()
		if r.eof() {
			return Expr{}, r.errorf(start, "unclosed list")
		}
		if r.peek() == ')' {
			r.advance()
			return list, nil
		}
		e, err := r.read()
		if err != nil {
			return Expr{}, err
		}
		list.Items = append(list.Items, e)
	}
}

func (r *reader) readString(start Position) (Expr, error) {
	from := r.pos
	r.advance()
	for !r.eof() {
		switch r.advance() {
		case '\\':
			if r.eof() {
				return Expr{}, r.errorf(start, "unterminated string")
			}
			r.advance()
		case '"':
			text := r.src[from:r.pos]
			if strings.ContainsRune(text, '\n') {
				return Expr{}, r.errorf(start, "newline in string")
			}
			return Expr{Kind: String, Text: text, Pos: start}, nil
		}
	}
	return Expr{}, r.errorf(start, "unterminated string")
}

func (r *reader) readAtom(start Position) Expr {
	from := r.pos
	for !r.eof() {
		ch := r.peek()
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == ';' || ch == '"' {
			break
		}
		r.advance()
	}
	text := r.src[from:r.pos]
	if isNumber(text) {
		return Expr{Kind: Number, Text: text, Pos: start}
	}
	return Expr{Kind: Symbol, Text: text, Pos: start}
}

// isNumber accepts decimal numbers, but not symbols like inf or nan.
func isNumber(text string) bool {
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return false
	}
	digits := strings.TrimLeft(text, "+-.")
	return digits != "" && digits[0] >= '0' && digits[0] <= '9'
}
