package pretty

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// EventKind is the kind of a layout event.
type EventKind int8

// Layout events are either runs of text or line breaks.
const (
	TextEvent EventKind = iota
	LineEvent
)

// Event is an instruction for output drivers, produced by the layout
// algorithm. All decisions about line breaks have already been made.
//
// A LineEvent asks for a newline followed by Indent spaces. A TextEvent asks
// for Text to be output, painted with Style if Style is not nil.
type Event struct {
	Kind   EventKind
	Indent int
	Text   string
	Style  Style
}

func (ev Event) String() string {
	if ev.Kind == LineEvent {
		return fmt.Sprintf("Line(%d)", ev.Indent)
	}
	if ev.Style != nil {
		return fmt.Sprintf("Text(%q, %v)", ev.Text, ev.Style)
	}
	return fmt.Sprintf("Text(%q)", ev.Text)
}

// State is the state of the output at the beginning of a layout: the
// indentation inserted after newlines, the column where the first line starts,
// and the style enclosing the document.
type State struct {
	Indent int
	Column int
	Style  Style
}

// Layout lays out a document for a given line width. The events are produced
// lazily while iterating.
//
// Lines may exceed width if there is no way to break them. Width 0 (or
// less) will break every group whose flat form is not empty.
func Layout(d Doc, width int, initial State) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		l := newLayouter(d, width, initial)
		for {
			ev, ok := l.next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Events collects the layout events for a document, starting at column 0
// without indentation.
func Events(d Doc, width int) []Event {
	events := make([]Event, 0, 32)
	for ev := range Layout(d, width, State{}) {
		events = append(events, ev)
	}
	return events
}

// Fits reports whether the first line of a sequence of events, starting at
// column, does not exceed width. Only events up to the first line break
// are considered.
func Fits(events iter.Seq[Event], column, width int) bool {
	rem := width - column
	if rem < 0 {
		return false
	}
	for ev := range events {
		if ev.Kind == LineEvent {
			return true
		}
		if rem -= textWidth(ev.Text); rem < 0 {
			return false
		}
	}
	return true
}

// textWidth is the number of columns occupied by s. We count code points.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// --- Layout algorithm ------------------------------------------------------

// work is a persistent stack of document nodes still to lay out, each together
// with its indentation and effective style. Items are never modified, which
// lets alternative continuations share the tail of the stack.
type work struct {
	indent int
	style  Style
	n      *node
	next   *work
}

func push(indent int, style Style, n *node, next *work) *work {
	return &work{indent: indent, style: style, n: n, next: next}
}

// layouter produces layout events for a document, one at a time.
type layouter struct {
	width int
	col   int // current column
	todo  *work
}

func newLayouter(d Doc, width int, initial State) *layouter {
	return &layouter{
		width: width,
		col:   initial.Column,
		todo:  push(initial.Indent, initial.Style, d.node(), nil),
	}
}

// next returns the next layout event. It returns false if the document
// is exhausted.
func (l *layouter) next() (Event, bool) {
	for l.todo != nil {
		w := l.todo
		l.todo = w.next
		switch n := w.n; n.kind {
		case KindNil:
		case KindText:
			l.col += textWidth(n.text)
			return Event{Kind: TextEvent, Text: n.text, Style: w.style}, true
		case KindLine:
			l.col = w.indent
			return Event{Kind: LineEvent, Indent: w.indent}, true
		case KindAppend:
			l.todo = push(w.indent, w.style, n.left, push(w.indent, w.style, n.right, l.todo))
		case KindNest:
			l.todo = push(w.indent+n.indent, w.style, n.left, l.todo)
		case KindStyled:
			l.todo = push(w.indent, cascade(n.style, w.style), n.left, l.todo)
		case KindAlt:
			flat := push(w.indent, w.style, n.left, l.todo)
			if fits(l.width-l.col, flat) {
				l.todo = flat
			} else {
				l.todo = push(w.indent, w.style, n.right, l.todo)
			}
		default:
			assert(false, "pretty: unknown document node kind")
		}
	}
	return Event{}, false
}

// fits checks if the continuation todo, rendered with the same decisions the
// layouter would make, keeps the current line within rem remaining columns.
//
// Alternatives inside the continuation are decided as the layouter would
// decide them: the flat variant is taken if it fits, which is exactly the case
// when the rest of the line fits with it. Otherwise scanning continues with
// the broken variant. Scanning stops at the first line break, thus the cost is
// bounded by the length of the current line.
func fits(rem int, todo *work) bool {
	for rem >= 0 {
		if todo == nil {
			return true
		}
		w := todo
		todo = w.next
		switch n := w.n; n.kind {
		case KindNil:
		case KindText:
			rem -= textWidth(n.text)
		case KindLine:
			return true
		case KindAppend:
			todo = push(w.indent, w.style, n.left, push(w.indent, w.style, n.right, todo))
		case KindNest, KindStyled:
			todo = push(w.indent, w.style, n.left, todo)
		case KindAlt:
			if fits(rem, push(w.indent, w.style, n.left, todo)) {
				return true
			}
			todo = push(w.indent, w.style, n.right, todo)
		}
	}
	return false
}
