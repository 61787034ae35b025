package pretty

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// Kind is the kind of the top-level node of a document.
type Kind int8

// Node kinds of a document tree.
const (
	KindNil    Kind = iota // renders to nothing
	KindText               // literal text without newlines
	KindLine               // a line break, possibly collapsible
	KindAppend             // concatenation of two documents
	KindNest               // increased indentation for a sub-document
	KindAlt                // a flat and a broken rendering of the same content
	KindStyled             // a styled sub-document
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindText:
		return "Text"
	case KindLine:
		return "Line"
	case KindAppend:
		return "Append"
	case KindNest:
		return "Nest"
	case KindAlt:
		return "Alt"
	case KindStyled:
		return "Styled"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Doc is an immutable document.
//
// A document created by
//
//	Doc{}
//
// is a valid object and behaves like the empty document.
//
// Documents are persistent: combinators never change their arguments, but
// create new nodes which share the arguments' nodes. Copying a Doc is
// therefore cheap, and it is safe to use a Doc from multiple goroutines.
type Doc struct {
	root *node
}

// node is a node of a document tree. Nodes are never mutated after creation.
//
// Depending on the kind, fields carry the following payload:
//
//	Text    text
//	Line    text is the collapse string, valid if collapsible is set
//	Append  left, right
//	Nest    indent, left is the child
//	Alt     left is the flat alternative, right the broken one
//	Styled  style, left is the child
type node struct {
	kind        Kind
	collapsible bool
	indent      int
	text        string
	style       Style
	left, right *node
}

// nilNode is shared by all empty documents which need a node, e.g. as a child.
var nilNode = &node{kind: KindNil}

func mkdoc(n *node) Doc {
	if n == nil || n == nilNode {
		return Doc{}
	}
	return Doc{root: n}
}

func (d Doc) node() *node {
	if d.root == nil {
		return nilNode
	}
	return d.root
}

// Kind returns the kind of the document's top-level node.
func (d Doc) Kind() Kind {
	return d.node().kind
}

// IsEmpty reports whether d is the empty document.
// Note that a document may render to nothing without being empty, e.g. From("").
func (d Doc) IsEmpty() bool {
	return d.node().kind == KindNil
}

// ToDoc returns d itself. It makes Doc implement interface Pretty.
func (d Doc) ToDoc() Doc {
	return d
}

// String returns a debug representation of the document tree.
// Use Render or Display to lay out a document.
func (d Doc) String() string {
	var sb strings.Builder
	d.node().dump(&sb)
	return sb.String()
}

func (n *node) dump(sb *strings.Builder) {
	switch n.kind {
	case KindNil:
		sb.WriteString("Nil")
	case KindText:
		fmt.Fprintf(sb, "Text(%q)", n.text)
	case KindLine:
		if n.collapsible {
			fmt.Fprintf(sb, "Line(%q)", n.text)
		} else {
			sb.WriteString("Line")
		}
	case KindAppend:
		sb.WriteString("Append(")
		n.left.dump(sb)
		sb.WriteString(", ")
		n.right.dump(sb)
		sb.WriteByte(')')
	case KindNest:
		fmt.Fprintf(sb, "Nest(%d, ", n.indent)
		n.left.dump(sb)
		sb.WriteByte(')')
	case KindAlt:
		sb.WriteString("Alt(")
		n.left.dump(sb)
		sb.WriteString(", ")
		n.right.dump(sb)
		sb.WriteByte(')')
	case KindStyled:
		fmt.Fprintf(sb, "Styled(%v, ", n.style)
		n.left.dump(sb)
		sb.WriteByte(')')
	}
}

// --- Node constructors -----------------------------------------------------

// textNode creates a text node. s must not contain a newline; clients
// have to use From, which splits the string at newlines.
func textNode(s string) *node {
	return &node{kind: KindText, text: s}
}

func hardline() *node {
	return &node{kind: KindLine}
}

func softline(collapse string) *node {
	return &node{kind: KindLine, collapsible: true, text: collapse}
}

func appendNodes(l, r *node) *node {
	return &node{kind: KindAppend, left: l, right: r}
}

func nestNode(indent int, child *node) *node {
	return &node{kind: KindNest, indent: indent, left: child}
}

func altNode(flat, broken *node) *node {
	return &node{kind: KindAlt, left: flat, right: broken}
}

func styleNode(style Style, child *node) *node {
	return &node{kind: KindStyled, style: style, left: child}
}

// Alt creates a document offering two renderings of the same content.
// The layout algorithm will choose flat if it fits the remainder of the
// current line, broken otherwise.
//
// It is the caller's obligation that flattening flat and broken results in
// the same output, and that the first line of broken is not longer than the
// first line of flat. This is not checked. Clients usually will want to use
// Group instead, which fulfills the contract by construction.
func Alt(flat, broken Doc) Doc {
	return mkdoc(altNode(flat.node(), broken.node()))
}
