package pretty

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*node]int),
		max:     1,
	}
}

func (ids nodeids) find(n *node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n *node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Doc2Dot outputs the internal structure of a document in Graphviz DOT format
// (for debugging purposes). Sub-trees shared between branches of the
// document, e.g. by groups, appear only once.
func Doc2Dot(d Doc, w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	var nodelist, edgelist strings.Builder
	var walk func(n *node) int
	walk = func(n *node) int {
		if id := ids.find(n); id > 0 {
			return id
		}
		ID := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, dotLabel(n), nodeDotStyles(n))
		if n.left != nil {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\"%s;\n", ID, walk(n.left), edgeDotStyles(n, true))
		}
		if n.right != nil {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\"%s;\n", ID, walk(n.right), edgeDotStyles(n, false))
		}
		return ID
	}
	walk(d.node())
	sb.WriteString(nodelist.String())
	sb.WriteString(edgelist.String())
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	if err != nil {
		tracer().Errorf("document DOT: %s", err.Error())
	}
	return err
}

func dotLabel(n *node) string {
	switch n.kind {
	case KindText:
		return fmt.Sprintf("“%s”", dotEscape(n.text))
	case KindLine:
		if n.collapsible {
			return fmt.Sprintf("⏎ “%s”", dotEscape(n.text))
		}
		return "⏎"
	case KindNest:
		return fmt.Sprintf("+%d", n.indent)
	case KindStyled:
		return dotEscape(fmt.Sprintf("%v", n.style))
	}
	return n.kind.String()
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func nodeDotStyles(n *node) string {
	s := ",style=filled"
	switch n.kind {
	case KindText, KindLine, KindNil:
		s += ",shape=box"
	case KindAlt:
		s += ",color=black,fillcolor=\"#ffcc88\",shape=diamond"
	default:
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}

func edgeDotStyles(n *node, left bool) string {
	if n.kind != KindAlt {
		return ""
	}
	if left {
		return " [label=flat]"
	}
	return " [label=broken,style=dashed]"
}
