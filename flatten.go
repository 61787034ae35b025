package pretty

import "reflect"

// Flatten returns the single-line form of d: every collapsible line break is
// replaced by its collapse string and every alternative by its (flattened)
// flat form.
//
// Line breaks created by Line or by newlines within From are not collapsible.
// They survive flattening, as a group never hides a mandatory break. Nest
// nodes are dropped, except for those which still contain such a line break.
//
// Flatten shares every sub-tree which is already flat with d. Flattening a flat
// document returns the document itself.
func Flatten(d Doc) Doc {
	n, _ := flatten(d.node())
	return mkdoc(n)
}

// flatten returns the flattened node and a flag telling whether the result
// contains a hard line break.
func flatten(n *node) (*node, bool) {
	switch n.kind {
	case KindNil, KindText:
		return n, false
	case KindLine:
		if n.collapsible {
			return textNode(n.text), false
		}
		return n, true
	case KindAppend:
		l, lhard := flatten(n.left)
		r, rhard := flatten(n.right)
		if l == n.left && r == n.right {
			return n, lhard || rhard
		}
		return appendNodes(l, r), lhard || rhard
	case KindNest:
		child, hard := flatten(n.left)
		if !hard {
			return child, false
		}
		if child == n.left {
			return n, true
		}
		return nestNode(n.indent, child), true
	case KindAlt:
		return flatten(n.left)
	case KindStyled:
		child, hard := flatten(n.left)
		if child == n.left {
			return n, hard
		}
		return styleNode(n.style, child), hard
	}
	panic("pretty: unknown document node kind")
}

// Equal reports whether two documents are structurally identical. Styles are
// compared with reflect.DeepEqual.
func Equal(a, b Doc) bool {
	return equalNodes(a.node(), b.node())
}

func equalNodes(a, b *node) bool {
	if a == b {
		return true
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindText:
		return a.text == b.text
	case KindLine:
		return a.collapsible == b.collapsible && a.text == b.text
	case KindAppend, KindAlt:
		return equalNodes(a.left, b.left) && equalNodes(a.right, b.right)
	case KindNest:
		return a.indent == b.indent && equalNodes(a.left, b.left)
	case KindStyled:
		return reflect.DeepEqual(a.style, b.style) && equalNodes(a.left, b.left)
	}
	return false
}
