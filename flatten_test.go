package pretty

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// docGen creates random documents from a fixed seed.
type docGen struct {
	rnd   *rand.Rand
	hard  bool // allow hard line breaks
	words []string
}

func newDocGen(seed uint64, hard bool) *docGen {
	return &docGen{
		rnd:   rand.New(rand.NewPCG(seed, 4711)),
		hard:  hard,
		words: []string{"foo", "bar", "baz", "quux", "spam", "eggs", "x", "", "λ"},
	}
}

func (g *docGen) doc(depth int) Doc {
	if depth <= 0 {
		return g.leaf()
	}
	switch g.rnd.IntN(8) {
	case 0:
		return g.leaf()
	case 1, 2:
		return g.doc(depth - 1).Append(g.doc(depth - 1))
	case 3:
		return g.doc(depth - 1).Nest(g.rnd.IntN(5))
	case 4:
		return g.doc(depth - 1).Group()
	case 5:
		items := make([]Doc, g.rnd.IntN(4))
		for i := range items {
			items[i] = g.doc(depth - 1)
		}
		return Join(Space(), items...).Bracket("(", ")")
	case 6:
		return g.doc(depth - 1).WithStyle(teststyle("s"))
	}
	return Join(Space(), g.leaf(), g.leaf(), g.doc(depth-1))
}

func (g *docGen) leaf() Doc {
	switch n := g.rnd.IntN(10); {
	case n < 5:
		return From(g.words[g.rnd.IntN(len(g.words))])
	case n < 7:
		return Space()
	case n < 8:
		return SplitPoint()
	case n < 9:
		return Nbsp()
	}
	if g.hard {
		return Line()
	}
	return Empty()
}

// teststyle paints text with pseudo-tags.
type teststyle string

func (s teststyle) Paint(text string) string {
	return "<" + string(s) + ">" + text + "</" + string(s) + ">"
}

func containsSoftLine(n *node) bool {
	switch n.kind {
	case KindLine:
		return n.collapsible
	case KindAlt:
		return true
	case KindAppend:
		return containsSoftLine(n.left) || containsSoftLine(n.right)
	case KindNest, KindStyled:
		return containsSoftLine(n.left)
	}
	return false
}

func TestFlattenCollapsesLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	d := From("a").Append(Space()).Append(From("b")).Append(SplitPoint()).Append(LineOr(", ")).Nest(2)
	f := Flatten(d)
	t.Logf("flat = %v", f)
	if containsSoftLine(f.node()) {
		t.Errorf("expected flattened document to contain no collapsible lines")
	}
	if f.Kind() != KindAppend {
		t.Errorf("expected nest to be unwrapped, is %v", f.Kind())
	}
	if s := Render(f, 0, false); s != "a b, " {
		t.Errorf("expected \"a b, \", is %q", s)
	}
}

func TestFlattenKeepsHardLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	d := From("a").Append(Line()).Append(From("b")).Nest(2)
	f := Flatten(d)
	if f.node() != d.node() {
		t.Errorf("expected document without collapsible parts to be shared, is %v", f)
	}
	if s := Render(f, 80, false); s != "a\n  b" {
		t.Errorf("expected hard line to keep its indentation, is %q", s)
	}
}

func TestFlattenAltTakesFlat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	d := Alt(From("flat"), From("broken"))
	if s := Render(Flatten(d), 0, false); s != "flat" {
		t.Errorf("expected flat alternative, is %q", s)
	}
}

func TestFlattenIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	for _, hard := range []bool{false, true} {
		gen := newDocGen(1, hard)
		for i := 0; i < 300; i++ {
			d := gen.doc(6)
			f := Flatten(d)
			if ff := Flatten(f); !Equal(ff, f) {
				t.Fatalf("flatten not idempotent for %v:\n%v\n%v", d, f, ff)
			}
		}
	}
}

func TestFlattenGroupEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	gen := newDocGen(2, true)
	for i := 0; i < 300; i++ {
		d := gen.doc(6)
		if !Equal(Flatten(Group(d)), Flatten(d)) {
			t.Fatalf("flatten(group(d)) != flatten(d) for d = %v", d)
		}
	}
}

func TestFlatRenderingIsWidthIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	gen := newDocGen(3, false)
	for i := 0; i < 200; i++ {
		f := Flatten(gen.doc(6))
		s0, s1 := Render(f, 0, false), Render(f, 1000, false)
		if s0 != s1 || strings.Contains(s0, "\n") {
			t.Fatalf("flat rendering depends on width: %q vs %q", s0, s1)
		}
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	if !Equal(From("a").WithStyle(teststyle("x")), From("a").WithStyle(teststyle("x"))) {
		t.Errorf("expected equal styled documents to be equal")
	}
	if Equal(From("a").WithStyle(teststyle("x")), From("a").WithStyle(teststyle("y"))) {
		t.Errorf("expected documents with different styles to differ")
	}
	if Equal(LineOr(" "), Line()) {
		t.Errorf("expected soft and hard line to differ")
	}
	if Equal(From("a").Nest(1), From("a").Nest(2)) {
		t.Errorf("expected nests with different indentation to differ")
	}
}
