package pretty

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStyledText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	d := From("a").WithStyle(teststyle("x")).Append(From("b"))
	if s := Render(d, 80, true); s != "<x>a</x>b" {
		t.Errorf("expected painted text, is %q", s)
	}
	if s := Render(d, 80, false); s != "ab" {
		t.Errorf("expected styles to be ignored without color, is %q", s)
	}
}

func TestNestedStylesResumeOuter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	inner := From("b").WithStyle(teststyle("y"))
	d := Concat(From("a"), inner, From("c")).WithStyle(teststyle("x"))
	if s := Render(d, 80, true); s != "<x>a</x><y>b</y><x>c</x>" {
		t.Errorf("expected inner style to replace outer one, is %q", s)
	}
}

func TestStylesDoNotPaintLineBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	d := Join(Space(), From("ab"), From("cd")).Nest(2).Group().WithStyle(teststyle("x"))
	if s := Render(d, 3, true); s != "<x>ab</x>\n  <x>cd</x>" {
		t.Errorf("expected painted text runs around a line break, is %q", s)
	}
}

// cascading style accumulates its names
type cascading string

func (c cascading) Paint(text string) string {
	return "[" + string(c) + "|" + text + "]"
}

func (c cascading) Cascade(outer Style) Style {
	if o, ok := outer.(cascading); ok {
		return o + "+" + c
	}
	return c
}

func TestCascadingStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	inner := From("b").WithStyle(cascading("bold"))
	d := Concat(From("a"), inner).WithStyle(cascading("red"))
	if s := Render(d, 80, true); s != "[red|a][red+bold|b]" {
		t.Errorf("expected cascaded style, is %q", s)
	}
	// a nil style leaves the enclosing style alone
	d = From("a").WithStyle(nil).WithStyle(cascading("red"))
	if s := Render(d, 80, true); s != "[red|a]" {
		t.Errorf("expected enclosing style, is %q", s)
	}
	var sb strings.Builder
	err := Output(From("a"), &sb, &Config{Width: 80, Style: cascading("base")}, TextFormat{Color: true})
	if err != nil || sb.String() != "[base|a]" {
		t.Errorf("expected initial style to apply, is %q (%v)", sb.String(), err)
	}
}

type failingWriter struct {
	after int
}

var errWrite = errors.New("write failed")

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.after <= 0 {
		return 0, errWrite
	}
	fw.after--
	return len(p), nil
}

func TestOutputErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	if err := Output(From("x"), nil, nil, TextFormat{}); err != ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for nil writer, is %v", err)
	}
	if err := Output(From("x"), &bytes.Buffer{}, nil, nil); err != ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for nil format, is %v", err)
	}
	d := Concat(From("a"), Line(), From("b"), Line(), From("c"))
	err := Fprint(&failingWriter{after: 2}, d, 80, false)
	if !errors.Is(err, errWrite) {
		t.Errorf("expected write error to be propagated, is %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	words := make([]Doc, 20)
	for i := range words {
		words[i] = From("word")
	}
	d := Join(Space(), words...).Group() // 99 columns
	var buf bytes.Buffer
	if err := Output(d, &buf, nil, TextFormat{}); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 19 {
		t.Errorf("expected group to break at default width, has %d newlines", lines)
	}
}

func TestDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	d := Join(Space(), From("hello"), From("world")).Group()
	if s := fmt.Sprint(d.Display(80, false)); s != "hello world" {
		t.Errorf("expected \"hello world\", is %q", s)
	}
	var buf bytes.Buffer
	n, err := d.Display(5, false).WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello\nworld" || n != 11 {
		t.Errorf("expected 11 bytes \"hello\\nworld\", is %d bytes %q", n, buf.String())
	}
}

func TestDocString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	d := From("a").Append(Space()).Nest(2).Group()
	want := `Alt(Append(Text("a"), Text(" ")), Nest(2, Append(Text("a"), Line(" "))))`
	if d.String() != want {
		t.Errorf("expected %s, is %s", want, d.String())
	}
}

func TestDoc2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pretty")
	defer teardown()
	//
	shared := From("shared")
	d := Join(Space(), shared, shared).Group()
	var buf bytes.Buffer
	if err := Doc2Dot(d, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT output")
	}
	if strings.Count(dot, "“shared”") != 1 {
		t.Errorf("expected shared text node to appear once")
	}
	if !strings.Contains(dot, "label=flat") || !strings.Contains(dot, "label=broken") {
		t.Errorf("expected labeled edges for alternative")
	}
}
