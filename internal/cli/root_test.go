package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the CLI with args and stdin, isolated from any user
// configuration.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestSexprCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
		want string
	}{
		{
			name: "flat",
			args: []string{"sexpr"},
			in:   "(define (square x)\n   (* x x))",
			want: "(define (square x) (* x x))\n",
		},
		{
			name: "narrow",
			args: []string{"sexpr", "--width", "20"},
			in:   "(define (square x) (* x x))",
			want: "(\n    define\n    (square x)\n    (* x x)\n)\n",
		},
		{
			name: "several expressions",
			args: []string{"sexpr", "-w", "10"},
			in:   "(a b) (c d)",
			want: "(a b)\n(c d)\n",
		},
		{
			name: "indented",
			args: []string{"sexpr", "--width", "10", "--indent", "2"},
			in:   "(alpha beta)",
			want: "  (\n      alpha\n      beta\n  )\n",
		},
		{
			name: "indented html",
			args: []string{"sexpr", "-w", "10", "--indent", "2", "--html", "--color", "never"},
			in:   "(alpha beta)",
			want: `<pre class="prettyfmt">  (` + "\n      alpha\n      beta\n  )</pre>\n",
		},
		{
			name: "empty input",
			args: []string{"sexpr"},
			in:   "; nothing\n",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.in, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestJSONCommand(t *testing.T) {
	out, _, err := run(t, `{"a": [1, 2], "b": null}`, "json", "--width", "16")
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"a\": [1, 2],\n    \"b\": null\n}\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestColor(t *testing.T) {
	out, _, err := run(t, "(if x y)", "sexpr", "--color", "always")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\x1b[1;34mif\x1b[0m") {
		t.Errorf("expected keyword in default theme colors, got %q", out)
	}
	out, _, err = run(t, "(if x y)", "sexpr", "--color", "never")
	if err != nil || out != "(if x y)\n" {
		t.Errorf("expected plain output, got %q (%v)", out, err)
	}
}

func TestHTMLOutput(t *testing.T) {
	out, _, err := run(t, `["<b>"]`, "json", "--html")
	if err != nil {
		t.Fatal(err)
	}
	punct := func(s string) string { return `<span style="opacity:0.6">` + s + `</span>` }
	want := `<pre class="prettyfmt">` + punct("[") +
		`<span style="color:#00cd00">&#34;&lt;b&gt;&#34;</span>` +
		punct("]") + "</pre>\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestHTMLOutputWithoutColor(t *testing.T) {
	out, _, err := run(t, `["<b>"]`, "json", "--html", "--color", "never")
	if err != nil {
		t.Fatal(err)
	}
	want := `<pre class="prettyfmt">[&#34;&lt;b&gt;&#34;]</pre>` + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestDotCommand(t *testing.T) {
	out, _, err := run(t, `[1]`, "dot", "--input", "json", "--color", "never")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected DOT output, got %q", out)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prettyfmt.toml")
	err := os.WriteFile(path, []byte("width = 5\ncolor = \"never\"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "(a b)", "sexpr", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "(a b)\n" {
		t.Errorf("expected width from config file, got %q", out)
	}
	out, _, err = run(t, "(a b)", "sexpr", "--config", path, "--width", "4")
	if err != nil {
		t.Fatal(err)
	}
	if out != "(\n    a\n    b\n)\n" {
		t.Errorf("expected flag to override config file, got %q", out)
	}
}

func TestFileArguments(t *testing.T) {
	dir := t.TempDir()
	f1, f2 := filepath.Join(dir, "one.scm"), filepath.Join(dir, "two.scm")
	if err := os.WriteFile(f1, []byte("(one)"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(f2, []byte("(two)"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "", "sexpr", f1, f2)
	if err != nil {
		t.Fatal(err)
	}
	if out != "(one)\n(two)\n" {
		t.Errorf("output = %q", out)
	}
	if _, _, err = run(t, "", "sexpr", filepath.Join(dir, "missing.scm")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
		want string
	}{
		{"syntax", []string{"sexpr"}, "(a", "<stdin>: s-expression syntax error at 1:1"},
		{"json", []string{"json"}, "[1,", "<stdin>: invalid JSON"},
		{"color mode", []string{"sexpr", "--color", "rainbow"}, "a", "color must be"},
		{"dot input", []string{"dot", "--input", "yaml"}, "a", "unknown input format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.in, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestVerboseLogging(t *testing.T) {
	_, errOut, err := run(t, "(a)", "sexpr", "-v", "--color", "never")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "settings") {
		t.Errorf("expected debug log on stderr, got %q", errOut)
	}
	_, errOut, _ = run(t, "(a)", "sexpr", "--color", "never")
	if errOut != "" {
		t.Errorf("expected no log output without -v, got %q", errOut)
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123")
	defer SetVersion("dev", "")
	if version != "1.0.0" || commit != "abc123" {
		t.Errorf("version/commit = %q/%q", version, commit)
	}
}
