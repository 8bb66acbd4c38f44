package chat

import (
	"reflect"
	"strings"
	"testing"
)

func TestRender_Markup(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "inline code then fenced block",
			raw:  "Use `x=1` then ```js\nlet y=2;\n```",
			want: `Use <code>x=1</code> then <pre><code class="language-js">let y=2;` + "\n" + `</code></pre>`,
		},
		{
			name: "fence without language",
			raw:  "```\nprint(1)\n```",
			want: `<pre><code class="language-">print(1)` + "\n" + `</code></pre>`,
		},
		{
			name: "line breaks",
			raw:  "one\ntwo\n\nthree",
			want: "one<br>two<br><br>three",
		},
		{
			name: "bold",
			raw:  "a **b** c",
			want: "a <strong>b</strong> c",
		},
		{
			name: "italic",
			raw:  "a *b* c",
			want: "a <em>b</em> c",
		},
		{
			name: "bold before italic",
			raw:  "*i* and **b**",
			want: "<em>i</em> and <strong>b</strong>",
		},
		{
			name: "unclosed markers stay literal",
			raw:  "2 * 3 = 6",
			want: "2 * 3 = 6",
		},
		{
			name: "text is escaped",
			raw:  "<b>&</b>",
			want: "&lt;b&gt;&amp;&lt;/b&gt;",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.raw).Markup(); got != tt.want {
				t.Errorf("Render(%q).Markup() =\n%q\nwant\n%q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRender_StructuralOrder(t *testing.T) {
	r := Render("Use `x=1` then ```js\nlet y=2;\n```")

	want := Rendered{
		{Kind: SegmentText, Text: "Use "},
		{Kind: SegmentInlineCode, Text: "x=1"},
		{Kind: SegmentText, Text: " then "},
		{Kind: SegmentCodeBlock, Text: "let y=2;\n", Lang: "js"},
	}
	if !reflect.DeepEqual(r, want) {
		t.Errorf("segments =\n%+v\nwant\n%+v", r, want)
	}
	if strings.Contains(r.Markup(), "`") {
		t.Errorf("backtick survived: %q", r.Markup())
	}
}

func TestRender_ProtectsCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind SegmentKind
		text string
	}{
		{name: "inline code keeps asterisks", raw: "see `a*b*c`", kind: SegmentInlineCode, text: "a*b*c"},
		{name: "inline code keeps double asterisks", raw: "`**kwargs`", kind: SegmentInlineCode, text: "**kwargs"},
		{name: "block keeps markers and newlines", raw: "```py\ndef f(**kw):\n    return `x`\n```", kind: SegmentCodeBlock, text: "def f(**kw):\n    return `x`\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var found bool
			for _, seg := range Render(tt.raw) {
				if seg.Kind == tt.kind {
					found = true
					if seg.Text != tt.text {
						t.Errorf("code text = %q, want %q", seg.Text, tt.text)
					}
					if seg.Bold || seg.Italic {
						t.Error("code segment picked up emphasis")
					}
				}
			}
			if !found {
				t.Fatalf("no %v segment in %+v", tt.kind, Render(tt.raw))
			}
		})
	}
}

func TestRender_NestedEmphasis(t *testing.T) {
	r := Render("**a *b* c**")

	want := Rendered{
		{Kind: SegmentText, Text: "a ", Bold: true},
		{Kind: SegmentText, Text: "b", Bold: true, Italic: true},
		{Kind: SegmentText, Text: " c", Bold: true},
	}
	if !reflect.DeepEqual(r, want) {
		t.Errorf("segments = %+v", r)
	}
}

func TestRender_MultipleBlocks(t *testing.T) {
	r := Render("first:\n```c\nint x;\n```\nsecond:\n```r\ncat(1)\n```")

	var langs []string
	for _, seg := range r {
		if seg.Kind == SegmentCodeBlock {
			langs = append(langs, seg.Lang)
		}
	}
	if !reflect.DeepEqual(langs, []string{"c", "r"}) {
		t.Errorf("block languages = %v", langs)
	}
}

func TestPlainText(t *testing.T) {
	r := PlainText("**not bold**\n`not code`")

	for _, seg := range r {
		if seg.Bold || seg.Italic || seg.Kind == SegmentInlineCode || seg.Kind == SegmentCodeBlock {
			t.Errorf("user text should not be formatted: %+v", seg)
		}
	}
	if got := r.Plain(); got != "**not bold**\n`not code`" {
		t.Errorf("Plain() = %q", got)
	}
}

func TestRendered_Plain(t *testing.T) {
	got := Render("Run **this**:\n`go test`").Plain()
	if got != "Run this:\ngo test" {
		t.Errorf("Plain() = %q", got)
	}
}
