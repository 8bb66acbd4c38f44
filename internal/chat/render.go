package chat

import (
	"html"
	"regexp"
	"strings"
)

var (
	codeBlockPattern  = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)```")
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
)

// SegmentKind identifies a piece of rendered content.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentBreak
	SegmentInlineCode
	SegmentCodeBlock
)

// Segment is one run of rendered content. Bold and Italic apply to
// SegmentText only; code segments are never restyled.
type Segment struct {
	Kind   SegmentKind
	Text   string
	Lang   string // fence language tag, code blocks only
	Bold   bool
	Italic bool
}

// Rendered is the output of the formatting transform, in display order.
type Rendered []Segment

// PlainText wraps s without any formatting. Used for user messages.
func PlainText(s string) Rendered {
	var out Rendered
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			out = append(out, Segment{Kind: SegmentBreak})
		}
		if line != "" {
			out = append(out, Segment{Kind: SegmentText, Text: line})
		}
	}
	return out
}

// Render applies the assistant formatting transform to raw. Passes run in a
// fixed order: fenced code blocks, inline code, line breaks, **bold**,
// *italic*. Code found by the first two passes is cut out as its own
// segment, so later passes never see it.
func Render(raw string) Rendered {
	var out Rendered
	last := 0
	for _, m := range codeBlockPattern.FindAllStringSubmatchIndex(raw, -1) {
		out = append(out, renderInline(raw[last:m[0]])...)
		block := Segment{Kind: SegmentCodeBlock, Text: raw[m[4]:m[5]]}
		if m[2] >= 0 {
			block.Lang = raw[m[2]:m[3]]
		}
		out = append(out, block)
		last = m[1]
	}
	return append(out, renderInline(raw[last:])...)
}

func renderInline(s string) Rendered {
	var out Rendered
	last := 0
	for _, m := range inlineCodePattern.FindAllStringSubmatchIndex(s, -1) {
		out = append(out, renderProse(s[last:m[0]])...)
		out = append(out, Segment{Kind: SegmentInlineCode, Text: s[m[2]:m[3]]})
		last = m[1]
	}
	return append(out, renderProse(s[last:])...)
}

// emphasis flags for a single rune of prose.
type emphasis struct {
	bold, italic bool
}

func renderProse(s string) Rendered {
	var out Rendered
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			out = append(out, Segment{Kind: SegmentBreak})
		}
		runes := []rune(line)
		marks := make([]emphasis, len(runes))
		runes, marks = strip(runes, marks, "**", func(e *emphasis) { e.bold = true })
		runes, marks = strip(runes, marks, "*", func(e *emphasis) { e.italic = true })
		out = append(out, group(runes, marks)...)
	}
	return out
}

// strip removes each pair of delim markers (leftmost opener, nearest
// closer) and applies mark to the runes between them.
func strip(runes []rune, marks []emphasis, delim string, mark func(*emphasis)) ([]rune, []emphasis) {
	d := []rune(delim)
	at := func(i int) bool {
		if i+len(d) > len(runes) {
			return false
		}
		for k := range d {
			if runes[i+k] != d[k] {
				return false
			}
		}
		return true
	}

	outRunes := make([]rune, 0, len(runes))
	outMarks := make([]emphasis, 0, len(marks))
	i := 0
	for i < len(runes) {
		if !at(i) {
			outRunes = append(outRunes, runes[i])
			outMarks = append(outMarks, marks[i])
			i++
			continue
		}
		closeAt := -1
		for j := i + len(d); j < len(runes); j++ {
			if at(j) {
				closeAt = j
				break
			}
		}
		if closeAt < 0 {
			outRunes = append(outRunes, runes[i:]...)
			outMarks = append(outMarks, marks[i:]...)
			break
		}
		for k := i + len(d); k < closeAt; k++ {
			e := marks[k]
			mark(&e)
			outRunes = append(outRunes, runes[k])
			outMarks = append(outMarks, e)
		}
		i = closeAt + len(d)
	}
	return outRunes, outMarks
}

func group(runes []rune, marks []emphasis) Rendered {
	var out Rendered
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && marks[i] == marks[start] {
			continue
		}
		out = append(out, Segment{
			Kind:   SegmentText,
			Text:   string(runes[start:i]),
			Bold:   marks[start].bold,
			Italic: marks[start].italic,
		})
		start = i
	}
	return out
}

// Markup returns the HTML form of the rendered content. Text is escaped.
func (r Rendered) Markup() string {
	var b strings.Builder
	for _, seg := range r {
		switch seg.Kind {
		case SegmentBreak:
			b.WriteString("<br>")
		case SegmentInlineCode:
			b.WriteString("<code>" + html.EscapeString(seg.Text) + "</code>")
		case SegmentCodeBlock:
			b.WriteString(`<pre><code class="language-` + seg.Lang + `">` + html.EscapeString(seg.Text) + "</code></pre>")
		default:
			text := html.EscapeString(seg.Text)
			if seg.Italic {
				text = "<em>" + text + "</em>"
			}
			if seg.Bold {
				text = "<strong>" + text + "</strong>"
			}
			b.WriteString(text)
		}
	}
	return b.String()
}

// Plain returns the content without formatting markers.
func (r Rendered) Plain() string {
	var b strings.Builder
	for _, seg := range r {
		switch seg.Kind {
		case SegmentBreak:
			b.WriteByte('\n')
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
