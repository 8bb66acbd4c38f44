package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabWidth is the column stop tabs are expanded to in highlighted code
const TabWidth = 4

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language, styleName string) string {
	return strings.Join(highlightLines(code, language, styleName), "\n")
}

// highlightLines highlights code and returns exactly one styled string per
// source line, so callers can add gutters or clip rows. Each line is
// formatted on its own, which keeps escape sequences from spanning rows.
func highlightLines(code, language, styleName string) []string {
	plain := strings.Split(code, "\n")
	for i, line := range plain {
		plain[i] = expandTabs(line, TabWidth)
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, strings.Join(plain, "\n"))
	if err != nil {
		return plain
	}

	out := make([]string, len(plain))
	copy(out, plain)

	for i, tokens := range chroma.SplitTokensIntoLines(iterator.Tokens()) {
		if i >= len(out) {
			break
		}
		var buf bytes.Buffer
		if err := formatter.Format(&buf, style, chroma.Literator(tokens...)); err != nil {
			continue
		}
		out[i] = strings.ReplaceAll(buf.String(), "\n", "")
	}
	return out
}

// expandTabs replaces tabs with spaces up to the next tab stop, measuring
// columns by grapheme cluster width.
func expandTabs(line string, tabWidth int) string {
	if !strings.Contains(line, "\t") {
		return line
	}

	var b strings.Builder
	col := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		if cluster == "\t" {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteString(cluster)
		col += g.Width()
	}
	return b.String()
}

// truncatePlain shortens unstyled text to width cells, marking the cut.
func truncatePlain(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
