package ui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/codepad/internal/display"
	"github.com/zhubert/codepad/internal/logger"
	"github.com/zhubert/codepad/internal/snippets"
)

// editorMaxLines caps the buffer; it also fixes the textarea's gutter width.
const editorMaxLines = 9999

// Editor is the code editing pane. While focused it shows a textarea;
// otherwise it shows the buffer with syntax highlighting.
type Editor struct {
	textarea textarea.Model
	language string // editor language id
	themeID  string // editor theme id
	width    int
	height   int
	focused  bool
	bounds   func() (width, height int)
}

// NewEditor creates an empty editor with the light theme.
func NewEditor() *Editor {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = editorMaxLines

	e := &Editor{
		textarea: ta,
		themeID:  display.EditorThemeLight,
	}
	e.applyStyles()
	return e
}

// SetBounds sets where Layout reads the pane size from.
func (e *Editor) SetBounds(fn func() (width, height int)) {
	e.bounds = fn
}

// GetValue returns the buffer contents.
func (e *Editor) GetValue() string {
	return e.textarea.Value()
}

// SetValue replaces the buffer and moves the cursor to the top.
func (e *Editor) SetValue(text string) {
	e.textarea.SetValue(text)
	e.textarea.MoveToBegin()
}

// InsertIndent inserts spaces up to the next tab stop.
func (e *Editor) InsertIndent() {
	n := TabWidth - e.textarea.Column()%TabWidth
	e.textarea.InsertString(strings.Repeat(" ", n))
}

// SetModelLanguage sets the language used for highlighting.
func (e *Editor) SetModelLanguage(id string) {
	e.language = id
}

// SetTheme switches between the "vs" and "vs-dark" editor themes.
func (e *Editor) SetTheme(id string) {
	e.themeID = id
	e.applyStyles()
}

// Layout re-reads the pane size from the bounds func.
func (e *Editor) Layout() {
	if e.bounds == nil {
		return
	}
	e.SetSize(e.bounds())
}

// LanguageID returns the editor language id.
func (e *Editor) LanguageID() string { return e.language }

// ThemeID returns the editor theme id.
func (e *Editor) ThemeID() string { return e.themeID }

// Size returns the pane size including its border.
func (e *Editor) Size() (width, height int) { return e.width, e.height }

// SetSize sets the pane dimensions including the border.
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height

	ctx := GetViewContext()
	e.textarea.SetWidth(ctx.InnerWidth(width))
	e.textarea.SetHeight(max(e.bodyHeight(), 1))

	logger.WithComponent("ui").Debug("Editor.SetSize", "width", width, "height", height)
}

// bodyHeight is the number of code rows below the title.
func (e *Editor) bodyHeight() int {
	return GetViewContext().InnerHeight(e.height) - TitleHeight
}

// SetFocused sets the focus state
func (e *Editor) SetFocused(focused bool) tea.Cmd {
	e.focused = focused
	if focused {
		return e.textarea.Focus()
	}
	e.textarea.Blur()
	return nil
}

// IsFocused returns the focus state
func (e *Editor) IsFocused() bool {
	return e.focused
}

// RefreshStyles re-applies the palette after the ui theme changed.
func (e *Editor) RefreshStyles() {
	e.applyStyles()
}

func (e *Editor) applyStyles() {
	s := textarea.DefaultStyles(e.themeID == display.EditorThemeDark)
	base := lipgloss.NewStyle()

	s.Focused.Base = base
	s.Focused.Text = EditorTextStyle
	s.Focused.CursorLine = EditorTextStyle
	s.Focused.LineNumber = LineNumberStyle
	s.Focused.CursorLineNumber = CursorLineNumberStyle
	s.Focused.Placeholder = EditorPlaceholder
	s.Focused.Prompt = base
	s.Blurred = s.Focused
	s.Cursor.Color = ColorPrimary

	e.textarea.SetStyles(s)
}

// chromaStyle returns the chroma style for the current editor theme.
func (e *Editor) chromaStyle() string {
	return GetTheme(ThemeForEditor(e.themeID)).ChromaStyle
}

// languageLabel returns the display name of the editor language.
func (e *Editor) languageLabel() string {
	for _, l := range snippets.All() {
		if l.EditorID == e.language {
			return l.Label
		}
	}
	return e.language
}

// Update handles key input while focused.
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	if !e.focused {
		return e, nil
	}
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// View renders the editor panel
func (e *Editor) View() string {
	panelStyle := PanelStyle
	if e.focused {
		panelStyle = PanelFocusedStyle
	}

	innerWidth := GetViewContext().InnerWidth(e.width)
	title := PanelTitleStyle.Render(truncatePlain("Editor · "+e.languageLabel(), innerWidth))

	var body string
	if e.focused {
		body = e.textarea.View()
	} else {
		body = e.highlightedView(innerWidth, e.bodyHeight())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return panelStyle.Width(e.width).Height(e.height).Render(content)
}

// highlightedView renders the rows that keep the cursor line visible, with
// a line-number gutter.
func (e *Editor) highlightedView(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := highlightLines(e.textarea.Value(), e.language, e.chromaStyle())
	digits := max(len(strconv.Itoa(len(lines))), 2)
	codeWidth := width - digits - GutterPadding

	top := 0
	if row := e.textarea.Line(); row >= height {
		top = row - height + 1
	}

	rows := make([]string, 0, height)
	for i := top; i < len(lines) && len(rows) < height; i++ {
		gutter := LineNumberStyle.Render(fmt.Sprintf("%*d", digits, i+1)) + strings.Repeat(" ", GutterPadding)
		rows = append(rows, gutter+ansi.Truncate(lines[i], max(codeWidth, 0), "…"))
	}
	return strings.Join(rows, "\n")
}
