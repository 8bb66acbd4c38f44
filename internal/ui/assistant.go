package ui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zhubert/codepad/internal/chat"
)

// Assistant is the collapsible chat panel: the conversation on top and the
// message input below.
type Assistant struct {
	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model

	messages []chat.Message
	pending  bool

	width   int
	height  int
	focused bool
}

// NewAssistant creates an empty assistant panel.
func NewAssistant() *Assistant {
	ti := textarea.New()
	ti.Placeholder = "Ask about your code…"
	ti.CharLimit = 0
	ti.SetHeight(ChatInputHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	// enter is taken by send
	ti.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("shift+enter", "ctrl+j"))

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	a := &Assistant{
		viewport: vp,
		input:    ti,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(ChatThinkingStyle)),
	}
	a.RefreshStyles()
	return a
}

// SetSize sets the panel dimensions including its border
func (a *Assistant) SetSize(width, height int) {
	a.width = width
	a.height = height

	ctx := GetViewContext()
	a.viewport.SetWidth(ctx.InnerWidth(width))
	a.viewport.SetHeight(max(a.historyHeight()-BorderSize-TitleHeight, 1))
	a.input.SetWidth(max(ctx.InnerWidth(width)-InputPaddingWidth, 1))
	a.updateContent()
}

// historyHeight is the outer height of the conversation box.
func (a *Assistant) historyHeight() int {
	return a.height - ChatInputTotalHeight
}

// SetFocused sets the focus state
func (a *Assistant) SetFocused(focused bool) tea.Cmd {
	a.focused = focused
	if focused {
		return a.input.Focus()
	}
	a.input.Blur()
	return nil
}

// IsFocused returns the focus state
func (a *Assistant) IsFocused() bool {
	return a.focused
}

// Input returns the text in the message box.
func (a *Assistant) Input() string {
	return a.input.Value()
}

// ClearInput empties the message box.
func (a *Assistant) ClearInput() {
	a.input.Reset()
}

// SetMessages replaces the conversation and scrolls to the newest entry.
func (a *Assistant) SetMessages(messages []chat.Message, pending bool) {
	changed := len(messages) != len(a.messages) || pending != a.pending
	a.messages = messages
	a.pending = pending
	if changed {
		a.updateContent()
		a.viewport.GotoBottom()
	}
}

// Pending reports whether the thinking placeholder is shown.
func (a *Assistant) Pending() bool {
	return a.pending
}

// SpinnerTick starts the thinking animation
func (a *Assistant) SpinnerTick() tea.Msg {
	return a.spinner.Tick()
}

// RefreshStyles re-applies the palette after the ui theme changed.
func (a *Assistant) RefreshStyles() {
	s := a.input.Styles()
	base := lipgloss.NewStyle()
	s.Focused.Base = base
	s.Focused.Text = ChatMessageStyle
	s.Focused.CursorLine = ChatMessageStyle
	s.Focused.Placeholder = EditorPlaceholder
	s.Focused.Prompt = base
	s.Blurred = s.Focused
	a.input.SetStyles(s)

	a.spinner.Style = ChatThinkingStyle
	a.updateContent()
}

func (a *Assistant) updateContent() {
	width := a.viewport.Width()
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var blocks []string
	for _, msg := range a.messages {
		blocks = append(blocks, renderMessage(msg, width))
	}
	if a.pending {
		blocks = append(blocks, a.spinner.View()+" "+ChatThinkingStyle.Render(chat.ThinkingText+"…"))
	}
	a.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

// renderMessage renders one conversation entry with its role label.
func renderMessage(msg chat.Message, width int) string {
	var label string
	if msg.Role == chat.RoleUser {
		label = ChatUserStyle.Render("You")
	} else {
		label = ChatAssistantStyle.Render("Assistant")
	}
	return label + "\n" + RenderSegments(msg.Rendered, width)
}

// RenderSegments lays out formatted chat content for the terminal. Prose is
// word-wrapped to width; code blocks are highlighted and clipped instead.
func RenderSegments(r chat.Rendered, width int) string {
	var (
		lines      []string
		current    strings.Builder
		afterBlock bool
	)

	flush := func() {
		lines = append(lines, wordwrap.String(current.String(), width))
		current.Reset()
	}

	for _, seg := range r {
		switch seg.Kind {
		case chat.SegmentBreak:
			// The newline that closes a fence belongs to the block
			if afterBlock && current.Len() == 0 {
				afterBlock = false
				continue
			}
			flush()
		case chat.SegmentInlineCode:
			current.WriteString(MarkdownInlineCodeStyle.Render(seg.Text))
		case chat.SegmentCodeBlock:
			if current.Len() > 0 {
				flush()
			}
			lines = append(lines, renderCodeBlock(seg, width))
			afterBlock = true
			continue
		default:
			current.WriteString(proseStyle(seg).Render(seg.Text))
		}
		afterBlock = false
	}
	if current.Len() > 0 {
		flush()
	}
	return strings.Join(lines, "\n")
}

func proseStyle(seg chat.Segment) lipgloss.Style {
	style := ChatMessageStyle
	if seg.Bold {
		style = MarkdownBoldStyle
	}
	if seg.Italic {
		style = style.Italic(true)
	}
	return style
}

// renderCodeBlock highlights a fenced block with the theme's chroma style.
func renderCodeBlock(seg chat.Segment, width int) string {
	code := strings.TrimSuffix(seg.Text, "\n")
	inner := max(width-MarkdownCodeBlockStyle.GetHorizontalPadding(), 1)

	var rows []string
	if seg.Lang != "" {
		rows = append(rows, MarkdownCodeLangStyle.Render(truncatePlain(seg.Lang, width)))
	}
	for _, line := range highlightLines(code, seg.Lang, CurrentTheme().ChromaStyle) {
		rows = append(rows, MarkdownCodeBlockStyle.Width(width).Render(ansi.Truncate(line, inner, "…")))
	}
	return strings.Join(rows, "\n")
}

// Update handles message input, history scrolling and spinner ticks.
func (a *Assistant) Update(msg tea.Msg) (*Assistant, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !a.pending {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		a.updateContent()
		return a, cmd
	case tea.KeyPressMsg:
		switch msg.String() {
		case "pgup", "pgdown":
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			return a, cmd
		}
		if !a.focused {
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	var cmds []tea.Cmd
	if a.focused {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// View renders the assistant panel
func (a *Assistant) View() string {
	innerWidth := GetViewContext().InnerWidth(a.width)

	title := PanelTitleStyle.Render("Assistant")
	hint := PanelHintStyle.Render("esc to close")
	gap := innerWidth - ansi.StringWidth(title) - ansi.StringWidth(hint)
	if gap > 0 {
		title += strings.Repeat(" ", gap) + hint
	}

	history := PanelStyle.Width(a.width).Height(a.historyHeight()).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, a.viewport.View()))

	inputStyle := ChatInputStyle
	if a.focused {
		inputStyle = ChatInputFocusedStyle
	}
	input := inputStyle.Width(a.width).Render(a.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, history, input)
}
