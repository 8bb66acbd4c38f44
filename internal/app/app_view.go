package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/codepad/internal/layout"
	"github.com/zhubert/codepad/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = m.session.Fullscreen().Active()
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterContext()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.renderPanes(),
		m.footer.View(),
	)
}

// renderPanes lays out editor, splitter, console and the optional panel,
// highlighting the divider under an active drag.
func (m *Model) renderPanes() string {
	ctx := ui.GetViewContext()
	lay := m.session.Layout()

	parts := []string{
		m.editor.View(),
		ui.RenderSplitter(ctx.ContentHeight),
		m.console.View(),
	}
	if lay.AssistantOpen() {
		parts = append(parts, ui.RenderSplitter(ctx.ContentHeight), m.assistant.View())
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	switch lay.DragTarget() {
	case layout.TargetSplitter:
		panes = ui.HighlightColumn(panes, ctx.TerminalWidth, ctx.ContentHeight, lay.EditorWidth())
	case layout.TargetAssistantResizer:
		panes = ui.HighlightColumn(panes, ctx.TerminalWidth, ctx.ContentHeight, lay.MainWidth())
	}
	return panes
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	lay := m.session.Layout()
	m.footer.SetContext(m.focus, m.session.Execution().Running(), lay.AssistantOpen(), lay.Dragging())
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)

	m.session.Resize(ctx.TerminalWidth)
	m.relayout()
}

// relayout sizes every pane from the committed layout. The session already
// re-laid out the editor; the other panes follow here.
func (m *Model) relayout() {
	ctx := ui.GetViewContext()
	lay := m.session.Layout()

	m.editor.Layout()
	m.console.SetSize(lay.ConsoleWidth(), ctx.ContentHeight)
	if lay.AssistantOpen() {
		m.assistant.SetSize(lay.Margin()-layout.SplitterWidth, ctx.ContentHeight)
	}
}

// syncAll mirrors every piece of session state into the components.
func (m *Model) syncAll() {
	m.syncHeader()
	m.syncConsole()
	m.syncAssistant()
}

func (m *Model) syncHeader() {
	m.header.SetLanguage(m.languageLabel())
	m.header.SetThemeName(m.session.Theme().Mode().String())
	m.header.SetFullscreen(m.session.Fullscreen().Active())
	m.header.SetRunning(m.session.Execution().Running())
}

func (m *Model) syncConsole() {
	exec := m.session.Execution()
	m.console.SetResult(exec.Result(), exec.Elapsed())
	m.header.SetRunning(exec.Running())
}

func (m *Model) syncAssistant() {
	c := m.session.Chat()
	m.assistant.SetMessages(c.Messages(), c.PlaceholderVisible())
}
