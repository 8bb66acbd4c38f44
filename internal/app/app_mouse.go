package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/codepad/internal/layout"
	"github.com/zhubert/codepad/internal/ui"
)

// handleMouse turns mouse events into focus changes, run clicks and drags.
func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return nil
		}
		return m.handleClick(msg.X, msg.Y)

	case tea.MouseMotionMsg:
		if m.session.Layout().Dragging() && m.session.UpdateDrag(msg.X) {
			m.relayout()
		}
		return nil

	case tea.MouseReleaseMsg:
		if m.session.EndDrag() {
			m.relayout()
		}
		return nil

	case tea.MouseWheelMsg:
		return m.routeWheel(msg)
	}
	return nil
}

// inContent reports whether row y is between the header and footer.
func inContent(y int) bool {
	ctx := ui.GetViewContext()
	return y >= ctx.HeaderHeight && y < ctx.HeaderHeight+ctx.ContentHeight
}

func (m *Model) handleClick(x, y int) tea.Cmd {
	if !inContent(y) {
		return nil
	}

	if target := m.session.DragTargetAt(x); target != layout.TargetNone {
		m.session.BeginDrag(target, x)
		return nil
	}

	lay := m.session.Layout()
	switch lay.HitTest(x) {
	case layout.RegionEditor:
		return m.setFocus(ui.PaneEditor)
	case layout.RegionConsole:
		left := lay.EditorWidth() + layout.SplitterWidth
		if m.console.HitRunButton(x-left, y-ui.GetViewContext().HeaderHeight) {
			return m.startRun()
		}
		return m.setFocus(ui.PaneStdin)
	case layout.RegionAssistant:
		return m.setFocus(ui.PaneChat)
	}
	return nil
}

// routeWheel scrolls the output or the conversation under the pointer.
func (m *Model) routeWheel(msg tea.MouseWheelMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.session.Layout().HitTest(msg.X) {
	case layout.RegionConsole:
		m.console, cmd = m.console.Update(msg)
	case layout.RegionAssistant:
		m.assistant, cmd = m.assistant.Update(msg)
	}
	return cmd
}
