// Package layout owns the geometry of the editor/console split and the
// assistant side panel, measured in terminal columns.
//
// The screen is laid out left to right as
//
//	[ editor ][|][ console ][ assistant panel ]
//	          ^            ^
//	       splitter     resizer (left border column of the open panel)
//
// Widths change only through drags, keyboard nudges, panel toggles and
// viewport resizes. A candidate width that would break a minimum is
// dropped and the last valid state is kept.
package layout

import (
	"math"

	"github.com/zhubert/codepad/internal/logger"
)

const (
	MinPaneWidth          = 20
	MinAssistantWidth     = 30
	DefaultAssistantWidth = 40
	MaxAssistantRatio     = 0.7
	SplitterWidth         = 1
	MinViewportWidth      = 80
)

// Target is what a drag is resizing.
type Target int

const (
	TargetNone Target = iota
	TargetSplitter
	TargetAssistantResizer
)

func (t Target) String() string {
	switch t {
	case TargetSplitter:
		return "splitter"
	case TargetAssistantResizer:
		return "assistant-resizer"
	default:
		return "none"
	}
}

// Region identifies what occupies a screen column.
type Region int

const (
	RegionEditor Region = iota
	RegionSplitter
	RegionConsole
	RegionAssistantResizer
	RegionAssistant
)

// State is a snapshot of the committed geometry.
type State struct {
	EditorPaneWidth     int
	ConsolePaneWidth    int
	AssistantPanelOpen  bool
	AssistantPanelWidth int
	ViewportWidth       int
}

// Machine is the layout state machine: idle until BeginDrag, dragging until EndDrag.
type Machine struct {
	viewport       int
	split          float64 // editor share of the two panes, 0..1
	assistantOpen  bool
	assistantWidth int

	dragging bool
	target   Target
}

// New creates a layout with an even split and the assistant panel closed.
func New(viewportWidth int) *Machine {
	m := &Machine{
		split:          0.5,
		assistantWidth: DefaultAssistantWidth,
	}
	m.Resize(viewportWidth)
	return m
}

// Resize reflows for a new viewport width. Widths below MinViewportWidth are
// treated as MinViewportWidth.
func (m *Machine) Resize(viewportWidth int) {
	if viewportWidth < MinViewportWidth {
		viewportWidth = MinViewportWidth
	}
	m.viewport = viewportWidth
	m.assistantWidth = clamp(m.assistantWidth, MinAssistantWidth, m.MaxAssistantWidth())
}

// MaxAssistantWidth is the widest the panel may be: 70% of the viewport,
// and never so wide that the two panes drop below their minimum.
func (m *Machine) MaxAssistantWidth() int {
	byRatio := int(math.Floor(MaxAssistantRatio * float64(m.viewport)))
	byPanes := m.viewport - 2*MinPaneWidth - SplitterWidth
	return min(byRatio, byPanes)
}

// Margin is the number of columns taken from the right edge by the panel.
func (m *Machine) Margin() int {
	if m.assistantOpen {
		return m.assistantWidth
	}
	return 0
}

// MainWidth is the width of the editor, splitter and console together.
func (m *Machine) MainWidth() int {
	return m.viewport - m.Margin()
}

func (m *Machine) panesWidth() int {
	return m.MainWidth() - SplitterWidth
}

// EditorWidth is derived from the split so that toggling the panel and back
// restores the exact pane widths.
func (m *Machine) EditorWidth() int {
	w := int(math.Round(m.split * float64(m.panesWidth())))
	return clamp(w, MinPaneWidth, m.panesWidth()-MinPaneWidth)
}

// ConsoleWidth is whatever the editor and splitter leave of the main area.
func (m *Machine) ConsoleWidth() int {
	return m.panesWidth() - m.EditorWidth()
}

// State returns the committed geometry.
func (m *Machine) State() State {
	return State{
		EditorPaneWidth:     m.EditorWidth(),
		ConsolePaneWidth:    m.ConsoleWidth(),
		AssistantPanelOpen:  m.assistantOpen,
		AssistantPanelWidth: m.assistantWidth,
		ViewportWidth:       m.viewport,
	}
}

// AssistantOpen reports whether the panel is showing.
func (m *Machine) AssistantOpen() bool { return m.assistantOpen }

// Dragging reports whether a drag is in progress.
func (m *Machine) Dragging() bool { return m.dragging }

// DragTarget returns the current drag target, TargetNone when idle.
func (m *Machine) DragTarget() Target { return m.target }

// HitTest reports which region column x belongs to.
func (m *Machine) HitTest(x int) Region {
	editor := m.EditorWidth()
	main := m.MainWidth()
	switch {
	case x < editor:
		return RegionEditor
	case x < editor+SplitterWidth:
		return RegionSplitter
	case x < main:
		return RegionConsole
	case x == main:
		return RegionAssistantResizer
	default:
		return RegionAssistant
	}
}

// BeginDrag starts dragging target. It returns false, leaving the machine
// idle, when the target cannot be dragged (no target, or the panel is closed).
func (m *Machine) BeginDrag(target Target, x int) bool {
	if target == TargetNone {
		return false
	}
	if target == TargetAssistantResizer && !m.assistantOpen {
		return false
	}
	m.dragging = true
	m.target = target
	logger.WithComponent("layout").Debug("drag started", "target", target.String(), "x", x)
	return true
}

// UpdateDrag moves the drag target to pointer column x. Nothing happens
// unless a drag is active or when the candidate geometry would violate a
// minimum. It reports whether the geometry changed.
func (m *Machine) UpdateDrag(x int) bool {
	if !m.dragging {
		return false
	}
	switch m.target {
	case TargetSplitter:
		return m.commitEditorWidth(x)
	case TargetAssistantResizer:
		return m.commitAssistantWidth(m.viewport - x)
	}
	return false
}

// EndDrag returns to idle. It reports whether a drag was active, in which
// case the editor needs a re-layout.
func (m *Machine) EndDrag() bool {
	if !m.dragging {
		return false
	}
	logger.WithComponent("layout").Debug("drag ended", "target", m.target.String(),
		"editor", m.EditorWidth(), "console", m.ConsoleWidth(), "assistant", m.assistantWidth)
	m.dragging = false
	m.target = TargetNone
	return true
}

// NudgeSplitter moves the splitter by delta columns under the same rule as a drag.
func (m *Machine) NudgeSplitter(delta int) bool {
	return m.commitEditorWidth(m.EditorWidth() + delta)
}

// NudgeAssistant widens (positive delta) or narrows the open panel.
func (m *Machine) NudgeAssistant(delta int) bool {
	if !m.assistantOpen {
		return false
	}
	return m.commitAssistantWidth(m.assistantWidth + delta)
}

// ToggleAssistant opens or closes the panel. The panel width is untouched;
// the main area grows or shrinks by it.
func (m *Machine) ToggleAssistant() {
	m.assistantOpen = !m.assistantOpen
}

// CloseAssistant closes the panel, reporting whether it was open.
func (m *Machine) CloseAssistant() bool {
	if !m.assistantOpen {
		return false
	}
	m.assistantOpen = false
	return true
}

func (m *Machine) commitEditorWidth(editor int) bool {
	console := m.panesWidth() - editor
	if editor < MinPaneWidth || console < MinPaneWidth {
		return false
	}
	if editor == m.EditorWidth() {
		return false
	}
	m.split = float64(editor) / float64(m.panesWidth())
	return true
}

func (m *Machine) commitAssistantWidth(width int) bool {
	if width < MinAssistantWidth || width > m.MaxAssistantWidth() {
		return false
	}
	if width == m.assistantWidth {
		return false
	}
	m.assistantWidth = width
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
