package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/codepad/internal/keys"
	"github.com/zhubert/codepad/internal/logger"
	"github.com/zhubert/codepad/internal/snippets"
	"github.com/zhubert/codepad/internal/ui"
)

// Columns moved per keyboard nudge of the splitter or the panel edge.
const nudgeStep = 2

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for global shortcuts.
type Shortcut struct {
	Keys        []string                            // Key strings that trigger it (e.g. "ctrl+r", "f5")
	Description string                              // Human-readable description
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// ShortcutRegistry is the central registry of global shortcuts. Keys not
// claimed here go to the focused pane.
var ShortcutRegistry = []Shortcut{
	{
		Keys:        []string{keys.CtrlC, keys.CtrlQ},
		Description: "Quit",
		Handler:     shortcutQuit,
	},
	{
		Keys:        []string{keys.CtrlR, keys.F5},
		Description: "Run code",
		Handler:     shortcutRun,
	},
	{
		Keys:        []string{keys.CtrlL},
		Description: "Clear output",
		Handler:     shortcutClearOutput,
	},
	{
		Keys:        []string{keys.CtrlB},
		Description: "Toggle assistant panel",
		Handler:     shortcutToggleAssistant,
	},
	{
		Keys:        []string{keys.Escape},
		Description: "Close assistant panel",
		Handler:     shortcutCloseAssistant,
		Condition:   func(m *Model) bool { return m.session.Layout().AssistantOpen() },
	},
	{
		Keys:        []string{keys.CtrlT},
		Description: "Toggle light/dark theme",
		Handler:     shortcutToggleTheme,
	},
	{
		Keys:        []string{keys.F11},
		Description: "Toggle fullscreen",
		Handler:     shortcutToggleFullscreen,
	},
	{
		Keys:        []string{keys.CtrlP},
		Description: "Choose language",
		Handler:     shortcutLanguagePicker,
	},
	{
		Keys:        []string{keys.Tab},
		Description: "Indent in the editor, next pane elsewhere",
		Handler:     shortcutTab,
	},
	{
		Keys:        []string{keys.ShiftTab},
		Description: "Previous pane",
		Handler:     shortcutPrevPane,
	},
	{
		Keys:        []string{keys.CtrlLeft},
		Description: "Move splitter left",
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m.nudgeSplitter(-nudgeStep) },
	},
	{
		Keys:        []string{keys.CtrlRight},
		Description: "Move splitter right",
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m.nudgeSplitter(nudgeStep) },
	},
	{
		Keys:        []string{keys.CtrlShiftLeft},
		Description: "Widen assistant panel",
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m.nudgeAssistant(nudgeStep) },
		Condition:   func(m *Model) bool { return m.session.Layout().AssistantOpen() },
	},
	{
		Keys:        []string{keys.CtrlShiftRight},
		Description: "Narrow assistant panel",
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m.nudgeAssistant(-nudgeStep) },
		Condition:   func(m *Model) bool { return m.session.Layout().AssistantOpen() },
	},
	{
		Keys:        []string{keys.CtrlY},
		Description: "Copy output",
		Handler:     shortcutCopyOutput,
	},
	{
		Keys:        []string{keys.AltY},
		Description: "Copy last reply",
		Handler:     shortcutCopyReply,
	},
	{
		Keys:        []string{keys.Enter},
		Description: "Send message",
		Handler:     shortcutSendChat,
		Condition:   func(m *Model) bool { return m.focus == ui.PaneChat },
	},
}

// handleShortcut runs the registered shortcut for msg, if any.
func (m *Model) handleShortcut(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	_, cmd, ok := m.ExecuteShortcut(msg.String())
	return ok, cmd
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, nil, false) if the shortcut was not found or its condition failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if !s.matches(key) {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			return m, nil, false
		}
		logger.WithComponent("app").Debug("shortcut", "key", key, "action", s.Description)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

func (s Shortcut) matches(key string) bool {
	for _, k := range s.Keys {
		if k == key {
			return true
		}
	}
	return false
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func shortcutRun(m *Model) (tea.Model, tea.Cmd) {
	return m, m.startRun()
}

func shortcutClearOutput(m *Model) (tea.Model, tea.Cmd) {
	if m.session.ClearOutput() {
		m.syncConsole()
	}
	return m, nil
}

func shortcutToggleAssistant(m *Model) (tea.Model, tea.Cmd) {
	m.session.ToggleAssistant()
	m.relayout()
	if m.session.Layout().AssistantOpen() {
		return m, m.setFocus(ui.PaneChat)
	}
	if m.focus == ui.PaneChat {
		return m, m.setFocus(ui.PaneEditor)
	}
	return m, nil
}

func shortcutCloseAssistant(m *Model) (tea.Model, tea.Cmd) {
	if !m.session.CloseAssistant() {
		return m, nil
	}
	m.relayout()
	if m.focus == ui.PaneChat {
		return m, m.setFocus(ui.PaneEditor)
	}
	return m, nil
}

func shortcutToggleTheme(m *Model) (tea.Model, tea.Cmd) {
	m.session.ToggleTheme()
	m.syncHeader()
	return m, nil
}

func shortcutToggleFullscreen(m *Model) (tea.Model, tea.Cmd) {
	return m, m.toggleFullscreen()
}

func shortcutLanguagePicker(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewLanguageState(m.session.Language()))
	return m, nil
}

func shortcutTab(m *Model) (tea.Model, tea.Cmd) {
	if m.focus == ui.PaneEditor {
		m.editor.InsertIndent()
		return m, nil
	}
	return shortcutNextPane(m)
}

func shortcutNextPane(m *Model) (tea.Model, tea.Cmd) {
	return m, m.setFocus(ui.NextPane(m.focus, m.session.Layout().AssistantOpen()))
}

func shortcutPrevPane(m *Model) (tea.Model, tea.Cmd) {
	return m, m.setFocus(ui.PrevPane(m.focus, m.session.Layout().AssistantOpen()))
}

func (m *Model) nudgeSplitter(delta int) (tea.Model, tea.Cmd) {
	if m.session.NudgeSplitter(delta) {
		m.relayout()
	}
	return m, nil
}

func (m *Model) nudgeAssistant(delta int) (tea.Model, tea.Cmd) {
	if m.session.NudgeAssistant(delta) {
		m.relayout()
	}
	return m, nil
}

func shortcutCopyOutput(m *Model) (tea.Model, tea.Cmd) {
	return m, m.copyText(m.session.Execution().Result().Text(), "output")
}

func shortcutCopyReply(m *Model) (tea.Model, tea.Cmd) {
	msg, ok := m.session.Chat().LastAssistant()
	if !ok {
		return m, m.copyText("", "reply")
	}
	return m, m.copyText(msg.Rendered.Plain(), "reply")
}

func shortcutSendChat(m *Model) (tea.Model, tea.Cmd) {
	return m, m.sendChat()
}

// handleModalKey handles keys while the language picker is open.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return nil
	case keys.Enter:
		state, ok := m.modal.State.(*ui.LanguageState)
		m.modal.Hide()
		if !ok {
			return nil
		}
		id := state.Selected()
		if id == m.session.Language() {
			return nil
		}
		if !m.SetLanguage(id) {
			return m.ShowFlashError("Unknown language " + id)
		}
		lang, _ := snippets.Lookup(id)
		return m.ShowFlashInfo("Switched to " + lang.Label)
	case keys.CtrlC:
		return tea.Quit
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return cmd
}
