package app

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/codepad/internal/chat"
	"github.com/zhubert/codepad/internal/config"
	"github.com/zhubert/codepad/internal/display"
	"github.com/zhubert/codepad/internal/execution"
	"github.com/zhubert/codepad/internal/logger"
	"github.com/zhubert/codepad/internal/session"
	"github.com/zhubert/codepad/internal/ui"
)

// Options configures a new Model.
type Options struct {
	Config    *config.Config
	Runner    execution.Runner
	Assistant chat.Assistant
	Platform  display.Platform // Defaults to a TerminalPlatform
	Language  string           // Overrides the configured starting language
	Version   string

	// StartFullscreen asks the platform to enter fullscreen on Init
	StartFullscreen bool
}

// Model is the main Bubble Tea model. It adapts terminal events into session
// calls and mirrors session state into the ui components.
type Model struct {
	config  *config.Config
	version string

	session   *session.Session
	editor    *themedEditor
	console   *ui.Console
	assistant *ui.Assistant
	header    *ui.Header
	footer    *ui.Footer
	modal     *ui.Modal
	platform  display.Platform

	width  int
	height int
	focus  ui.Pane

	// termFocused tracks terminal focus reports; notifications only fire when false
	termFocused     bool
	startFullscreen bool
}

// RunCompletedMsg carries a finished run back to the event loop
type RunCompletedMsg struct {
	Completion execution.Completion
}

// ChatCompletedMsg carries an assistant reply back to the event loop
type ChatCompletedMsg struct {
	Completion chat.Completion
}

// FullscreenChangedMsg is the platform's fullscreen notification
type FullscreenChangedMsg struct {
	Active bool
}

// New creates a new app model
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	platform := opts.Platform
	if platform == nil {
		platform = NewTerminalPlatform()
	}

	language := opts.Language
	if language == "" {
		language = cfg.GetLanguage()
	}

	m := &Model{
		config:          cfg,
		version:         opts.Version,
		console:         ui.NewConsole(),
		assistant:       ui.NewAssistant(),
		header:          ui.NewHeader(),
		footer:          ui.NewFooter(),
		modal:           ui.NewModal(),
		platform:        platform,
		focus:           ui.PaneEditor,
		termFocused:     true,
		startFullscreen: opts.StartFullscreen,
	}
	m.editor = newThemedEditor(m.console, m.assistant)
	m.editor.SetBounds(m.editorBounds)

	m.session = session.New(session.Options{
		Editor:        m.editor,
		Store:         cfg,
		Platform:      platform,
		Runner:        opts.Runner,
		Assistant:     opts.Assistant,
		ViewportWidth: ui.GetViewContext().TerminalWidth,
		Language:      language,
		Snippets:      cfg.GetSnippets(),
		SystemDark:    ui.IsDark(),
	})

	m.editor.SetFocused(true)
	m.syncAll()
	return m
}

// editorBounds feeds the editor its pane size from the layout.
func (m *Model) editorBounds() (int, int) {
	if m.session == nil {
		return m.editor.Size()
	}
	return m.session.Layout().EditorWidth(), ui.GetViewContext().ContentHeight
}

// Session returns the orchestrator (used by tests and demos).
func (m *Model) Session() *session.Session {
	return m.session
}

// Focus returns the focused pane
func (m *Model) Focus() ui.Pane {
	return m.focus
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.RequestBackgroundColor}
	if m.startFullscreen {
		cmds = append(cmds, m.toggleFullscreen())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.BackgroundColorMsg:
		if m.session.SystemThemeChanged(msg.IsDark()) {
			logger.WithComponent("app").Debug("following terminal background", "dark", msg.IsDark())
		}
		m.syncHeader()
		return m, nil

	case tea.FocusMsg:
		m.termFocused = true
		// The terminal may have switched palettes while we were unfocused
		if !m.session.Theme().Explicit() {
			return m, tea.RequestBackgroundColor
		}
		return m, nil

	case tea.BlurMsg:
		m.termFocused = false
		return m, nil

	case FullscreenChangedMsg:
		m.session.FullscreenChanged(msg.Active)
		m.syncHeader()
		return m, nil

	case RunCompletedMsg:
		return m, m.handleRunCompleted(msg)

	case ChatCompletedMsg:
		return m, m.handleChatCompleted(msg)

	case ui.ElapsedTickMsg:
		if !m.session.Execution().Running() {
			return m, nil
		}
		m.syncConsole()
		return m, ui.ElapsedTick()

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()

	case spinner.TickMsg:
		// Each spinner drops ticks carrying another spinner's id
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		cmds = append(cmds, cmd)
		m.assistant, cmd = m.assistant.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if m.modal.IsVisible() {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case tea.KeyPressMsg:
		if m.modal.IsVisible() {
			return m, m.handleModalKey(msg)
		}
		if handled, cmd := m.handleShortcut(msg); handled {
			return m, cmd
		}
		return m, m.routeKeyToFocused(msg)

	case tea.PasteMsg:
		if m.modal.IsVisible() {
			return m, nil
		}
		return m, m.routeKeyToFocused(msg)
	}

	if m.modal.IsVisible() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}
	return m, nil
}

// routeKeyToFocused forwards input the shortcuts did not claim to the focused pane.
func (m *Model) routeKeyToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case ui.PaneEditor:
		_, cmd = m.editor.Update(msg)
	case ui.PaneStdin:
		m.console, cmd = m.console.Update(msg)
	case ui.PaneChat:
		m.assistant, cmd = m.assistant.Update(msg)
	}
	return cmd
}

// startRun submits the editor contents with the stdin box as input.
func (m *Model) startRun() tea.Cmd {
	ticket, ok := m.session.StartRun(m.console.Input())
	if !ok {
		return nil
	}
	m.syncConsole()

	sess := m.session
	perform := func() tea.Msg {
		return RunCompletedMsg{Completion: sess.PerformRun(context.Background(), ticket)}
	}
	return tea.Batch(perform, m.console.SpinnerTick, ui.ElapsedTick())
}

func (m *Model) handleRunCompleted(msg RunCompletedMsg) tea.Cmd {
	if !m.session.ApplyRun(msg.Completion) {
		return nil
	}
	m.syncConsole()

	result := m.session.Execution().Result()
	logger.WithComponent("app").Info("run settled", "status", result.Status.String())
	return m.notifyRunFinished(result.Status == execution.StatusFailed)
}

// sendChat posts the chat input along with the editor contents.
func (m *Model) sendChat() tea.Cmd {
	ticket, ok := m.session.SendChat(m.assistant.Input())
	if !ok {
		return nil
	}
	m.assistant.ClearInput()
	m.syncAssistant()

	sess := m.session
	perform := func() tea.Msg {
		return ChatCompletedMsg{Completion: sess.PerformChat(context.Background(), ticket)}
	}
	return tea.Batch(perform, m.assistant.SpinnerTick)
}

func (m *Model) handleChatCompleted(msg ChatCompletedMsg) tea.Cmd {
	if !m.session.ApplyChat(msg.Completion) {
		return nil
	}
	m.syncAssistant()
	return m.notifyReply()
}

// setFocus moves keyboard focus to pane.
func (m *Model) setFocus(pane ui.Pane) tea.Cmd {
	if pane == ui.PaneChat && !m.session.Layout().AssistantOpen() {
		pane = ui.PaneEditor
	}
	m.focus = pane

	var cmds []tea.Cmd
	cmds = append(cmds, m.editor.SetFocused(pane == ui.PaneEditor))
	cmds = append(cmds, m.console.SetFocused(pane == ui.PaneStdin))
	cmds = append(cmds, m.assistant.SetFocused(pane == ui.PaneChat))
	return tea.Batch(cmds...)
}

// toggleFullscreen runs the platform call off the event loop; the result
// arrives later as a FullscreenChangedMsg.
func (m *Model) toggleFullscreen() tea.Cmd {
	action := m.session.ToggleFullscreen()
	return func() tea.Msg {
		action()
		return nil
	}
}

// SetLanguage switches the editor language and loads its snippet.
func (m *Model) SetLanguage(id string) bool {
	if !m.session.SetLanguage(id) {
		return false
	}
	m.syncHeader()
	return true
}
