package session

import (
	"context"

	"github.com/zhubert/codepad/internal/chat"
	"github.com/zhubert/codepad/internal/display"
	"github.com/zhubert/codepad/internal/execution"
	"github.com/zhubert/codepad/internal/layout"
	"github.com/zhubert/codepad/internal/logger"
	"github.com/zhubert/codepad/internal/snippets"
)

// Editor is the code editor the session drives.
type Editor interface {
	GetValue() string
	SetValue(text string)
	SetModelLanguage(id string)
	SetTheme(id string)
	Layout()
}

// Options configures a new Session.
type Options struct {
	Editor        Editor
	Store         display.Store
	Platform      display.Platform
	Runner        execution.Runner
	Assistant     chat.Assistant
	ViewportWidth int
	Language      string            // Starting language; unknown values fall back to snippets.DefaultLanguage
	Snippets      map[string]string // Per-language starter code overrides
	SystemDark    bool              // Best guess at the terminal background until it is reported
}

// Session is the orchestrator for one codepad window.
type Session struct {
	editor     Editor
	layout     *layout.Machine
	theme      *display.Theme
	fullscreen *display.Fullscreen
	exec       *execution.Controller
	chat       *chat.Controller

	overrides map[string]string
	language  string
}

// New builds a session, resolves the starting theme and loads the starting language.
func New(opts Options) *Session {
	s := &Session{
		editor:     opts.Editor,
		layout:     layout.New(opts.ViewportWidth),
		theme:      display.NewTheme(opts.Store, opts.Editor),
		fullscreen: display.NewFullscreen(opts.Platform),
		exec:       execution.NewController(opts.Runner),
		chat:       chat.NewController(opts.Assistant),
		overrides:  opts.Snippets,
	}
	s.theme.Init(opts.SystemDark)
	s.SetLanguage(snippets.Resolve(opts.Language))
	s.editor.Layout()
	return s
}

// Layout returns the layout state machine for reading geometry.
func (s *Session) Layout() *layout.Machine { return s.layout }

// Theme returns the theme state.
func (s *Session) Theme() *display.Theme { return s.theme }

// Fullscreen returns the fullscreen state.
func (s *Session) Fullscreen() *display.Fullscreen { return s.fullscreen }

// Execution returns the run controller for reading the console result.
func (s *Session) Execution() *execution.Controller { return s.exec }

// Chat returns the chat controller for reading the conversation.
func (s *Session) Chat() *chat.Controller { return s.chat }

// Language returns the selected language id.
func (s *Session) Language() string { return s.language }

// SetLanguage switches the editor to id and loads its starter snippet. Unknown ids are ignored.
func (s *Session) SetLanguage(id string) bool {
	if _, ok := snippets.Lookup(id); !ok {
		logger.WithComponent("session").Warn("ignoring unknown language", "language", id)
		return false
	}
	s.language = id
	s.editor.SetModelLanguage(snippets.EditorID(id))
	s.editor.SetValue(snippets.Default(id, s.overrides))
	return true
}

// StartRun begins a run of the editor contents with stdin input. It is
// refused while the run trigger is disabled.
func (s *Session) StartRun(input string) (execution.Ticket, bool) {
	if !s.exec.TriggerEnabled() {
		return execution.Ticket{}, false
	}
	return s.exec.Start(s.editor.GetValue(), s.language, input), true
}

// PerformRun executes the ticket's request.
func (s *Session) PerformRun(ctx context.Context, t execution.Ticket) execution.Completion {
	return s.exec.Perform(ctx, t)
}

// ApplyRun settles the console from a completion.
func (s *Session) ApplyRun(c execution.Completion) bool {
	return s.exec.Apply(c)
}

// Run is StartRun, PerformRun and ApplyRun in one blocking call.
func (s *Session) Run(ctx context.Context, input string) (execution.Result, bool) {
	t, ok := s.StartRun(input)
	if !ok {
		return s.exec.Result(), false
	}
	s.ApplyRun(s.PerformRun(ctx, t))
	return s.exec.Result(), true
}

// ClearOutput resets the console.
func (s *Session) ClearOutput() bool {
	return s.exec.Clear()
}

// SendChat posts text along with the editor contents and language.
func (s *Session) SendChat(text string) (chat.Ticket, bool) {
	return s.chat.Send(text, s.editor.GetValue(), s.language)
}

// PerformChat executes the ticket's request.
func (s *Session) PerformChat(ctx context.Context, t chat.Ticket) chat.Completion {
	return s.chat.Perform(ctx, t)
}

// ApplyChat records the assistant's reply.
func (s *Session) ApplyChat(c chat.Completion) bool {
	return s.chat.Apply(c)
}

// DragTargetAt maps a screen column to what a press there would drag.
func (s *Session) DragTargetAt(x int) layout.Target {
	switch s.layout.HitTest(x) {
	case layout.RegionSplitter:
		return layout.TargetSplitter
	case layout.RegionAssistantResizer:
		return layout.TargetAssistantResizer
	}
	return layout.TargetNone
}

// BeginDrag starts a drag on target.
func (s *Session) BeginDrag(target layout.Target, x int) bool {
	return s.layout.BeginDrag(target, x)
}

// UpdateDrag moves the active drag, re-laying out the editor on commit.
func (s *Session) UpdateDrag(x int) bool {
	if !s.layout.UpdateDrag(x) {
		return false
	}
	s.editor.Layout()
	return true
}

// EndDrag finishes the active drag and re-lays out the editor.
func (s *Session) EndDrag() bool {
	if !s.layout.EndDrag() {
		return false
	}
	s.editor.Layout()
	return true
}

// NudgeSplitter moves the splitter by delta columns.
func (s *Session) NudgeSplitter(delta int) bool {
	if !s.layout.NudgeSplitter(delta) {
		return false
	}
	s.editor.Layout()
	return true
}

// NudgeAssistant resizes the open panel by delta columns.
func (s *Session) NudgeAssistant(delta int) bool {
	if !s.layout.NudgeAssistant(delta) {
		return false
	}
	s.editor.Layout()
	return true
}

// ToggleAssistant opens or closes the assistant panel.
func (s *Session) ToggleAssistant() {
	s.layout.ToggleAssistant()
	s.editor.Layout()
}

// CloseAssistant closes the panel if it is open.
func (s *Session) CloseAssistant() bool {
	if !s.layout.CloseAssistant() {
		return false
	}
	s.editor.Layout()
	return true
}

// Resize reflows for a new viewport width.
func (s *Session) Resize(viewportWidth int) {
	s.layout.Resize(viewportWidth)
	s.editor.Layout()
}

// ToggleTheme flips and persists the theme.
func (s *Session) ToggleTheme() {
	s.theme.Toggle()
}

// SetTheme applies and persists a theme.
func (s *Session) SetTheme(dark bool) {
	s.theme.SetTheme(dark)
}

// SystemThemeChanged follows the terminal background unless the user chose a theme.
func (s *Session) SystemThemeChanged(dark bool) bool {
	return s.theme.SystemPreferenceChanged(dark)
}

// ToggleFullscreen returns the platform call to run; see display.Fullscreen.ToggleAction.
func (s *Session) ToggleFullscreen() func() {
	return s.fullscreen.ToggleAction()
}

// FullscreenChanged records the platform's fullscreen notification.
func (s *Session) FullscreenChanged(active bool) bool {
	return s.fullscreen.Changed(active)
}
