package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

func (t FlashType) icon() string {
	switch t {
	case FlashWarning:
		return "⚠"
	case FlashInfo:
		return "ℹ"
	case FlashSuccess:
		return "✓"
	default:
		return "✕"
	}
}

func (t FlashType) style() lipgloss.Style {
	switch t {
	case FlashWarning:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	case FlashInfo:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	case FlashSuccess:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	default:
		return lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	}
}

// FlashMessage is a transient footer message that replaces the bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg asks the app to check whether the flash has expired
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width         int
	focus         Pane
	running       bool
	assistantOpen bool
	dragging      bool
	flashMessage  *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(focus Pane, running, assistantOpen, dragging bool) {
	f.focus = focus
	f.running = running
	f.assistantOpen = assistantOpen
	f.dragging = dragging
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash shows text for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows text for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// Bindings returns the shortcuts relevant to the current context
func (f *Footer) Bindings() []KeyBinding {
	if f.dragging {
		return []KeyBinding{{Key: "drag", Desc: "resize"}, {Key: "release", Desc: "done"}}
	}

	var bindings []KeyBinding
	switch f.focus {
	case PaneChat:
		bindings = append(bindings,
			KeyBinding{Key: "enter", Desc: "send"},
			KeyBinding{Key: "shift+enter", Desc: "newline"},
			KeyBinding{Key: "alt+y", Desc: "copy reply"},
			KeyBinding{Key: "esc", Desc: "close"},
		)
	case PaneStdin:
		bindings = append(bindings, KeyBinding{Key: "ctrl+l", Desc: "clear"})
		bindings = append(bindings, KeyBinding{Key: "ctrl+y", Desc: "copy output"})
	}

	if f.running {
		bindings = append(bindings, KeyBinding{Key: "ctrl+r", Desc: "running…"})
	} else {
		bindings = append(bindings, KeyBinding{Key: "ctrl+r", Desc: "run"})
	}

	assistant := "assistant"
	if f.assistantOpen {
		assistant = "hide assistant"
	}
	switchKey := "tab"
	if f.focus == PaneEditor {
		switchKey = "shift+tab"
	}
	bindings = append(bindings,
		KeyBinding{Key: switchKey, Desc: "switch pane"},
		KeyBinding{Key: "ctrl+p", Desc: "language"},
		KeyBinding{Key: "ctrl+b", Desc: assistant},
		KeyBinding{Key: "ctrl+t", Desc: "theme"},
		KeyBinding{Key: "f11", Desc: "fullscreen"},
		KeyBinding{Key: "ctrl+q", Desc: "quit"},
	)
	return bindings
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		style := f.flashMessage.Type.style()
		content := style.Render(f.flashMessage.Type.icon() + " " + f.flashMessage.Text)
		return FooterStyle.Width(f.width).Render(content)
	}

	separator := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	sepWidth := ansi.StringWidth(separator)
	// Width available inside FooterStyle's padding
	avail := f.width - 2

	var parts []string
	used := 0
	for _, b := range f.Bindings() {
		part := FooterKeyStyle.Render(b.Key) + FooterDescStyle.Render(": "+b.Desc)
		w := ansi.StringWidth(part)
		if len(parts) > 0 {
			w += sepWidth
		}
		// Drop the trailing bindings rather than wrapping the footer
		if f.width > 0 && used+w > avail {
			break
		}
		parts = append(parts, part)
		used += w
	}

	return FooterStyle.Width(f.width).Render(strings.Join(parts, separator))
}
