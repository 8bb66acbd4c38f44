package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/codepad/internal/clipboard"
	"github.com/zhubert/codepad/internal/logger"
	"github.com/zhubert/codepad/internal/notification"
	"github.com/zhubert/codepad/internal/snippets"
)

// copyText puts text on the system clipboard. Without a native clipboard the
// terminal is asked to set it over OSC 52.
func (m *Model) copyText(text, what string) tea.Cmd {
	if text == "" {
		return m.ShowFlashWarning("No " + what + " to copy")
	}

	if clipboard.Available() {
		if err := clipboard.WriteText(text); err == nil {
			return m.ShowFlashSuccess("Copied " + what)
		}
	}

	logger.WithComponent("app").Debug("falling back to terminal clipboard", "what", what)
	return tea.Batch(tea.SetClipboard(text), m.ShowFlashSuccess("Copied "+what))
}

// notificationsWanted reports whether a settled request should notify.
func (m *Model) notificationsWanted() bool {
	return !m.termFocused && m.config.GetNotificationsEnabled()
}

func (m *Model) notifyRunFinished(failed bool) tea.Cmd {
	if !m.notificationsWanted() {
		return nil
	}
	label := m.languageLabel()
	return func() tea.Msg {
		_ = notification.RunFinished(label, failed)
		return nil
	}
}

func (m *Model) notifyReply() tea.Cmd {
	if !m.notificationsWanted() {
		return nil
	}
	return func() tea.Msg {
		_ = notification.ReplyReceived()
		return nil
	}
}

// languageLabel is the display name of the selected language.
func (m *Model) languageLabel() string {
	id := m.session.Language()
	if lang, ok := snippets.Lookup(id); ok {
		return lang.Label
	}
	return id
}
