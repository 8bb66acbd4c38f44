package app

import (
	"errors"
	"os"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"github.com/zhubert/codepad/internal/logger"
)

// ErrNotTerminal is returned when fullscreen is requested without a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// TerminalPlatform implements fullscreen as the terminal's alternate screen.
// Requests are answered with a FullscreenChangedMsg sent to the program; the
// view then switches screens when it re-renders.
type TerminalPlatform struct {
	mu         sync.Mutex
	send       func(tea.Msg)
	isTerminal func() bool
}

// NewTerminalPlatform creates a platform that checks stdout for a terminal.
func NewTerminalPlatform() *TerminalPlatform {
	return &TerminalPlatform{
		isTerminal: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// SetSender sets where change notifications go, normally tea.Program.Send.
func (p *TerminalPlatform) SetSender(send func(tea.Msg)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send = send
}

// RequestFullscreen switches to the alternate screen.
func (p *TerminalPlatform) RequestFullscreen() error {
	if !p.isTerminal() {
		return ErrNotTerminal
	}
	p.notify(true)
	return nil
}

// ExitFullscreen returns to the main screen.
func (p *TerminalPlatform) ExitFullscreen() error {
	p.notify(false)
	return nil
}

func (p *TerminalPlatform) notify(active bool) {
	p.mu.Lock()
	send := p.send
	p.mu.Unlock()

	if send == nil {
		logger.WithComponent("platform").Warn("fullscreen change dropped, no sender", "active", active)
		return
	}
	send(FullscreenChangedMsg{Active: active})
}
