package display

import (
	pkgerrors "github.com/zhubert/codepad/internal/errors"
	"github.com/zhubert/codepad/internal/logger"
)

// Platform is the fullscreen capability. Both calls may complete
// asynchronously; the platform reports the resulting state through
// Fullscreen.Changed.
type Platform interface {
	RequestFullscreen() error
	ExitFullscreen() error
}

// Fullscreen mirrors the platform's fullscreen state.
type Fullscreen struct {
	platform Platform
	active   bool
}

// NewFullscreen creates an inactive Fullscreen backed by platform.
func NewFullscreen(platform Platform) *Fullscreen {
	return &Fullscreen{platform: platform}
}

// ToggleAction returns the platform call that flips the current state. It
// may run off the event loop. Errors are logged and never returned, and
// the state is left for Changed to update.
func (f *Fullscreen) ToggleAction() func() {
	entering := !f.active
	platform := f.platform
	return func() {
		if platform == nil {
			return
		}
		op := pkgerrors.Op("display.ExitFullscreen")
		call := platform.ExitFullscreen
		if entering {
			op = "display.RequestFullscreen"
			call = platform.RequestFullscreen
		}
		if err := call(); err != nil {
			logger.WithComponent("display").Error("fullscreen toggle failed",
				"error", pkgerrors.FullscreenFailed(op, err))
		}
	}
}

// Changed records the platform's notification. It reports whether the state changed.
func (f *Fullscreen) Changed(active bool) bool {
	if f.active == active {
		return false
	}
	f.active = active
	return true
}

// Active reports the last state the platform announced.
func (f *Fullscreen) Active() bool { return f.active }
