// Package display tracks the light/dark mode and the fullscreen flag.
// Neither type knows about the terminal toolkit: the theme talks to a
// preference Store and an editor, fullscreen talks to a Platform.
package display

import (
	"github.com/zhubert/codepad/internal/logger"
)

// ThemeKey is the preference key the mode is persisted under.
const ThemeKey = "theme"

// Editor theme ids pushed to the editor.
const (
	EditorThemeLight = "vs"
	EditorThemeDark  = "vs-dark"
)

// Store is a persisted key-value preference store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// ThemeSetter receives the editor theme id whenever the mode is applied.
type ThemeSetter interface {
	SetTheme(id string)
}

// Mode is the display mode.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// ParseMode parses a persisted mode value.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "dark":
		return ModeDark, true
	case "light":
		return ModeLight, true
	}
	return ModeLight, false
}

func modeFor(dark bool) Mode {
	if dark {
		return ModeDark
	}
	return ModeLight
}

// Theme owns the current mode. Once the user picks a mode it is persisted
// and system preference changes are ignored from then on.
type Theme struct {
	store    Store
	editor   ThemeSetter
	mode     Mode
	explicit bool
}

// NewTheme creates a Theme in light mode. Call Init before use.
func NewTheme(store Store, editor ThemeSetter) *Theme {
	return &Theme{store: store, editor: editor}
}

// Init resolves the starting mode from the store, falling back to systemDark.
// A fallback mode is applied but not persisted.
func (t *Theme) Init(systemDark bool) {
	if t.store != nil {
		if v, ok := t.store.Get(ThemeKey); ok {
			if mode, valid := ParseMode(v); valid {
				t.explicit = true
				t.apply(mode)
				return
			}
			logger.WithComponent("display").Warn("ignoring invalid persisted theme", "value", v)
		}
	}
	t.apply(modeFor(systemDark))
}

// SetTheme applies and persists the mode. Calling it twice with the same value is harmless.
func (t *Theme) SetTheme(dark bool) {
	mode := modeFor(dark)
	t.explicit = true
	t.apply(mode)

	if t.store == nil {
		return
	}
	if err := t.store.Set(ThemeKey, mode.String()); err != nil {
		logger.WithComponent("display").Warn("failed to persist theme", "mode", mode.String(), "error", err)
	}
}

// Toggle flips between light and dark.
func (t *Theme) Toggle() {
	t.SetTheme(!t.IsDark())
}

// SystemPreferenceChanged follows the terminal's reported background, but
// only while no mode was ever chosen explicitly. It reports whether the mode was applied.
func (t *Theme) SystemPreferenceChanged(dark bool) bool {
	if t.explicit {
		return false
	}
	t.apply(modeFor(dark))
	return true
}

func (t *Theme) apply(mode Mode) {
	t.mode = mode
	if t.editor != nil {
		t.editor.SetTheme(t.EditorThemeID())
	}
}

// Mode returns the current mode.
func (t *Theme) Mode() Mode { return t.mode }

// IsDark reports whether dark mode is active.
func (t *Theme) IsDark() bool { return t.mode == ModeDark }

// Explicit reports whether the mode came from a user choice rather than the system.
func (t *Theme) Explicit() bool { return t.explicit }

// EditorThemeID returns the editor theme id for the current mode.
func (t *Theme) EditorThemeID() string {
	if t.IsDark() {
		return EditorThemeDark
	}
	return EditorThemeLight
}
