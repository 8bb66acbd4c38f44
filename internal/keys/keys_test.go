package keys

import "testing"

// TestKeyStringValues guards against Bubble Tea changing its key string format.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},

		{"Enter", Enter, "enter"},
		{"ShiftEnter", ShiftEnter, "shift+enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Escape", Escape, "esc"},
		{"F5", F5, "f5"},
		{"F11", F11, "f11"},

		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlQ", CtrlQ, "ctrl+q"},
		{"CtrlR", CtrlR, "ctrl+r"},
		{"CtrlB", CtrlB, "ctrl+b"},
		{"CtrlT", CtrlT, "ctrl+t"},
		{"CtrlL", CtrlL, "ctrl+l"},
		{"CtrlP", CtrlP, "ctrl+p"},
		{"CtrlY", CtrlY, "ctrl+y"},
		{"CtrlLeft", CtrlLeft, "ctrl+left"},
		{"CtrlRight", CtrlRight, "ctrl+right"},
		{"CtrlShiftLeft", CtrlShiftLeft, "ctrl+shift+left"},
		{"CtrlShiftRight", CtrlShiftRight, "ctrl+shift+right"},

		{"AltY", AltY, "alt+y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}
