package app

import (
	"testing"

	"github.com/zhubert/codepad/internal/keys"
	"github.com/zhubert/codepad/internal/ui"
)

// =============================================================================
// ShortcutRegistry Tests
// =============================================================================

func TestShortcutRegistry_AllShortcutsHaveHandlers(t *testing.T) {
	for _, s := range ShortcutRegistry {
		if len(s.Keys) == 0 {
			t.Errorf("Shortcut %q has no keys", s.Description)
		}
		if s.Handler == nil {
			t.Errorf("Shortcut %q has no handler", s.Description)
		}
		if s.Description == "" {
			t.Errorf("Shortcut %v has no description", s.Keys)
		}
	}
}

func TestShortcutRegistry_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range ShortcutRegistry {
		for _, k := range s.Keys {
			if seen[k] {
				t.Errorf("Duplicate shortcut key: %q", k)
			}
			seen[k] = true
		}
	}
}

// =============================================================================
// ExecuteShortcut Tests
// =============================================================================

func TestExecuteShortcut_FindsRegisteredShortcut(t *testing.T) {
	env := newTestEnv(t, Options{})

	_, _, handled := env.m.ExecuteShortcut(keys.ShiftTab)
	if !handled {
		t.Error("Expected 'shift+tab' shortcut to be handled")
	}
	if env.m.Focus() != ui.PaneStdin {
		t.Errorf("focus = %v, want stdin", env.m.Focus())
	}
}

func TestExecuteShortcut_ReturnsNotHandledForUnknownKey(t *testing.T) {
	env := newTestEnv(t, Options{})

	_, cmd, handled := env.m.ExecuteShortcut("ctrl+alt+z")
	if handled {
		t.Error("Unknown key should not be handled")
	}
	if cmd != nil {
		t.Error("Unknown key should not return a command")
	}
}

func TestExecuteShortcut_ConditionBlocks(t *testing.T) {
	env := newTestEnv(t, Options{})

	tests := []struct {
		name string
		key  string
	}{
		{"escape with panel closed", keys.Escape},
		{"resize panel while closed", keys.CtrlShiftLeft},
		{"enter outside chat", keys.Enter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, handled := env.m.ExecuteShortcut(tt.key); handled {
				t.Errorf("%q should fall through to the focused pane", tt.key)
			}
		})
	}
}

func TestEnterInEditorInsertsNewline(t *testing.T) {
	env := newTestEnv(t, Options{})
	before := env.m.editor.GetValue()

	env.press(keys.Enter)

	if got := env.m.editor.GetValue(); got == before {
		t.Error("enter in the editor should edit the code, not send chat")
	}
	if len(env.assistant.requests()) != 0 {
		t.Error("no chat request expected")
	}
}
