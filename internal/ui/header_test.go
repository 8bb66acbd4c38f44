package ui

import (
	"regexp"
	"strings"
	"testing"
)

// stripANSI removes ANSI escape codes from a string for testing
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;:]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if header.language != "" || header.fullscreen {
		t.Error("Expected an empty header initially")
	}
}

func TestHeader_View_Title(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)

	view := stripANSI(header.View())

	if !strings.Contains(view, "codepad") {
		t.Errorf("Header should contain 'codepad' title, got: %q", view)
	}
	if len([]rune(view)) != 80 {
		t.Errorf("Header should fill the width, got %d runes", len([]rune(view)))
	}
}

func TestHeader_View_Indicators(t *testing.T) {
	header := NewHeader()
	header.SetWidth(120)
	header.SetLanguage("C++")
	header.SetThemeName("dark")
	header.SetFullscreen(true)

	view := stripANSI(header.View())

	for _, want := range []string{"C++", "dark", "fullscreen"} {
		if !strings.Contains(view, want) {
			t.Errorf("Header should contain %q, got: %q", want, view)
		}
	}
	if strings.Contains(view, "running") {
		t.Error("Header should not show the running indicator when idle")
	}
}

func TestHeader_View_Running(t *testing.T) {
	header := NewHeader()
	header.SetWidth(100)
	header.SetRunning(true)

	if !strings.Contains(stripANSI(header.View()), "running") {
		t.Error("Header should show the running indicator")
	}

	header.SetRunning(false)
	if strings.Contains(stripANSI(header.View()), "running") {
		t.Error("Header should drop the running indicator")
	}
}

func TestHeader_View_TooNarrow(t *testing.T) {
	header := NewHeader()
	header.SetWidth(10)
	header.SetLanguage("Python")
	header.SetThemeName("light")

	view := stripANSI(header.View())

	if !strings.Contains(view, "codepad") {
		t.Errorf("Header should keep the title, got: %q", view)
	}
	if strings.Contains(view, "Python") {
		t.Error("Indicators should be dropped when they do not fit")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#FFFFFF", 255, 255, 255},
		{"#1E1E1E", 30, 30, 30},
		{"#6366F1", 99, 102, 241},
		{"bad", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = (%d, %d, %d), want (%d, %d, %d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
