// Package ui provides theme management for the application.
// codepad has exactly two palettes, light and dark, selected by the
// display mode. The editor theme id pushed by the display package maps
// onto one of them.
package ui

import (
	"github.com/zhubert/codepad/internal/display"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for assistant messages, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	User      string // User message labels
	Assistant string // Assistant message labels
	Warning   string
	Error     string // Failed runs, error flashes
	Success   string // Successful runs
	Info      string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Splitter colors
	Splitter       string // Idle splitter and resizer columns
	SplitterActive string // Column being dragged

	// Code colors
	CodeBg      string // Code block background in the assistant panel
	InlineCode  string // Inline code foreground
	LineNumber  string // Editor gutter
	ChromaStyle string // chroma style used for syntax highlighting
	EditorTheme string // Editor theme id this palette answers to
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// DefaultTheme matches display.Theme's zero mode
const DefaultTheme = ThemeLight

// BuiltinThemes contains both palettes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeLight: {
		Name:           "Light",
		Primary:        "#6366F1",
		Secondary:      "#0891B2",
		Bg:             "#FFFFFF",
		BgSelected:     "#E0E7FF",
		Text:           "#1F2937",
		TextMuted:      "#6B7280",
		TextInverse:    "#FFFFFF",
		User:           "#7C3AED",
		Assistant:      "#0891B2",
		Warning:        "#D97706",
		Error:          "#DC2626",
		Success:        "#16A34A",
		Info:           "#0891B2",
		Border:         "#D1D5DB",
		BorderFocus:    "#6366F1",
		Splitter:       "#D1D5DB",
		SplitterActive: "#6366F1",
		CodeBg:         "#F3F4F6",
		InlineCode:     "#059669",
		LineNumber:     "#9CA3AF",
		ChromaStyle:    "vs",
		EditorTheme:    display.EditorThemeLight,
	},
	ThemeDark: {
		Name:           "Dark",
		Primary:        "#569CD6",
		Secondary:      "#4EC9B0",
		Bg:             "#1E1E1E",
		BgSelected:     "#264F78",
		Text:           "#D4D4D4",
		TextMuted:      "#8B949E",
		TextInverse:    "#1E1E1E",
		User:           "#C586C0",
		Assistant:      "#4EC9B0",
		Warning:        "#CCA700",
		Error:          "#F48771",
		Success:        "#89D185",
		Info:           "#75BEFF",
		Border:         "#3C3C3C",
		BorderFocus:    "#569CD6",
		Splitter:       "#3C3C3C",
		SplitterActive: "#569CD6",
		CodeBg:         "#252526",
		InlineCode:     "#CE9178",
		LineNumber:     "#858585",
		ChromaStyle:    "monokai",
		EditorTheme:    display.EditorThemeDark,
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeLight, ThemeDark}
}

// GetTheme returns a theme by name, defaulting to Light if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// ThemeForMode returns the palette name for a display mode.
func ThemeForMode(mode display.Mode) ThemeName {
	if mode == display.ModeDark {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeForEditor returns the palette name whose editor theme id is id.
func ThemeForEditor(id string) ThemeName {
	for _, name := range ThemeNames() {
		if BuiltinThemes[name].EditorTheme == id {
			return name
		}
	}
	return DefaultTheme
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// IsDark reports whether the active palette is the dark one.
func IsDark() bool {
	return CurrentThemeName() == ThemeDark
}
