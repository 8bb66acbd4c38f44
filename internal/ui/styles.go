package ui

import "charm.land/lipgloss/v2"

// Color palette, filled from the active theme by regenerateStyles.
var (
	ColorPrimary        = lipgloss.Color(BuiltinThemes[DefaultTheme].Primary)
	ColorSecondary      = lipgloss.Color(BuiltinThemes[DefaultTheme].Secondary)
	ColorMuted          = lipgloss.Color(BuiltinThemes[DefaultTheme].TextMuted)
	ColorBorder         = lipgloss.Color(BuiltinThemes[DefaultTheme].Border)
	ColorBorderFocus    = lipgloss.Color(BuiltinThemes[DefaultTheme].GetBorderFocus())
	ColorBg             = lipgloss.Color(BuiltinThemes[DefaultTheme].Bg)
	ColorText           = lipgloss.Color(BuiltinThemes[DefaultTheme].Text)
	ColorTextMuted      = lipgloss.Color(BuiltinThemes[DefaultTheme].TextMuted)
	ColorTextInverse    = lipgloss.Color(BuiltinThemes[DefaultTheme].TextInverse)
	ColorUser           = lipgloss.Color(BuiltinThemes[DefaultTheme].User)
	ColorAssistant      = lipgloss.Color(BuiltinThemes[DefaultTheme].Assistant)
	ColorWarning        = lipgloss.Color(BuiltinThemes[DefaultTheme].Warning)
	ColorInfo           = lipgloss.Color(BuiltinThemes[DefaultTheme].Info)
	ColorError          = lipgloss.Color(BuiltinThemes[DefaultTheme].Error)
	ColorSuccess        = lipgloss.Color(BuiltinThemes[DefaultTheme].Success)
	ColorSplitter       = lipgloss.Color(BuiltinThemes[DefaultTheme].Splitter)
	ColorSplitterActive = lipgloss.Color(BuiltinThemes[DefaultTheme].SplitterActive)
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
	PanelHintStyle    lipgloss.Style
)

// Splitter styles
var (
	SplitterStyle       lipgloss.Style
	SplitterActiveStyle lipgloss.Style
)

// Editor styles
var (
	LineNumberStyle       lipgloss.Style
	CursorLineNumberStyle lipgloss.Style
	EditorTextStyle       lipgloss.Style
	EditorPlaceholder     lipgloss.Style
)

// Console styles
var (
	ConsoleLabelStyle      lipgloss.Style
	ConsoleOutputStyle     lipgloss.Style
	ConsoleErrorStyle      lipgloss.Style
	ConsoleIdleStyle       lipgloss.Style
	RunButtonStyle         lipgloss.Style
	RunButtonBusyStyle     lipgloss.Style
	StatusLoadingStyle     lipgloss.Style
	StatusSucceededStyle   lipgloss.Style
	StatusErrorStyle       lipgloss.Style
	StdinInputStyle        lipgloss.Style
	StdinInputFocusedStyle lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle         lipgloss.Style
	ChatAssistantStyle    lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatThinkingStyle     lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
)

// Rendered reply styles
var (
	MarkdownBoldStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownCodeBlockStyle  lipgloss.Style
	MarkdownCodeLangStyle   lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

func init() {
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorSplitter = lipgloss.Color(t.Splitter)
	ColorSplitterActive = lipgloss.Color(t.SplitterActive)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	PanelHintStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	SplitterStyle = lipgloss.NewStyle().
		Foreground(ColorSplitter)

	SplitterActiveStyle = lipgloss.NewStyle().
		Foreground(ColorSplitterActive).
		Bold(true)

	LineNumberStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.LineNumber))

	CursorLineNumberStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	EditorTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	EditorPlaceholder = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ConsoleLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true)

	ConsoleOutputStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ConsoleErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	ConsoleIdleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	RunButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary)

	RunButtonBusyStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorTextMuted).
		Background(lipgloss.Color(t.CodeBg))

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusSucceededStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StdinInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	StdinInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatThinkingStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.InlineCode)).
		Background(lipgloss.Color(t.CodeBg))

	MarkdownCodeBlockStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.CodeBg)).
		Padding(0, 1)

	MarkdownCodeLangStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)
}
