package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const headerTitle = " codepad"

// Header represents the top header bar
type Header struct {
	width      int
	language   string
	themeName  string
	fullscreen bool
	running    bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetLanguage sets the language label shown on the right
func (h *Header) SetLanguage(label string) {
	h.language = label
}

// SetThemeName sets the display mode shown on the right
func (h *Header) SetThemeName(name string) {
	h.themeName = name
}

// SetFullscreen marks the fullscreen indicator
func (h *Header) SetFullscreen(active bool) {
	h.fullscreen = active
}

// SetRunning marks a run in progress
func (h *Header) SetRunning(running bool) {
	h.running = running
}

// rightText builds the indicators, most important first.
func (h *Header) rightText() string {
	var parts []string
	if h.running {
		parts = append(parts, "● running")
	}
	if h.language != "" {
		parts = append(parts, h.language)
	}
	if h.themeName != "" {
		parts = append(parts, h.themeName)
	}
	if h.fullscreen {
		parts = append(parts, "fullscreen")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " · ") + " "
}

// View renders the header
func (h *Header) View() string {
	rightText := h.rightText()

	paddingLen := h.width - ansi.StringWidth(headerTitle) - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		// Too narrow for the indicators; keep the title
		rightText = ""
		paddingLen = max(h.width-ansi.StringWidth(headerTitle), 0)
	}

	fullContent := headerTitle + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, len([]rune(headerTitle)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content over a background fading from the
// primary color into the main background. The first titleLen runes are bold,
// everything after the title is muted.
func (h *Header) renderGradient(content string, titleLen int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	titleColor := lipgloss.Color(theme.TextInverse)
	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleLen)

		// The title sits on the saturated end of the gradient
		if i < titleLen {
			style = style.Foreground(titleColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
