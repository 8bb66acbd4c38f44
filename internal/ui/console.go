package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/codepad/internal/execution"
)

// ConsolePlaceholder is shown before the first run.
const ConsolePlaceholder = "Run your code to see the output here."

const runButtonLabel = "▶ Run"

// ElapsedTickMsg refreshes the stopwatch while a run is in flight
type ElapsedTickMsg time.Time

// ElapsedTick schedules the next stopwatch refresh
func ElapsedTick() tea.Cmd {
	return tea.Tick(ElapsedTickInterval, func(t time.Time) tea.Msg {
		return ElapsedTickMsg(t)
	})
}

// Console is the right-hand pane: a stdin box on top and the run output below.
type Console struct {
	stdin   textarea.Model
	output  viewport.Model
	spinner spinner.Model

	result  execution.Result
	elapsed time.Duration

	width   int
	height  int
	focused bool
}

// NewConsole creates an idle console.
func NewConsole() *Console {
	ti := textarea.New()
	ti.Placeholder = "Program input (stdin)…"
	ti.CharLimit = 0
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.SetHeight(StdinHeight)

	vp := viewport.New()
	vp.SoftWrap = true
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Console{
		stdin:   ti,
		output:  vp,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(StatusLoadingStyle)),
	}
	c.RefreshStyles()
	c.updateContent()
	return c
}

// SetSize sets the console panel dimensions
func (c *Console) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(width)

	c.stdin.SetWidth(max(ctx.InnerWidth(innerWidth)-InputPaddingWidth, 1))
	c.output.SetWidth(innerWidth)
	c.output.SetHeight(max(c.outputHeight(), 1))
	c.updateContent()
}

// outputHeight is what remains of the panel after the title, the stdin box
// and the output label.
func (c *Console) outputHeight() int {
	inner := GetViewContext().InnerHeight(c.height)
	return inner - TitleHeight - 1 - (StdinHeight + BorderSize) - 1
}

// SetFocused sets the focus state of the stdin box
func (c *Console) SetFocused(focused bool) tea.Cmd {
	c.focused = focused
	if focused {
		return c.stdin.Focus()
	}
	c.stdin.Blur()
	return nil
}

// IsFocused returns the focus state
func (c *Console) IsFocused() bool {
	return c.focused
}

// Input returns the stdin text.
func (c *Console) Input() string {
	return c.stdin.Value()
}

// SetInput replaces the stdin text.
func (c *Console) SetInput(s string) {
	c.stdin.SetValue(s)
}

// SetResult shows the execution result. elapsed is displayed while running.
func (c *Console) SetResult(result execution.Result, elapsed time.Duration) {
	changed := result != c.result
	c.result = result
	c.elapsed = elapsed
	if changed {
		c.updateContent()
	}
}

// Running reports whether the console shows a run in progress.
func (c *Console) Running() bool {
	return c.result.Status == execution.StatusRunning
}

// SpinnerTick starts the spinner animation
func (c *Console) SpinnerTick() tea.Msg {
	return c.spinner.Tick()
}

// RefreshStyles re-applies the palette after the ui theme changed.
func (c *Console) RefreshStyles() {
	s := c.stdin.Styles()
	base := lipgloss.NewStyle()
	s.Focused.Base = base
	s.Focused.Text = ConsoleOutputStyle
	s.Focused.CursorLine = ConsoleOutputStyle
	s.Focused.Placeholder = EditorPlaceholder
	s.Focused.Prompt = base
	s.Blurred = s.Focused
	c.stdin.SetStyles(s)

	c.spinner.Style = StatusLoadingStyle
	c.updateContent()
}

func (c *Console) updateContent() {
	var content string
	switch c.result.Status {
	case execution.StatusIdle:
		content = ConsoleIdleStyle.Render(ConsolePlaceholder)
	case execution.StatusRunning:
		content = ""
	case execution.StatusFailed:
		content = styleLines(c.result.Text(), ConsoleErrorStyle)
	default:
		content = styleLines(c.result.Text(), ConsoleOutputStyle)
	}
	c.output.SetContent(content)
	c.output.GotoTop()
}

// styleLines styles each line separately so soft wrapping keeps the color.
func styleLines(text string, style lipgloss.Style) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = style.Render(expandTabs(line, TabWidth))
	}
	return strings.Join(lines, "\n")
}

// Update handles stdin input, output scrolling and spinner ticks.
func (c *Console) Update(msg tea.Msg) (*Console, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !c.Running() {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	case tea.KeyPressMsg:
		switch msg.String() {
		case "pgup", "pgdown":
			var cmd tea.Cmd
			c.output, cmd = c.output.Update(msg)
			return c, cmd
		}
		if c.focused {
			var cmd tea.Cmd
			c.stdin, cmd = c.stdin.Update(msg)
			cmds = append(cmds, cmd)
		}
		return c, tea.Batch(cmds...)
	}

	if c.focused {
		var cmd tea.Cmd
		c.stdin, cmd = c.stdin.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	c.output, cmd = c.output.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

// runButton renders the run trigger, disabled while a run is in flight.
func (c *Console) runButton() string {
	if c.Running() {
		return RunButtonBusyStyle.Render(runButtonLabel)
	}
	return RunButtonStyle.Render(runButtonLabel)
}

// HitRunButton reports whether (x, y), relative to the panel's top-left
// corner, lands on the run button.
func (c *Console) HitRunButton(x, y int) bool {
	if y != 1 {
		return false
	}
	right := c.width - 1
	left := right - ansi.StringWidth(c.runButton())
	return x >= left && x < right
}

// statusLine describes the last run next to the output label.
func (c *Console) statusLine() string {
	switch c.result.Status {
	case execution.StatusRunning:
		return c.spinner.View() + " " + StatusLoadingStyle.Render(fmt.Sprintf("running %.1fs", c.elapsed.Seconds()))
	case execution.StatusSucceeded:
		return StatusSucceededStyle.Render("✓ done")
	case execution.StatusFailed:
		return StatusErrorStyle.Render("✕ failed")
	}
	return ""
}

// View renders the console panel
func (c *Console) View() string {
	innerWidth := GetViewContext().InnerWidth(c.width)

	button := c.runButton()
	titleText := PanelTitleStyle.Render("Console")
	gap := innerWidth - ansi.StringWidth(titleText) - ansi.StringWidth(button)
	title := titleText + strings.Repeat(" ", max(gap, 1)) + button

	inputStyle := StdinInputStyle
	if c.focused {
		inputStyle = StdinInputFocusedStyle
	}
	stdinBox := inputStyle.Width(innerWidth).Render(c.stdin.View())

	outputLabel := ConsoleLabelStyle.Render("Output")
	if status := c.statusLine(); status != "" {
		outputLabel += "  " + status
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		ansi.Truncate(title, innerWidth, ""),
		ConsoleLabelStyle.Render("Input"),
		stdinBox,
		ansi.Truncate(outputLabel, innerWidth, ""),
		c.output.View(),
	)
	return PanelStyle.Width(c.width).Height(c.height).Render(content)
}
