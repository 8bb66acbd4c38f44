package ui

import (
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
)

// SplitterRune is drawn in the splitter and resizer columns.
const SplitterRune = "│"

// RenderSplitter renders a one-column divider of the given height.
func RenderSplitter(height int) string {
	if height <= 0 {
		return ""
	}
	return SplitterStyle.Render(strings.TrimSuffix(strings.Repeat(SplitterRune+"\n", height), "\n"))
}

// HighlightColumn recolors column col of the rendered view, marking the
// divider that is being dragged. Rows are counted from the top of view.
func HighlightColumn(view string, width, height, col int) string {
	if width <= 0 || height <= 0 || col < 0 || col >= width {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	fg := SplitterActiveStyle.GetForeground()
	for y := 0; y < height; y++ {
		cell := scr.CellAt(col, y)
		if cell == nil {
			continue
		}
		cell = cell.Clone()
		cell.Style.Fg = fg
		cell.Style.Attrs |= uv.AttrBold
		scr.SetCell(col, y, cell)
	}

	return scr.Render()
}
