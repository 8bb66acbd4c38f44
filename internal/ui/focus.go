package ui

// Pane identifies which input has keyboard focus.
type Pane int

const (
	PaneEditor Pane = iota
	PaneStdin
	PaneChat
)

func (p Pane) String() string {
	switch p {
	case PaneStdin:
		return "stdin"
	case PaneChat:
		return "chat"
	default:
		return "editor"
	}
}

// NextPane cycles focus forward. The chat input is skipped while the
// assistant panel is closed.
func NextPane(p Pane, assistantOpen bool) Pane {
	switch p {
	case PaneEditor:
		return PaneStdin
	case PaneStdin:
		if assistantOpen {
			return PaneChat
		}
		return PaneEditor
	default:
		return PaneEditor
	}
}

// PrevPane cycles focus backward.
func PrevPane(p Pane, assistantOpen bool) Pane {
	switch p {
	case PaneEditor:
		if assistantOpen {
			return PaneChat
		}
		return PaneStdin
	case PaneChat:
		return PaneStdin
	default:
		return PaneEditor
	}
}
