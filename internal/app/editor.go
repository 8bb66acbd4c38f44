package app

import (
	"github.com/zhubert/codepad/internal/ui"
)

// refresher is a component that re-reads the ui palette.
type refresher interface {
	RefreshStyles()
}

// themedEditor is the editor the session drives. A theme change on the editor
// switches the whole ui palette, so the other panes are restyled with it.
type themedEditor struct {
	*ui.Editor
	panes []refresher
}

func newThemedEditor(panes ...refresher) *themedEditor {
	return &themedEditor{Editor: ui.NewEditor(), panes: panes}
}

// SetTheme applies the palette matching the editor theme id, then the
// editor's own highlighting.
func (e *themedEditor) SetTheme(id string) {
	ui.SetTheme(ui.ThemeForEditor(id))
	e.Editor.SetTheme(id)
	for _, p := range e.panes {
		p.RefreshStyles()
	}
}
