package layout

import (
	"math/rand"
	"testing"
)

func assertInvariants(t *testing.T, m *Machine) {
	t.Helper()
	s := m.State()
	if s.EditorPaneWidth < MinPaneWidth {
		t.Fatalf("editor width %d < %d (state %+v)", s.EditorPaneWidth, MinPaneWidth, s)
	}
	if s.ConsolePaneWidth < MinPaneWidth {
		t.Fatalf("console width %d < %d (state %+v)", s.ConsolePaneWidth, MinPaneWidth, s)
	}
	if s.AssistantPanelWidth < MinAssistantWidth || float64(s.AssistantPanelWidth) > MaxAssistantRatio*float64(s.ViewportWidth) {
		t.Fatalf("assistant width %d out of range for viewport %d", s.AssistantPanelWidth, s.ViewportWidth)
	}
	if got := s.EditorPaneWidth + SplitterWidth + s.ConsolePaneWidth + m.Margin(); got != s.ViewportWidth {
		t.Fatalf("widths sum to %d, viewport is %d", got, s.ViewportWidth)
	}
}

func TestNew(t *testing.T) {
	m := New(121)
	assertInvariants(t, m)

	s := m.State()
	if s.EditorPaneWidth != 60 || s.ConsolePaneWidth != 60 {
		t.Errorf("expected an even split, got %d/%d", s.EditorPaneWidth, s.ConsolePaneWidth)
	}
	if s.AssistantPanelOpen {
		t.Error("assistant panel should start closed")
	}
	if s.AssistantPanelWidth != DefaultAssistantWidth {
		t.Errorf("assistant width = %d, want %d", s.AssistantPanelWidth, DefaultAssistantWidth)
	}
	if m.Dragging() {
		t.Error("new machine should be idle")
	}
}

func TestNew_ClampsViewport(t *testing.T) {
	m := New(10)
	if m.State().ViewportWidth != MinViewportWidth {
		t.Errorf("viewport = %d, want %d", m.State().ViewportWidth, MinViewportWidth)
	}
	assertInvariants(t, m)

	m.ToggleAssistant()
	assertInvariants(t, m)
}

func TestUpdateDrag_Splitter(t *testing.T) {
	tests := []struct {
		name       string
		x          int
		wantCommit bool
		wantEditor int
	}{
		{name: "move left", x: 40, wantCommit: true, wantEditor: 40},
		{name: "move right", x: 90, wantCommit: true, wantEditor: 90},
		{name: "at editor minimum", x: MinPaneWidth, wantCommit: true, wantEditor: MinPaneWidth},
		{name: "below editor minimum", x: MinPaneWidth - 1, wantCommit: false, wantEditor: 60},
		{name: "at console minimum", x: 120 - MinPaneWidth, wantCommit: true, wantEditor: 100},
		{name: "below console minimum", x: 120 - MinPaneWidth + 1, wantCommit: false, wantEditor: 60},
		{name: "off screen", x: -5, wantCommit: false, wantEditor: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(121)
			if !m.BeginDrag(TargetSplitter, 60) {
				t.Fatal("BeginDrag(splitter) should succeed")
			}
			if got := m.UpdateDrag(tt.x); got != tt.wantCommit {
				t.Errorf("UpdateDrag(%d) = %v, want %v", tt.x, got, tt.wantCommit)
			}
			if got := m.EditorWidth(); got != tt.wantEditor {
				t.Errorf("EditorWidth() = %d, want %d", got, tt.wantEditor)
			}
			assertInvariants(t, m)
		})
	}
}

func TestUpdateDrag_IgnoredWhenIdle(t *testing.T) {
	m := New(121)
	before := m.State()

	if m.UpdateDrag(30) {
		t.Error("UpdateDrag should be ignored when not dragging")
	}
	if m.State() != before {
		t.Error("state changed without a drag")
	}
	if m.EndDrag() {
		t.Error("EndDrag should report false when idle")
	}
}

func TestBeginDrag_Rejected(t *testing.T) {
	m := New(121)

	if m.BeginDrag(TargetNone, 5) {
		t.Error("BeginDrag(none) should be rejected")
	}
	if m.BeginDrag(TargetAssistantResizer, 80) {
		t.Error("the resizer cannot be dragged while the panel is closed")
	}
	if m.Dragging() {
		t.Error("machine should still be idle")
	}
}

func TestUpdateDrag_AssistantResizer(t *testing.T) {
	m := New(120)
	m.ToggleAssistant()
	if !m.BeginDrag(TargetAssistantResizer, 80) {
		t.Fatal("BeginDrag(resizer) should succeed with the panel open")
	}

	if !m.UpdateDrag(70) {
		t.Error("dragging the resizer left should widen the panel")
	}
	if m.State().AssistantPanelWidth != 50 {
		t.Errorf("assistant width = %d, want 50", m.State().AssistantPanelWidth)
	}
	assertInvariants(t, m)

	// 120 - 100 = 20 < MinAssistantWidth
	if m.UpdateDrag(100) {
		t.Error("narrower than the minimum should be rejected")
	}
	// 120 - 10 = 110 > 0.7 * 120
	if m.UpdateDrag(10) {
		t.Error("wider than the maximum should be rejected")
	}
	if m.State().AssistantPanelWidth != 50 {
		t.Errorf("rejected updates changed the width to %d", m.State().AssistantPanelWidth)
	}

	if !m.EndDrag() {
		t.Error("EndDrag should report an active drag")
	}
	if m.Dragging() || m.DragTarget() != TargetNone {
		t.Error("EndDrag should return to idle")
	}
}

func TestMaxAssistantWidth(t *testing.T) {
	tests := []struct {
		viewport int
		want     int
	}{
		{80, 39},   // limited by the panes
		{120, 79},  // limited by the panes
		{200, 140}, // limited by the 70% ratio
	}
	for _, tt := range tests {
		m := New(tt.viewport)
		if got := m.MaxAssistantWidth(); got != tt.want {
			t.Errorf("MaxAssistantWidth() at %d = %d, want %d", tt.viewport, got, tt.want)
		}
	}
}

func TestDragInvariant_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 200; round++ {
		m := New(80 + rng.Intn(160))
		for step := 0; step < 50; step++ {
			switch rng.Intn(7) {
			case 0:
				m.BeginDrag(TargetSplitter, rng.Intn(300)-20)
			case 1:
				m.BeginDrag(TargetAssistantResizer, rng.Intn(300)-20)
			case 2, 3:
				m.UpdateDrag(rng.Intn(400) - 50)
			case 4:
				m.EndDrag()
			case 5:
				m.ToggleAssistant()
			case 6:
				m.Resize(rng.Intn(260))
			}
			assertInvariants(t, m)
		}
	}
}

func TestToggleAssistant_RestoresMargin(t *testing.T) {
	m := New(140)
	m.BeginDrag(TargetSplitter, 70)
	m.UpdateDrag(47)
	m.EndDrag()

	before := m.State()
	marginBefore := m.Margin()

	m.ToggleAssistant()
	if !m.AssistantOpen() {
		t.Fatal("panel should be open")
	}
	if m.Margin() != before.AssistantPanelWidth {
		t.Errorf("open margin = %d, want panel width %d", m.Margin(), before.AssistantPanelWidth)
	}
	assertInvariants(t, m)

	m.ToggleAssistant()
	if m.Margin() != marginBefore {
		t.Errorf("margin after close = %d, want %d", m.Margin(), marginBefore)
	}
	if m.State() != before {
		t.Errorf("state after open+close = %+v, want %+v", m.State(), before)
	}
}

func TestCloseAssistant(t *testing.T) {
	m := New(120)
	if m.CloseAssistant() {
		t.Error("closing a closed panel should report false")
	}
	m.ToggleAssistant()
	if !m.CloseAssistant() || m.AssistantOpen() {
		t.Error("CloseAssistant should close an open panel")
	}
}

func TestNudge(t *testing.T) {
	m := New(121)

	if !m.NudgeSplitter(-1) || m.EditorWidth() != 59 {
		t.Errorf("NudgeSplitter(-1) left editor at %d", m.EditorWidth())
	}
	for i := 0; i < 100; i++ {
		m.NudgeSplitter(-1)
	}
	if m.EditorWidth() != MinPaneWidth {
		t.Errorf("repeated nudges should stop at the minimum, got %d", m.EditorWidth())
	}

	if m.NudgeAssistant(1) {
		t.Error("NudgeAssistant should do nothing while the panel is closed")
	}
	m.ToggleAssistant()
	if !m.NudgeAssistant(2) || m.State().AssistantPanelWidth != DefaultAssistantWidth+2 {
		t.Errorf("NudgeAssistant(2) width = %d", m.State().AssistantPanelWidth)
	}
	assertInvariants(t, m)
}

func TestHitTest(t *testing.T) {
	m := New(121)
	m.ToggleAssistant()

	tests := []struct {
		x    int
		want Region
	}{
		{0, RegionEditor},
		{m.EditorWidth() - 1, RegionEditor},
		{m.EditorWidth(), RegionSplitter},
		{m.EditorWidth() + 1, RegionConsole},
		{m.MainWidth() - 1, RegionConsole},
		{m.MainWidth(), RegionAssistantResizer},
		{m.MainWidth() + 1, RegionAssistant},
	}
	for _, tt := range tests {
		if got := m.HitTest(tt.x); got != tt.want {
			t.Errorf("HitTest(%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestResize_ShrinksPanel(t *testing.T) {
	m := New(200)
	m.ToggleAssistant()
	m.BeginDrag(TargetAssistantResizer, 100)
	m.UpdateDrag(70) // width 130
	m.EndDrag()

	m.Resize(100)
	if w := m.State().AssistantPanelWidth; w != m.MaxAssistantWidth() {
		t.Errorf("panel width after shrink = %d, want %d", w, m.MaxAssistantWidth())
	}
	assertInvariants(t, m)
}
