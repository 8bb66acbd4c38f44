package ui

import (
	"strings"
	"testing"
)

func TestRenderSplitter(t *testing.T) {
	if RenderSplitter(0) != "" {
		t.Error("zero height should render nothing")
	}
	lines := strings.Split(stripANSI(RenderSplitter(5)), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d rows, want 5", len(lines))
	}
	for _, l := range lines {
		if l != SplitterRune {
			t.Errorf("row = %q, want %q", l, SplitterRune)
		}
	}
}

func TestHighlightColumn(t *testing.T) {
	view := "ab|cd\nef|gh"

	got := stripANSI(HighlightColumn(view, 5, 2, 2))
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, want 2:\n%s", len(lines), got)
	}
	if strings.TrimRight(lines[0], " ") != "ab|cd" || strings.TrimRight(lines[1], " ") != "ef|gh" {
		t.Errorf("text should be unchanged, got %q", lines)
	}
}

func TestHighlightColumn_OutOfRange(t *testing.T) {
	view := "abc"
	for _, col := range []int{-1, 3, 10} {
		if got := HighlightColumn(view, 3, 1, col); got != view {
			t.Errorf("col %d: view should be returned as is, got %q", col, got)
		}
	}
}
