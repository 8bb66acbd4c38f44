package clipboard

import (
	"errors"
	"testing"

	"golang.design/x/clipboard"
)

func TestWriteText(t *testing.T) {
	var written []string
	inits := 0
	reset(func() error { inits++; return nil }, func(s string) { written = append(written, s) })
	defer reset(clipboard.Init, func(s string) { clipboard.Write(clipboard.FmtText, []byte(s)) })

	if err := WriteText("42\n"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if err := WriteText("second"); err != nil {
		t.Fatal(err)
	}
	if inits != 1 {
		t.Errorf("init called %d times, want 1", inits)
	}
	if len(written) != 2 || written[0] != "42\n" {
		t.Errorf("written = %q", written)
	}
	if !Available() {
		t.Error("Available() should be true after a successful init")
	}
}

func TestWriteText_InitFailure(t *testing.T) {
	inits := 0
	reset(func() error { inits++; return errors.New("no display") }, func(string) {
		t.Error("write must not be called when init failed")
	})
	defer reset(clipboard.Init, func(s string) { clipboard.Write(clipboard.FmtText, []byte(s)) })

	if err := WriteText("x"); err == nil {
		t.Fatal("WriteText should fail when the clipboard cannot initialize")
	}
	if Available() {
		t.Error("Available() should be false")
	}
	if inits != 1 {
		t.Errorf("a failed init should be remembered, got %d attempts", inits)
	}
}
