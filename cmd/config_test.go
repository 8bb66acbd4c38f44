package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/codepad/internal/config"
)

func TestPrintPreferences(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if err := cfg.Set(config.KeyTheme, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var all bytes.Buffer
	if err := printPreferences(&all, cfg, nil); err != nil {
		t.Fatalf("printPreferences: %v", err)
	}
	for _, want := range []string{"theme = dark", "language = (unset)", "server_url = (unset)"} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("output %q missing %q", all.String(), want)
		}
	}

	var one bytes.Buffer
	if err := printPreferences(&one, cfg, []string{config.KeyTheme}); err != nil {
		t.Fatalf("printPreferences: %v", err)
	}
	if one.String() != "theme = dark\n" {
		t.Errorf("single key output = %q", one.String())
	}

	if err := printPreferences(&one, cfg, []string{"font"}); err == nil {
		t.Error("unknown key should be rejected")
	}
}
