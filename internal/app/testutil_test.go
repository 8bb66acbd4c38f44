package app

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/codepad/internal/api"
	"github.com/zhubert/codepad/internal/config"
	"github.com/zhubert/codepad/internal/keys"
	"github.com/zhubert/codepad/internal/ui"
)

// fakeRunner records run requests and answers with a canned response.
type fakeRunner struct {
	mu   sync.Mutex
	resp api.RunResponse
	err  error
	reqs []api.RunRequest
}

func (f *fakeRunner) Run(_ context.Context, req api.RunRequest) (api.RunResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.resp, f.err
}

func (f *fakeRunner) requests() []api.RunRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.RunRequest(nil), f.reqs...)
}

// fakeAssistant records chat requests and answers with a canned response.
type fakeAssistant struct {
	mu   sync.Mutex
	resp api.ChatResponse
	err  error
	reqs []api.ChatRequest
}

func (f *fakeAssistant) Chat(_ context.Context, req api.ChatRequest) (api.ChatResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.resp, f.err
}

func (f *fakeAssistant) requests() []api.ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.ChatRequest(nil), f.reqs...)
}

// fakePlatform counts fullscreen calls without touching the terminal.
type fakePlatform struct {
	mu       sync.Mutex
	requests int
	exits    int
}

func (p *fakePlatform) RequestFullscreen() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests++
	return nil
}

func (p *fakePlatform) ExitFullscreen() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.exits++
	return nil
}

// testEnv bundles a model with its fakes.
type testEnv struct {
	m         *Model
	cfg       *config.Config
	runner    *fakeRunner
	assistant *fakeAssistant
	platform  *fakePlatform
}

// testConfig creates an empty config backed by a temp file.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	return cfg
}

// newTestEnv creates a sized model wired to fakes. The ui palette is reset
// when the test ends.
func newTestEnv(t *testing.T, opts Options) *testEnv {
	t.Helper()
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })

	env := &testEnv{
		cfg:       opts.Config,
		runner:    &fakeRunner{resp: api.RunResponse{Output: "ok\n"}},
		assistant: &fakeAssistant{resp: api.ChatResponse{Message: "Sure."}},
		platform:  &fakePlatform{},
	}
	if env.cfg == nil {
		env.cfg = testConfig(t)
	}
	opts.Config = env.cfg
	opts.Runner = env.runner
	opts.Assistant = env.assistant
	opts.Platform = env.platform
	if opts.Version == "" {
		opts.Version = "0.0.0-test"
	}

	env.m = New(opts)
	env.m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return env
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+r", "f11"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.F5:
		return tea.KeyPressMsg{Code: tea.KeyF5}
	case keys.F11:
		return tea.KeyPressMsg{Code: tea.KeyF11}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}
	case keys.CtrlRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}
	case keys.CtrlShiftLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl | tea.ModShift}
	case keys.AltY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModAlt}
	}
	if len(key) == 6 && key[:5] == "ctrl+" {
		return tea.KeyPressMsg{Code: rune(key[5]), Mod: tea.ModCtrl}
	}
	// Regular character - for single characters, set both Code and Text
	if len(key) == 1 {
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
	return tea.KeyPressMsg{Text: key}
}

// press sends a key to the model and returns the resulting command.
func (env *testEnv) press(key string) tea.Cmd {
	_, cmd := env.m.Update(keyPress(key))
	return cmd
}

// collectMsgs runs cmd, expanding batches, and returns every message produced.
// Commands run concurrently the way the program would run them.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	var (
		mu   sync.Mutex
		msgs []tea.Msg
		wg   sync.WaitGroup
		run  func(tea.Cmd)
	)
	run = func(c tea.Cmd) {
		defer wg.Done()
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, sub := range batch {
				if sub != nil {
					wg.Add(1)
					go run(sub)
				}
			}
			return
		}
		if msg != nil {
			mu.Lock()
			msgs = append(msgs, msg)
			mu.Unlock()
		}
	}

	wg.Add(1)
	go run(cmd)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("commands did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	return msgs
}

// findMsg returns the first message of type T.
func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}
