// Package clipboard copies console output and assistant replies to the
// system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/codepad/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	initErr     error
	write       = func(text string) { clipboard.Write(clipboard.FmtText, []byte(text)) }
	initBackend = clipboard.Init
)

// Init initializes the system clipboard. It is safe to call multiple times;
// a failure is remembered so later calls fail fast.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized || initErr != nil {
		return initErr
	}
	if err := initBackend(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
		return initErr
	}
	initialized = true
	return nil
}

// Available reports whether the system clipboard can be used.
func Available() bool {
	return Init() == nil
}

// WriteText writes text to the system clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	write(text)
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// reset restores the initial state (for testing).
func reset(initFn func() error, writeFn func(string)) {
	mu.Lock()
	defer mu.Unlock()
	initialized = false
	initErr = nil
	initBackend = initFn
	write = writeFn
}
