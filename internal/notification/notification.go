// Package notification sends desktop notifications when a run or an
// assistant reply settles while the terminal does not have focus.
// It uses the beeep library on macOS, Linux, and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/codepad/internal/logger"
)

// AppName is the notification title.
const AppName = "codepad"

type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier replaces the notification backend (for testing).
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)

	// Empty icon lets beeep pick the platform default.
	if err := notify(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return err
	}
	return nil
}

// RunFinished announces a settled run.
func RunFinished(language string, failed bool) error {
	if failed {
		return Send(AppName, fmt.Sprintf("%s run failed", language))
	}
	return Send(AppName, fmt.Sprintf("%s run finished", language))
}

// ReplyReceived announces an assistant reply.
func ReplyReceived() error {
	return Send(AppName, "Assistant replied")
}
