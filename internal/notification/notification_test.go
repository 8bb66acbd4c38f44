package notification

import (
	"errors"
	"testing"
)

type call struct {
	title   string
	message string
	icon    any
}

type mockNotification struct {
	calls []call
	err   error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, call{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{name: "successful notification", title: "T", message: "M"},
		{name: "notification error", title: "T", message: "M", mockErr: errors.New("dbus unavailable"), expectError: true},
		{name: "empty message", title: "T", message: ""},
		{name: "unicode content", title: "通知", message: "🎉 done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)
			if (err != nil) != tt.expectError {
				t.Errorf("Send() error = %v, expectError %v", err, tt.expectError)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.title || mock.calls[0].message != tt.message {
				t.Errorf("call = %+v", mock.calls[0])
			}
		})
	}
}

func TestRunFinished(t *testing.T) {
	tests := []struct {
		language string
		failed   bool
		want     string
	}{
		{"python", false, "python run finished"},
		{"java", true, "java run failed"},
	}

	for _, tt := range tests {
		mock := &mockNotification{}
		SetNotifier(mock.notify)

		if err := RunFinished(tt.language, tt.failed); err != nil {
			t.Errorf("RunFinished() error = %v", err)
		}
		if len(mock.calls) != 1 || mock.calls[0].title != AppName || mock.calls[0].message != tt.want {
			t.Errorf("calls = %+v, want message %q", mock.calls, tt.want)
		}
		ResetNotifier()
	}
}

func TestReplyReceived(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := ReplyReceived(); err != nil {
		t.Fatal(err)
	}
	if mock.calls[0].message != "Assistant replied" {
		t.Errorf("message = %q", mock.calls[0].message)
	}
}
