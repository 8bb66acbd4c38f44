// Package errors provides structured error types for codepad.
// These errors carry the operation that failed and which part of the
// error taxonomy it belongs to, so callers can tell a server-reported
// failure apart from a failed HTTP exchange.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation is a local rejection (empty input, invalid drag). Never shown.
	KindValidation
	// KindApplication is an error the remote service reported inside a 2xx response.
	KindApplication
	// KindTransport is a failure to complete the HTTP exchange itself.
	KindTransport
	// KindPlatform is a failed platform capability such as fullscreen. Logged only.
	KindPlatform
	KindConfig
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindApplication:
		return "application error"
	case KindTransport:
		return "transport error"
	case KindPlatform:
		return "platform error"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for codepad.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Detail returns the innermost message of err, without the Op/Context prefixes.
// Used when a transport failure is shown to the user in chat.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		return Detail(e.Err)
	}
	return err.Error()
}

// API errors

func TransportFailed(op Op, endpoint string, err error) error {
	return E(op, KindTransport, fmt.Sprintf("request to %s failed", endpoint), err)
}

func ServerStatus(op Op, endpoint string, status int) error {
	return E(op, KindTransport, fmt.Errorf("%s returned HTTP %d", endpoint, status))
}

func MalformedResponse(op Op, endpoint string, err error) error {
	return E(op, KindTransport, fmt.Sprintf("malformed response from %s", endpoint), err)
}

func ServerReported(op Op, message string) error {
	return E(op, KindApplication, errors.New(message))
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindValidation, reason)
}

// Platform errors

func FullscreenFailed(op Op, err error) error {
	return E(op, KindPlatform, err)
}
