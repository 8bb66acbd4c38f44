// Package chat drives the assistant conversation: message history, the
// single in-flight request, and the formatting transform for replies.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/codepad/internal/api"
	pkgerrors "github.com/zhubert/codepad/internal/errors"
	"github.com/zhubert/codepad/internal/logger"
)

// WelcomeMessage seeds every new session.
const WelcomeMessage = "Hello! I'm your AI coding assistant. I can help you with your code, explain concepts, debug issues, and suggest improvements. What would you like to work on?"

// ThinkingText labels the placeholder shown while a reply is outstanding.
const ThinkingText = "AI is thinking"

// Assistant answers chat messages.
type Assistant interface {
	Chat(ctx context.Context, req api.ChatRequest) (api.ChatResponse, error)
}

// Role is who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation. Messages are never modified
// after they are appended.
type Message struct {
	ID         string
	Role       Role
	RawContent string
	Rendered   Rendered
	CreatedAt  time.Time
}

// Ticket identifies the outstanding chat request.
type Ticket struct {
	ID      uint64
	Request api.ChatRequest
}

// Completion is the outcome of performing a Ticket.
type Completion struct {
	Ticket   Ticket
	Response api.ChatResponse
	Err      error
}

// Controller owns the conversation. At most one request is in flight.
type Controller struct {
	assistant Assistant
	now       func() time.Time

	messages []Message
	pending  bool
	current  uint64
}

// NewController creates a conversation seeded with the welcome message.
func NewController(assistant Assistant) *Controller {
	c := &Controller{assistant: assistant, now: time.Now}
	c.appendAssistant(WelcomeMessage)
	return c
}

// Send appends the user's message and issues a Ticket. Blank input, or a
// send while a reply is pending, is rejected with no state change.
func (c *Controller) Send(message, code, language string) (Ticket, bool) {
	message = strings.TrimSpace(message)
	if message == "" || c.pending {
		return Ticket{}, false
	}

	c.messages = append(c.messages, c.newMessage(RoleUser, message, PlainText(message)))
	c.pending = true
	c.current++

	logger.WithComponent("chat").Debug("chat sent", "requestID", c.current, "language", language, "chars", len(message))

	return Ticket{
		ID:      c.current,
		Request: api.ChatRequest{Message: message, Code: code, Language: language},
	}, true
}

// Perform sends the ticket's request once. It touches nothing but the assistant.
func (c *Controller) Perform(ctx context.Context, t Ticket) Completion {
	resp, err := c.assistant.Chat(ctx, t.Request)
	return Completion{Ticket: t, Response: resp, Err: err}
}

// Apply records the reply for the outstanding ticket and clears pending.
// It reports whether a message was appended.
func (c *Controller) Apply(comp Completion) bool {
	log := logger.WithComponent("chat")

	if !c.pending || comp.Ticket.ID != c.current {
		log.Debug("dropping unexpected chat completion", "requestID", comp.Ticket.ID, "current", c.current)
		return false
	}

	switch {
	case comp.Err != nil:
		log.Warn("chat transport failure", "requestID", comp.Ticket.ID, "error", comp.Err)
		c.appendAssistant("Network error: " + pkgerrors.Detail(comp.Err))
	case comp.Response.Error != "":
		err := pkgerrors.ServerReported(pkgerrors.Op("chat.Send"), comp.Response.Error)
		log.Info("assistant reported an error", "requestID", comp.Ticket.ID, "kind", pkgerrors.GetKind(err).String(), "error", err)
		c.appendAssistant("Error: " + comp.Response.Error)
	default:
		c.appendAssistant(comp.Response.Message)
	}
	c.pending = false
	return true
}

// SendAndWait is Send, Perform and Apply in one blocking call.
func (c *Controller) SendAndWait(ctx context.Context, message, code, language string) bool {
	t, ok := c.Send(message, code, language)
	if !ok {
		return false
	}
	return c.Apply(c.Perform(ctx, t))
}

func (c *Controller) appendAssistant(raw string) {
	c.messages = append(c.messages, c.newMessage(RoleAssistant, raw, Render(raw)))
}

func (c *Controller) newMessage(role Role, raw string, rendered Rendered) Message {
	return Message{
		ID:         uuid.NewString(),
		Role:       role,
		RawContent: raw,
		Rendered:   rendered,
		CreatedAt:  c.now(),
	}
}

// Messages returns the conversation in display order.
func (c *Controller) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Pending reports whether a reply is outstanding.
func (c *Controller) Pending() bool { return c.pending }

// PlaceholderVisible reports whether the thinking placeholder should show.
func (c *Controller) PlaceholderVisible() bool { return c.pending }

// SendEnabled reports whether the send action is available.
func (c *Controller) SendEnabled() bool { return !c.pending }

// LastAssistant returns the newest assistant message.
func (c *Controller) LastAssistant() (Message, bool) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == RoleAssistant {
			return c.messages[i], true
		}
	}
	return Message{}, false
}
