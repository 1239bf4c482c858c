// Package chat is the transport-neutral half of the messaging adapter:
// who gets answered, and how the status message becomes the reply.
package chat

import (
	"context"
	"errors"
	"strings"
)

// ErrNotModified is returned by Transport.Edit when the new text equals
// what the message already shows.
var ErrNotModified = errors.New("message not modified")

// Transport delivers text to a chat.
type Transport interface {
	// Send posts a new message and returns its id.
	Send(ctx context.Context, chatID, text string) (string, error)
	Edit(ctx context.Context, chatID, messageID, text string) error
}

// Inbound is one received message, already reduced to the facts the
// admission filter needs.
type Inbound struct {
	ChatID        string
	SenderID      string
	Text          string
	Private       bool
	ReplyToAgent  bool
	MentionsAgent bool
}

// Addressed reports whether the agent should answer in.
func Addressed(in Inbound, handle string) bool {
	if in.Private || in.ReplyToAgent || in.MentionsAgent {
		return true
	}
	if handle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(in.Text), "@"+strings.ToLower(strings.TrimPrefix(handle, "@")))
}
