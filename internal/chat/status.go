package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const StatusPlaceholder = "👀 moment mal..."

// Status is the single message that shows progress and is later
// overwritten with the answer.
type Status struct {
	transport Transport
	chatID    string
	messageID string
}

// OpenStatus posts the placeholder. A failed send is logged and leaves a
// Status with no message, so Finish falls back to a plain send.
func OpenStatus(ctx context.Context, t Transport, chatID string) *Status {
	s := &Status{transport: t, chatID: chatID}
	id, err := t.Send(ctx, chatID, StatusPlaceholder)
	if err != nil {
		log.Warn().Err(err).Str("chat", chatID).Msg("sending status message")
		return s
	}
	s.messageID = id
	return s
}

// Update replaces the status text. Errors are logged, never returned.
func (s *Status) Update(ctx context.Context, text string) {
	if s.messageID == "" {
		return
	}
	err := s.transport.Edit(ctx, s.chatID, s.messageID, text)
	if err != nil && !errors.Is(err, ErrNotModified) {
		log.Warn().Err(err).Str("chat", s.chatID).Msg("updating status message")
	}
}

// Finish overwrites the status with the final reply, sending a new
// message if the edit fails.
func (s *Status) Finish(ctx context.Context, reply string) error {
	if s.messageID != "" {
		err := s.transport.Edit(ctx, s.chatID, s.messageID, reply)
		if err == nil || errors.Is(err, ErrNotModified) {
			return nil
		}
		log.Warn().Err(err).Str("chat", s.chatID).Msg("editing status into reply, sending instead")
	}
	if _, err := s.transport.Send(ctx, s.chatID, reply); err != nil {
		return fmt.Errorf("delivering reply to %s: %w", s.chatID, err)
	}
	return nil
}
