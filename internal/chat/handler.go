package chat

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/chris/botbro/internal/agent"
	"github.com/chris/botbro/internal/chatstate"
)

// Runner is the agent loop. *agent.Agent satisfies it.
type Runner interface {
	Run(ctx context.Context, chatID, text string, progress agent.Progress) agent.Result
}

type Handler struct {
	transport Transport
	runner    Runner
	chats     *chatstate.Registry
	handle    string
}

// NewHandler wires a transport to the agent. handle is the agent's
// @name, used for literal-text mentions.
func NewHandler(t Transport, r Runner, chats *chatstate.Registry, handle string) *Handler {
	return &Handler{transport: t, runner: r, chats: chats, handle: handle}
}

// Handle answers in if it is addressed to the agent. It reports whether
// the message was admitted.
func (h *Handler) Handle(ctx context.Context, in Inbound) bool {
	if !Addressed(in, h.handle) {
		return false
	}
	if h.chats != nil {
		h.chats.Set(in.ChatID)
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		// Only the mention; nothing to run.
		return true
	}

	status := OpenStatus(ctx, h.transport, in.ChatID)
	res := h.runner.Run(ctx, in.ChatID, text, status)
	if err := status.Finish(ctx, res.Reply); err != nil {
		log.Error().Err(err).Str("chat", in.ChatID).Msg("reply lost")
	}
	return true
}
