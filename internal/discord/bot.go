// Package discord implements chat.Transport on top of discordgo.
package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/chris/botbro/internal/chat"
)

const maxMessageLen = 2000

type Bot struct {
	session *discordgo.Session
	handler *chat.Handler

	mu   sync.Mutex
	last map[string]string // message id -> text last written by us
}

// NewBot connects to Discord. Messages are dropped until Attach is called.
func NewBot(token string) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}

	bot := &Bot{session: s, last: make(map[string]string)}
	s.AddHandler(bot.onMessage)
	s.Identify.Intents = discordgo.IntentsDirectMessages | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("opening Discord connection: %w", err)
	}

	log.Info().Str("user", s.State.User.Username).Msg("Discord bot connected")
	return bot, nil
}

// Username is the connected bot account's name.
func (b *Bot) Username() string {
	return b.session.State.User.Username
}

func (b *Bot) Attach(h *chat.Handler) {
	b.mu.Lock()
	b.handler = h
	b.mu.Unlock()
}

func (b *Bot) Close() {
	b.session.Close()
}

// Send posts text, split into Discord-sized chunks, and returns the id
// of the last chunk.
func (b *Bot) Send(ctx context.Context, chatID, text string) (string, error) {
	var id string
	for _, chunk := range splitMessage(text, maxMessageLen) {
		msg, err := b.session.ChannelMessageSend(chatID, chunk, discordgo.WithContext(ctx))
		if err != nil {
			return id, fmt.Errorf("sending to channel %s: %w", chatID, err)
		}
		id = msg.ID
		b.remember(id, chunk)
	}
	return id, nil
}

// Edit rewrites a message we sent. Text beyond the first chunk goes out
// as follow-up messages.
func (b *Bot) Edit(ctx context.Context, chatID, messageID, text string) error {
	chunks := splitMessage(text, maxMessageLen)

	b.mu.Lock()
	prev, ok := b.last[messageID]
	b.mu.Unlock()
	if ok && prev == chunks[0] && len(chunks) == 1 {
		return chat.ErrNotModified
	}

	if _, err := b.session.ChannelMessageEdit(chatID, messageID, chunks[0], discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("editing message %s: %w", messageID, err)
	}
	b.remember(messageID, chunks[0])

	for _, chunk := range chunks[1:] {
		msg, err := b.session.ChannelMessageSend(chatID, chunk, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("sending overflow to channel %s: %w", chatID, err)
		}
		b.remember(msg.ID, chunk)
	}
	return nil
}

func (b *Bot) remember(id, text string) {
	b.mu.Lock()
	b.last[id] = text
	b.mu.Unlock()
}
