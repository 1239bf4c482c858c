package discord

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/chris/botbro/internal/chat"
)

// handleTimeout bounds one agent run, tool calls included.
const handleTimeout = 3 * time.Minute

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.mu.Lock()
	h := b.handler
	b.mu.Unlock()
	if h == nil {
		return
	}

	in, ok := inbound(m.Message, s.State.User.ID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if chat.Addressed(in, b.Username()) {
		s.ChannelTyping(m.ChannelID)
	}
	h.Handle(ctx, in)
}

// inbound reduces a Discord message to chat.Inbound. It returns false for
// our own messages.
func inbound(m *discordgo.Message, selfID string) (chat.Inbound, bool) {
	if m.Author == nil || m.Author.ID == selfID {
		return chat.Inbound{}, false
	}

	in := chat.Inbound{
		ChatID:   m.ChannelID,
		SenderID: m.Author.ID,
		Private:  m.GuildID == "",
	}
	for _, u := range m.Mentions {
		if u.ID == selfID {
			in.MentionsAgent = true
			break
		}
	}
	if ref := m.ReferencedMessage; ref != nil && ref.Author != nil && ref.Author.ID == selfID {
		in.ReplyToAgent = true
	}
	in.Text = strings.TrimSpace(stripMention(m.Content, selfID))
	return in, true
}

func stripMention(s, userID string) string {
	s = strings.ReplaceAll(s, "<@"+userID+">", "")
	s = strings.ReplaceAll(s, "<@!"+userID+">", "")
	return s
}

// splitMessage cuts s into chunks of at most maxLen bytes, preferring
// newline boundaries and never splitting a rune.
func splitMessage(s string, maxLen int) []string {
	if len(s) <= maxLen {
		return []string{s}
	}
	var chunks []string
	for len(s) > 0 {
		end := maxLen
		if end > len(s) {
			end = len(s)
		}
		for end < len(s) && end > 0 && !utf8.RuneStart(s[end]) {
			end--
		}
		// Try to split at a newline
		if idx := strings.LastIndex(s[:end], "\n"); idx > 0 {
			end = idx + 1
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}
