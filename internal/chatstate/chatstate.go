// Package chatstate tracks the most recently active chat, which receives
// the weekly roster announcement.
//
// Every admitted inbound message overwrites the value: last write wins,
// so the announcement follows whichever chat spoke to the bot last.
package chatstate

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// NoteKey is the notes row holding the active chat.
const NoteKey = "announce_chat_id"

// Store persists the value across restarts. *db.DB satisfies it.
type Store interface {
	GetNote(key string) (string, error)
	SetNote(key, value string) error
}

type Registry struct {
	mu     sync.RWMutex
	chatID string
	store  Store
}

// New returns a registry seeded from store, if one is given.
func New(store Store) *Registry {
	r := &Registry{store: store}
	if store != nil {
		id, err := store.GetNote(NoteKey)
		if err != nil {
			log.Warn().Err(err).Msg("loading last active chat")
		}
		r.chatID = id
	}
	return r
}

// Set records chatID as the last active chat.
func (r *Registry) Set(chatID string) {
	r.mu.Lock()
	changed := r.chatID != chatID
	r.chatID = chatID
	r.mu.Unlock()

	if changed && r.store != nil {
		if err := r.store.SetNote(NoteKey, chatID); err != nil {
			log.Warn().Err(err).Str("chat", chatID).Msg("persisting last active chat")
		}
	}
}

// Get returns the last active chat and whether one is set.
func (r *Registry) Get() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.chatID, r.chatID != ""
}
