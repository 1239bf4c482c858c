// Package memory keeps a bounded, per-chat window of recent turns.
//
// History lives only as long as the process. When a chat's window is
// full, appending a new turn evicts the oldest one.
package memory

import (
	"sync"

	"github.com/chris/botbro/internal/llm"
)

const DefaultCapacity = 10

type Store struct {
	capacity int
	mu       sync.Mutex
	chats    map[string]*window
}

type window struct {
	mu    sync.Mutex
	turns []llm.Message
}

func New(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity, chats: make(map[string]*window)}
}

func (s *Store) Capacity() int { return s.capacity }

func (s *Store) window(chatID string) *window {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.chats[chatID]
	if !ok {
		w = &window{turns: make([]llm.Message, 0, s.capacity)}
		s.chats[chatID] = w
	}
	return w
}

// Append adds a turn to the chat, evicting the oldest turn if the window
// is full.
func (s *Store) Append(chatID string, role llm.Role, content string) {
	w := s.window(chatID)
	w.mu.Lock()
	defer w.mu.Unlock()
	w.turns = append(w.turns, llm.Message{Role: role, Content: content})
	if over := len(w.turns) - s.capacity; over > 0 {
		w.turns = append(w.turns[:0], w.turns[over:]...)
	}
}

// Snapshot returns a copy of the chat's turns, oldest first.
func (s *Store) Snapshot(chatID string) []llm.Message {
	s.mu.Lock()
	w, ok := s.chats[chatID]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]llm.Message, len(w.turns))
	copy(out, w.turns)
	return out
}

func (s *Store) Len(chatID string) int {
	s.mu.Lock()
	w, ok := s.chats[chatID]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.turns)
}
