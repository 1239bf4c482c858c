package chat

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
)

// Console is a Transport that writes to a terminal. Edits print the new
// text as a fresh line since a terminal cannot rewrite earlier output.
type Console struct {
	mu   sync.Mutex
	w    io.Writer
	next int
	last map[string]string
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, last: make(map[string]string)}
}

func (c *Console) Send(_ context.Context, _ string, text string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	id := strconv.Itoa(c.next)
	c.last[id] = text
	if _, err := fmt.Fprintln(c.w, text); err != nil {
		return "", fmt.Errorf("writing to console: %w", err)
	}
	return id, nil
}

func (c *Console) Edit(_ context.Context, _ string, messageID, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev, ok := c.last[messageID]
	if !ok {
		return fmt.Errorf("unknown message %s", messageID)
	}
	if prev == text {
		return ErrNotModified
	}
	c.last[messageID] = text
	if _, err := fmt.Fprintln(c.w, text); err != nil {
		return fmt.Errorf("writing to console: %w", err)
	}
	return nil
}
