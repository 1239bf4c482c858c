package db

import (
	"database/sql"
	"fmt"
)

type Announcement struct {
	ID        int64  `json:"id"`
	ChatID    string `json:"chat_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// RecordAnnouncement stores a weekly broadcast that was sent.
func (d *DB) RecordAnnouncement(chatID, content string) (int64, error) {
	res, err := d.conn.Exec("INSERT INTO announcements (chat_id, content) VALUES (?, ?)", chatID, content)
	if err != nil {
		return 0, fmt.Errorf("recording announcement: %w", err)
	}
	return res.LastInsertId()
}

// LastAnnouncement returns the most recent broadcast, or nil if none.
func (d *DB) LastAnnouncement() (*Announcement, error) {
	var a Announcement
	err := d.conn.QueryRow(
		"SELECT id, chat_id, content, created_at FROM announcements ORDER BY id DESC LIMIT 1",
	).Scan(&a.ID, &a.ChatID, &a.Content, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting last announcement: %w", err)
	}
	return &a, nil
}
